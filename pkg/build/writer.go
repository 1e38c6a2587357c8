package build

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/garagekit/motodb/pkg/catalog"
	"github.com/garagekit/motodb/pkg/constants"
	"github.com/garagekit/motodb/pkg/errors"
)

// clean destroys and recreates the destination directory. It is idempotent;
// an interrupted run can always be rerun from scratch.
func clean(dir string) error {
	if dir == "" || dir == "/" || dir == "." {
		return errors.New("refusing to clean unsafe output directory")
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.WrapIO("delete", dir, err)
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return nil
}

// write persists the merged database and index under destDir and stages a
// verbatim copy of every source document at its mirrored subpath.
//
// Both generated artifacts are serialized up front, buffered in memory, and
// committed last via temp-file-and-rename, so a failed run never leaves a
// partially written database or index behind.
func write(db *catalog.Database, ix *catalog.Index, sourceDir, destDir string, sources []string) (string, string, error) {
	dbData, err := marshalArtifact(db)
	if err != nil {
		return "", "", errors.WrapIO("encode", constants.DatabaseFile, err)
	}
	ixData, err := marshalArtifact(ix)
	if err != nil {
		return "", "", errors.WrapIO("encode", constants.IndexFile, err)
	}

	for _, rel := range sources {
		if err := stageCopy(sourceDir, destDir, rel); err != nil {
			return "", "", err
		}
	}

	dbPath := filepath.Join(destDir, constants.DatabaseFile)
	if err := commitFile(dbPath, dbData); err != nil {
		return "", "", err
	}
	ixPath := filepath.Join(destDir, constants.IndexFile)
	if err := commitFile(ixPath, ixData); err != nil {
		return "", "", err
	}

	return dbPath, ixPath, nil
}

// marshalArtifact serializes an artifact with the fixed 3-space indentation
// and a trailing newline. Key order is insertion order, making repeated runs
// on an unchanged tree byte-identical.
func marshalArtifact(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", constants.JSONIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// stageCopy copies one source document verbatim to its mirrored subpath
// under destDir, preserving subdirectory structure.
func stageCopy(sourceDir, destDir, rel string) error {
	data, err := os.ReadFile(filepath.Join(sourceDir, rel))
	if err != nil {
		return errors.WrapIO("copy", rel, err)
	}

	target := filepath.Join(destDir, rel)
	if err := os.MkdirAll(filepath.Dir(target), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("copy", target, err)
	}
	return nil
}

// commitFile writes data to a temporary sibling and renames it into place,
// so the final path only ever holds a complete artifact.
func commitFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
