package catalog

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/garagekit/motodb/pkg/constants"
	"github.com/garagekit/motodb/pkg/errors"
)

// Discover enumerates the eligible source documents under root, returning
// their paths relative to root, sorted lexicographically. Discovery order is
// authoritative for the merged database: it must be stable and reproducible
// across runs on an unchanged tree.
//
// Files whose name marks them as schema definitions are skipped, as is the
// configured schema file itself (given relative to root).
func Discover(root, schemaFile string) ([]string, error) {
	schemaRel := filepath.ToSlash(schemaFile)

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !eligibleExt(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if skipAsSchema(filepath.ToSlash(rel), schemaRel) {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", root, err)
	}

	if len(paths) == 0 {
		return nil, &errors.DiscoveryError{Root: root}
	}

	sort.Slice(paths, func(i, j int) bool {
		return filepath.ToSlash(paths[i]) < filepath.ToSlash(paths[j])
	})
	return paths, nil
}

// eligibleExt reports whether the file extension marks a source document.
func eligibleExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// skipAsSchema reports whether rel (slash form) is a schema definition.
func skipAsSchema(rel, schemaRel string) bool {
	if rel == schemaRel {
		return true
	}
	return strings.HasSuffix(rel, constants.SchemaSuffix)
}
