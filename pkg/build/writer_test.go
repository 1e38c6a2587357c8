package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/motodb/pkg/catalog"
)

func TestCleanRefusesUnsafePaths(t *testing.T) {
	for _, dir := range []string{"", "/", "."} {
		assert.Error(t, clean(dir), "clean(%q) should refuse", dir)
	}
}

func TestCleanRecreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "old.json"), []byte("{}"), 0o644))

	require.NoError(t, clean(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Idempotent on a fresh directory.
	require.NoError(t, clean(dir))
}

func TestCommitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "database.json")

	require.NoError(t, commitFile(path, []byte("{}\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	// No temp file is left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestMarshalArtifactFormatting(t *testing.T) {
	data, err := marshalArtifact(map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "{\n   \"k\": \"v\"\n}\n", string(data))
}

func TestWriteStagesCopies(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "honda"), 0o755))
	original := []byte(`{"motorcycles":[{"name":"CB750","description":"d"}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(src, "honda", "cb750.json"), original, 0o644))
	require.NoError(t, os.MkdirAll(dest, 0o755))

	db := &catalog.Database{Motorcycles: []json.RawMessage{json.RawMessage(`{"name":"CB750","description":"d"}`)}}
	ix := catalog.NewIndex()
	ix.Add("CB750", catalog.Entry{Description: "d", Location: "honda/cb750.json"})

	dbPath, ixPath, err := write(db, ix, src, dest, []string{filepath.Join("honda", "cb750.json")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "database.json"), dbPath)
	assert.Equal(t, filepath.Join(dest, "index.json"), ixPath)

	// The copy is verbatim, at the mirrored subpath.
	staged, err := os.ReadFile(filepath.Join(dest, "honda", "cb750.json"))
	require.NoError(t, err)
	assert.Equal(t, original, staged)
}
