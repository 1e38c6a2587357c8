package motodb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/motodb"
)

const facadeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["motorcycles"],
	"properties": {
		"motorcycles": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "description"],
				"properties": {
					"name": {"type": "string"},
					"description": {"type": "string"}
				}
			}
		}
	}
}`

func TestNewRequiresSourceDir(t *testing.T) {
	_, err := motodb.New()
	require.Error(t, err)
}

func TestBuildEndToEnd(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(src, "motorcycle.schema.json"), []byte(facadeSchema), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "cb750.json"),
		[]byte(`{"motorcycles":[{"name":"CB750","description":"Honda inline four"}]}`), 0o644))

	b, err := motodb.New(
		motodb.WithSourceDir(src),
		motodb.WithOutputDir(out),
	)
	require.NoError(t, err)

	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Records)
	assert.FileExists(t, result.DatabasePath)
	assert.FileExists(t, result.IndexPath)
}

func TestValidateWritesNothing(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(src, "motorcycle.schema.json"), []byte(facadeSchema), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "cb750.json"),
		[]byte(`{"motorcycles":[{"name":"CB750","description":"d"}]}`), 0o644))

	b, err := motodb.New(
		motodb.WithSourceDir(src),
		motodb.WithOutputDir(out),
	)
	require.NoError(t, err)

	result, err := b.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Records)
	assert.NoDirExists(t, out)
}
