package schema_test

import (
	"bytes"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/garagekit/motodb/pkg/errors"
	"github.com/garagekit/motodb/pkg/schema"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["motorcycles"],
	"properties": {
		"motorcycles": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "description", "oil_change_km"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"oil_change_km": {"type": "integer", "minimum": 500},
					"valve_check_km": {"type": "integer", "minimum": 500}
				}
			}
		}
	}
}`

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(s)))
	require.NoError(t, err)
	return v
}

func TestCompileBytes(t *testing.T) {
	v, err := schema.CompileBytes("motorcycle.schema.json", []byte(testSchema))
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestCompileBytesMalformedSchema(t *testing.T) {
	t.Run("not JSON", func(t *testing.T) {
		_, err := schema.CompileBytes("bad.schema.json", []byte("{nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidSchema)
	})

	t.Run("invalid keyword value", func(t *testing.T) {
		_, err := schema.CompileBytes("bad.schema.json", []byte(`{"type": 42}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidSchema)
	})
}

func TestCompileMissingFile(t *testing.T) {
	_, err := schema.Compile("does/not/exist.schema.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidSchema)
}

func TestValidateValidDocument(t *testing.T) {
	v, err := schema.CompileBytes("motorcycle.schema.json", []byte(testSchema))
	require.NoError(t, err)

	doc := decode(t, `{
		"motorcycles": [
			{"name": "CB750", "description": "Honda inline four", "oil_change_km": 6000, "valve_check_km": 12000}
		]
	}`)

	result := v.Validate(doc)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestValidateInvalidDocument(t *testing.T) {
	v, err := schema.CompileBytes("motorcycle.schema.json", []byte(testSchema))
	require.NoError(t, err)

	// Two independent constraint violations in one record.
	doc := decode(t, `{
		"motorcycles": [
			{"name": "", "description": "no name", "oil_change_km": 100}
		]
	}`)

	result := v.Validate(doc)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Violations)

	paths := make([]string, 0, len(result.Violations))
	for _, violation := range result.Violations {
		assert.NotEmpty(t, violation.Message)
		paths = append(paths, violation.Path)
	}
	assert.Contains(t, paths, "/motorcycles/0/name")
	assert.Contains(t, paths, "/motorcycles/0/oil_change_km")
}

func TestValidateMissingRequiredField(t *testing.T) {
	v, err := schema.CompileBytes("motorcycle.schema.json", []byte(testSchema))
	require.NoError(t, err)

	doc := decode(t, `{"motorcycles": [{"name": "XT500"}]}`)

	result := v.Validate(doc)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Violations)
	// The violation points at the offending record, not the document root.
	assert.Contains(t, result.Violations[0].Path, "/motorcycles/0")
}

func TestValidateNeverErrors(t *testing.T) {
	v, err := schema.CompileBytes("motorcycle.schema.json", []byte(testSchema))
	require.NoError(t, err)

	// A structurally alien document is a negative result, not a panic.
	result := v.Validate(decode(t, `[1, 2, 3]`))
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Violations)
}

func TestPointer(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{nil, ""},
		{[]string{"motorcycles"}, "/motorcycles"},
		{[]string{"motorcycles", "0", "name"}, "/motorcycles/0/name"},
		{[]string{"a/b", "c~d"}, "/a~1b/c~0d"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.Pointer(tt.tokens))
	}
}
