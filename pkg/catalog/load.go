package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/garagekit/motodb/pkg/errors"
)

// documentShape is the raw two-level shape of a source document. Keeping the
// record as raw bytes preserves the author's key order through the merge.
type documentShape struct {
	Motorcycles []json.RawMessage `json:"motorcycles"`
}

// recordHeader extracts the fields the core logic needs from a record.
// Everything else is schema territory.
type recordHeader struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Load reads and parses the source document at rel under root. It verifies
// the document's shape (exactly one record with a non-empty name) but does
// not validate against the schema; that is the caller's next step.
//
// YAML documents are converted to JSON before parsing, so downstream
// handling is uniform regardless of authoring format.
func Load(root, rel string) (*Document, error) {
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return nil, errors.WrapIO("read", rel, err)
	}

	format := formatOf(rel)
	if format == "yaml" {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.NewParseError("yaml", rel, "cannot convert to JSON", err)
		}
		data = converted
	}

	var shape documentShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, errors.WrapParse(format, rel, err)
	}

	// The record sequence must hold exactly one element. An empty sequence
	// was an unchecked crash in earlier tooling; both cases are malformed
	// input here.
	switch n := len(shape.Motorcycles); {
	case shape.Motorcycles == nil:
		return nil, errors.NewParseError(format, rel, "missing 'motorcycles' field", nil)
	case n == 0:
		return nil, errors.NewParseError(format, rel, "'motorcycles' contains no records", nil)
	case n > 1:
		return nil, errors.NewParseError(format, rel,
			fmt.Sprintf("'motorcycles' contains %d records, expected exactly 1", n), nil)
	}
	raw := shape.Motorcycles[0]

	var header recordHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, errors.NewParseError(format, rel, "record is not an object", err)
	}
	if header.Name == "" {
		return nil, errors.NewParseError(format, rel, "record has no name", nil)
	}

	// Decode again through the schema engine's reader so numbers carry the
	// types the validator expects.
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapParse(format, rel, err)
	}
	recordValue, err := recordValueOf(value)
	if err != nil {
		return nil, errors.NewParseError(format, rel, err.Error(), nil)
	}

	return &Document{
		Path:  rel,
		Value: value,
		Record: &Record{
			Name:        header.Name,
			Description: header.Description,
			Location:    filepath.ToSlash(rel),
			Raw:         raw,
			Value:       recordValue,
		},
	}, nil
}

// recordValueOf pulls the single record out of the decoded document value.
// The shape was already verified on the raw bytes.
func recordValueOf(value any) (any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errors.New("document is not an object")
	}
	seq, ok := obj["motorcycles"].([]any)
	if !ok || len(seq) == 0 {
		return nil, errors.New("'motorcycles' is not a non-empty array")
	}
	return seq[0], nil
}

// formatOf reports the source format implied by the file extension.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
