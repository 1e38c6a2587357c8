package catalog

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/garagekit/motodb/pkg/errors"
)

// Index maps record names to their entries, preserving insertion order so
// the serialized artifact is byte-deterministic across runs.
type Index struct {
	names   []string
	entries map[string]Entry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// Add inserts an entry under name. It returns false if the name is already
// present, leaving the existing entry untouched.
func (ix *Index) Add(name string, entry Entry) bool {
	if _, ok := ix.entries[name]; ok {
		return false
	}
	ix.names = append(ix.names, name)
	ix.entries[name] = entry
	return true
}

// Get returns the entry for name.
func (ix *Index) Get(name string) (Entry, bool) {
	entry, ok := ix.entries[name]
	return entry, ok
}

// Len returns the number of entries.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Names returns the record names in insertion order.
func (ix *Index) Names() []string {
	out := make([]string, len(ix.names))
	copy(out, ix.names)
	return out
}

// MarshalJSON serializes the index as an object with keys in insertion
// order. encoding/json re-indents the result when the caller indents.
func (ix *Index) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, name := range ix.names {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(ix.entries[name])
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// ReadIndex loads a previously written index artifact. Insertion order is
// not recovered; this is for lookups, not for re-serialization.
func ReadIndex(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return entries, nil
}
