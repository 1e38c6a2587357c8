package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/motodb/pkg/catalog"
	pkgerrors "github.com/garagekit/motodb/pkg/errors"
)

func doc(name, description, path string) *catalog.Document {
	raw, _ := json.Marshal(map[string]string{"name": name, "description": description})
	return &catalog.Document{
		Path: path,
		Record: &catalog.Record{
			Name:        name,
			Description: description,
			Location:    path,
			Raw:         raw,
			Value:       map[string]any{"name": name, "description": description},
		},
	}
}

func TestAccumulatorAdd(t *testing.T) {
	acc := catalog.NewAccumulator()
	require.NoError(t, acc.Add(doc("X", "d1", "a.json")))
	require.NoError(t, acc.Add(doc("Y", "d2", "b.json")))

	assert.Equal(t, 2, acc.Len())

	records := acc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "X", records[0].Name)
	assert.Equal(t, "Y", records[1].Name)

	entry, ok := acc.Index().Get("Y")
	require.True(t, ok)
	assert.Equal(t, catalog.Entry{Description: "d2", Location: "b.json"}, entry)
}

func TestAccumulatorDuplicate(t *testing.T) {
	acc := catalog.NewAccumulator()
	require.NoError(t, acc.Add(doc("X", "d1", "a.json")))

	err := acc.Add(doc("X", "other", "b.json"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicateName(err))

	// The diagnostic names the duplicate value and both offending paths.
	var dup *pkgerrors.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "X", dup.Name)
	assert.Equal(t, "a.json", dup.FirstPath)
	assert.Equal(t, "b.json", dup.Path)

	// The failed add left the accumulator untouched.
	assert.Equal(t, 1, acc.Len())
}

func TestAccumulatorDatabaseOrder(t *testing.T) {
	acc := catalog.NewAccumulator()
	require.NoError(t, acc.Add(doc("X", "d1", "a.json")))
	require.NoError(t, acc.Add(doc("Y", "d2", "b.json")))

	db := acc.Database()
	require.Len(t, db.Motorcycles, 2)

	out, err := json.Marshal(db)
	require.NoError(t, err)
	assert.JSONEq(t, `{"motorcycles":[
		{"name":"X","description":"d1"},
		{"name":"Y","description":"d2"}
	]}`, string(out))
}

func TestAccumulatorValue(t *testing.T) {
	acc := catalog.NewAccumulator()
	require.NoError(t, acc.Add(doc("X", "d1", "a.json")))

	value, ok := acc.Value().(map[string]any)
	require.True(t, ok)
	seq, ok := value["motorcycles"].([]any)
	require.True(t, ok)
	require.Len(t, seq, 1)
}
