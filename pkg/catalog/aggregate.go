package catalog

import (
	"encoding/json"

	"github.com/garagekit/motodb/pkg/errors"
)

// Accumulator folds validated documents into the merged database and index.
// It is an explicit value passed through the pipeline, so aggregation is
// reentrant and independently testable. Append order is the order Add is
// called in, which the pipeline keeps equal to discovery order.
//
// Accumulator is not safe for concurrent use.
type Accumulator struct {
	seen    map[string]string // record name -> path of first definition
	records []*Record
	index   *Index
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		seen:  make(map[string]string),
		index: NewIndex(),
	}
}

// Add appends the document's record to the merged collection and inserts its
// index entry. A record name already seen in this build is a hard failure.
func (a *Accumulator) Add(doc *Document) error {
	rec := doc.Record
	if first, ok := a.seen[rec.Name]; ok {
		return errors.NewDuplicateError(rec.Name, first, doc.Path)
	}

	a.seen[rec.Name] = doc.Path
	a.records = append(a.records, rec)
	a.index.Add(rec.Name, Entry{
		Description: rec.Description,
		Location:    rec.Location,
	})
	return nil
}

// Len returns the number of accumulated records.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// Records returns the accumulated records in append order.
func (a *Accumulator) Records() []*Record {
	return a.records
}

// Index returns the name-keyed lookup index.
func (a *Accumulator) Index() *Index {
	return a.index
}

// Database assembles the merged database from the accumulated records.
func (a *Accumulator) Database() *Database {
	db := &Database{Motorcycles: make([]json.RawMessage, len(a.records))}
	for i, rec := range a.records {
		db.Motorcycles[i] = rec.Raw
	}
	return db
}

// Value assembles the merged database as a decoded value tree, suitable for
// re-validating the aggregate against the schema. Structurally valid records
// can still combine into an invalid whole (array-level constraints), so the
// pipeline validates this value after accumulation.
func (a *Accumulator) Value() any {
	records := make([]any, len(a.records))
	for i, rec := range a.records {
		records[i] = rec.Value
	}
	return map[string]any{"motorcycles": records}
}
