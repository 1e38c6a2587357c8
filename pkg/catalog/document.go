// Package catalog defines the motodb data model and the single-pass
// aggregation that folds per-bike source documents into one merged database
// plus a name-keyed lookup index.
//
// A source document is a JSON (or YAML) object with one recognized field,
// "motorcycles", holding exactly one record. A record is one motorcycle's
// service-interval entry; its name is the unit of uniqueness and indexing.
package catalog

import "encoding/json"

// Record is one motorcycle's service-interval entry.
//
// Raw preserves the record's original bytes so merged output keeps the
// author's key order; Value is the decoded form used for schema validation.
// Beyond name and description the record's fields are opaque to motodb.
type Record struct {
	Name        string
	Description string
	Location    string // forward-slash path relative to the source root
	Raw         json.RawMessage
	Value       any
}

// Document is one parsed source document.
type Document struct {
	Path   string // relative path as discovered
	Record *Record
	Value  any // whole-document decoded value for schema validation
}

// Database is the merged collection of all records, in discovery order.
type Database struct {
	Motorcycles []json.RawMessage `json:"motorcycles"`
}

// Entry is one index entry, pointing a record name at its description and
// the source document it came from. It lets consumers look a record up
// without parsing the full database.
type Entry struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}
