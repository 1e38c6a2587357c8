// Package constants provides shared constants used throughout the motodb
// codebase. This includes file permissions, fixed artifact names, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Output artifact names under the destination directory
const (
	// DatabaseFile is the merged database artifact
	DatabaseFile = "database.json"

	// IndexFile is the name-keyed lookup index artifact
	IndexFile = "index.json"
)

// Source tree conventions
const (
	// SchemaFile is the default schema document name under the source root
	SchemaFile = "motorcycle.schema.json"

	// SchemaSuffix marks a file as a schema definition; such files are
	// never treated as source documents
	SchemaSuffix = ".schema.json"
)

// Formatting constants
const (
	// JSONIndent is the indentation unit for generated artifacts
	JSONIndent = "   " // 3 spaces
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Watch mode constants
const (
	// WatchDebounce is how long the watcher waits after the last filesystem
	// event before triggering a rebuild
	WatchDebounce = 250 * time.Millisecond
)
