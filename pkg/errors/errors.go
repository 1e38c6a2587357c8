// Package errors provides custom error types for the motodb system.
// These errors enable better error handling, programmatic error checking,
// and improved diagnostics throughout the build pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the motodb system
var (
	// ErrInvalidSchema indicates the schema document itself could not be compiled
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrMalformedInput indicates a source document could not be parsed or
	// does not have the expected shape
	ErrMalformedInput = errors.New("malformed input")

	// ErrSchemaViolation indicates a document failed schema validation
	ErrSchemaViolation = errors.New("schema violation")

	// ErrDuplicateName indicates two source documents claim the same record name
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNoSources indicates discovery found zero eligible source documents
	ErrNoSources = errors.New("no source documents found")

	// ErrNotFound indicates a requested record was not found in the index
	ErrNotFound = errors.New("not found")
)

// SchemaError represents a failure to load or compile the schema document.
// The schema is an input contract; a broken schema aborts the whole run.
type SchemaError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema error in %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, message string, err error) *SchemaError {
	return &SchemaError{Path: path, Message: message, Err: err}
}

// ParseError represents a source document that could not be parsed,
// or parsed into something other than the expected document shape.
type ParseError struct {
	Format  string // "json" or "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// Violation is a single violated schema constraint, addressed by a JSON
// Pointer into the offending document.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String returns the violation in "pointer: message" form.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError represents a document that failed schema validation.
// It carries every violated constraint, not just the first.
type ValidationError struct {
	File       string
	Violations []Violation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.File != "" {
		fmt.Fprintf(&b, "document %s failed schema validation", e.File)
	} else {
		b.WriteString("document failed schema validation")
	}
	fmt.Fprintf(&b, " (%d violation(s))", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// NewValidationError creates a new ValidationError
func NewValidationError(file string, violations []Violation) *ValidationError {
	return &ValidationError{File: file, Violations: violations}
}

// DuplicateError represents two source documents claiming the same record name.
type DuplicateError struct {
	Name      string
	FirstPath string
	Path      string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	if e.FirstPath != "" {
		return fmt.Sprintf("duplicate record name %q in %s (first defined in %s)", e.Name, e.Path, e.FirstPath)
	}
	return fmt.Sprintf("duplicate record name %q in %s", e.Name, e.Path)
}

// Is implements errors.Is support
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NewDuplicateError creates a new DuplicateError
func NewDuplicateError(name, firstPath, path string) *DuplicateError {
	return &DuplicateError{Name: name, FirstPath: firstPath, Path: path}
}

// DiscoveryError represents a discovery pass that produced no eligible
// source documents. An empty database is never a valid build output.
type DiscoveryError struct {
	Root string
}

// Error implements the error interface
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("no source documents found under %s", e.Root)
}

// Is implements errors.Is support
func (e *DiscoveryError) Is(target error) bool {
	return target == ErrNoSources
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "copy", "walk"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsMalformedInput checks if an error is a parse/shape error
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsSchemaViolation checks if an error is a validation failure
func IsSchemaViolation(err error) bool {
	return errors.Is(err, ErrSchemaViolation)
}

// IsDuplicateName checks if an error is a duplicate-name conflict
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsNoSources checks if an error is an empty discovery
func IsNoSources(err error) bool {
	return errors.Is(err, ErrNoSources)
}

// IsNotFound checks if an error is a missing-record lookup
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
