// Package schema compiles a JSON Schema document once and validates decoded
// documents against it. Validation is pure: a malformed document yields a
// negative Result with ordered violations, never an error or a panic.
// Reporting is the caller's responsibility.
package schema

import (
	"bytes"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/garagekit/motodb/pkg/errors"
)

// Validator holds a compiled schema, reusable across documents.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// Result is the outcome of validating one document.
type Result struct {
	Valid      bool
	Violations []errors.Violation
}

// Compile reads and compiles the schema document at path.
// A malformed schema is fatal for the whole run.
func Compile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSchemaError(path, "cannot read schema", err)
	}
	return CompileBytes(path, data)
}

// CompileBytes compiles a schema from raw JSON bytes. The name is used in
// diagnostics and as the schema's resource identifier.
func CompileBytes(name string, data []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewSchemaError(name, "schema is not valid JSON", err)
	}

	url := "motodb:///" + strings.TrimLeft(name, "/")

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(url, doc); err != nil {
		return nil, errors.NewSchemaError(name, "cannot register schema resource", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, errors.NewSchemaError(name, "schema does not compile", err)
	}

	return &Validator{
		schema:  compiled,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate checks one decoded document against the compiled schema.
// The document must be a JSON-compatible value tree, as produced by
// jsonschema.UnmarshalJSON.
func (v *Validator) Validate(doc any) *Result {
	err := v.schema.Validate(doc)
	if err == nil {
		return &Result{Valid: true}
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		// Unknown failure shape from the engine; report it at the root.
		return &Result{Violations: []errors.Violation{{Path: "", Message: err.Error()}}}
	}

	var violations []errors.Violation
	v.flatten(verr, &violations)
	return &Result{Violations: violations}
}

// flatten walks the cause tree depth-first, collecting one violation per
// leaf constraint so every violated constraint is reported, in order.
func (v *Validator) flatten(err *jsonschema.ValidationError, out *[]errors.Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, errors.Violation{
			Path:    Pointer(err.InstanceLocation),
			Message: err.ErrorKind.LocalizedString(v.printer),
		})
		return
	}
	for _, cause := range err.Causes {
		v.flatten(cause, out)
	}
}

// Pointer renders instance location tokens as a JSON Pointer (RFC 6901).
// The root location renders as the empty string.
func Pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte('/')
		tok = strings.ReplaceAll(tok, "~", "~0")
		tok = strings.ReplaceAll(tok, "/", "~1")
		b.WriteString(tok)
	}
	return b.String()
}
