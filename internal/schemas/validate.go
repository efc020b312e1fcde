// Package schemas provides JSON Schema validation for backend entity payloads.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names accepted by Validate.
const (
	SchemaResource = "resource.schema.json"
	SchemaFile     = "file.schema.json"
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("payload does not match %s:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against one of the embedded schemas.
// Returns nil when the document conforms, a *ValidationError listing every
// violated field otherwise.
func Validate(name string, doc []byte) error {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "unknown schema", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(raw)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
