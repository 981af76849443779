// Package validation checks JSON documents against JSON Schema files.
// It fronts structural validation for configuration loaded from disk, so a
// malformed theme file is rejected with a field-level message before any
// domain code sees it.
package validation

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errorPrinter = message.NewPrinter(language.English)

// SchemaValidator validates JSON documents against JSON Schema files
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
	ValidateFile(dataPath, schemaPath string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that compiles each schema file once
// and reuses it for subsequent calls
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates the JSON document at dataPath against the schema at
// schemaPath
func (v *schemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates raw JSON against the schema at schemaPath
func (v *schemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return flattenValidationError(err)
	}
	return nil
}

func (v *schemaValidator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.compiled[schemaPath]; ok {
		return schema, nil
	}

	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", schemaPath, err)
	}

	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("failed to register schema %s: %w", schemaPath, err)
	}
	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaPath, err)
	}

	v.compiled[schemaPath] = schema
	return schema, nil
}

// flattenValidationError turns the nested cause tree into one line per
// failing location
func flattenValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	collectCauses(validationErr, &lines)
	return fmt.Errorf("schema validation failed: %s", strings.Join(lines, "; "))
}

func collectCauses(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		location := "/" + strings.Join(err.InstanceLocation, "/")
		*lines = append(*lines, fmt.Sprintf("%s: %s", location, err.ErrorKind.LocalizedString(errorPrinter)))
		return
	}
	for _, cause := range err.Causes {
		collectCauses(cause, lines)
	}
}
