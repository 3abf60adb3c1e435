package validation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// SchemaValidator validates JSON request bodies against the embedded schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

// ValidateBytes checks data against the named schema. A body that is not
// JSON or does not match the schema yields a *domain.ValidationError.
func (v *schemaValidator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	// UnmarshalJSON keeps numbers as json.Number so integer checks are exact
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return domain.NewValidationError("body", ErrMsgInvalidRequestBody)
	}

	if err := schema.Validate(inst); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// loadSchema loads and compiles an embedded schema, caching the result
func (v *schemaValidator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	url := schemaBaseURL + schemaName
	if err := v.compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError turns a schema failure into a single client-facing message
func (v *schemaValidator) formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return domain.NewValidationError("body", ErrMsgInvalidRequestBody)
	}

	var msgs []string
	v.collectErrors(validationErr, &msgs)
	if len(msgs) == 0 {
		return domain.NewValidationError("body", ErrMsgInvalidRequestBody)
	}
	return domain.NewValidationError("body", fmt.Sprintf("%s: %s", ErrMsgInvalidRequestBody, strings.Join(msgs, "; ")))
}

// collectErrors recursively collects the leaf validation errors
func (v *schemaValidator) collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, v.formatError(err))
		return
	}
	for _, cause := range err.Causes {
		v.collectErrors(cause, msgs)
	}
}

// formatError formats a single leaf error as "at /path: reason"
func (v *schemaValidator) formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	if err.ErrorKind == nil {
		return fmt.Sprintf("at %s: validation failed", location)
	}
	return fmt.Sprintf("at %s: %s", location, err.ErrorKind.LocalizedString(v.printer))
}
