package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "gridmouse.schema.json"

var durationType = reflect.TypeOf(time.Duration(0))

// GenerateSchema returns the JSON Schema of the config file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "toml",
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == durationType {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
					Description: "Go duration such as 350ms or 1.5s",
				}
			}
			return nil
		},
	}

	schema := r.Reflect(&Config{})
	schema.Title = "gridmouse configuration"
	schema.Description = "Keyboard driven mouse grid settings."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}

// SchemaValidator checks raw config maps against the generated schema.
type SchemaValidator struct {
	schema *validator.Schema
}

// NewSchemaValidator compiles the generated schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("generating schema: %w", err)
	}
	compiler := validator.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks a parsed config file and returns one warning per
// violation.
func (v *SchemaValidator) Validate(data map[string]any) (Warnings, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to JSON for validation: %w", err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	err = v.schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	verr, ok := err.(*validator.ValidationError)
	if !ok {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var ws Warnings
	collectErrors(verr, &ws)
	return ws, nil
}

// collectErrors gathers the leaf causes of a validation error.
func collectErrors(err *validator.ValidationError, ws *Warnings) {
	if len(err.Causes) == 0 {
		*ws = append(*ws, Warning{Path: pointerToPath(err.InstanceLocation), Message: err.Message})
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, ws)
	}
}

// pointerToPath turns a JSON pointer like /grid/coarse/cols into a
// dotted path.
func pointerToPath(ptr string) string {
	return strings.ReplaceAll(strings.TrimPrefix(ptr, "/"), "/", ".")
}
