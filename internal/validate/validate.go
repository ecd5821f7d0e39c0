// Package validate checks a model answer against the JSON Schema that the
// prompt asked it to follow.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

const schemaResource = "schema.json"

// Validator holds a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile parses schema text. A schema that is not valid JSON or not a valid
// JSON Schema is rejected.
func Compile(schemaText string) (*Validator, error) {
	if strings.TrimSpace(schemaText) == "" {
		return nil, fmt.Errorf("schema is empty")
	}
	if !gjson.Valid(schemaText) {
		return nil, fmt.Errorf("schema is not valid JSON")
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(schemaText)); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks that answer is exactly one JSON object conforming to the
// schema.
func (v *Validator) Validate(answer []byte) error {
	raw := strings.TrimSpace(string(answer))
	if raw == "" {
		return fmt.Errorf("answer is empty")
	}
	if !gjson.Valid(raw) {
		return fmt.Errorf("answer is not valid JSON")
	}
	if !gjson.Parse(raw).IsObject() {
		return fmt.Errorf("answer must be a single JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		return fmt.Errorf("decode answer: %w", err)
	}
	return v.schema.Validate(instance)
}
