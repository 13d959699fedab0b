package mockapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const todoSchema = `{
	"type": "object",
	"required": ["text", "done"],
	"properties": {
		"id": {"type": "string"},
		"text": {"type": "string", "minLength": 1},
		"done": {"type": "boolean"},
		"categoryId": {"type": "string"}
	}
}`

const categorySchema = `{
	"type": "object",
	"required": ["name", "color"],
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string", "minLength": 1},
		"color": {"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"}
	}
}`

// schemas holds the compiled request body schemas
type schemas struct {
	todo     *jsonschema.Schema
	category *jsonschema.Schema
}

func compileSchemas() (*schemas, error) {
	compiler := jsonschema.NewCompiler()
	resources := map[string]string{
		"todo.json":     todoSchema,
		"category.json": categorySchema,
	}
	for name, schema := range resources {
		if err := compiler.AddResource(name, strings.NewReader(schema)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}

	todo, err := compiler.Compile("todo.json")
	if err != nil {
		return nil, fmt.Errorf("compile todo schema: %w", err)
	}
	category, err := compiler.Compile("category.json")
	if err != nil {
		return nil, fmt.Errorf("compile category schema: %w", err)
	}

	return &schemas{todo: todo, category: category}, nil
}

// decodeValid validates body against schema, then decodes it into out
func decodeValid(schema *jsonschema.Schema, body []byte, out any) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	return json.Unmarshal(body, out)
}
