package reason

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildClassificationSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. The three taxonomy keys are required; confidence and
// needs_review are optional and defaulted by the parser.
func buildClassificationSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reason_level_1": map[string]any{"type": "string", "minLength": 1},
			"reason_level_2": map[string]any{"type": "string", "minLength": 1},
			"category_type":  map[string]any{"type": "string", "minLength": 1},
			"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"needs_review":   map[string]any{"type": "boolean"},
		},
		"required": []string{"reason_level_1", "reason_level_2", "category_type"},
	}
}

// validateAgainstSchema validates "data" against "schemaMap".
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
