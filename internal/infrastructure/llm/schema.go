package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildEstimateJSONSchema returns the contract the analyzer output must satisfy.
// repair_categories is the only required key; missing fields inside a category are
// rendered as placeholders later. Costs must be non-negative numbers.
func BuildEstimateJSONSchema() map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"section_number": map[string]any{"type": []string{"string", "number"}},
			"description":    map[string]any{"type": "string"},
		},
	}
	category := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category_name":     map[string]any{"type": "string"},
			"inspection_items":  map[string]any{"type": "array", "items": item},
			"handyman_cost":     costProp(),
			"contractor_cost":   costProp(),
			"recommended_trade": map[string]any{"type": "string"},
		},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"repair_categories":  map[string]any{"type": "array", "items": category},
			"termites_mentioned": map[string]any{"type": "boolean"},
			"pests_mentioned":    map[string]any{"type": "boolean"},
			"rot_mentioned":      map[string]any{"type": "boolean"},
		},
		"required": []string{"repair_categories"},
	}
}

func costProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func estimateSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		b, err := json.Marshal(BuildEstimateJSONSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("estimate.json", bytes.NewReader(b)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("estimate.json")
	})
	return compiledSchema, compileErr
}

// ValidateEstimateJSON checks data against the estimate schema.
func ValidateEstimateJSON(data []byte) error {
	schema, err := estimateSchema()
	if err != nil {
		return err
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
