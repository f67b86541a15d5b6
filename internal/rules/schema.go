package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRulesJSONSchema returns the JSON-Schema (draft 2020-12 subset) every
// rule-set load is validated against, as a generic map.
func BuildRulesJSONSchema() map[string]any {
	keywordList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	counterparty := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"kind":    map[string]any{"type": "string", "enum": []string{"BANK", "LEGAL_ENTITY", "NATURAL_PERSON", "PUBLIC_BODY"}},
			"aliases": keywordList,
		},
		"required": []string{"name", "kind", "aliases"},
	}

	classifierRule := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":     map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"type": "string", "minLength": 1},
			"any":      keywordList,
			"all":      keywordList,
		},
		"required": []string{"name", "category"},
	}

	tariffProps := map[string]any{}
	for _, asset := range []string{"REAL_PROPERTY", "VEHICLE_ECONOMY", "VEHICLE_MID", "VEHICLE_HEAVY", "OTHER_MOVABLE"} {
		tariffProps[asset] = map[string]any{"type": "number", "minimum": 0}
	}

	deadline := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"period_days":   map[string]any{"type": "integer", "minimum": 1},
			"warning_days":  map[string]any{"type": "integer", "minimum": 1},
			"critical_days": map[string]any{"type": "integer", "minimum": 1},
			"tariff": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           tariffProps,
				"required":             []string{"REAL_PROPERTY", "VEHICLE_ECONOMY", "VEHICLE_MID", "VEHICLE_HEAVY", "OTHER_MOVABLE"},
			},
		},
		"required": []string{"period_days", "warning_days", "critical_days", "tariff"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"counterparties":       map[string]any{"type": "array", "items": counterparty},
			"classifier_rules":     map[string]any{"type": "array", "minItems": 1, "items": classifierRule},
			"block_patterns":       keywordList,
			"block_keywords":       keywordList,
			"no_account_phrases":   keywordList,
			"no_balance_phrases":   keywordList,
			"objection_phrases":    keywordList,
			"deadline":             deadline,
			"max_plausible_amount": map[string]any{"type": "number", "minimum": 0},
			"date_years_back":      map[string]any{"type": "integer", "minimum": 0},
			"date_years_ahead":     map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []string{"counterparties", "classifier_rules", "block_patterns", "deadline"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
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
