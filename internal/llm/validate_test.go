package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var itemSchema = &Schema{
	Name:        "test-item",
	Description: "A single test item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Accepts(t *testing.T) {
	raw := json.RawMessage(`{"text":"What is a stack?","options":["a","b","c","d"]}`)
	if err := validateResponse(itemSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_RejectsMalformedJSON(t *testing.T) {
	err := validateResponse(itemSchema, json.RawMessage(`{"text": "unterminated`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_RejectsMissingRequired(t *testing.T) {
	err := validateResponse(itemSchema, json.RawMessage(`{"options":["a"]}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse for missing required field, got %T", err)
	}
}

func TestValidateResponse_RejectsExtraFields(t *testing.T) {
	err := validateResponse(itemSchema, json.RawMessage(`{"text":"x","commentary":"here you go!"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse for extra field, got %T", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Fatalf("nil schema must validate trivially: %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"text":"first"}`)
	if err := validateResponse(itemSchema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(itemSchema.Name); !ok {
		t.Fatal("expected compiled schema in cache")
	}
	if err := validateResponse(itemSchema, raw); err != nil {
		t.Fatalf("cached validation: %v", err)
	}
}
