package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var pointsSchema = &Schema{
	Name:        "test-points",
	Description: "points bound to a band",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":  map[string]any{"type": "string"},
			"points": map[string]any{"type": "integer", "minimum": 50, "maximum": 100},
		},
		"required":             []any{"title", "points"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title":"Explorer","points":75}`)
	if err := validateResponse(pointsSchema, raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsOutOfBand(t *testing.T) {
	raw := json.RawMessage(`{"title":"Explorer","points":500}`)
	err := validateResponse(pointsSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"title":"Explorer"}`)
	if err := validateResponse(pointsSchema, raw); err == nil {
		t.Fatal("want error for missing required field")
	}
}

func TestValidateResponseRejectsNonJSON(t *testing.T) {
	raw := json.RawMessage(`here is your quiz: ...`)
	var invalid *ErrInvalidResponse
	if err := validateResponse(pointsSchema, raw); !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("nil schema should pass, got %v", err)
	}
}
