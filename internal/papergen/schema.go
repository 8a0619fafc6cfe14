package papergen

import "paperforge/internal/llm"

// outcomeEnum and bloomEnum mirror the paper model's tag sets.
var (
	outcomeEnum = []any{"CO1", "CO2", "CO3", "CO4", "CO5", "CO6"}
	bloomEnum   = []any{"Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"}
)

// SectionFillSchema is the reply shape for a bulk section fill: a list of
// question objects. Only the text is required; options and tags are
// optional so absent fields fall back to the existing question values.
var SectionFillSchema = &llm.Schema{
	Name:        "section-questions",
	Description: "A list of drafted exam questions for one section",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "The question body, LaTeX math in $ / $$ delimiters",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    4,
					"maxItems":    4,
					"description": "Exactly 4 answer choices, multiple-choice sections only",
				},
				"outcome": map[string]any{
					"type":        "string",
					"enum":        outcomeEnum,
					"description": "Course-outcome tag",
				},
				"bloom": map[string]any{
					"type":        "string",
					"enum":        bloomEnum,
					"description": "Cognitive-level tag",
				},
			},
			"required":             []any{"text"},
			"additionalProperties": false,
		},
	},
}

// McqRevisionSchema is the reply shape for a multiple-choice revision:
// the revised text plus a full replacement option set.
var McqRevisionSchema = &llm.Schema{
	Name:        "mcq-revision",
	Description: "A revised multiple-choice question with its options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
		"required":             []any{"text", "options"},
		"additionalProperties": false,
	},
}
