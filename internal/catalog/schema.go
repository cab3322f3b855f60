package catalog

// deckFileSchema is the JSON Schema for custom deck files.
// Structural catalog checks (ID uniqueness, deck references) happen after
// schema validation, against the already-loaded catalog.
var deckFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"min_app_version": map[string]any{
			"type":        "string",
			"description": "Lowest app version that understands this file, e.g. 0.2.0",
		},
		"deck": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "string", "minLength": 1},
				"title": map[string]any{"type": "string", "minLength": 1},
				"discipline": map[string]any{
					"type": "string",
					"enum": []any{"scope", "schedule", "risk", "stakeholder", "quality"},
				},
			},
			"required":             []any{"id", "title", "discipline"},
			"additionalProperties": false,
		},
		"cards": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"title":   map[string]any{"type": "string", "minLength": 1},
					"summary": map[string]any{"type": "string"},
					"body":    map[string]any{"type": "string", "minLength": 1},
					"keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "title", "body"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"min_app_version", "deck", "cards"},
	"additionalProperties": false,
}
