package quiz

// bankSchema is the JSON schema every question bank document must satisfy.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"pattern":     `^v\d+\.\d+\.\d+$`,
			"description": "Semantic version of the bank format",
		},
		"categories": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "pattern": `^[a-z][a-z0-9-]*$`},
					"title": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "title"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string", "minLength": 1},
					"category":   map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
					"prompt":     map[string]any{"type": "string", "minLength": 1},
					"answer": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "Numeric answer with optional unit suffix, e.g. 10k or 4.7uF",
					},
					"accept": map[string]any{
						"type":        "array",
						"minItems":    1,
						"items":       map[string]any{"type": "string", "minLength": 1},
						"description": "Accepted literal answers for non-numeric questions",
					},
					"tolerance": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					"hints": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"explanation": map[string]any{"type": "string"},
				},
				"required": []any{"id", "category", "difficulty", "prompt", "hints", "explanation"},
				"oneOf": []any{
					map[string]any{"required": []any{"answer"}},
					map[string]any{"required": []any{"accept"}},
				},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "categories", "questions"},
	"additionalProperties": false,
}
