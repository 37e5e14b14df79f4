package ai

// JSON schemas for the strict structured-output format. Strict mode needs
// every property listed in required and additionalProperties false.

func summarySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":    map[string]any{"type": "string", "description": "The concise summary of the input text."},
			"flashcards": map[string]any{"type": "string", "description": "Generated flashcards from the input text."},
			"progress":   map[string]any{"type": "string", "description": "Progress indicator of the summary generation."},
		},
		"required":             []string{"summary", "flashcards", "progress"},
		"additionalProperties": false,
	}
}

func breaksSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"breakSuggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suggested break times, formatted as sentences.",
			},
		},
		"required":             []string{"breakSuggestions"},
		"additionalProperties": false,
	}
}

func quizSchema() map[string]any {
	question := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": OptionsPerQuestion,
				"maxItems": OptionsPerQuestion,
			},
			"correctAnswerIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": OptionsPerQuestion - 1},
			"explanation":        map[string]any{"type": "string"},
		},
		"required":             []string{"questionText", "options", "correctAnswerIndex", "explanation"},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{"type": "array", "items": question},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	}
}
