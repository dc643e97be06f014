package api

// Schema names a JSON schema for response validation.
type Schema struct {
	Name       string
	Definition map[string]any
}

// roadmapSchema validates the /getRoadMap response: an array whose
// first element is the user's roadmap tree.
var roadmapSchema = &Schema{
	Name: "roadmap-response",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"skills"},
			"properties": map[string]any{
				"dreamRole": map[string]any{"type": "string"},
				"skills": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"name", "topics"},
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"topics": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type":     "object",
									"required": []any{"topicName"},
									"properties": map[string]any{
										"topicName":   map[string]any{"type": "string"},
										"description": map[string]any{"type": "string"},
										"completed":   map[string]any{"type": "boolean"},
										"score":       map[string]any{"type": "number"},
									},
								},
							},
						},
					},
				},
			},
		},
	},
}

// questionsSchema validates the /getTopicQuestions response: an array
// of single-key objects mapping "question-<n>" to the question text.
var questionsSchema = &Schema{
	Name: "questions-response",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"maxProperties": 1,
			"propertyNames": map[string]any{
				"pattern": "^question-[0-9]+$",
			},
			"additionalProperties": map[string]any{"type": "string"},
		},
	},
}

// verdictSchema validates the /checkTestAnswers response.
var verdictSchema = &Schema{
	Name: "verdict-response",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"score", "response"},
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
			"response": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
	},
}
