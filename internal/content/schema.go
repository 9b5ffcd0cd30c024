package content

import (
	"fmt"

	"github.com/campusconnect/studia/internal/llm"
)

// questionSchema is the shape of one multiple-choice question: exactly
// four options and a correct answer index in [0,3].
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question text",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    4,
			"maxItems":    4,
			"description": "Exactly 4 answer options",
		},
		"correctAnswerIndex": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     3,
			"description": "Index of the correct option (0-3)",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Short explanation of why the answer is correct",
		},
	},
	"required":             []any{"question", "options", "correctAnswerIndex", "explanation"},
	"additionalProperties": false,
}

// QuizChallengeSchema is the shape of a generated quiz challenge:
// a title and exactly five questions.
var QuizChallengeSchema = &llm.Schema{
	Name:        "quiz-challenge",
	Description: "A short multiple-choice quiz on a given topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A creative, relevant quiz title",
			},
			"questions": map[string]any{
				"type":        "array",
				"items":       questionSchema,
				"minItems":    5,
				"maxItems":    5,
				"description": "Exactly 5 questions",
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// challengeDetailsSchema builds the schema for challenge detail
// generation. The point band is baked into the schema as numeric
// bounds, so out-of-band values fail validation at the gateway.
func challengeDetailsSchema(difficulty Difficulty) *llm.Schema {
	min, max := difficulty.PointsRange()
	return &llm.Schema{
		Name:        fmt.Sprintf("challenge-details-%s", difficulty),
		Description: "Title, description and point value for a gamified challenge",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "A short, energetic challenge title (max 5 words)",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "A brief, motivating description (1-2 sentences)",
				},
				"points": map[string]any{
					"type":        "integer",
					"minimum":     min,
					"maximum":     max,
					"description": fmt.Sprintf("Points awarded, between %d and %d", min, max),
				},
			},
			"required":             []any{"title", "description", "points"},
			"additionalProperties": false,
		},
	}
}

// contentSchema builds the schema for teacher material generation.
// Quiz-type requests additionally demand a parsed question list so the
// result can be graded later; surveys and assignments are free text.
func contentSchema(contentType Type) *llm.Schema {
	props := map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Title of the generated material",
		},
		"content": map[string]any{
			"type":        "string",
			"description": "The material itself, ready for classroom use",
		},
	}
	required := []any{"title", "content"}

	if contentType == TypeQuiz {
		props["questions"] = map[string]any{
			"type":        "array",
			"items":       questionSchema,
			"minItems":    1,
			"description": "The quiz questions",
		}
		required = append(required, "questions")
	}

	return &llm.Schema{
		Name:        fmt.Sprintf("educational-content-%s", contentType),
		Description: "Educational material generated for a teacher",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// ModerationSchema is the shape of a submission review verdict.
var ModerationSchema = &llm.Schema{
	Name:        "submission-review",
	Description: "Approval verdict and feedback for a submitted artifact",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isApproved": map[string]any{
				"type":        "boolean",
				"description": "Whether the submission is a valid, relevant attempt",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback for the student",
			},
		},
		"required":             []any{"isApproved", "feedback"},
		"additionalProperties": false,
	},
}
