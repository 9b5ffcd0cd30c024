package content

import "github.com/campusconnect/studia/internal/quiz"

// Difficulty bands how many points a generated challenge is worth.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// PointsRange returns the inclusive point band for the difficulty:
// easy 50-100, medium 101-200, hard 201-300.
func (d Difficulty) PointsRange() (min, max int) {
	switch d {
	case DifficultyMedium:
		return 101, 200
	case DifficultyHard:
		return 201, 300
	default:
		return 50, 100
	}
}

// Type is the kind of coursework material to generate.
type Type string

const (
	TypeQuiz       Type = "quiz"
	TypeSurvey     Type = "survey"
	TypeAssignment Type = "assignment"
)

// Valid reports whether t is a known content type.
func (t Type) Valid() bool {
	switch t {
	case TypeQuiz, TypeSurvey, TypeAssignment:
		return true
	}
	return false
}

// ContentRequest is the teacher-facing generation request.
type ContentRequest struct {
	CourseName             string     `json:"courseName"`
	Topic                  string     `json:"topic"`
	ContentType            Type       `json:"contentType"`
	Difficulty             Difficulty `json:"difficulty,omitempty"`
	Length                 string     `json:"length,omitempty"`
	AdditionalInstructions string     `json:"additionalInstructions,omitempty"`
}

// GeneratedContent is the material produced for a ContentRequest.
// Questions is populated only when ContentType is quiz.
type GeneratedContent struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	ContentType Type            `json:"contentType"`
	Questions   []quiz.Question `json:"questions,omitempty"`
}

// ChallengeDetails is a generated gamified-challenge blurb with its
// difficulty-banded point value.
type ChallengeDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// ModerationInput describes one submitted artifact to review.
type ModerationInput struct {
	PhotoDataURI string `json:"photoDataUri"`
	Topic        string `json:"topic"`
	Description  string `json:"description"`
}

// ModerationVerdict is the advisory review of a submission. It never
// completes a challenge on its own; a teacher decision does that.
type ModerationVerdict struct {
	IsApproved bool   `json:"isApproved"`
	Feedback   string `json:"feedback"`
}
