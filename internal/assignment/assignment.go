package assignment

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/studia/internal/quiz"
)

// Kind is the assignment's coursework type.
type Kind string

const (
	KindQuiz       Kind = "quiz"
	KindSurvey     Kind = "survey"
	KindAssignment Kind = "assignment"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindQuiz || k == KindSurvey || k == KindAssignment
}

// Assignment is a required coursework item with a due date. Quiz
// assignments carry questions; surveys and open-ended assignments
// collect free text.
type Assignment struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Questions []quiz.Question `json:"questions,omitempty"`
	DueDate   time.Time       `json:"dueDate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// New creates an assignment with a fresh identity.
func New(kind Kind, title, content string, dueDate time.Time) Assignment {
	return Assignment{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Content:   content,
		DueDate:   dueDate,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks structural soundness before publication.
func (a Assignment) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("unknown assignment kind %q", a.Kind)
	}
	if a.Title == "" {
		return fmt.Errorf("assignment title must not be empty")
	}
	if a.DueDate.IsZero() {
		return fmt.Errorf("assignment %q has no due date", a.Title)
	}
	if a.Kind == KindQuiz {
		q := quiz.Quiz{Title: a.Title, Questions: a.Questions}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quiz assignment %q: %w", a.Title, err)
		}
	}
	return nil
}

// ParseQuestions decodes a questions payload from manual editing.
// Malformed input degrades to an empty list rather than failing the
// edit; the problem is logged so the teacher can spot it.
func ParseQuestions(raw string) []quiz.Question {
	if raw == "" {
		return nil
	}
	var questions []quiz.Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		log.Printf("assignment: discarding malformed questions payload: %v", err)
		return nil
	}
	return questions
}

// Status is the learner-visible lifecycle state.
type Status string

const (
	// StatusOpen means not yet submitted and the due date has not
	// passed.
	StatusOpen Status = "open"
	// StatusSubmitted means a completion record exists.
	StatusSubmitted Status = "submitted"
	// StatusMissed means the due date passed with no submission.
	// Terminal: no submission is accepted anymore.
	StatusMissed Status = "missed"
)

// Completion records one learner's submission. Quiz completions store
// the grading result computed at submission time; it is returned
// unchanged at review.
type Completion struct {
	AssignmentID string       `json:"assignmentId"`
	CompletedAt  time.Time    `json:"completedAt"`
	Answer       string       `json:"answer,omitempty"`
	Result       *quiz.Result `json:"result,omitempty"`
}
