package quiz

import "fmt"

// Question is a single multiple-choice question. Options are ordered and
// CorrectAnswerIndex is a zero-based index into them.
type Question struct {
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// Quiz is an ordered list of questions under a title. A quiz is immutable
// once generated for an attempt.
type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// MinOptions is the smallest option list a question may carry.
const MinOptions = 2

// Validate checks the structural invariants: at least one question, every
// question with MinOptions+ options and an in-range correct answer index.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %q has no questions", q.Title)
	}
	for i, question := range q.Questions {
		if len(question.Options) < MinOptions {
			return fmt.Errorf("question %d has %d options, need at least %d", i, len(question.Options), MinOptions)
		}
		if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
			return fmt.Errorf("question %d: correct answer index %d out of range [0,%d)", i, question.CorrectAnswerIndex, len(question.Options))
		}
	}
	return nil
}
