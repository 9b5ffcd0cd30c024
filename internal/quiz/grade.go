package quiz

import "fmt"

// PassThreshold is the score ratio required to complete a gamified
// challenge. Fixed policy, not configurable per challenge.
const PassThreshold = 0.8

// Result is the outcome of grading one submission.
type Result struct {
	Score        int           `json:"score"`
	Total        int           `json:"total"`
	Explanations []Explanation `json:"explanations"`
}

// Explanation is the per-question review record, emitted in question order.
type Explanation struct {
	Question    string `json:"question"`
	Explanation string `json:"explanation"`
	IsCorrect   bool   `json:"isCorrect"`
}

// Passed reports whether the result clears PassThreshold.
func (r Result) Passed() bool {
	if r.Total == 0 {
		return false
	}
	return float64(r.Score)/float64(r.Total) >= PassThreshold
}

// UnansweredError reports which questions are missing an answer.
// Every question requires a selection before grading runs.
type UnansweredError struct {
	Indexes []int
}

func (e *UnansweredError) Error() string {
	return fmt.Sprintf("%d unanswered question(s): %v", len(e.Indexes), e.Indexes)
}

// Grade scores a submission against the quiz answer key. answers maps
// question index to the chosen option index. Grade is a pure function:
// identical inputs always produce an identical result, and explanations
// follow question order.
func Grade(q Quiz, answers map[int]int) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	var missing []int
	for i := range q.Questions {
		if _, ok := answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return Result{}, &UnansweredError{Indexes: missing}
	}

	res := Result{
		Total:        len(q.Questions),
		Explanations: make([]Explanation, 0, len(q.Questions)),
	}
	for i, question := range q.Questions {
		chosen := answers[i]
		if chosen < 0 || chosen >= len(question.Options) {
			return Result{}, fmt.Errorf("question %d: chosen option %d out of range", i, chosen)
		}
		correct := chosen == question.CorrectAnswerIndex
		if correct {
			res.Score++
		}
		res.Explanations = append(res.Explanations, Explanation{
			Question:    question.Text,
			Explanation: question.Explanation,
			IsCorrect:   correct,
		})
	}
	return res, nil
}
