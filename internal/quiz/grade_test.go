package quiz

import (
	"errors"
	"reflect"
	"testing"
)

func fiveQuestionQuiz() Quiz {
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{
			Text:               "question",
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "because",
		}
	}
	return Quiz{Title: "Water Cycle", Questions: qs}
}

func answerKey(q Quiz) map[int]int {
	answers := make(map[int]int, len(q.Questions))
	for i, question := range q.Questions {
		answers[i] = question.CorrectAnswerIndex
	}
	return answers
}

func TestGradePerfectScore(t *testing.T) {
	q := fiveQuestionQuiz()
	res, err := Grade(q, answerKey(q))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 5 || res.Total != 5 {
		t.Errorf("got %d/%d, want 5/5", res.Score, res.Total)
	}
	if !res.Passed() {
		t.Error("perfect score should pass")
	}
}

func TestGradeFourOfFiveHitsThreshold(t *testing.T) {
	q := fiveQuestionQuiz()
	answers := answerKey(q)
	answers[4] = (q.Questions[4].CorrectAnswerIndex + 1) % 4

	res, err := Grade(q, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 4 || res.Total != 5 {
		t.Errorf("got %d/%d, want 4/5", res.Score, res.Total)
	}
	// 4/5 = 0.8 is exactly the threshold.
	if !res.Passed() {
		t.Error("ratio 0.8 should pass")
	}
	if res.Explanations[4].IsCorrect {
		t.Error("question 4 was answered wrong")
	}
}

func TestGradeBelowThreshold(t *testing.T) {
	q := fiveQuestionQuiz()
	answers := answerKey(q)
	answers[3] = (q.Questions[3].CorrectAnswerIndex + 1) % 4
	answers[4] = (q.Questions[4].CorrectAnswerIndex + 1) % 4

	res, err := Grade(q, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Passed() {
		t.Errorf("3/5 should not pass, got score %d", res.Score)
	}
}

func TestGradeExplanationsFollowQuestionOrder(t *testing.T) {
	q := Quiz{
		Title: "Order",
		Questions: []Question{
			{Text: "first", Options: []string{"a", "b"}, CorrectAnswerIndex: 0, Explanation: "e1"},
			{Text: "second", Options: []string{"a", "b"}, CorrectAnswerIndex: 1, Explanation: "e2"},
			{Text: "third", Options: []string{"a", "b"}, CorrectAnswerIndex: 0, Explanation: "e3"},
		},
	}
	answers := map[int]int{0: 0, 1: 0, 2: 0}

	res, err := Grade(q, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	want := []Explanation{
		{Question: "first", Explanation: "e1", IsCorrect: true},
		{Question: "second", Explanation: "e2", IsCorrect: false},
		{Question: "third", Explanation: "e3", IsCorrect: true},
	}
	if !reflect.DeepEqual(res.Explanations, want) {
		t.Errorf("explanations = %+v, want %+v", res.Explanations, want)
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	q := fiveQuestionQuiz()
	answers := answerKey(q)
	answers[2] = (q.Questions[2].CorrectAnswerIndex + 1) % 4

	first, err := Grade(q, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	for range 10 {
		again, err := Grade(q, answers)
		if err != nil {
			t.Fatalf("Grade: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("Grade is not deterministic")
		}
	}
}

func TestGradeRejectsUnanswered(t *testing.T) {
	q := fiveQuestionQuiz()
	answers := answerKey(q)
	delete(answers, 1)
	delete(answers, 3)

	_, err := Grade(q, answers)
	var unanswered *UnansweredError
	if !errors.As(err, &unanswered) {
		t.Fatalf("want UnansweredError, got %v", err)
	}
	if !reflect.DeepEqual(unanswered.Indexes, []int{1, 3}) {
		t.Errorf("Indexes = %v, want [1 3]", unanswered.Indexes)
	}
}

func TestGradeRejectsOutOfRangeAnswer(t *testing.T) {
	q := fiveQuestionQuiz()
	answers := answerKey(q)
	answers[0] = 7

	if _, err := Grade(q, answers); err == nil {
		t.Fatal("want error for out-of-range option index")
	}
}

func TestValidateRejectsBadAnswerIndex(t *testing.T) {
	q := Quiz{
		Title: "Broken",
		Questions: []Question{
			{Text: "q", Options: []string{"a", "b"}, CorrectAnswerIndex: 2},
		},
	}
	if err := q.Validate(); err == nil {
		t.Fatal("want error for correct answer index out of range")
	}
}
