package content

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/campusconnect/studia/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Water Cycle Wizards",
		"questions": [
			{"question": "q1", "options": ["a","b","c","d"], "correctAnswerIndex": 0, "explanation": "e1"},
			{"question": "q2", "options": ["a","b","c","d"], "correctAnswerIndex": 1, "explanation": "e2"},
			{"question": "q3", "options": ["a","b","c","d"], "correctAnswerIndex": 2, "explanation": "e3"},
			{"question": "q4", "options": ["a","b","c","d"], "correctAnswerIndex": 3, "explanation": "e4"},
			{"question": "q5", "options": ["a","b","c","d"], "correctAnswerIndex": 0, "explanation": "e5"}
		]
	}`)
}

func testDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))
}

func TestGenerateQuizChallenge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := NewService(mock, DefaultConfig())

	q, err := svc.GenerateQuizChallenge(context.Background(), "the water cycle")
	if err != nil {
		t.Fatalf("GenerateQuizChallenge: %v", err)
	}
	if q.Title != "Water Cycle Wizards" {
		t.Errorf("Title = %q", q.Title)
	}
	if len(q.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(q.Questions))
	}
	if len(q.Questions[0].Options) != 4 {
		t.Errorf("got %d options, want 4", len(q.Questions[0].Options))
	}

	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "quiz-challenge" {
		t.Error("request did not carry the quiz-challenge schema")
	}
}

func TestGenerateQuizChallengeRejectsBadAnswerIndex(t *testing.T) {
	bad := json.RawMessage(`{
		"title": "Broken",
		"questions": [
			{"question": "q1", "options": ["a","b","c","d"], "correctAnswerIndex": 9, "explanation": "e"}
		]
	}`)
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: bad}), DefaultConfig())

	if _, err := svc.GenerateQuizChallenge(context.Background(), "topic"); err == nil {
		t.Fatal("want error for out-of-range correct answer index")
	}
}

func TestGenerateQuizChallengeRejectsWrongShape(t *testing.T) {
	short := json.RawMessage(`{
		"title": "Too Short",
		"questions": [
			{"question": "q1", "options": ["a","b","c","d"], "correctAnswerIndex": 0, "explanation": "e"}
		]
	}`)
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: short}), DefaultConfig())
	if _, err := svc.GenerateQuizChallenge(context.Background(), "topic"); err == nil {
		t.Fatal("want error for quiz without 5 questions")
	}

	threeOptions := json.RawMessage(`{
		"title": "Thin Options",
		"questions": [
			{"question": "q1", "options": ["a","b","c"], "correctAnswerIndex": 0, "explanation": "e"},
			{"question": "q2", "options": ["a","b","c"], "correctAnswerIndex": 1, "explanation": "e"},
			{"question": "q3", "options": ["a","b","c"], "correctAnswerIndex": 2, "explanation": "e"},
			{"question": "q4", "options": ["a","b","c"], "correctAnswerIndex": 0, "explanation": "e"},
			{"question": "q5", "options": ["a","b","c"], "correctAnswerIndex": 1, "explanation": "e"}
		]
	}`)
	svc = NewService(llm.NewMockProvider(llm.MockResponse{Content: threeOptions}), DefaultConfig())
	if _, err := svc.GenerateQuizChallenge(context.Background(), "topic"); err == nil {
		t.Fatal("want error for questions without 4 options")
	}
}

func TestGenerateQuizChallengeSurfacesProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateQuizChallenge(context.Background(), "topic")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerateChallengeDetails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"Cell Explorer","description":"Dive into the cell!","points":150}`),
	})
	svc := NewService(mock, DefaultConfig())

	details, err := svc.GenerateChallengeDetails(context.Background(), "cells", DifficultyMedium)
	if err != nil {
		t.Fatalf("GenerateChallengeDetails: %v", err)
	}
	if details.Points != 150 {
		t.Errorf("Points = %d, want 150", details.Points)
	}
	if mock.Calls[0].Schema.Name != "challenge-details-medium" {
		t.Errorf("schema = %q, want the medium band", mock.Calls[0].Schema.Name)
	}
}

func TestGenerateChallengeDetailsUnknownDifficulty(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.GenerateChallengeDetails(context.Background(), "cells", "extreme"); err == nil {
		t.Fatal("want error for unknown difficulty")
	}
}

func TestPointsRangeBands(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		min, max   int
	}{
		{DifficultyEasy, 50, 100},
		{DifficultyMedium, 101, 200},
		{DifficultyHard, 201, 300},
	}
	for _, tc := range cases {
		min, max := tc.difficulty.PointsRange()
		if min != tc.min || max != tc.max {
			t.Errorf("%s: got [%d,%d], want [%d,%d]", tc.difficulty, min, max, tc.min, tc.max)
		}
	}
}

func TestGenerateContentQuizParsesQuestions(t *testing.T) {
	payload := json.RawMessage(`{
		"title": "Fractions Check",
		"content": "A 5-question check on fractions.",
		"questions": [
			{"question": "1/2 + 1/4?", "options": ["3/4","1/2","2/4","1"], "correctAnswerIndex": 0, "explanation": "common denominators"}
		]
	}`)
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: payload}), DefaultConfig())

	got, err := svc.GenerateContent(context.Background(), ContentRequest{
		CourseName:  "Math 5",
		Topic:       "fractions",
		ContentType: TypeQuiz,
		Difficulty:  DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got.ContentType != TypeQuiz {
		t.Errorf("ContentType = %q", got.ContentType)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(got.Questions))
	}
}

func TestGenerateContentSurveyIsFreeText(t *testing.T) {
	payload := json.RawMessage(`{"title":"Course Feedback","content":"1. What did you enjoy most?..."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: payload})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.GenerateContent(context.Background(), ContentRequest{
		CourseName:  "Math 5",
		Topic:       "feedback",
		ContentType: TypeSurvey,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if len(got.Questions) != 0 {
		t.Errorf("survey should have no structured questions")
	}
	if mock.Calls[0].Schema.Name != "educational-content-survey" {
		t.Errorf("schema = %q", mock.Calls[0].Schema.Name)
	}
}

func TestGenerateContentRejectsUnknownType(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.GenerateContent(context.Background(), ContentRequest{ContentType: "worksheet"}); err == nil {
		t.Fatal("want error for unknown content type")
	}
}

func TestModerateSubmission(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isApproved":true,"feedback":"Great concept map! Two suggestions: ..."}`),
	})
	svc := NewService(mock, DefaultConfig())

	verdict, err := svc.ModerateSubmission(context.Background(), ModerationInput{
		PhotoDataURI: testDataURI(),
		Topic:        "the water cycle",
		Description:  "Draw a diagram of the water cycle",
	})
	if err != nil {
		t.Fatalf("ModerateSubmission: %v", err)
	}
	if !verdict.IsApproved {
		t.Error("verdict should be approved")
	}
	if mock.Calls[0].Messages[0].ImageDataURI == "" {
		t.Error("request should carry the image data URI")
	}
}

func TestModerateSubmissionRejectsBadArtifact(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	_, err := svc.ModerateSubmission(context.Background(), ModerationInput{
		PhotoDataURI: "https://example.com/img.png",
		Topic:        "t",
		Description:  "d",
	})
	if err == nil {
		t.Fatal("want error for non-data-URI artifact")
	}
}
