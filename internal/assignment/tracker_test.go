package assignment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/studia/internal/quiz"
	"github.com/campusconnect/studia/internal/store"
)

var (
	testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	dueSoon = testNow.Add(24 * time.Hour)
)

func newTestTracker() *Tracker {
	tracker := NewTracker(NewStorage(store.NewMemoryCollections()))
	tracker.now = func() time.Time { return testNow }
	return tracker
}

func quizAssignment(due time.Time) Assignment {
	a := New(KindQuiz, "Unit quiz", "Chapter 3 check", due)
	for i := 0; i < 5; i++ {
		a.Questions = append(a.Questions, quiz.Question{
			Text:               fmt.Sprintf("Question %d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: 1,
			Explanation:        "because",
		})
	}
	return a
}

func allAnswers(n, choice int) map[int]int {
	answers := make(map[int]int, n)
	for i := 0; i < n; i++ {
		answers[i] = choice
	}
	return answers
}

func TestSubmitQuizRecordsResult(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	result, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Total)

	status, err := tracker.Status(ctx, "c1", "s1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, status)
}

func TestSubmitQuizNoThresholdSingleAttempt(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	// A failing score still completes the assignment.
	result, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)

	_, err = tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitPastDue(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(testNow.Add(-time.Hour))
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	_, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	assert.ErrorIs(t, err, ErrPastDue)

	status, err := tracker.Status(ctx, "c1", "s1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusMissed, status)
}

func TestSubmitText(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := New(KindSurvey, "Course feedback", "Tell us how it went", dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	assert.Error(t, tracker.SubmitText(ctx, "c1", "s1", a.ID, "   "))

	require.NoError(t, tracker.SubmitText(ctx, "c1", "s1", a.ID, "The pacing felt right."))
	assert.ErrorIs(t, tracker.SubmitText(ctx, "c1", "s1", a.ID, "again"), ErrAlreadySubmitted)
}

func TestSubmitTextToQuizRejected(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	assert.Error(t, tracker.SubmitText(ctx, "c1", "s1", a.ID, "an essay"))
}

func TestReviewGatedByDueDate(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	submitted, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	require.NoError(t, err)

	_, err = tracker.Review(ctx, "c1", "s1", a.ID)
	assert.ErrorIs(t, err, ErrReviewNotOpen)

	// Past the due date the stored result comes back unchanged.
	tracker.now = func() time.Time { return dueSoon.Add(time.Minute) }
	c, err := tracker.Review(ctx, "c1", "s1", a.ID)
	require.NoError(t, err)
	require.NotNil(t, c.Result)
	assert.Equal(t, submitted, *c.Result)
}

func TestReviewWithoutCompletion(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(testNow.Add(-time.Hour))
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	_, err := tracker.Review(ctx, "c1", "s1", a.ID)
	assert.True(t, IsNotFound(err))
}

func TestUpdateKeepsCompletions(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	result, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	require.NoError(t, err)

	edited := a
	edited.Title = "Unit quiz (revised)"
	edited.Questions[0].CorrectAnswerIndex = 2
	require.NoError(t, tracker.Update(ctx, "c1", edited))

	tracker.now = func() time.Time { return dueSoon.Add(time.Minute) }
	c, err := tracker.Review(ctx, "c1", "s1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, result, *c.Result)
}

func TestDelete(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	a := quizAssignment(dueSoon)
	require.NoError(t, tracker.Publish(ctx, "c1", a))

	require.NoError(t, tracker.Delete(ctx, "c1", a.ID))
	_, err := tracker.SubmitQuiz(ctx, "c1", "s1", a.ID, allAnswers(5, 1))
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(tracker.Delete(ctx, "c1", a.ID)))
}

func TestParseQuestions(t *testing.T) {
	good := `[{"question":"2+2?","options":["3","4"],"correctAnswerIndex":1,"explanation":"sum"}]`
	questions := ParseQuestions(good)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].CorrectAnswerIndex)

	assert.Empty(t, ParseQuestions("{not json"))
	assert.Empty(t, ParseQuestions(""))
}
