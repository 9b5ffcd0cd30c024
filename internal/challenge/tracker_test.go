package challenge

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

type fakeAwarder struct {
	awards []int
	totals map[string]int
}

func newFakeAwarder() *fakeAwarder {
	return &fakeAwarder{totals: make(map[string]int)}
}

func (f *fakeAwarder) AddPoints(_ context.Context, courseID, learnerID string, points int, _ string) (int, error) {
	f.awards = append(f.awards, points)
	key := courseID + "/" + learnerID
	f.totals[key] += points
	return f.totals[key], nil
}

func fiveQuestionQuiz() *quiz.Quiz {
	q := &quiz.Quiz{Title: "Fractions"}
	for i := 0; i < 5; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			Text:               fmt.Sprintf("Question %d", i+1),
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "because",
		})
	}
	return q
}

func correctAnswers(q *quiz.Quiz) map[int]int {
	answers := make(map[int]int)
	for i, question := range q.Questions {
		answers[i] = question.CorrectAnswerIndex
	}
	return answers
}

func newTestTracker() (*Tracker, *fakeAwarder) {
	awarder := newFakeAwarder()
	return NewTracker(NewStorage(store.NewMemoryCollections()), awarder), awarder
}

func publishQuizChallenge(t *testing.T, tracker *Tracker) Challenge {
	t.Helper()
	c := New(KindQuiz, "Fractions quiz", "Pass the quiz", "fractions", 120)
	c.Quiz = fiveQuestionQuiz()
	require.NoError(t, tracker.Publish(context.Background(), "c1", c))
	return c
}

func publishSubmissionChallenge(t *testing.T, tracker *Tracker) Challenge {
	t.Helper()
	c := New(KindSubmission, "Garden photo", "Photograph your plant", "biology", 80)
	require.NoError(t, tracker.Publish(context.Background(), "c1", c))
	return c
}

func TestPublishRejectsInvalid(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()

	c := New(KindQuiz, "No quiz attached", "", "algebra", 100)
	assert.Error(t, tracker.Publish(ctx, "c1", c))

	c = New(Kind("essay"), "Bad kind", "", "", 100)
	assert.Error(t, tracker.Publish(ctx, "c1", c))

	c = New(KindSubmission, "Free points", "", "", 0)
	assert.Error(t, tracker.Publish(ctx, "c1", c))
}

func TestDeleteChallenge(t *testing.T) {
	tracker, awarder := newTestTracker()
	ctx := context.Background()
	c := publishQuizChallenge(t, tracker)
	keep := publishSubmissionChallenge(t, tracker)

	attempt, err := tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, correctAnswers(c.Quiz))
	require.NoError(t, err)
	require.True(t, attempt.Passed)

	require.NoError(t, tracker.Delete(ctx, "c1", c.ID))

	challenges, err := tracker.Challenges(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, keep.ID, challenges[0].ID)

	// Deleting never claws back points already awarded.
	assert.Equal(t, []int{120}, awarder.awards)

	var notFound *NotFoundError
	require.ErrorAs(t, tracker.Delete(ctx, "c1", c.ID), &notFound)
	assert.Equal(t, c.ID, notFound.ChallengeID)
}

func TestCompleteQuizAwardsOnce(t *testing.T) {
	tracker, awarder := newTestTracker()
	ctx := context.Background()
	c := publishQuizChallenge(t, tracker)

	attempt, err := tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, correctAnswers(c.Quiz))
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 120, attempt.PointsAwarded)

	// Second pass regrades but never double-awards.
	attempt, err = tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, correctAnswers(c.Quiz))
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 0, attempt.PointsAwarded)

	assert.Equal(t, []int{120}, awarder.awards)
}

func TestCompleteQuizFailThenRetry(t *testing.T) {
	tracker, awarder := newTestTracker()
	ctx := context.Background()
	c := publishQuizChallenge(t, tracker)

	wrong := correctAnswers(c.Quiz)
	wrong[0] = (wrong[0] + 1) % 4
	wrong[1] = (wrong[1] + 1) % 4

	attempt, err := tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, wrong)
	require.NoError(t, err)
	assert.False(t, attempt.Passed)
	assert.Equal(t, 3, attempt.Result.Score)
	assert.Empty(t, awarder.awards)

	attempt, err = tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, correctAnswers(c.Quiz))
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
	assert.Equal(t, []int{120}, awarder.awards)
}

func TestCompleteQuizFourOfFivePasses(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()
	c := publishQuizChallenge(t, tracker)

	answers := correctAnswers(c.Quiz)
	answers[4] = (answers[4] + 1) % 4

	attempt, err := tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, answers)
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 4, attempt.Result.Score)
}

func TestCompleteQuizWrongKind(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()
	c := publishSubmissionChallenge(t, tracker)

	_, err := tracker.CompleteQuiz(ctx, "c1", "s1", c.ID, map[int]int{})
	var kindErr *KindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, KindQuiz, kindErr.Want)
}

func TestSubmitArtifact(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()
	c := publishSubmissionChallenge(t, tracker)

	sub, err := tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "Looks on topic")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, sub.Status)
	assert.Equal(t, "Looks on topic", sub.Feedback)

	// One pending submission per learner and challenge.
	_, err = tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	assert.ErrorIs(t, err, ErrPendingReview)

	// A different learner may still submit.
	_, err = tracker.SubmitArtifact(ctx, "c1", "s2", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)
}

func TestSubmitArtifactEmpty(t *testing.T) {
	tracker, _ := newTestTracker()
	c := publishSubmissionChallenge(t, tracker)

	_, err := tracker.SubmitArtifact(context.Background(), "c1", "s1", c.ID, "", "")
	assert.Error(t, err)
}

func TestReviewApproveAwards(t *testing.T) {
	tracker, awarder := newTestTracker()
	ctx := context.Background()
	c := publishSubmissionChallenge(t, tracker)

	sub, err := tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)

	reviewed, err := tracker.Review(ctx, "c1", sub.ID, true, "Nice work")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, reviewed.Status)
	assert.Equal(t, "Nice work", reviewed.Feedback)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.Equal(t, []int{80}, awarder.awards)

	// Completed: no further submissions.
	_, err = tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// Review is final.
	_, err = tracker.Review(ctx, "c1", sub.ID, false, "")
	assert.Error(t, err)
}

func TestReviewRejectAllowsResubmit(t *testing.T) {
	tracker, awarder := newTestTracker()
	ctx := context.Background()
	c := publishSubmissionChallenge(t, tracker)

	sub, err := tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)

	reviewed, err := tracker.Review(ctx, "c1", sub.ID, false, "Photo is blurry")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, reviewed.Status)
	assert.Empty(t, awarder.awards)

	sub2, err := tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)

	_, err = tracker.Review(ctx, "c1", sub2.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, []int{80}, awarder.awards)
}

func TestPendingSubmissionsQueue(t *testing.T) {
	tracker, _ := newTestTracker()
	ctx := context.Background()
	c := publishSubmissionChallenge(t, tracker)

	first, err := tracker.SubmitArtifact(ctx, "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)
	second, err := tracker.SubmitArtifact(ctx, "c1", "s2", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)

	_, err = tracker.Review(ctx, "c1", first.ID, true, "")
	require.NoError(t, err)

	pending, err := tracker.PendingSubmissions(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestTrackerTimeIsUTC(t *testing.T) {
	tracker, _ := newTestTracker()
	c := publishSubmissionChallenge(t, tracker)

	sub, err := tracker.SubmitArtifact(context.Background(), "c1", "s1", c.ID, "data:image/png;base64,aGk=", "")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, sub.SubmittedAt.Location())
}
