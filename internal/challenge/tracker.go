package challenge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/studia/internal/quiz"
)

// PointAwarder adds points to a learner's total. Implemented by
// course.Roster.
type PointAwarder interface {
	AddPoints(ctx context.Context, courseID, learnerID string, points int, reason string) (int, error)
}

// Tracker runs the challenge lifecycle: quiz attempts, artifact
// submissions, and teacher review. Each challenge awards its points at
// most once per learner, and points are never taken back.
type Tracker struct {
	storage *Storage
	points  PointAwarder
	now     func() time.Time
}

// NewTracker creates a tracker over the given storage and awarder.
func NewTracker(storage *Storage, points PointAwarder) *Tracker {
	return &Tracker{
		storage: storage,
		points:  points,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Publish validates and appends a challenge to the course.
func (t *Tracker) Publish(ctx context.Context, courseID string, c Challenge) error {
	if err := c.Validate(); err != nil {
		return err
	}
	challenges, err := t.storage.Challenges(ctx, courseID)
	if err != nil {
		return err
	}
	for _, existing := range challenges {
		if existing.ID == c.ID {
			return fmt.Errorf("challenge %s already published", c.ID)
		}
	}
	return t.storage.SaveChallenges(ctx, courseID, append(challenges, c))
}

// Challenges returns the course's challenges.
func (t *Tracker) Challenges(ctx context.Context, courseID string) ([]Challenge, error) {
	return t.storage.Challenges(ctx, courseID)
}

// Challenge returns one challenge by ID.
func (t *Tracker) Challenge(ctx context.Context, courseID, challengeID string) (Challenge, error) {
	return t.storage.Challenge(ctx, courseID, challengeID)
}

// Delete removes a challenge from the course. Recorded completions and
// points already awarded for it are left as they are.
func (t *Tracker) Delete(ctx context.Context, courseID, challengeID string) error {
	challenges, err := t.storage.Challenges(ctx, courseID)
	if err != nil {
		return err
	}
	kept := challenges[:0]
	found := false
	for _, c := range challenges {
		if c.ID == challengeID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return &NotFoundError{ChallengeID: challengeID}
	}
	return t.storage.SaveChallenges(ctx, courseID, kept)
}

// AttemptResult is the outcome of a quiz attempt.
type AttemptResult struct {
	Result        quiz.Result `json:"result"`
	Passed        bool        `json:"passed"`
	PointsAwarded int         `json:"pointsAwarded"`
}

// CompleteQuiz grades a quiz challenge attempt. A passing score marks
// the challenge completed and awards its points once; repeating a
// completed challenge regrades but awards nothing. Failed attempts can
// be retried without limit.
func (t *Tracker) CompleteQuiz(ctx context.Context, courseID, learnerID, challengeID string, answers map[int]int) (AttemptResult, error) {
	c, err := t.storage.Challenge(ctx, courseID, challengeID)
	if err != nil {
		return AttemptResult{}, err
	}
	if c.Kind != KindQuiz {
		return AttemptResult{}, &KindError{ChallengeID: challengeID, Got: c.Kind, Want: KindQuiz}
	}
	result, err := quiz.Grade(*c.Quiz, answers)
	if err != nil {
		return AttemptResult{}, err
	}
	attempt := AttemptResult{Result: result, Passed: result.Passed()}
	if !attempt.Passed {
		return attempt, nil
	}
	done, err := t.storage.Completed(ctx, courseID, learnerID)
	if err != nil {
		return AttemptResult{}, err
	}
	if done[challengeID] {
		return attempt, nil
	}
	if err := t.storage.MarkCompleted(ctx, courseID, learnerID, challengeID); err != nil {
		return AttemptResult{}, err
	}
	if _, err := t.points.AddPoints(ctx, courseID, learnerID, c.Points, c.Title); err != nil {
		return AttemptResult{}, fmt.Errorf("awarding points for challenge %s: %w", challengeID, err)
	}
	attempt.PointsAwarded = c.Points
	return attempt, nil
}

// SubmitArtifact files evidence for a submission challenge as a
// pending submission. Feedback, when present, is the advisory AI
// moderation note shown to the reviewing teacher. Learners with the
// challenge already completed, or a submission already pending, cannot
// file another.
func (t *Tracker) SubmitArtifact(ctx context.Context, courseID, learnerID, challengeID, artifactDataURI, feedback string) (Submission, error) {
	if artifactDataURI == "" {
		return Submission{}, fmt.Errorf("submission artifact must not be empty")
	}
	c, err := t.storage.Challenge(ctx, courseID, challengeID)
	if err != nil {
		return Submission{}, err
	}
	if c.Kind != KindSubmission {
		return Submission{}, &KindError{ChallengeID: challengeID, Got: c.Kind, Want: KindSubmission}
	}
	done, err := t.storage.Completed(ctx, courseID, learnerID)
	if err != nil {
		return Submission{}, err
	}
	if done[challengeID] {
		return Submission{}, ErrAlreadyCompleted
	}
	subs, err := t.storage.Submissions(ctx, courseID)
	if err != nil {
		return Submission{}, err
	}
	for _, s := range subs {
		if s.ChallengeID == challengeID && s.LearnerID == learnerID && s.Status == StatusPending {
			return Submission{}, ErrPendingReview
		}
	}
	sub := Submission{
		ID:              uuid.NewString(),
		ChallengeID:     challengeID,
		LearnerID:       learnerID,
		ArtifactDataURI: artifactDataURI,
		Status:          StatusPending,
		Feedback:        feedback,
		SubmittedAt:     t.now(),
	}
	if err := t.storage.SaveSubmissions(ctx, courseID, append(subs, sub)); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// PendingSubmissions returns the course's review queue, oldest first.
func (t *Tracker) PendingSubmissions(ctx context.Context, courseID string) ([]Submission, error) {
	subs, err := t.storage.Submissions(ctx, courseID)
	if err != nil {
		return nil, err
	}
	var pending []Submission
	for _, s := range subs {
		if s.Status == StatusPending {
			pending = append(pending, s)
		}
	}
	return pending, nil
}

// Review resolves a pending submission. Approval marks the challenge
// completed and awards its points; rejection records the feedback and
// lets the learner submit again. Reviewing a non-pending submission is
// an error.
func (t *Tracker) Review(ctx context.Context, courseID, submissionID string, approve bool, feedback string) (Submission, error) {
	subs, err := t.storage.Submissions(ctx, courseID)
	if err != nil {
		return Submission{}, err
	}
	idx := -1
	for i, s := range subs {
		if s.ID == submissionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Submission{}, &NotFoundError{SubmissionID: submissionID}
	}
	sub := subs[idx]
	if sub.Status != StatusPending {
		return Submission{}, fmt.Errorf("submission %s already reviewed as %s", submissionID, sub.Status)
	}
	reviewedAt := t.now()
	sub.ReviewedAt = &reviewedAt
	if feedback != "" {
		sub.Feedback = feedback
	}
	if approve {
		sub.Status = StatusApproved
	} else {
		sub.Status = StatusRejected
	}
	subs[idx] = sub
	if err := t.storage.SaveSubmissions(ctx, courseID, subs); err != nil {
		return Submission{}, err
	}
	if !approve {
		return sub, nil
	}
	done, err := t.storage.Completed(ctx, courseID, sub.LearnerID)
	if err != nil {
		return Submission{}, err
	}
	if done[sub.ChallengeID] {
		return sub, nil
	}
	c, err := t.storage.Challenge(ctx, courseID, sub.ChallengeID)
	if err != nil {
		return Submission{}, err
	}
	if err := t.storage.MarkCompleted(ctx, courseID, sub.LearnerID, sub.ChallengeID); err != nil {
		return Submission{}, err
	}
	if _, err := t.points.AddPoints(ctx, courseID, sub.LearnerID, c.Points, c.Title); err != nil {
		return Submission{}, fmt.Errorf("awarding points for challenge %s: %w", sub.ChallengeID, err)
	}
	return sub, nil
}
