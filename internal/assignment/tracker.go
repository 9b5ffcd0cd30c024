package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/studia/internal/quiz"
)

// Tracker runs the assignment lifecycle: publication, single-attempt
// submission with due-date enforcement, and due-date-gated review.
// Assignments carry no points; completion is recorded, not rewarded.
type Tracker struct {
	storage *Storage
	now     func() time.Time
}

// NewTracker creates a tracker over the given storage.
func NewTracker(storage *Storage) *Tracker {
	return &Tracker{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Publish validates and appends an assignment to the course.
func (t *Tracker) Publish(ctx context.Context, courseID string, a Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	assignments, err := t.storage.Assignments(ctx, courseID)
	if err != nil {
		return err
	}
	for _, existing := range assignments {
		if existing.ID == a.ID {
			return fmt.Errorf("assignment %s already published", a.ID)
		}
	}
	return t.storage.SaveAssignments(ctx, courseID, append(assignments, a))
}

// Assignments returns the course's assignments.
func (t *Tracker) Assignments(ctx context.Context, courseID string) ([]Assignment, error) {
	return t.storage.Assignments(ctx, courseID)
}

// Update replaces a published assignment. Editing never touches
// learner completion records; they keep the results computed against
// the version that was live at submission time.
func (t *Tracker) Update(ctx context.Context, courseID string, a Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	assignments, err := t.storage.Assignments(ctx, courseID)
	if err != nil {
		return err
	}
	for i, existing := range assignments {
		if existing.ID == a.ID {
			assignments[i] = a
			return t.storage.SaveAssignments(ctx, courseID, assignments)
		}
	}
	return &NotFoundError{AssignmentID: a.ID}
}

// Delete removes an assignment from the course.
func (t *Tracker) Delete(ctx context.Context, courseID, assignmentID string) error {
	assignments, err := t.storage.Assignments(ctx, courseID)
	if err != nil {
		return err
	}
	kept := assignments[:0]
	found := false
	for _, a := range assignments {
		if a.ID == assignmentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return &NotFoundError{AssignmentID: assignmentID}
	}
	return t.storage.SaveAssignments(ctx, courseID, kept)
}

func (t *Tracker) gate(ctx context.Context, courseID, learnerID string, a Assignment) error {
	_, done, err := t.storage.Completion(ctx, courseID, learnerID, a.ID)
	if err != nil {
		return err
	}
	if done {
		return ErrAlreadySubmitted
	}
	if t.now().After(a.DueDate) {
		return ErrPastDue
	}
	return nil
}

func (t *Tracker) record(ctx context.Context, courseID, learnerID string, c Completion) error {
	completions, err := t.storage.Completions(ctx, courseID, learnerID)
	if err != nil {
		return err
	}
	return t.storage.SaveCompletions(ctx, courseID, learnerID, append(completions, c))
}

// SubmitQuiz grades and records a quiz assignment submission. Unlike
// challenges there is no pass threshold and no retry: any graded
// submission completes the assignment, and the result is stored for
// review after the due date.
func (t *Tracker) SubmitQuiz(ctx context.Context, courseID, learnerID, assignmentID string, answers map[int]int) (quiz.Result, error) {
	a, err := t.storage.Assignment(ctx, courseID, assignmentID)
	if err != nil {
		return quiz.Result{}, err
	}
	if a.Kind != KindQuiz {
		return quiz.Result{}, fmt.Errorf("assignment %s is a %s assignment, not quiz", assignmentID, a.Kind)
	}
	if err := t.gate(ctx, courseID, learnerID, a); err != nil {
		return quiz.Result{}, err
	}
	result, err := quiz.Grade(quiz.Quiz{Title: a.Title, Questions: a.Questions}, answers)
	if err != nil {
		return quiz.Result{}, err
	}
	c := Completion{
		AssignmentID: assignmentID,
		CompletedAt:  t.now(),
		Result:       &result,
	}
	if err := t.record(ctx, courseID, learnerID, c); err != nil {
		return quiz.Result{}, err
	}
	return result, nil
}

// SubmitText records a free-text submission for a survey or
// open-ended assignment. Empty submissions are rejected.
func (t *Tracker) SubmitText(ctx context.Context, courseID, learnerID, assignmentID, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("submission must not be empty")
	}
	a, err := t.storage.Assignment(ctx, courseID, assignmentID)
	if err != nil {
		return err
	}
	if a.Kind == KindQuiz {
		return fmt.Errorf("assignment %s is a quiz; submit answers, not text", assignmentID)
	}
	if err := t.gate(ctx, courseID, learnerID, a); err != nil {
		return err
	}
	return t.record(ctx, courseID, learnerID, Completion{
		AssignmentID: assignmentID,
		CompletedAt:  t.now(),
		Answer:       answer,
	})
}

// Review returns the learner's stored completion. Before the due date
// the record stays hidden; afterwards it is returned exactly as
// computed at submission time.
func (t *Tracker) Review(ctx context.Context, courseID, learnerID, assignmentID string) (Completion, error) {
	a, err := t.storage.Assignment(ctx, courseID, assignmentID)
	if err != nil {
		return Completion{}, err
	}
	if t.now().Before(a.DueDate) {
		return Completion{}, ErrReviewNotOpen
	}
	c, done, err := t.storage.Completion(ctx, courseID, learnerID, assignmentID)
	if err != nil {
		return Completion{}, err
	}
	if !done {
		return Completion{}, &NotFoundError{AssignmentID: assignmentID, LearnerID: learnerID}
	}
	return c, nil
}

// Status reports the learner's lifecycle state for one assignment.
func (t *Tracker) Status(ctx context.Context, courseID, learnerID, assignmentID string) (Status, error) {
	a, err := t.storage.Assignment(ctx, courseID, assignmentID)
	if err != nil {
		return "", err
	}
	_, done, err := t.storage.Completion(ctx, courseID, learnerID, assignmentID)
	if err != nil {
		return "", err
	}
	switch {
	case done:
		return StatusSubmitted, nil
	case t.now().After(a.DueDate):
		return StatusMissed, nil
	default:
		return StatusOpen, nil
	}
}
