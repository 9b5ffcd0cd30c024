package assignment

import (
	"errors"
	"fmt"
)

// ErrPastDue indicates the due date has elapsed with no completion;
// the assignment can no longer be submitted.
var ErrPastDue = errors.New("assignment past due")

// ErrAlreadySubmitted indicates a completion record already exists.
// Assignments are single-attempt.
var ErrAlreadySubmitted = errors.New("assignment already submitted")

// ErrReviewNotOpen indicates a quiz review requested before the due
// date. Stored results stay hidden until then.
var ErrReviewNotOpen = errors.New("review not available before due date")

// NotFoundError indicates an assignment or completion lookup miss.
type NotFoundError struct {
	AssignmentID string
	LearnerID    string
}

func (e *NotFoundError) Error() string {
	if e.LearnerID != "" {
		return fmt.Sprintf("no completion of assignment %s by learner %s", e.AssignmentID, e.LearnerID)
	}
	return fmt.Sprintf("assignment not found: %s", e.AssignmentID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
