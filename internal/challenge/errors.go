package challenge

import (
	"errors"
	"fmt"
)

// ErrAlreadyCompleted indicates the learner has already completed the
// challenge; no second award is possible.
var ErrAlreadyCompleted = errors.New("challenge already completed")

// ErrPendingReview indicates the learner already has a submission
// awaiting teacher review for this challenge.
var ErrPendingReview = errors.New("submission pending review")

// NotFoundError indicates a challenge or submission lookup miss.
type NotFoundError struct {
	ChallengeID  string
	SubmissionID string
}

func (e *NotFoundError) Error() string {
	if e.SubmissionID != "" {
		return fmt.Sprintf("submission not found: %s", e.SubmissionID)
	}
	return fmt.Sprintf("challenge not found: %s", e.ChallengeID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// KindError indicates an operation applied to the wrong challenge
// kind, e.g. submitting a photo to a quiz challenge.
type KindError struct {
	ChallengeID string
	Got         Kind
	Want        Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("challenge %s is a %s challenge, not %s", e.ChallengeID, e.Got, e.Want)
}
