package course

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a lookup for a course or learner that does
// not exist.
type NotFoundError struct {
	Kind string // "course" or "learner"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
