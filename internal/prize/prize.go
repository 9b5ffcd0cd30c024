package prize

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Target scopes who may claim a prize.
type Target string

const (
	// TargetCourse makes the prize claimable by every learner in the
	// course.
	TargetCourse Target = "course"
	// TargetStudent restricts the prize to one learner.
	TargetStudent Target = "student"
)

// Valid reports whether t is a known target.
func (t Target) Valid() bool {
	return t == TargetCourse || t == TargetStudent
}

// Prize is a reward unlocked by accumulated points. Claiming never
// spends the points; the threshold is a gate, not a price.
type Prize struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"pointsRequired"`
	Target         Target    `json:"target"`
	StudentID      string    `json:"studentId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// New creates a course-wide prize with a fresh identity.
func New(title, description string, pointsRequired int) Prize {
	return Prize{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		PointsRequired: pointsRequired,
		Target:         TargetCourse,
		CreatedAt:      time.Now().UTC(),
	}
}

// NewForStudent creates a prize only the named learner can claim.
func NewForStudent(title, description string, pointsRequired int, studentID string) Prize {
	p := New(title, description, pointsRequired)
	p.Target = TargetStudent
	p.StudentID = studentID
	return p
}

// Validate checks structural soundness before publication.
func (p Prize) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("prize title must not be empty")
	}
	if p.PointsRequired <= 0 {
		return fmt.Errorf("prize threshold must be positive, got %d", p.PointsRequired)
	}
	if !p.Target.Valid() {
		return fmt.Errorf("unknown prize target %q", p.Target)
	}
	if p.Target == TargetStudent && p.StudentID == "" {
		return fmt.Errorf("student-targeted prize %q names no student", p.Title)
	}
	return nil
}
