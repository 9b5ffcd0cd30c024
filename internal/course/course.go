package course

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Course is a teacher-owned course page. Challenges, assignments and
// prizes are scoped by its ID.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Teacher     string    `json:"teacher"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Learner is a student enrolled in a course. Points only ever grow:
// completions add, redemption never spends.
type Learner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// New creates a course with a fresh identity. The join code is
// normalized to upper case.
func New(title, description, teacher, code string) Course {
	return Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Teacher:     teacher,
		Code:        strings.ToUpper(strings.TrimSpace(code)),
		CreatedAt:   time.Now().UTC(),
	}
}
