package challenge

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/studia/internal/quiz"
)

// Kind discriminates how a challenge is completed.
type Kind string

const (
	// KindQuiz is completed by passing an auto-graded quiz.
	KindQuiz Kind = "quiz"
	// KindSubmission is completed by uploading evidence that a
	// teacher approves.
	KindSubmission Kind = "submission"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindQuiz || k == KindSubmission
}

// Challenge is one course activity worth points. Quiz challenges carry
// their quiz; submission challenges are graded by teacher review.
type Challenge struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Topic       string     `json:"topic"`
	Points      int        `json:"points"`
	Quiz        *quiz.Quiz `json:"quiz,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// New creates a challenge with a fresh identity.
func New(kind Kind, title, description, topic string, points int) Challenge {
	return Challenge{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		Topic:       topic,
		Points:      points,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks structural soundness before a challenge is published.
func (c Challenge) Validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("unknown challenge kind %q", c.Kind)
	}
	if c.Title == "" {
		return fmt.Errorf("challenge title must not be empty")
	}
	if c.Points <= 0 {
		return fmt.Errorf("challenge points must be positive, got %d", c.Points)
	}
	switch c.Kind {
	case KindQuiz:
		if c.Quiz == nil {
			return fmt.Errorf("quiz challenge %q has no quiz", c.Title)
		}
		if err := c.Quiz.Validate(); err != nil {
			return fmt.Errorf("quiz challenge %q: %w", c.Title, err)
		}
	case KindSubmission:
		if c.Quiz != nil {
			return fmt.Errorf("submission challenge %q must not carry a quiz", c.Title)
		}
	}
	return nil
}

// SubmissionStatus is the review state of an uploaded artifact.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Submission is one learner's uploaded evidence for a submission
// challenge. AI moderation feedback is advisory; the teacher's review
// decides the status.
type Submission struct {
	ID              string           `json:"id"`
	ChallengeID     string           `json:"challengeId"`
	LearnerID       string           `json:"learnerId"`
	ArtifactDataURI string           `json:"artifactDataUri"`
	Status          SubmissionStatus `json:"status"`
	Feedback        string           `json:"feedback,omitempty"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty"`
}
