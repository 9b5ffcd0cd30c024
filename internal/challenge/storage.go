package challenge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusconnect/studia/internal/store"
)

const (
	challengesCollection  = "challenges"
	completionsCollection = "challenge-completions"
	submissionsCollection = "challenge-submissions"
)

// Storage wraps the collection store with typed accessors for the
// three challenge collections: the course's challenge list, each
// learner's completed-ID set, and the course's submission list.
type Storage struct {
	collections store.Collections
}

// NewStorage creates challenge storage over the given store.
func NewStorage(collections store.Collections) *Storage {
	return &Storage{collections: collections}
}

// Challenges returns the course's challenges in creation order.
func (s *Storage) Challenges(ctx context.Context, courseID string) ([]Challenge, error) {
	key := store.Key{CourseID: courseID, Name: challengesCollection}
	data, err := s.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading challenges for course %s: %w", courseID, err)
	}
	if data == nil {
		return nil, nil
	}
	var challenges []Challenge
	if err := json.Unmarshal(data, &challenges); err != nil {
		return nil, fmt.Errorf("decoding challenges for course %s: %w", courseID, err)
	}
	return challenges, nil
}

// SaveChallenges replaces the course's challenge list.
func (s *Storage) SaveChallenges(ctx context.Context, courseID string, challenges []Challenge) error {
	data, err := json.Marshal(challenges)
	if err != nil {
		return fmt.Errorf("encoding challenges: %w", err)
	}
	key := store.Key{CourseID: courseID, Name: challengesCollection}
	if err := s.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving challenges for course %s: %w", courseID, err)
	}
	return nil
}

// Challenge returns one challenge by ID.
func (s *Storage) Challenge(ctx context.Context, courseID, challengeID string) (Challenge, error) {
	challenges, err := s.Challenges(ctx, courseID)
	if err != nil {
		return Challenge{}, err
	}
	for _, c := range challenges {
		if c.ID == challengeID {
			return c, nil
		}
	}
	return Challenge{}, &NotFoundError{ChallengeID: challengeID}
}

func (s *Storage) completedIDs(ctx context.Context, courseID, learnerID string) ([]string, error) {
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: completionsCollection}
	data, err := s.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading completions for learner %s: %w", learnerID, err)
	}
	if data == nil {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decoding completions for learner %s: %w", learnerID, err)
	}
	return ids, nil
}

// Completed returns the set of challenge IDs the learner has completed.
func (s *Storage) Completed(ctx context.Context, courseID, learnerID string) (map[string]bool, error) {
	ids, err := s.completedIDs(ctx, courseID, learnerID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	return done, nil
}

// MarkCompleted adds the challenge ID to the learner's completed set.
// Completion order is preserved in the snapshot.
func (s *Storage) MarkCompleted(ctx context.Context, courseID, learnerID, challengeID string) error {
	ids, err := s.completedIDs(ctx, courseID, learnerID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == challengeID {
			return nil
		}
	}
	ids = append(ids, challengeID)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding completions: %w", err)
	}
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: completionsCollection}
	if err := s.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving completions for learner %s: %w", learnerID, err)
	}
	return nil
}

// Submissions returns the course's submissions, oldest first.
func (s *Storage) Submissions(ctx context.Context, courseID string) ([]Submission, error) {
	key := store.Key{CourseID: courseID, Name: submissionsCollection}
	data, err := s.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading submissions for course %s: %w", courseID, err)
	}
	if data == nil {
		return nil, nil
	}
	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("decoding submissions for course %s: %w", courseID, err)
	}
	return subs, nil
}

// SaveSubmissions replaces the course's submission list.
func (s *Storage) SaveSubmissions(ctx context.Context, courseID string, subs []Submission) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("encoding submissions: %w", err)
	}
	key := store.Key{CourseID: courseID, Name: submissionsCollection}
	if err := s.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving submissions for course %s: %w", courseID, err)
	}
	return nil
}
