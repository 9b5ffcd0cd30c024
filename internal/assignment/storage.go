package assignment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusconnect/studia/internal/store"
)

const (
	assignmentsCollection = "assignments"
	completionsCollection = "assignment-completions"
)

// Storage wraps the collection store with typed accessors for the
// course's assignment list and each learner's completion list.
type Storage struct {
	collections store.Collections
}

// NewStorage creates assignment storage over the given store.
func NewStorage(collections store.Collections) *Storage {
	return &Storage{collections: collections}
}

// Assignments returns the course's assignments in creation order.
func (s *Storage) Assignments(ctx context.Context, courseID string) ([]Assignment, error) {
	key := store.Key{CourseID: courseID, Name: assignmentsCollection}
	data, err := s.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading assignments for course %s: %w", courseID, err)
	}
	if data == nil {
		return nil, nil
	}
	var assignments []Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("decoding assignments for course %s: %w", courseID, err)
	}
	return assignments, nil
}

// SaveAssignments replaces the course's assignment list.
func (s *Storage) SaveAssignments(ctx context.Context, courseID string, assignments []Assignment) error {
	data, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("encoding assignments: %w", err)
	}
	key := store.Key{CourseID: courseID, Name: assignmentsCollection}
	if err := s.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving assignments for course %s: %w", courseID, err)
	}
	return nil
}

// Assignment returns one assignment by ID.
func (s *Storage) Assignment(ctx context.Context, courseID, assignmentID string) (Assignment, error) {
	assignments, err := s.Assignments(ctx, courseID)
	if err != nil {
		return Assignment{}, err
	}
	for _, a := range assignments {
		if a.ID == assignmentID {
			return a, nil
		}
	}
	return Assignment{}, &NotFoundError{AssignmentID: assignmentID}
}

// Completions returns the learner's completion records.
func (s *Storage) Completions(ctx context.Context, courseID, learnerID string) ([]Completion, error) {
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: completionsCollection}
	data, err := s.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading completions for learner %s: %w", learnerID, err)
	}
	if data == nil {
		return nil, nil
	}
	var completions []Completion
	if err := json.Unmarshal(data, &completions); err != nil {
		return nil, fmt.Errorf("decoding completions for learner %s: %w", learnerID, err)
	}
	return completions, nil
}

// SaveCompletions replaces the learner's completion list.
func (s *Storage) SaveCompletions(ctx context.Context, courseID, learnerID string, completions []Completion) error {
	data, err := json.Marshal(completions)
	if err != nil {
		return fmt.Errorf("encoding completions: %w", err)
	}
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: completionsCollection}
	if err := s.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving completions for learner %s: %w", learnerID, err)
	}
	return nil
}

// Completion returns the learner's completion of one assignment, if
// any.
func (s *Storage) Completion(ctx context.Context, courseID, learnerID, assignmentID string) (Completion, bool, error) {
	completions, err := s.Completions(ctx, courseID, learnerID)
	if err != nil {
		return Completion{}, false, err
	}
	for _, c := range completions {
		if c.AssignmentID == assignmentID {
			return c, true, nil
		}
	}
	return Completion{}, false, nil
}
