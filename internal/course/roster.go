package course

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/campusconnect/studia/internal/store"
)

const rosterCollection = "roster"

// Roster manages the learners of a course and their point totals.
// Totals never go down: awards add and redemption leaves them alone,
// so the roster doubles as the leaderboard source.
type Roster struct {
	collections store.Collections
	events      store.EventRepo
}

// NewRoster creates a roster over the given store.
func NewRoster(collections store.Collections, events store.EventRepo) *Roster {
	return &Roster{collections: collections, events: events}
}

func (r *Roster) key(courseID string) store.Key {
	return store.Key{CourseID: courseID, Name: rosterCollection}
}

func (r *Roster) load(ctx context.Context, courseID string) ([]Learner, error) {
	data, err := r.collections.Load(ctx, r.key(courseID))
	if err != nil {
		return nil, fmt.Errorf("loading roster for course %s: %w", courseID, err)
	}
	if data == nil {
		return nil, nil
	}
	var learners []Learner
	if err := json.Unmarshal(data, &learners); err != nil {
		return nil, fmt.Errorf("decoding roster for course %s: %w", courseID, err)
	}
	return learners, nil
}

func (r *Roster) save(ctx context.Context, courseID string, learners []Learner) error {
	data, err := json.Marshal(learners)
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	if err := r.collections.Save(ctx, r.key(courseID), data); err != nil {
		return fmt.Errorf("saving roster for course %s: %w", courseID, err)
	}
	return nil
}

// Learners returns the enrolled learners in enrollment order.
func (r *Roster) Learners(ctx context.Context, courseID string) ([]Learner, error) {
	return r.load(ctx, courseID)
}

// Enroll adds a learner with zero points. Enrolling an already
// enrolled learner is a no-op.
func (r *Roster) Enroll(ctx context.Context, courseID string, learner Learner) error {
	learners, err := r.load(ctx, courseID)
	if err != nil {
		return err
	}
	for _, l := range learners {
		if l.ID == learner.ID {
			return nil
		}
	}
	learner.Points = 0
	return r.save(ctx, courseID, append(learners, learner))
}

// Points returns the learner's current total.
func (r *Roster) Points(ctx context.Context, courseID, learnerID string) (int, error) {
	learners, err := r.load(ctx, courseID)
	if err != nil {
		return 0, err
	}
	for _, l := range learners {
		if l.ID == learnerID {
			return l.Points, nil
		}
	}
	return 0, &NotFoundError{Kind: "learner", ID: learnerID}
}

// AddPoints increases the learner's total and records the award in the
// event trail. Negative or zero amounts are rejected: totals only grow.
func (r *Roster) AddPoints(ctx context.Context, courseID, learnerID string, points int, reason string) (int, error) {
	if points <= 0 {
		return 0, fmt.Errorf("point award must be positive, got %d", points)
	}
	learners, err := r.load(ctx, courseID)
	if err != nil {
		return 0, err
	}
	total := -1
	for i := range learners {
		if learners[i].ID == learnerID {
			learners[i].Points += points
			total = learners[i].Points
			break
		}
	}
	if total < 0 {
		return 0, &NotFoundError{Kind: "learner", ID: learnerID}
	}
	if err := r.save(ctx, courseID, learners); err != nil {
		return 0, err
	}
	if err := r.events.AppendPointAward(ctx, store.PointEventData{
		CourseID:   courseID,
		LearnerID:  learnerID,
		Points:     points,
		TotalAfter: total,
		Reason:     reason,
	}); err != nil {
		return 0, fmt.Errorf("recording point award: %w", err)
	}
	return total, nil
}

// Leaderboard returns the learners ordered by points descending.
// Ties keep enrollment order.
func (r *Roster) Leaderboard(ctx context.Context, courseID string) ([]Learner, error) {
	learners, err := r.load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(learners, func(i, j int) bool {
		return learners[i].Points > learners[j].Points
	})
	return learners, nil
}
