package prize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campusconnect/studia/internal/store"
)

const (
	prizesCollection = "prizes"
	claimsCollection = "prize-claims"
)

// ErrNotEligible indicates a claim attempt that fails the eligibility
// rule: not enough points or a scope mismatch.
var ErrNotEligible = errors.New("not eligible to claim prize")

// NotFoundError indicates a prize lookup miss.
type NotFoundError struct {
	PrizeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("prize not found: %s", e.PrizeID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// PointSource reads a learner's current total. Implemented by
// course.Roster.
type PointSource interface {
	Points(ctx context.Context, courseID, learnerID string) (int, error)
}

// Ledger manages the course's prize list and per-learner claims.
// Eligibility is points at or above the threshold, no prior claim, and
// a matching scope; claiming flips a durable flag and nothing else.
type Ledger struct {
	collections store.Collections
	points      PointSource
}

// NewLedger creates a ledger over the given store and point source.
func NewLedger(collections store.Collections, points PointSource) *Ledger {
	return &Ledger{collections: collections, points: points}
}

// Prizes returns the course's prizes in creation order.
func (l *Ledger) Prizes(ctx context.Context, courseID string) ([]Prize, error) {
	key := store.Key{CourseID: courseID, Name: prizesCollection}
	data, err := l.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading prizes for course %s: %w", courseID, err)
	}
	if data == nil {
		return nil, nil
	}
	var prizes []Prize
	if err := json.Unmarshal(data, &prizes); err != nil {
		return nil, fmt.Errorf("decoding prizes for course %s: %w", courseID, err)
	}
	return prizes, nil
}

// Publish validates and appends a prize to the course.
func (l *Ledger) Publish(ctx context.Context, courseID string, p Prize) error {
	if err := p.Validate(); err != nil {
		return err
	}
	prizes, err := l.Prizes(ctx, courseID)
	if err != nil {
		return err
	}
	for _, existing := range prizes {
		if existing.ID == p.ID {
			return fmt.Errorf("prize %s already published", p.ID)
		}
	}
	data, err := json.Marshal(append(prizes, p))
	if err != nil {
		return fmt.Errorf("encoding prizes: %w", err)
	}
	key := store.Key{CourseID: courseID, Name: prizesCollection}
	if err := l.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving prizes for course %s: %w", courseID, err)
	}
	return nil
}

func (l *Ledger) prize(ctx context.Context, courseID, prizeID string) (Prize, error) {
	prizes, err := l.Prizes(ctx, courseID)
	if err != nil {
		return Prize{}, err
	}
	for _, p := range prizes {
		if p.ID == prizeID {
			return p, nil
		}
	}
	return Prize{}, &NotFoundError{PrizeID: prizeID}
}

// Claimed returns the prize IDs the learner has claimed, in claim
// order.
func (l *Ledger) Claimed(ctx context.Context, courseID, learnerID string) ([]string, error) {
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: claimsCollection}
	data, err := l.collections.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading claims for learner %s: %w", learnerID, err)
	}
	if data == nil {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decoding claims for learner %s: %w", learnerID, err)
	}
	return ids, nil
}

func (l *Ledger) hasClaimed(ctx context.Context, courseID, learnerID, prizeID string) (bool, error) {
	ids, err := l.Claimed(ctx, courseID, learnerID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == prizeID {
			return true, nil
		}
	}
	return false, nil
}

func scopeMatches(p Prize, learnerID string) bool {
	return p.Target == TargetCourse || (p.Target == TargetStudent && p.StudentID == learnerID)
}

// CanClaim reports whether the learner may claim the prize now:
// enough points, not already claimed, and in scope.
func (l *Ledger) CanClaim(ctx context.Context, courseID, learnerID, prizeID string) (bool, error) {
	p, err := l.prize(ctx, courseID, prizeID)
	if err != nil {
		return false, err
	}
	if !scopeMatches(p, learnerID) {
		return false, nil
	}
	claimed, err := l.hasClaimed(ctx, courseID, learnerID, prizeID)
	if err != nil {
		return false, err
	}
	if claimed {
		return false, nil
	}
	points, err := l.points.Points(ctx, courseID, learnerID)
	if err != nil {
		return false, err
	}
	return points >= p.PointsRequired, nil
}

// Claim records the claim. The learner's points are untouched; totals
// only ever grow. Claiming an already-claimed prize is a silent no-op,
// while an ineligible claim fails with ErrNotEligible.
func (l *Ledger) Claim(ctx context.Context, courseID, learnerID, prizeID string) error {
	p, err := l.prize(ctx, courseID, prizeID)
	if err != nil {
		return err
	}
	claimed, err := l.hasClaimed(ctx, courseID, learnerID, prizeID)
	if err != nil {
		return err
	}
	if claimed {
		return nil
	}
	if !scopeMatches(p, learnerID) {
		return ErrNotEligible
	}
	points, err := l.points.Points(ctx, courseID, learnerID)
	if err != nil {
		return err
	}
	if points < p.PointsRequired {
		return ErrNotEligible
	}
	ids, err := l.Claimed(ctx, courseID, learnerID)
	if err != nil {
		return err
	}
	ids = append(ids, prizeID)
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding claims: %w", err)
	}
	key := store.Key{CourseID: courseID, LearnerID: learnerID, Name: claimsCollection}
	if err := l.collections.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving claims for learner %s: %w", learnerID, err)
	}
	return nil
}
