package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/studia/internal/store"
)

type recordingEvents struct {
	store.NopEvents
	awards []store.PointEventData
}

func (r *recordingEvents) AppendPointAward(_ context.Context, data store.PointEventData) error {
	r.awards = append(r.awards, data)
	return nil
}

func TestRosterEnrollAndPoints(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})

	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1", Name: "Ana"}))
	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s2", Name: "Ben"}))

	pts, err := roster.Points(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, pts)

	learners, err := roster.Learners(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, learners, 2)
}

func TestRosterEnrollIdempotent(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})

	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1", Name: "Ana"}))
	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1", Name: "Ana"}))

	learners, err := roster.Learners(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, learners, 1)
}

func TestRosterAddPoints(t *testing.T) {
	ctx := context.Background()
	events := &recordingEvents{}
	roster := NewRoster(store.NewMemoryCollections(), events)

	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1", Name: "Ana"}))

	total, err := roster.AddPoints(ctx, "c1", "s1", 120, "Fractions quiz")
	require.NoError(t, err)
	assert.Equal(t, 120, total)

	total, err = roster.AddPoints(ctx, "c1", "s1", 80, "Photo challenge")
	require.NoError(t, err)
	assert.Equal(t, 200, total)

	require.Len(t, events.awards, 2)
	assert.Equal(t, 120, events.awards[0].Points)
	assert.Equal(t, 120, events.awards[0].TotalAfter)
	assert.Equal(t, 200, events.awards[1].TotalAfter)
	assert.Equal(t, "Photo challenge", events.awards[1].Reason)
}

func TestRosterAddPointsRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})
	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1"}))

	_, err := roster.AddPoints(ctx, "c1", "s1", 0, "nothing")
	assert.Error(t, err)
	_, err = roster.AddPoints(ctx, "c1", "s1", -50, "refund")
	assert.Error(t, err)

	pts, err := roster.Points(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, pts)
}

func TestRosterAddPointsUnknownLearner(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})

	_, err := roster.AddPoints(ctx, "c1", "ghost", 10, "quiz")
	assert.True(t, IsNotFound(err))
}

func TestRosterLeaderboard(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})

	for _, l := range []Learner{{ID: "s1", Name: "Ana"}, {ID: "s2", Name: "Ben"}, {ID: "s3", Name: "Cam"}} {
		require.NoError(t, roster.Enroll(ctx, "c1", l))
	}
	_, err := roster.AddPoints(ctx, "c1", "s2", 300, "hard quiz")
	require.NoError(t, err)
	_, err = roster.AddPoints(ctx, "c1", "s3", 100, "easy quiz")
	require.NoError(t, err)

	board, err := roster.Leaderboard(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "s2", board[0].ID)
	assert.Equal(t, "s3", board[1].ID)
	assert.Equal(t, "s1", board[2].ID)
}

func TestRosterLeaderboardTiesKeepEnrollmentOrder(t *testing.T) {
	ctx := context.Background()
	roster := NewRoster(store.NewMemoryCollections(), store.NopEvents{})

	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s1"}))
	require.NoError(t, roster.Enroll(ctx, "c1", Learner{ID: "s2"}))

	board, err := roster.Leaderboard(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "s1", board[0].ID)
	assert.Equal(t, "s2", board[1].ID)
}
