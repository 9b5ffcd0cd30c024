package prize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/studia/internal/store"
)

type fakePoints map[string]int

func (f fakePoints) Points(_ context.Context, _, learnerID string) (int, error) {
	return f[learnerID], nil
}

func newTestLedger(points fakePoints) *Ledger {
	return NewLedger(store.NewMemoryCollections(), points)
}

func TestCanClaimThreshold(t *testing.T) {
	ctx := context.Background()
	points := fakePoints{"s1": 950}
	ledger := newTestLedger(points)

	p := New("Homework pass", "Skip one homework", 1000)
	require.NoError(t, ledger.Publish(ctx, "c1", p))

	ok, err := ledger.CanClaim(ctx, "c1", "s1", p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	points["s1"] = 1050
	ok, err = ledger.CanClaim(ctx, "c1", "s1", p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaimDoesNotSpendPoints(t *testing.T) {
	ctx := context.Background()
	points := fakePoints{"s1": 1050}
	ledger := newTestLedger(points)

	p := New("Homework pass", "", 1000)
	require.NoError(t, ledger.Publish(ctx, "c1", p))

	require.NoError(t, ledger.Claim(ctx, "c1", "s1", p.ID))
	assert.Equal(t, 1050, points["s1"])

	claimed, err := ledger.Claimed(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, claimed)

	// Claimed prizes are no longer claimable, but re-claiming is a
	// silent no-op.
	ok, err := ledger.CanClaim(ctx, "c1", "s1", p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, ledger.Claim(ctx, "c1", "s1", p.ID))

	claimed, err = ledger.Claimed(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Len(t, claimed, 1)
}

func TestClaimIneligible(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(fakePoints{"s1": 10})

	p := New("Front row seat", "", 500)
	require.NoError(t, ledger.Publish(ctx, "c1", p))

	assert.ErrorIs(t, ledger.Claim(ctx, "c1", "s1", p.ID), ErrNotEligible)

	claimed, err := ledger.Claimed(ctx, "c1", "s1")
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestStudentTargetScope(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(fakePoints{"s1": 1000, "s2": 1000})

	p := NewForStudent("Custom reward", "", 100, "s1")
	require.NoError(t, ledger.Publish(ctx, "c1", p))

	ok, err := ledger.CanClaim(ctx, "c1", "s1", p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.CanClaim(ctx, "c1", "s2", p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, ledger.Claim(ctx, "c1", "s2", p.ID), ErrNotEligible)
}

func TestClaimUnknownPrize(t *testing.T) {
	ledger := newTestLedger(fakePoints{})
	err := ledger.Claim(context.Background(), "c1", "s1", "nope")
	assert.True(t, IsNotFound(err))
}

func TestPublishValidation(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(fakePoints{})

	assert.Error(t, ledger.Publish(ctx, "c1", New("", "", 100)))
	assert.Error(t, ledger.Publish(ctx, "c1", New("Free", "", 0)))
	assert.Error(t, ledger.Publish(ctx, "c1", NewForStudent("Whose?", "", 100, "")))
}
