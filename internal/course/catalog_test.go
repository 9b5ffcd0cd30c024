package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/studia/internal/store"
)

func TestCatalogCreateAndGet(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(store.NewMemoryCollections())

	crs := New("Algebra I", "Linear equations and graphs", "t1", "alg-1")
	require.NoError(t, catalog.Create(ctx, crs))

	got, err := catalog.Get(ctx, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra I", got.Title)
	assert.Equal(t, "ALG-1", got.Code)
}

func TestCatalogDuplicateCode(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(store.NewMemoryCollections())

	require.NoError(t, catalog.Create(ctx, New("Algebra I", "", "t1", "ALG-1")))
	err := catalog.Create(ctx, New("Algebra II", "", "t1", "alg-1"))
	assert.Error(t, err)
}

func TestCatalogFindByCode(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(store.NewMemoryCollections())

	crs := New("Biology", "", "t2", "BIO22")
	require.NoError(t, catalog.Create(ctx, crs))

	got, err := catalog.FindByCode(ctx, " bio22 ")
	require.NoError(t, err)
	assert.Equal(t, crs.ID, got.ID)

	_, err = catalog.FindByCode(ctx, "NOPE")
	assert.True(t, IsNotFound(err))
}

func TestCatalogDelete(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalog(store.NewMemoryCollections())

	a := New("A", "", "t1", "A1")
	b := New("B", "", "t1", "B1")
	require.NoError(t, catalog.Create(ctx, a))
	require.NoError(t, catalog.Create(ctx, b))

	require.NoError(t, catalog.Delete(ctx, a.ID))
	_, err := catalog.Get(ctx, a.ID)
	assert.True(t, IsNotFound(err))

	courses, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, b.ID, courses[0].ID)

	assert.True(t, IsNotFound(catalog.Delete(ctx, a.ID)))
}
