package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDim = 4

// newApplicant builds a valid applicant whose three facet vectors all point
// in the given direction.
func newApplicant(sourceID string, direction []float32) *core.Applicant {
	app := &core.Applicant{
		Id:          core.IDFromContent(sourceID),
		SourceID:    sourceID,
		FullName:    "Applicant " + sourceID,
		DateApplied: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, facet := range core.Facets() {
		v := make([]float32, len(direction))
		copy(v, direction)
		app.SetVector(facet, v)
	}
	return app
}

func TestNewStore(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	t.Run("valid", func(t *testing.T) {
		store, err := NewStore(backend, testDim)
		require.NoError(t, err)
		assert.Equal(t, testDim, store.Dim())
	})

	t.Run("nil backend", func(t *testing.T) {
		_, err := NewStore(nil, testDim)
		assert.Equal(t, ErrBackendRequired, err)
	})

	t.Run("invalid dimension", func(t *testing.T) {
		_, err := NewStore(backend, 0)
		assert.ErrorIs(t, err, vectorstore.ErrInvalidDimension)
	})
}

func TestStoreUpsertAndGet(t *testing.T) {
	store, backend, err := NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	app := newApplicant("a", []float32{1, 0, 0, 0})
	require.NoError(t, store.Upsert(ctx, app))

	got, err := store.Get(ctx, app.Id)
	require.NoError(t, err)
	assert.Equal(t, app.SourceID, got.SourceID)
	assert.Equal(t, app.FullName, got.FullName)

	t.Run("vectors normalized at write", func(t *testing.T) {
		long := newApplicant("b", []float32{3, 0, 0, 0})
		require.NoError(t, store.Upsert(ctx, long))
		got, err := store.Get(ctx, long.Id)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got.ResumeVector[0], 1e-6)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		app.FullName = "Renamed"
		require.NoError(t, store.Upsert(ctx, app))
		got, err := store.Get(ctx, app.Id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.FullName)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := store.Get(ctx, core.ID(12345))
		assert.ErrorIs(t, err, vectorstore.ErrNotFound)
	})

	t.Run("wrong dimension rejected", func(t *testing.T) {
		bad := newApplicant("c", []float32{1, 0})
		err := store.Upsert(ctx, bad)
		assert.ErrorIs(t, err, core.ErrVectorDimension)
	})
}

func TestStoreCount(t *testing.T) {
	store, backend, err := NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.Upsert(ctx,
		newApplicant("a", []float32{1, 0, 0, 0}),
		newApplicant("b", []float32{0, 1, 0, 0})))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStoreSearch(t *testing.T) {
	store, backend, err := NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	// Three applicants at decreasing similarity to the query direction.
	exact := newApplicant("exact", []float32{1, 0, 0, 0})
	close_ := newApplicant("close", []float32{1, 0.5, 0, 0})
	far := newApplicant("far", []float32{0, 0, 1, 0})
	require.NoError(t, store.Upsert(ctx, exact, close_, far))

	query := []float32{1, 0, 0, 0}

	t.Run("ordered by similarity descending", func(t *testing.T) {
		matches, err := store.Search(ctx, core.FacetResume, query, nil, 10, 0)
		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, "exact", matches[0].Applicant.SourceID)
		assert.Equal(t, "close", matches[1].Applicant.SourceID)
		assert.Equal(t, "far", matches[2].Applicant.SourceID)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
	})

	t.Run("score floor drops weak matches", func(t *testing.T) {
		matches, err := store.Search(ctx, core.FacetResume, query, nil, 10, 0.3)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		for _, m := range matches {
			assert.GreaterOrEqual(t, m.Score, float32(0.3))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		matches, err := store.Search(ctx, core.FacetResume, query, nil, 1, 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "exact", matches[0].Applicant.SourceID)
	})

	t.Run("predicate restricts candidates", func(t *testing.T) {
		sourceID := "far"
		pred := &vectorstore.Predicate{Must: []vectorstore.Condition{{
			Field:    vectorstore.FieldJobTitle,
			Contains: &sourceID,
		}}}
		matches, err := store.Search(ctx, core.FacetResume, query, pred, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, matches, "no applicant has that job title")
	})

	t.Run("invalid facet", func(t *testing.T) {
		_, err := store.Search(ctx, core.Facet(0), query, nil, 10, 0)
		assert.ErrorIs(t, err, core.ErrInvalidFacet)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := store.Search(ctx, core.FacetResume, query, nil, 0, 0)
		assert.ErrorIs(t, err, vectorstore.ErrInvalidQuery)
	})
}

func TestStoreSearchPerFacet(t *testing.T) {
	store, backend, err := NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	// Strong on skills, weak on resume.
	app := newApplicant("mixed", []float32{0, 1, 0, 0})
	app.ResumeVector = []float32{1, 0, 0, 0}
	require.NoError(t, store.Upsert(ctx, app))

	query := []float32{0, 1, 0, 0}

	skills, err := store.Search(ctx, core.FacetSkills, query, nil, 10, 0.5)
	require.NoError(t, err)
	require.Len(t, skills, 1)

	resume, err := store.Search(ctx, core.FacetResume, query, nil, 10, 0.5)
	require.NoError(t, err)
	assert.Empty(t, resume)
}
