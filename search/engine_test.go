package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/talentsearch/ai/mock"
	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
	"github.com/poiesic/talentsearch/vectorstore/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDim = 4

var queryDirection = []float32{1, 0, 0, 0}

// newTestProvider returns a mock provider whose embedder always produces
// the canonical query direction at the test dimensionality.
func newTestProvider() *mock.MockProvider {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		v := make([]float32, testDim)
		copy(v, queryDirection)
		return v, nil
	}
	return mock.NewMockProviderWith(embedder, mock.NewMockQueryBackend()).(*mock.MockProvider)
}

// storeApplicant builds an applicant whose per-facet vectors are given
// explicitly, defaulting any nil facet to the orthogonal direction.
func storeApplicant(sourceID string, resume, skills, tasks []float32) *core.Applicant {
	orthogonal := []float32{0, 0, 0, 1}
	pick := func(v []float32) []float32 {
		if v == nil {
			v = orthogonal
		}
		out := make([]float32, testDim)
		copy(out, v)
		return out
	}
	return &core.Applicant{
		Id:           core.IDFromContent(sourceID),
		SourceID:     sourceID,
		FullName:     "Applicant " + sourceID,
		SkillsText:   "Python, Django, PostgreSQL",
		DateApplied:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		ResumeVector: pick(resume),
		SkillsVector: pick(skills),
		TasksVector:  pick(tasks),
	}
}

func newTestEngine(t *testing.T, applicants ...*core.Applicant) (*Engine, func()) {
	t.Helper()
	store, backend, err := badger.NewMemoryStore(testDim)
	require.NoError(t, err)

	if len(applicants) > 0 {
		require.NoError(t, store.Upsert(context.Background(), applicants...))
	}

	engine, err := NewEngine(store, newTestProvider())
	require.NoError(t, err)
	return engine, func() { backend.Close() }
}

func parsedQuery(intent string) core.ParsedQuery {
	return core.ParsedQuery{SearchIntent: intent, Backend: "mock"}
}

func TestNewEngine(t *testing.T) {
	store, backend, err := badger.NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	t.Run("nil store", func(t *testing.T) {
		_, err := NewEngine(nil, newTestProvider())
		assert.Equal(t, ErrStoreRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewEngine(store, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ScoreFloor = 2
		_, err := NewEngine(store, newTestProvider(), WithConfig(cfg))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSearch_InvalidLimit(t *testing.T) {
	engine, cleanup := newTestEngine(t)
	defer cleanup()

	_, err := engine.Search(context.Background(), parsedQuery("query"), 0, false)
	assert.Equal(t, ErrInvalidLimit, err)
}

func TestSearch_EmptyIntentShortCircuits(t *testing.T) {
	store, backend, err := badger.NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	provider := newTestProvider()
	engine, err := NewEngine(store, provider)
	require.NoError(t, err)

	for _, intent := range []string{"", "   ", "\n\t "} {
		results, err := engine.Search(context.Background(), parsedQuery(intent), 10, false)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Zero(t, provider.GetMockEmbedder().CallCount(),
		"blank intent must not reach the embedder")
}

func TestSearch_EmbedFailureIsFatal(t *testing.T) {
	store, backend, err := badger.NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("service down")
	}
	provider := mock.NewMockProviderWith(embedder, mock.NewMockQueryBackend())

	engine, err := NewEngine(store, provider)
	require.NoError(t, err)

	_, err = engine.Search(context.Background(), parsedQuery("query"), 10, false)
	assert.ErrorIs(t, err, ErrEmbedFailed)
}

func TestSearch_WeightedFusion(t *testing.T) {
	// allFacets matches the query in every facet, resumeOnly in one.
	allFacets := storeApplicant("all", queryDirection, queryDirection, queryDirection)
	resumeOnly := storeApplicant("resume-only", queryDirection, nil, nil)

	engine, cleanup := newTestEngine(t, allFacets, resumeOnly)
	defer cleanup()

	results, err := engine.Search(context.Background(), parsedQuery("query"), 10, false)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "all", results[0].Applicant.SourceID)
	assert.InDelta(t, 1.0, float64(results[0].SemanticScore), 1e-4,
		"0.5 + 0.3 + 0.2 for perfect scores in every facet")

	// A single-facet match keeps only that facet's weighted share, it is
	// not renormalized upward.
	assert.Equal(t, "resume-only", results[1].Applicant.SourceID)
	assert.InDelta(t, 0.5, float64(results[1].SemanticScore), 1e-4)
	assert.Len(t, results[1].FacetScores, 1)

	// Final equals semantic when reranking is off.
	for _, r := range results {
		assert.Equal(t, r.SemanticScore, r.FinalScore)
	}
}

func TestSearch_OrderAndLimit(t *testing.T) {
	applicants := []*core.Applicant{
		storeApplicant("strong", queryDirection, queryDirection, queryDirection),
		storeApplicant("medium", queryDirection, queryDirection, nil),
		storeApplicant("weak", queryDirection, nil, nil),
	}
	engine, cleanup := newTestEngine(t, applicants...)
	defer cleanup()

	t.Run("non-increasing order", func(t *testing.T) {
		results, err := engine.Search(context.Background(), parsedQuery("query"), 10, false)
		require.NoError(t, err)
		require.Len(t, results, 3)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].FinalScore, results[i].FinalScore)
		}
	})

	t.Run("limit truncates after ranking", func(t *testing.T) {
		results, err := engine.Search(context.Background(), parsedQuery("query"), 2, false)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "strong", results[0].Applicant.SourceID)
		assert.Equal(t, "medium", results[1].Applicant.SourceID)
	})
}

func TestSearch_DeterministicTieBreak(t *testing.T) {
	a := storeApplicant("tie-a", queryDirection, queryDirection, queryDirection)
	b := storeApplicant("tie-b", queryDirection, queryDirection, queryDirection)
	engine, cleanup := newTestEngine(t, a, b)
	defer cleanup()

	var first []core.ID
	for range 5 {
		results, err := engine.Search(context.Background(), parsedQuery("query"), 10, false)
		require.NoError(t, err)
		ids := make([]core.ID, len(results))
		for i, r := range results {
			ids[i] = r.Applicant.Id
		}
		if first == nil {
			first = ids
		} else {
			assert.Equal(t, first, ids, "equal scores must order identically across runs")
		}
	}
}

func TestSearch_FiltersRestrictResults(t *testing.T) {
	senior := storeApplicant("senior", queryDirection, queryDirection, queryDirection)
	senior.YearsExperience = 8
	junior := storeApplicant("junior", queryDirection, queryDirection, queryDirection)
	junior.YearsExperience = 1

	engine, cleanup := newTestEngine(t, senior, junior)
	defer cleanup()

	parsed := parsedQuery("query")
	minExp := 5.0
	parsed.Filters.MinExperience = &minExp

	results, err := engine.Search(context.Background(), parsed, 10, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "senior", results[0].Applicant.SourceID)
}

func TestSearch_RerankPromotesSkillMatches(t *testing.T) {
	// semantically stronger but missing the skill
	generalist := storeApplicant("generalist", queryDirection, queryDirection, queryDirection)
	generalist.SkillsText = "Excel, PowerPoint"

	// semantically weaker but has the skill
	specialist := storeApplicant("specialist", queryDirection, queryDirection, nil)
	specialist.SkillsText = "AutoCAD, Revit"

	engine, cleanup := newTestEngine(t, generalist, specialist)
	defer cleanup()

	parsed := parsedQuery("query")
	parsed.Filters.RequiredSkills = []string{"AutoCAD"}

	t.Run("without rerank semantic order wins", func(t *testing.T) {
		results, err := engine.Search(context.Background(), parsed, 10, false)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "generalist", results[0].Applicant.SourceID)
	})

	t.Run("with rerank the skill holder wins", func(t *testing.T) {
		results, err := engine.Search(context.Background(), parsed, 10, true)
		require.NoError(t, err)
		require.Len(t, results, 2)

		// generalist: 0.7*1.0 + 0.3*0 = 0.70
		// specialist: 0.7*0.8 + 0.3*1 = 0.86
		assert.Equal(t, "specialist", results[0].Applicant.SourceID)
		assert.InDelta(t, 0.86, float64(results[0].FinalScore), 1e-3)
		assert.InDelta(t, 0.70, float64(results[1].FinalScore), 1e-3)
		assert.Equal(t, float32(1.0), results[0].SkillsMatchScore)
		assert.Equal(t, float32(0.0), results[1].SkillsMatchScore)
	})

	t.Run("rerank flag without skills is a no-op", func(t *testing.T) {
		noskills := parsedQuery("query")
		results, err := engine.Search(context.Background(), noskills, 10, true)
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, r.SemanticScore, r.FinalScore)
		}
	})
}

// failingStore wraps a real store and fails queries for one facet.
type failingStore struct {
	vectorstore.Store
	failFacet core.Facet
}

func (f *failingStore) Search(ctx context.Context, facet core.Facet, vector []float32, pred *vectorstore.Predicate, limit int, floor float32) ([]vectorstore.FacetMatch, error) {
	if facet == f.failFacet {
		return nil, errors.New("facet query failed")
	}
	return f.Store.Search(ctx, facet, vector, pred, limit, floor)
}

func TestSearch_FacetFailureDegrades(t *testing.T) {
	inner, backend, err := badger.NewMemoryStore(testDim)
	require.NoError(t, err)
	defer backend.Close()

	app := storeApplicant("a", queryDirection, queryDirection, queryDirection)
	require.NoError(t, inner.Upsert(context.Background(), app))

	engine, err := NewEngine(&failingStore{Store: inner, failFacet: core.FacetTasks}, newTestProvider())
	require.NoError(t, err)

	results, err := engine.Search(context.Background(), parsedQuery("query"), 10, false)
	require.NoError(t, err, "a facet failure must not fail the search")
	require.Len(t, results, 1)

	// Tasks contributed nothing: 0.5 + 0.3 only.
	assert.InDelta(t, 0.8, float64(results[0].SemanticScore), 1e-4)
	assert.NotContains(t, results[0].FacetScores, core.FacetTasks)
}

func TestSkillsMatchScore(t *testing.T) {
	t.Run("no skills required", func(t *testing.T) {
		assert.Equal(t, float32(0.0), SkillsMatchScore("Python", nil))
	})

	t.Run("none match", func(t *testing.T) {
		assert.Equal(t, float32(0.0), SkillsMatchScore("Excel", []string{"Python", "Go"}))
	})

	t.Run("all match", func(t *testing.T) {
		assert.Equal(t, float32(1.0), SkillsMatchScore("Python, Go, SQL", []string{"Python", "Go"}))
	})

	t.Run("partial match", func(t *testing.T) {
		assert.InDelta(t, 0.5, float64(SkillsMatchScore("Python", []string{"Python", "Go"})), 1e-6)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, float32(1.0), SkillsMatchScore("autocad 2024, revit", []string{"AutoCAD"}))
	})

	t.Run("empty skills text", func(t *testing.T) {
		assert.Equal(t, float32(0.0), SkillsMatchScore("", []string{"Python"}))
	})
}
