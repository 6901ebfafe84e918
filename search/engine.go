// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/poiesic/talentsearch/ai"
	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
)

// Engine ranks applicants against a parsed query using multi-facet
// similarity search with weighted score fusion.
type Engine struct {
	store    vectorstore.Store
	embedder ai.Embedder
	reranker *Reranker
	config   Config
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithConfig replaces the default ranking parameters.
func WithConfig(config Config) Option {
	return func(e *Engine) error {
		if err := config.Validate(); err != nil {
			return err
		}
		e.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a search engine over the given store and AI provider.
func NewEngine(store vectorstore.Store, provider ai.AIProvider, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	e := &Engine{
		store:    store,
		embedder: provider.Embedder(),
		config:   DefaultConfig(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.reranker = NewReranker(e.config)
	return e, nil
}

// facetResult carries one facet query's outcome back to the merge step.
type facetResult struct {
	matches []vectorstore.FacetMatch
	err     error
}

// Search ranks applicants against the parsed query and returns up to limit
// results, best first. When enableRerank is true and the query names
// required skills, explicit skills coverage is blended into the final
// score; otherwise the fused semantic score orders the output.
func (e *Engine) Search(ctx context.Context, parsed core.ParsedQuery, limit int, enableRerank bool) ([]*core.RankedCandidate, error) {
	return e.SearchWithMonitor(ctx, parsed, limit, enableRerank, nil)
}

// SearchWithMonitor is Search with stage callbacks for observability.
func (e *Engine) SearchWithMonitor(ctx context.Context, parsed core.ParsedQuery, limit int, enableRerank bool, monitor SearchMonitor) ([]*core.RankedCandidate, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	monitor.Start(parsed.SearchIntent)

	// Nothing to embed means nothing to rank.
	if strings.TrimSpace(parsed.SearchIntent) == "" {
		monitor.Finish(nil)
		return []*core.RankedCandidate{}, nil
	}

	embedding, err := e.embedder.EmbedText(ctx, parsed.SearchIntent)
	if err != nil {
		e.logger.Error("error generating embedding for query", "intent", parsed.SearchIntent, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbedFailed, err)
	}

	predicate := CompileFilters(parsed.Filters)
	overfetch := limit * e.config.OverfetchFactor

	// Query all facets concurrently, the merge below runs in canonical
	// facet order so the output is deterministic.
	facets := core.Facets()
	results := make([]facetResult, len(facets))
	var wg sync.WaitGroup
	for i, facet := range facets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, err := e.store.Search(ctx, facet, embedding, predicate, overfetch, e.config.ScoreFloor)
			results[i] = facetResult{matches: matches, err: err}
		}()
	}
	wg.Wait()

	// Fuse per-facet scores additively. A facet query failure degrades
	// that facet to zero matches instead of failing the search.
	byID := make(map[core.ID]*core.RankedCandidate)
	order := make([]core.ID, 0, overfetch)
	for i, facet := range facets {
		if results[i].err != nil {
			e.logger.Warn("facet search failed, treating as empty",
				"facet", facet.String(),
				"err", results[i].err)
			monitor.AfterFacetSearch(facet, 0)
			continue
		}
		monitor.AfterFacetSearch(facet, len(results[i].matches))

		weight := e.config.FacetWeights[facet]
		for _, match := range results[i].matches {
			candidate, ok := byID[match.Applicant.Id]
			if !ok {
				candidate = &core.RankedCandidate{
					Applicant:   match.Applicant,
					FacetScores: make(map[core.Facet]float32, len(facets)),
				}
				byID[match.Applicant.Id] = candidate
				order = append(order, match.Applicant.Id)
			}
			candidate.FacetScores[facet] = match.Score
			candidate.SemanticScore += weight * match.Score
		}
	}

	candidates := make([]*core.RankedCandidate, 0, len(order))
	for _, id := range order {
		candidate := byID[id]
		candidate.FinalScore = candidate.SemanticScore
		candidates = append(candidates, candidate)
	}

	sortByFinalScore(candidates)
	monitor.AfterFusion(candidates)

	if enableRerank && len(parsed.Filters.RequiredSkills) > 0 {
		e.reranker.Rerank(candidates, parsed.Filters.RequiredSkills)
		monitor.AfterRerank(candidates)
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	e.logger.Debug("search complete",
		"intent", parsed.SearchIntent,
		"results", len(candidates),
		"reranked", enableRerank && len(parsed.Filters.RequiredSkills) > 0)

	monitor.Finish(candidates)
	return candidates, nil
}

// sortByFinalScore orders candidates by final score descending. Ties break
// on applicant id ascending so equal-scored runs are stable across calls.
func sortByFinalScore(candidates []*core.RankedCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Applicant.Id < candidates[j].Applicant.Id
	})
}
