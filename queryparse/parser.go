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


package queryparse

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/talentsearch/ai"
	"github.com/poiesic/talentsearch/core"
)

// BackendNone identifies the degraded terminal where no backend produced a
// usable response and the query runs as pure semantic search.
const BackendNone = "none"

// Parser converts recruiter queries into structured search parameters by
// walking an ordered backend chain. Parse never returns an error: when the
// whole chain fails it yields a degraded result with empty filters.
type Parser struct {
	backends   []ai.QueryBackend
	maxRetries int
	baseDelay  time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser) error

// WithRetries overrides the per-backend attempt count.
func WithRetries(attempts int) Option {
	return func(p *Parser) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxRetries = attempts
		return nil
	}
}

// WithRetryBaseDelay overrides the base delay between retry attempts.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(p *Parser) error {
		p.baseDelay = delay
		return nil
	}
}

// WithClock overrides the clock used to anchor relative date expressions.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) error {
		p.now = now
		return nil
	}
}

// NewParser creates a parser over the provider's backend chain. The chain
// order is the fallback order: the first backend is tried first and later
// backends only run when every attempt against the earlier ones failed.
func NewParser(provider ai.AIProvider, opts ...Option) (*Parser, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	backends := provider.QueryBackends()
	if len(backends) == 0 {
		return nil, ErrProviderRequired
	}

	p := &Parser{
		backends:   backends,
		maxRetries: 3,
		baseDelay:  time.Second,
		now:        time.Now,
		logger:     slog.Default().With("component", "query-parser"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse extracts a search intent and metadata filters from a natural
// language query. An empty query short-circuits to an empty non-degraded
// result without touching any backend.
func (p *Parser) Parse(ctx context.Context, query string) core.ParsedQuery {
	query = strings.TrimSpace(query)
	if query == "" {
		return core.ParsedQuery{Backend: BackendNone}
	}

	p.logger.Debug("parsing query", "query", query)
	prompt := buildParsePrompt(query)

	for _, backend := range p.backends {
		intent, filters, err := p.parseWith(ctx, backend, prompt)
		if err != nil {
			p.logger.Warn("query backend failed, trying next",
				"backend", backend.Name(),
				"err", err)
			continue
		}

		p.logger.Debug("query parsed",
			"backend", backend.Name(),
			"intent", intent)
		return core.ParsedQuery{
			SearchIntent: intent,
			Filters:      filters,
			Backend:      backend.Name(),
		}
	}

	// Every backend failed. Run the search on meaning alone rather than
	// surfacing the failure to the caller.
	p.logger.Warn("all query backends failed, searching without filters", "query", query)
	return core.ParsedQuery{
		SearchIntent: query,
		Backend:      BackendNone,
		Degraded:     true,
	}
}

// parseWith runs one backend with retries, decoding its completion.
// Only the completion call is retried. The backends run at temperature
// zero, so a completion that fails to decode would fail the same way on
// every attempt; decode errors advance the chain instead.
func (p *Parser) parseWith(ctx context.Context, backend ai.QueryBackend, prompt string) (string, core.FilterSet, error) {
	var completion string

	err := RetryWithBackoff(ctx, func() error {
		result, err := backend.Complete(ctx, prompt)
		if err != nil {
			return err
		}
		completion = result
		return nil
	}, p.maxRetries, p.baseDelay)

	if err != nil {
		return "", core.FilterSet{}, err
	}
	return decodeResponse(completion, p.now())
}
