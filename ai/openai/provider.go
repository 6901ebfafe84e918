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


package openai

import (
	"errors"
	"log/slog"

	"github.com/poiesic/talentsearch/ai"
)

// ErrEmptyCompletion indicates the model returned no choices.
var ErrEmptyCompletion = errors.New("model returned no completion choices")

// Provider implements ai.AIProvider using OpenAI-compatible services.
// It manages the embedder and the ordered chain of parsing backends.
type Provider struct {
	config   *ai.Config
	embedder *Embedder
	backends []ai.QueryBackend
	logger   *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use. The backend chain holds
// the primary parsing backend first, followed by the fallback backend when
// one is configured.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create embedder (using internal constructor for concrete type)
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	primary, err := newQueryBackend(config.ParserHost, config.ParserModel)
	if err != nil {
		return nil, err
	}
	backends := []ai.QueryBackend{primary}

	if config.HasFallback() {
		fallback, err := newQueryBackend(config.FallbackHost, config.FallbackModel)
		if err != nil {
			return nil, err
		}
		backends = append(backends, fallback)
	}

	return &Provider{
		config:   config,
		embedder: embedder,
		backends: backends,
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// QueryBackends returns the parsing backends in fallback order.
func (p *Provider) QueryBackends() []ai.QueryBackend {
	return p.backends
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
