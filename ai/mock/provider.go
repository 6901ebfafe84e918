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


package mock

import "github.com/poiesic/talentsearch/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock embedder and backend instances.
type MockProvider struct {
	embedder *MockEmbedder
	backends []*MockQueryBackend
}

// NewMockProvider creates a new mock provider with one default backend.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockBackends() to access concrete types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		backends: []*MockQueryBackend{NewMockQueryBackend()},
	}
}

// NewMockProviderWith creates a mock provider from the given doubles.
// Pass the embedder and backends the test needs to script; a nil embedder
// falls back to the default deterministic one.
func NewMockProviderWith(embedder *MockEmbedder, backends ...*MockQueryBackend) ai.AIProvider {
	if embedder == nil {
		embedder = NewMockEmbedder()
	}
	return &MockProvider{
		embedder: embedder,
		backends: backends,
	}
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// QueryBackends returns the mock parsing backends in order.
func (p *MockProvider) QueryBackends() []ai.QueryBackend {
	backends := make([]ai.QueryBackend, len(p.backends))
	for i, b := range p.backends {
		backends[i] = b
	}
	return backends
}

// Close is a no-op for the mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the concrete mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockBackends returns the concrete mock backends for test assertions.
func (p *MockProvider) GetMockBackends() []*MockQueryBackend {
	return p.backends
}
