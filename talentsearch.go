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


package talentsearch

import (
	"log/slog"

	"github.com/poiesic/talentsearch/ai"
	"github.com/poiesic/talentsearch/ai/openai"
	"github.com/poiesic/talentsearch/ingestion"
	"github.com/poiesic/talentsearch/queryparse"
	"github.com/poiesic/talentsearch/search"
	"github.com/poiesic/talentsearch/vectorstore"
	"github.com/poiesic/talentsearch/vectorstore/badger"
)

// DefaultDim is the embedding dimensionality the upstream ETL produces.
const DefaultDim = 3072

// System wires the vector store and AI provider into one handle that the
// parsing, search, and ingestion components hang off.
type System struct {
	backend  *badger.Backend
	store    vectorstore.Store
	provider ai.AIProvider
	config   *ai.Config
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	dim      int
}

// WithAIConfig replaces the default AI service configuration.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = config
	}
}

// WithDim sets the expected embedding dimensionality.
// Default is DefaultDim.
func WithDim(dim int) SystemOption {
	return func(o *systemOptions) {
		o.dim = dim
	}
}

// NewSystem opens the applicant database at filePath and connects the AI
// services. Close must be called when done.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	// Apply options
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
		dim:      DefaultDim,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create applicant store
	store, err := badger.NewStore(backend, options.dim)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &System{
		backend:  backend,
		store:    store,
		provider: provider,
		config:   options.aiConfig,
		logger:   slog.Default(),
	}, nil
}

// Store returns the applicant vector store.
func (s *System) Store() vectorstore.Store {
	return s.store
}

// Provider returns the AI provider.
func (s *System) Provider() ai.AIProvider {
	return s.provider
}

// NewParser creates a query parser over the system's backend chain.
// The AI config's retry budget carries over; explicit options win.
func (s *System) NewParser(opts ...queryparse.Option) (*queryparse.Parser, error) {
	combined := append([]queryparse.Option{
		queryparse.WithRetries(s.config.MaxRetries),
		queryparse.WithRetryBaseDelay(s.config.RetryBaseDelay),
	}, opts...)
	return queryparse.NewParser(s.provider, combined...)
}

// NewEngine creates a search engine over the system's store and provider.
func (s *System) NewEngine(opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(s.store, s.provider, opts...)
}

// NewIngestionPipeline creates an ingestion pipeline over the system's store.
func (s *System) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.store, opts...)
}

// Close releases the AI provider and the underlying storage.
func (s *System) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing applicant store", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
