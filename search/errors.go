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

import "errors"

var (
	// ErrStoreRequired is returned when a vector store is not provided.
	ErrStoreRequired = errors.New("vector store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidLimit is returned when a search is requested with a
	// non-positive result limit.
	ErrInvalidLimit = errors.New("limit must be greater than 0")

	// ErrEmbedFailed wraps embedder errors. Query embedding is the one
	// stage a search cannot proceed without.
	ErrEmbedFailed = errors.New("failed to embed query")

	// ErrInvalidConfig is returned when search configuration is
	// inconsistent, such as facet weights that do not sum to 1.
	ErrInvalidConfig = errors.New("invalid search configuration")
)
