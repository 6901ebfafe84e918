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


// Package vectorstore provides the storage abstraction for applicant records
// and their facet embeddings.
//
// The Store interface decouples the search pipeline from the storage
// implementation, so different backends (BadgerDB, in-memory, etc.) can be
// used interchangeably. Each stored record carries three named facet vectors
// of equal, fixed dimensionality plus the scalar metadata that predicates
// filter on.
//
// Predicates are conjunction/disjunction trees over metadata fields with
// range, equals, and text-contains operators. The store applies the predicate
// before similarity scoring, narrowing the candidate set prior to ranking.
//
// # Constructor Return Type Pattern
//
// Public backend constructors return the Store interface to enforce
// abstraction and enable multiple storage backend implementations:
//
//	store, err := badger.NewStore(backend, dim)  // returns vectorstore.Store
//
// # Thread Safety
//
// All store implementations must be thread-safe: the search engine issues
// its three facet queries concurrently against a shared store.
package vectorstore
