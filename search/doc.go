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


// Package search ranks applicants against parsed recruiter queries.
//
// The Engine type implements a multi-stage search algorithm that combines:
//   - Filter compilation from structured query filters to store predicates
//   - Similarity search across the resume, skills, and tasks facets
//   - Weighted fusion of per-facet scores into one semantic score
//   - Optional re-ranking that blends in explicit skills coverage
//
// Results are ordered by final score descending with deterministic
// tie-breaking, so repeated searches over the same data agree.
package search
