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

import "errors"

var (
	// ErrProviderRequired is returned when a parser is constructed without
	// any query backends.
	ErrProviderRequired = errors.New("at least one query backend is required")

	// ErrMissingFields is returned when a model response decodes as JSON but
	// lacks the search_intent or filters keys.
	ErrMissingFields = errors.New("missing required fields in parsed query")

	// ErrInvalidMaxAttempts is returned when retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
