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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidApplicant indicates an Applicant failed validation.
	ErrInvalidApplicant = errors.New("invalid applicant record")

	// ErrEmptySourceID indicates the SourceID field is empty.
	ErrEmptySourceID = errors.New("source id cannot be empty")

	// ErrNegativeExperience indicates a negative experience or tenure value.
	ErrNegativeExperience = errors.New("experience cannot be negative")

	// ErrVectorDimension indicates a stored facet vector with the wrong length.
	ErrVectorDimension = errors.New("facet vector has wrong dimension")

	// ErrInvalidFacet indicates an unrecognized Facet value.
	ErrInvalidFacet = errors.New("invalid facet")
)
