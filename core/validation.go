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

import "fmt"

// ValidateApplicant validates an Applicant according to domain rules.
//
// Validation rules:
//   - SourceID must not be empty
//   - YearsExperience and LongestTenure must not be negative
//   - every facet vector must have exactly dim elements
//
// The dimension check is the ingestion-time invariant: the live search path
// assumes dimension-homogeneity and never re-checks it per query. Records
// failing this check must be excluded, never zero-padded.
//
// NOT validated:
//   - ID (0 is valid before ingestion assigns a content-based id)
//   - text facets (an empty facet text simply embeds to whatever the ETL produced)
func ValidateApplicant(app *Applicant, dim int) error {
	if app == nil {
		return fmt.Errorf("%w: applicant is nil", ErrInvalidApplicant)
	}

	if app.SourceID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrEmptySourceID)
	}

	if app.YearsExperience < 0 || app.LongestTenure < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrNegativeExperience)
	}

	for _, facet := range Facets() {
		if err := ValidateVector(app.Vector(facet), dim); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidApplicant, facet, err)
		}
	}

	return nil
}

// ValidateVector checks that a facet vector has exactly dim elements.
func ValidateVector(v []float32, dim int) error {
	if len(v) != dim {
		return fmt.Errorf("%w: got %d, want %d", ErrVectorDimension, len(v), dim)
	}
	return nil
}

// ValidateFacet validates that a Facet has a valid value.
func ValidateFacet(f Facet) error {
	if f != FacetResume && f != FacetSkills && f != FacetTasks {
		return fmt.Errorf("%w: value %d", ErrInvalidFacet, f)
	}
	return nil
}
