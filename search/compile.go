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

import (
	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
)

// CompileFilters translates the metadata-bearing fields of a filter set
// into a store predicate. Returns nil when the set carries no metadata
// constraints, which the store treats as match-everything.
//
// RequiredSkills and SeniorityKeywords deliberately do not compile: skills
// participate in re-ranking rather than hard filtering, and seniority is
// folded into job title matching by the parser prompt.
func CompileFilters(filters core.FilterSet) *vectorstore.Predicate {
	var must []vectorstore.Condition

	if filters.MinExperience != nil || filters.MaxExperience != nil {
		must = append(must, vectorstore.Condition{
			Field: vectorstore.FieldYearsExperience,
			Range: &vectorstore.Range{
				GTE: filters.MinExperience,
				LTE: filters.MaxExperience,
			},
		})
	}

	if filters.Location != nil && *filters.Location != "" {
		must = append(must, vectorstore.Condition{
			Field:  vectorstore.FieldLocation,
			Equals: filters.Location,
		})
	}

	if filters.EducationLevel != nil && *filters.EducationLevel != "" {
		must = append(must, vectorstore.Condition{
			Field:  vectorstore.FieldEducationLevel,
			Equals: filters.EducationLevel,
		})
	}

	if len(filters.DesiredJobTitles) > 0 {
		must = append(must, anyOf(titleConditions(filters.DesiredJobTitles)))
	}

	if len(filters.TargetCompanies) > 0 {
		must = append(must, anyOf(companyConditions(filters.TargetCompanies)))
	}

	if filters.MinDateApplied != nil {
		cutoff := float64(*filters.MinDateApplied)
		must = append(must, vectorstore.Condition{
			Field: vectorstore.FieldDateApplied,
			Range: &vectorstore.Range{GTE: &cutoff},
		})
	}

	if len(must) == 0 {
		return nil
	}
	return &vectorstore.Predicate{Must: must}
}

// titleConditions builds one substring condition per desired title.
func titleConditions(titles []string) []vectorstore.Condition {
	conds := make([]vectorstore.Condition, 0, len(titles))
	for i := range titles {
		conds = append(conds, vectorstore.Condition{
			Field:    vectorstore.FieldJobTitle,
			Contains: &titles[i],
		})
	}
	return conds
}

// companyConditions matches each company against the current employer or
// any past employer.
func companyConditions(companies []string) []vectorstore.Condition {
	conds := make([]vectorstore.Condition, 0, len(companies)*2)
	for i := range companies {
		conds = append(conds,
			vectorstore.Condition{
				Field:    vectorstore.FieldCurrentCompany,
				Contains: &companies[i],
			},
			vectorstore.Condition{
				Field:    vectorstore.FieldPastCompanies,
				Contains: &companies[i],
			},
		)
	}
	return conds
}

// anyOf wraps conditions in an OR-group, collapsing a single member.
func anyOf(conds []vectorstore.Condition) vectorstore.Condition {
	if len(conds) == 1 {
		return conds[0]
	}
	return vectorstore.Condition{Any: conds}
}
