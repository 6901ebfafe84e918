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

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/poiesic/talentsearch/core"
)

// wireFilters is the filter object as the model emits it. It differs from
// core.FilterSet in one field: the model returns application_date as a
// free-form date expression, which decodeResponse resolves into the
// min_date_applied epoch cutoff.
type wireFilters struct {
	MinExperience     *float64 `json:"min_experience"`
	MaxExperience     *float64 `json:"max_experience"`
	Location          *string  `json:"location"`
	EducationLevel    *string  `json:"education_level"`
	RequiredSkills    []string `json:"required_skills"`
	SeniorityKeywords []string `json:"seniority_keywords"`
	DesiredJobTitles  []string `json:"desired_job_titles"`
	TargetCompanies   []string `json:"target_companies"`
	ApplicationDate   *string  `json:"application_date"`
}

// wireResponse is the top-level shape of a model response.
type wireResponse struct {
	SearchIntent string      `json:"search_intent"`
	Filters      wireFilters `json:"filters"`
}

// decodeResponse turns a raw model completion into a search intent and
// filter set. It strips markdown fences, repairs common LLM JSON defects,
// verifies the two required top-level keys, and resolves the
// application_date expression against now.
func decodeResponse(raw string, now time.Time) (string, core.FilterSet, error) {
	text := stripFences(raw)
	text = repairJSON(text)

	// Required-keys check runs on the raw object so a response that
	// decodes cleanly but omits filters is still rejected.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &keys); err != nil {
		return "", core.FilterSet{}, err
	}
	if _, ok := keys["search_intent"]; !ok {
		return "", core.FilterSet{}, ErrMissingFields
	}
	if _, ok := keys["filters"]; !ok {
		return "", core.FilterSet{}, ErrMissingFields
	}

	var resp wireResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return "", core.FilterSet{}, err
	}

	filters := core.FilterSet{
		MinExperience:     resp.Filters.MinExperience,
		MaxExperience:     resp.Filters.MaxExperience,
		Location:          resp.Filters.Location,
		EducationLevel:    resp.Filters.EducationLevel,
		RequiredSkills:    resp.Filters.RequiredSkills,
		SeniorityKeywords: resp.Filters.SeniorityKeywords,
		DesiredJobTitles:  resp.Filters.DesiredJobTitles,
		TargetCompanies:   resp.Filters.TargetCompanies,
	}

	if resp.Filters.ApplicationDate != nil {
		if ts, ok := ParseDateExpression(*resp.Filters.ApplicationDate, now); ok {
			filters.MinDateApplied = &ts
		}
	}

	return strings.TrimSpace(resp.SearchIntent), filters, nil
}

// stripFences removes markdown code fences wrapping a JSON response.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It specifically handles missing opening quotes before keys in JSON objects.
func repairJSON(s string) string {
	// Fix missing opening quote before keys
	// Pattern: after { or , followed by optional whitespace, then a word followed by ":
	// Example: `, location":` -> `, "location":`
	result := []rune(s)
	fixed := make([]rune, 0, len(result)+100)

	i := 0
	for i < len(result) {
		ch := result[i]

		// After { or , look for unquoted keys
		if ch == '{' || ch == ',' {
			fixed = append(fixed, ch)
			i++

			// Skip whitespace
			for i < len(result) && (result[i] == ' ' || result[i] == '\n' || result[i] == '\t') {
				fixed = append(fixed, result[i])
				i++
			}

			// Check if we have an unquoted key (starts with letter, not with quote)
			if i < len(result) && result[i] != '"' && isLetter(result[i]) {
				keyStart := i
				// Find the end of the key name
				for i < len(result) && (isLetter(result[i]) || result[i] == '_' || result[i] == ' ') {
					i++
				}
				keyEnd := i

				// Check if this is followed by ": which indicates a missing opening quote
				if i+1 < len(result) && result[i] == '"' && result[i+1] == ':' {
					// Add opening quote, key, keep closing quote
					fixed = append(fixed, '"')
					for j := keyStart; j < keyEnd; j++ {
						if result[j] != ' ' || (j > keyStart && j < keyEnd-1) {
							fixed = append(fixed, result[j])
						}
					}
					// Don't add closing quote - it's already there at result[i]
					continue
				} else {
					// Not an unquoted key, just copy what we skipped
					for j := keyStart; j < i; j++ {
						fixed = append(fixed, result[j])
					}
				}
			}
		} else {
			fixed = append(fixed, ch)
			i++
		}
	}

	return string(fixed)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
