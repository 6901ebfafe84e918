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


package explain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/talentsearch/core"
)

// Semantic score tiers reported in match reasons.
const (
	strongMatchThreshold = 0.7
	goodMatchThreshold   = 0.5
)

// snippetMaxLen caps the resume preview length.
const snippetMaxLen = 200

// Explain builds a match explanation for one ranked candidate against the
// query it was ranked by. The function is pure: it reads the candidate and
// query and mutates neither, so calling it twice yields equal results.
func Explain(candidate *core.RankedCandidate, parsed core.ParsedQuery) core.ExplainedResult {
	app := candidate.Applicant
	filters := parsed.Filters

	facets := make(map[core.Facet]float32, len(candidate.FacetScores))
	for facet, score := range candidate.FacetScores {
		facets[facet] = round3(score)
	}

	result := core.ExplainedResult{
		Candidate: core.CandidateSummary{
			Id:              app.Id,
			Name:            app.FullName,
			Email:           app.Email,
			JobTitle:        app.JobTitle,
			YearsExperience: app.YearsExperience,
			LongestTenure:   app.LongestTenure,
			Location:        app.Location,
			EducationLevel:  app.EducationLevel,
			CurrentCompany:  app.CurrentCompany,
			CurrentStage:    app.CurrentStage,
			ResumeURL:       app.ResumeURL,
			DateApplied:     app.DateApplied,
		},
		Scores: core.ScoreBreakdown{
			Final:       round3(candidate.FinalScore),
			Semantic:    round3(candidate.SemanticScore),
			SkillsMatch: round2(candidate.SkillsMatchScore),
			Facets:      facets,
		},
		MatchReasons:  matchReasons(candidate, filters),
		ResumeSnippet: resumeSnippet(app.ResumeText),
	}

	return result
}

// matchReasons walks each filter the query carried and reports whether the
// candidate satisfies it, then closes with the current role and the
// semantic tier. Reasons appear in a fixed order.
func matchReasons(candidate *core.RankedCandidate, filters core.FilterSet) []string {
	app := candidate.Applicant
	reasons := []string{}

	exp := app.YearsExperience
	if filters.MinExperience != nil {
		minExp := *filters.MinExperience
		if exp >= minExp {
			reasons = append(reasons, fmt.Sprintf(
				"%.1f years experience (exceeds %g+ requirement by %.1f years)",
				exp, minExp, exp-minExp))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"%.1f years experience (below %g+ requirement)", exp, minExp))
		}
	}
	if filters.MaxExperience != nil {
		maxExp := *filters.MaxExperience
		if exp <= maxExp {
			reasons = append(reasons, fmt.Sprintf(
				"%.1f years experience (within 0-%g range)", exp, maxExp))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"%.1f years experience (above %g maximum)", exp, maxExp))
		}
	}

	if filters.Location != nil && *filters.Location != "" {
		if strings.Contains(app.Location, *filters.Location) {
			reasons = append(reasons, fmt.Sprintf("Located in %s", app.Location))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"Located in %s (requested: %s)", app.Location, *filters.Location))
		}
	}

	if filters.EducationLevel != nil && *filters.EducationLevel != "" {
		if app.EducationLevel == *filters.EducationLevel {
			reasons = append(reasons, fmt.Sprintf("%s (matches requirement)", app.EducationLevel))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"%s (requested: %s)", app.EducationLevel, *filters.EducationLevel))
		}
	}

	if len(filters.RequiredSkills) > 0 {
		skillsText := strings.ToLower(app.SkillsText)
		var matched, missing []string
		for _, skill := range filters.RequiredSkills {
			if strings.Contains(skillsText, strings.ToLower(skill)) {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}
		if len(matched) > 0 {
			reasons = append(reasons, "Has required skills: "+strings.Join(matched, ", "))
		}
		if len(missing) > 0 {
			reasons = append(reasons, "Missing skills: "+strings.Join(missing, ", "))
		}
	}

	if len(filters.SeniorityKeywords) > 0 {
		title := strings.ToLower(app.JobTitle)
		var found []string
		for _, keyword := range filters.SeniorityKeywords {
			if strings.Contains(title, strings.ToLower(keyword)) {
				found = append(found, keyword)
			}
		}
		if len(found) > 0 {
			reasons = append(reasons, "Seniority level: "+strings.Join(found, ", ")+" position")
		}
	}

	if app.JobTitle != "" {
		reasons = append(reasons, "Current role: "+app.JobTitle)
	}

	semantic := candidate.SemanticScore
	switch {
	case semantic >= strongMatchThreshold:
		reasons = append(reasons, fmt.Sprintf("Strong semantic match (score: %.2f)", semantic))
	case semantic >= goodMatchThreshold:
		reasons = append(reasons, fmt.Sprintf("Good semantic match (score: %.2f)", semantic))
	default:
		reasons = append(reasons, fmt.Sprintf("Moderate semantic match (score: %.2f)", semantic))
	}

	return reasons
}

// resumeSnippet returns a preview of the resume text, truncated with a
// trailing marker when the text exceeds the cap.
func resumeSnippet(resumeText string) string {
	if resumeText == "" {
		return ""
	}
	if len(resumeText) > snippetMaxLen {
		// Back up to a rune boundary so the cut never splits a
		// multibyte character.
		cut := snippetMaxLen
		for cut > 0 && !utf8.RuneStart(resumeText[cut]) {
			cut--
		}
		return resumeText[:cut] + "..."
	}
	return resumeText
}

func round3(v float32) float32 {
	return float32(math.Round(float64(v)*1000) / 1000)
}

func round2(v float32) float32 {
	return float32(math.Round(float64(v)*100) / 100)
}
