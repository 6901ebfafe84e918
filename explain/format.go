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
	"strings"

	"github.com/poiesic/talentsearch/core"
)

// FormatResult renders an explained result as human-readable text, one
// candidate per block. Facet scores print in canonical facet order.
func FormatResult(result core.ExplainedResult) string {
	candidate := result.Candidate
	scores := result.Scores

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", candidate.Name)
	fmt.Fprintf(&b, "Email: %s\n", candidate.Email)
	fmt.Fprintf(&b, "Job Title: %s\n", candidate.JobTitle)
	fmt.Fprintf(&b, "Experience: %.1f years\n", candidate.YearsExperience)
	fmt.Fprintf(&b, "Location: %s\n", candidate.Location)
	fmt.Fprintf(&b, "Education: %s\n", candidate.EducationLevel)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Match Score: %.3f\n", scores.Final)
	fmt.Fprintf(&b, "  - Semantic: %.3f\n", scores.Semantic)
	fmt.Fprintf(&b, "  - Skills: %.2f\n", scores.SkillsMatch)

	if len(scores.Facets) > 0 {
		b.WriteString("  - Facet scores:\n")
		for _, facet := range core.Facets() {
			if score, ok := scores.Facets[facet]; ok {
				fmt.Fprintf(&b, "      %s: %.3f\n", facet, score)
			}
		}
	}

	b.WriteString("\nMatch Reasons:\n")
	for _, reason := range result.MatchReasons {
		fmt.Fprintf(&b, "  %s\n", reason)
	}

	if result.ResumeSnippet != "" {
		b.WriteString("\nResume Preview:\n")
		fmt.Fprintf(&b, "  %s\n", result.ResumeSnippet)
	}

	if candidate.ResumeURL != "" {
		b.WriteString("\nFull Resume: " + candidate.ResumeURL + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
