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
	"strings"

	"github.com/poiesic/talentsearch/core"
)

// Reranker blends explicit skills coverage into candidate scores. Semantic
// similarity alone can rank a generally strong resume above one that names
// every required skill; the blend pulls exact matches back up.
type Reranker struct {
	semanticWeight float32
	skillsWeight   float32
}

// NewReranker creates a reranker using the config's blend weights.
func NewReranker(config Config) *Reranker {
	return &Reranker{
		semanticWeight: config.SemanticWeight,
		skillsWeight:   config.SkillsWeight,
	}
}

// Rerank recomputes each candidate's final score as a weighted blend of
// semantic similarity and skills coverage, then re-sorts in place. With an
// empty skills list the scores are left untouched.
func (r *Reranker) Rerank(candidates []*core.RankedCandidate, requiredSkills []string) {
	if len(requiredSkills) == 0 {
		return
	}

	for _, candidate := range candidates {
		candidate.SkillsMatchScore = SkillsMatchScore(candidate.Applicant.SkillsText, requiredSkills)
		candidate.FinalScore = r.semanticWeight*candidate.SemanticScore +
			r.skillsWeight*candidate.SkillsMatchScore
	}

	sortByFinalScore(candidates)
}

// SkillsMatchScore returns the fraction of required skills found in the
// skills text by case-insensitive substring match. 0.0 means none matched,
// 1.0 means all did. An empty skills list scores 0.0.
func SkillsMatchScore(skillsText string, requiredSkills []string) float32 {
	if len(requiredSkills) == 0 {
		return 0.0
	}

	haystack := strings.ToLower(skillsText)
	matched := 0
	for _, skill := range requiredSkills {
		if strings.Contains(haystack, strings.ToLower(skill)) {
			matched++
		}
	}

	return float32(matched) / float32(len(requiredSkills))
}
