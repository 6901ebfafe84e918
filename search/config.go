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
	"fmt"
	"math"

	"github.com/poiesic/talentsearch/core"
)

// Config holds the tunable parameters of the ranking pipeline.
type Config struct {
	// FacetWeights is the contribution of each facet to the fused
	// semantic score. Weights must sum to 1.
	FacetWeights map[core.Facet]float32

	// ScoreFloor drops facet matches scoring below this similarity.
	ScoreFloor float32

	// OverfetchFactor multiplies the requested limit for per-facet
	// queries, so candidates strong in one facet but absent from
	// another still surface after fusion.
	OverfetchFactor int

	// SemanticWeight and SkillsWeight blend the fused semantic score
	// with explicit skills coverage during re-ranking. They must sum
	// to 1.
	SemanticWeight float32
	SkillsWeight   float32
}

// DefaultConfig returns the standard ranking parameters: the resume facet
// dominates, skills and recent tasks refine.
func DefaultConfig() Config {
	return Config{
		FacetWeights: map[core.Facet]float32{
			core.FacetResume: 0.5,
			core.FacetSkills: 0.3,
			core.FacetTasks:  0.2,
		},
		ScoreFloor:      0.3,
		OverfetchFactor: 2,
		SemanticWeight:  0.7,
		SkillsWeight:    0.3,
	}
}

const weightEpsilon = 1e-4

// Validate checks that both weight groups sum to 1 and the overfetch
// factor is positive.
func (c Config) Validate() error {
	var sum float64
	for _, f := range core.Facets() {
		w, ok := c.FacetWeights[f]
		if !ok {
			return fmt.Errorf("%w: no weight for facet %s", ErrInvalidConfig, f)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight for facet %s", ErrInvalidConfig, f)
		}
		sum += float64(w)
	}
	if math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("%w: facet weights sum to %v, want 1", ErrInvalidConfig, sum)
	}

	if math.Abs(float64(c.SemanticWeight)+float64(c.SkillsWeight)-1.0) > weightEpsilon {
		return fmt.Errorf("%w: rerank weights sum to %v, want 1",
			ErrInvalidConfig, c.SemanticWeight+c.SkillsWeight)
	}

	if c.OverfetchFactor < 1 {
		return fmt.Errorf("%w: overfetch factor must be at least 1", ErrInvalidConfig)
	}
	if c.ScoreFloor < 0 || c.ScoreFloor > 1 {
		return fmt.Errorf("%w: score floor must be in [0, 1]", ErrInvalidConfig)
	}

	return nil
}
