package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing of the external applicant id,
// so re-ingesting the same dataset produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Facet identifies one of the independently embedded text fields of an applicant.
type Facet int

const (
	// FacetResume is the full resume text.
	FacetResume Facet = iota + 1
	// FacetSkills is the extracted and normalized skills text.
	FacetSkills
	// FacetTasks is the extracted task and responsibility summary text.
	FacetTasks
)

// Facets returns all facets in their canonical order.
// The order is fixed so fusion produces deterministic tie-breaking.
func Facets() []Facet {
	return []Facet{FacetResume, FacetSkills, FacetTasks}
}

// String returns the facet name used in logs and score breakdowns.
func (f Facet) String() string {
	switch f {
	case FacetResume:
		return "resume"
	case FacetSkills:
		return "skills"
	case FacetTasks:
		return "tasks"
	default:
		return "unknown"
	}
}

// Applicant represents a candidate record produced by the external ETL pipeline.
// Records are immutable from the search pipeline's perspective: the pipeline
// only reads them, never mutates them.
type Applicant struct {
	Id       ID
	SourceID string // Opaque id assigned by the upstream applicant tracking system
	FullName string
	Email    string

	JobTitle       string
	CurrentCompany string
	PastCompanies  []string
	CurrentStage   string
	DateApplied    time.Time

	YearsExperience float64 // Total years of professional experience
	LongestTenure   float64 // Longest single-tenure in years
	EducationLevel  string  // Normalized education level
	Location        string  // Normalized location

	ResumeText string
	SkillsText string
	TasksText  string

	ResumeURL string

	// One embedding per text facet, all of equal fixed dimensionality.
	// Populated by the ETL pipeline, validated at ingestion.
	ResumeVector []float32
	SkillsVector []float32
	TasksVector  []float32
}

// Vector returns the embedding for the given facet.
func (a *Applicant) Vector(f Facet) []float32 {
	switch f {
	case FacetResume:
		return a.ResumeVector
	case FacetSkills:
		return a.SkillsVector
	case FacetTasks:
		return a.TasksVector
	default:
		return nil
	}
}

// SetVector replaces the embedding for the given facet.
func (a *Applicant) SetVector(f Facet, v []float32) {
	switch f {
	case FacetResume:
		a.ResumeVector = v
	case FacetSkills:
		a.SkillsVector = v
	case FacetTasks:
		a.TasksVector = v
	}
}

// FilterSet is the structured filter portion of a parsed query.
// The JSON shape is a contract with the parsing backends: exactly these nine
// keys, each either null or of its documented type. Downstream components
// pattern-match on these exact keys.
type FilterSet struct {
	MinExperience     *float64 `json:"min_experience"`
	MaxExperience     *float64 `json:"max_experience"`
	Location          *string  `json:"location"`
	EducationLevel    *string  `json:"education_level"`
	RequiredSkills    []string `json:"required_skills"`
	SeniorityKeywords []string `json:"seniority_keywords"`
	DesiredJobTitles  []string `json:"desired_job_titles"`
	TargetCompanies   []string `json:"target_companies"`
	MinDateApplied    *int64   `json:"min_date_applied"`
}

// Empty reports whether no filter field is set.
func (f *FilterSet) Empty() bool {
	if f == nil {
		return true
	}
	return f.MinExperience == nil &&
		f.MaxExperience == nil &&
		f.Location == nil &&
		f.EducationLevel == nil &&
		len(f.RequiredSkills) == 0 &&
		len(f.SeniorityKeywords) == 0 &&
		len(f.DesiredJobTitles) == 0 &&
		len(f.TargetCompanies) == 0 &&
		f.MinDateApplied == nil
}

// ParsedQuery is the structured intent extracted from a natural-language query.
// Created fresh per search call and discarded after the response is returned.
type ParsedQuery struct {
	// SearchIntent is the semantic phrase handed to the embedding service.
	SearchIntent string `json:"search_intent"`
	// Filters holds the typed metadata filters.
	Filters FilterSet `json:"filters"`
	// Backend names the parsing backend that produced this result, or "none"
	// when the degraded last-resort path was used.
	Backend string `json:"backend"`
	// Degraded marks a result produced by the last-resort fallback: the raw
	// query as search intent and no filters.
	Degraded bool `json:"degraded"`
}

// RankedCandidate is one search result with its score breakdown.
type RankedCandidate struct {
	Applicant *Applicant
	// FacetScores holds the raw per-facet similarity, one entry per facet in
	// which this applicant appeared.
	FacetScores map[Facet]float32
	// SemanticScore is the weighted sum of per-facet scores.
	SemanticScore float32
	// SkillsMatchScore is the fraction of required skills found, 0.0-1.0.
	SkillsMatchScore float32
	// FinalScore orders the output. Equals SemanticScore when re-ranking is
	// disabled or no required skills were supplied.
	FinalScore float32
}

// CandidateSummary holds the applicant attributes surfaced in an explanation.
type CandidateSummary struct {
	Id              ID
	Name            string
	Email           string
	JobTitle        string
	YearsExperience float64
	LongestTenure   float64
	Location        string
	EducationLevel  string
	CurrentCompany  string
	CurrentStage    string
	ResumeURL       string
	DateApplied     time.Time
}

// ScoreBreakdown holds the rounded scores reported in an explanation.
type ScoreBreakdown struct {
	Final       float32
	Semantic    float32
	SkillsMatch float32
	Facets      map[Facet]float32
}

// ExplainedResult is a ranked candidate with human-readable match reasons.
type ExplainedResult struct {
	Candidate     CandidateSummary
	Scores        ScoreBreakdown
	MatchReasons  []string
	ResumeSnippet string
}
