package explain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/poiesic/talentsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func testCandidate() *core.RankedCandidate {
	return &core.RankedCandidate{
		Applicant: &core.Applicant{
			Id:              42,
			SourceID:        "src-42",
			FullName:        "Maria Santos",
			Email:           "maria@example.com",
			JobTitle:        "Senior Civil Engineer",
			CurrentCompany:  "Acme Construction",
			Location:        "Manila, Philippines",
			EducationLevel:  "Bachelor's Degree",
			YearsExperience: 7.5,
			LongestTenure:   4,
			SkillsText:      "AutoCAD, Revit, Project Management",
			ResumeText:      strings.Repeat("Experienced civil engineer. ", 20),
			ResumeURL:       "https://example.com/resume/42",
			DateApplied:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		FacetScores: map[core.Facet]float32{
			core.FacetResume: 0.91234,
			core.FacetSkills: 0.85,
		},
		SemanticScore:    0.78123,
		SkillsMatchScore: 0.5,
		FinalScore:       0.69687,
	}
}

func testQuery() core.ParsedQuery {
	return core.ParsedQuery{
		SearchIntent: "civil engineer with AutoCAD experience",
		Filters: core.FilterSet{
			MinExperience:     ptrF(5),
			Location:          ptrS("Manila, Philippines"),
			EducationLevel:    ptrS("Bachelor's Degree"),
			RequiredSkills:    []string{"AutoCAD", "Python"},
			SeniorityKeywords: []string{"senior"},
		},
		Backend: "mock",
	}
}

func TestExplain(t *testing.T) {
	result := Explain(testCandidate(), testQuery())

	t.Run("candidate summary", func(t *testing.T) {
		assert.Equal(t, core.ID(42), result.Candidate.Id)
		assert.Equal(t, "Maria Santos", result.Candidate.Name)
		assert.Equal(t, "Senior Civil Engineer", result.Candidate.JobTitle)
		assert.Equal(t, 7.5, result.Candidate.YearsExperience)
	})

	t.Run("scores rounded", func(t *testing.T) {
		assert.Equal(t, float32(0.697), result.Scores.Final)
		assert.Equal(t, float32(0.781), result.Scores.Semantic)
		assert.Equal(t, float32(0.5), result.Scores.SkillsMatch)
		assert.Equal(t, float32(0.912), result.Scores.Facets[core.FacetResume])
	})

	t.Run("match reasons", func(t *testing.T) {
		joined := strings.Join(result.MatchReasons, "\n")
		assert.Contains(t, joined, "exceeds 5+ requirement by 2.5 years")
		assert.Contains(t, joined, "Located in Manila, Philippines")
		assert.Contains(t, joined, "matches requirement")
		assert.Contains(t, joined, "Has required skills: AutoCAD")
		assert.Contains(t, joined, "Missing skills: Python")
		assert.Contains(t, joined, "Seniority level: senior position")
		assert.Contains(t, joined, "Current role: Senior Civil Engineer")
		assert.Contains(t, joined, "Strong semantic match")
	})

	t.Run("snippet truncated with marker", func(t *testing.T) {
		assert.Len(t, result.ResumeSnippet, snippetMaxLen+3)
		assert.True(t, strings.HasSuffix(result.ResumeSnippet, "..."))
	})
}

func TestExplain_IsPure(t *testing.T) {
	candidate := testCandidate()
	query := testQuery()

	before := *candidate.Applicant
	first := Explain(candidate, query)
	second := Explain(candidate, query)

	assert.Equal(t, first, second, "explaining twice must yield identical results")
	assert.Equal(t, before, *candidate.Applicant, "explain must not mutate the candidate")
}

func TestExplain_UnmetFilters(t *testing.T) {
	candidate := testCandidate()
	candidate.Applicant.YearsExperience = 3
	candidate.Applicant.Location = "Cebu City, Philippines"
	candidate.Applicant.EducationLevel = "Diploma/Vocational"
	candidate.SemanticScore = 0.55

	result := Explain(candidate, testQuery())
	joined := strings.Join(result.MatchReasons, "\n")

	assert.Contains(t, joined, "below 5+ requirement")
	assert.Contains(t, joined, "requested: Manila, Philippines")
	assert.Contains(t, joined, "requested: Bachelor's Degree")
	assert.Contains(t, joined, "Good semantic match")
}

func TestExplain_MaxExperienceAndTiers(t *testing.T) {
	t.Run("within max range", func(t *testing.T) {
		candidate := testCandidate()
		query := core.ParsedQuery{Filters: core.FilterSet{MaxExperience: ptrF(10)}}
		result := Explain(candidate, query)
		assert.Contains(t, strings.Join(result.MatchReasons, "\n"), "within 0-10 range")
	})

	t.Run("above max", func(t *testing.T) {
		candidate := testCandidate()
		query := core.ParsedQuery{Filters: core.FilterSet{MaxExperience: ptrF(5)}}
		result := Explain(candidate, query)
		assert.Contains(t, strings.Join(result.MatchReasons, "\n"), "above 5 maximum")
	})

	t.Run("moderate tier", func(t *testing.T) {
		candidate := testCandidate()
		candidate.SemanticScore = 0.35
		result := Explain(candidate, core.ParsedQuery{})
		assert.Contains(t, strings.Join(result.MatchReasons, "\n"), "Moderate semantic match")
	})
}

func TestExplain_ShortResumeNotTruncated(t *testing.T) {
	candidate := testCandidate()
	candidate.Applicant.ResumeText = "Short resume."
	result := Explain(candidate, core.ParsedQuery{})
	assert.Equal(t, "Short resume.", result.ResumeSnippet)

	candidate.Applicant.ResumeText = ""
	result = Explain(candidate, core.ParsedQuery{})
	assert.Empty(t, result.ResumeSnippet)
}

func TestExplain_SnippetTruncatesOnRuneBoundary(t *testing.T) {
	candidate := testCandidate()
	// Three bytes per rune, so the byte cap lands mid-rune.
	candidate.Applicant.ResumeText = strings.Repeat("日", 100)
	result := Explain(candidate, core.ParsedQuery{})

	assert.True(t, utf8.ValidString(result.ResumeSnippet))
	assert.True(t, strings.HasSuffix(result.ResumeSnippet, "..."))
	assert.Len(t, result.ResumeSnippet, 198+3)
}

func TestFormatResult(t *testing.T) {
	result := Explain(testCandidate(), testQuery())
	formatted := FormatResult(result)

	assert.Contains(t, formatted, "Name: Maria Santos")
	assert.Contains(t, formatted, "Match Score: 0.697")
	assert.Contains(t, formatted, "- Semantic: 0.781")
	assert.Contains(t, formatted, "resume: 0.912")
	assert.Contains(t, formatted, "Match Reasons:")
	assert.Contains(t, formatted, "Resume Preview:")
	assert.Contains(t, formatted, "Full Resume: https://example.com/resume/42")

	// Facets print in canonical order: resume before skills.
	require.Less(t,
		strings.Index(formatted, "resume:"),
		strings.Index(formatted, "skills:"))
}
