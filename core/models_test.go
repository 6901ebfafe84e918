package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("applicant-42")
		id2 := IDFromContent("applicant-42")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content yields different ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("applicant-1"), IDFromContent("applicant-2"))
	})

	t.Run("empty content still produces an id", func(t *testing.T) {
		assert.NotZero(t, IDFromContent(""))
	})
}

func TestFacets(t *testing.T) {
	facets := Facets()
	require.Len(t, facets, 3)
	assert.Equal(t, []Facet{FacetResume, FacetSkills, FacetTasks}, facets)

	assert.Equal(t, "resume", FacetResume.String())
	assert.Equal(t, "skills", FacetSkills.String())
	assert.Equal(t, "tasks", FacetTasks.String())
	assert.Equal(t, "unknown", Facet(0).String())
}

func TestApplicantVectorAccess(t *testing.T) {
	app := &Applicant{}
	for i, facet := range Facets() {
		v := []float32{float32(i), 1, 2}
		app.SetVector(facet, v)
		assert.Equal(t, v, app.Vector(facet))
	}
	assert.Nil(t, app.Vector(Facet(99)))
}

func TestFilterSetJSONShape(t *testing.T) {
	// The wire contract is exactly these nine keys.
	data, err := json.Marshal(&FilterSet{})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))

	expected := []string{
		"min_experience",
		"max_experience",
		"location",
		"education_level",
		"required_skills",
		"seniority_keywords",
		"desired_job_titles",
		"target_companies",
		"min_date_applied",
	}
	require.Len(t, keys, len(expected))
	for _, key := range expected {
		assert.Contains(t, keys, key)
	}
}

func TestFilterSetEmpty(t *testing.T) {
	t.Run("nil is empty", func(t *testing.T) {
		var f *FilterSet
		assert.True(t, f.Empty())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		assert.True(t, (&FilterSet{}).Empty())
	})

	t.Run("any set field makes it non-empty", func(t *testing.T) {
		minExp := 5.0
		assert.False(t, (&FilterSet{MinExperience: &minExp}).Empty())

		location := "Manila, Philippines"
		assert.False(t, (&FilterSet{Location: &location}).Empty())

		assert.False(t, (&FilterSet{RequiredSkills: []string{"Python"}}).Empty())

		cutoff := int64(1700000000)
		assert.False(t, (&FilterSet{MinDateApplied: &cutoff}).Empty())
	})
}
