package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Deterministic(t *testing.T) {
	rec := Record{
		Skills:          []string{"Python", "sql", "unknown-skill"},
		Location:        "Bangalore Karnataka",
		ExperienceLevel: "senior",
		Education:       []string{"B.Tech", "M.Tech"},
		Category:        "software",
	}
	first := Encode(rec)
	second := Encode(rec)
	assert.Equal(t, first, second)
	assert.Len(t, first, VectorWidth)
}

func TestEncode_EmptyRecord(t *testing.T) {
	vec := Encode(Record{})
	require.Len(t, vec, VectorWidth)

	// everything zero except possibly the category positions, which here
	// resolve to the fallback index 0 -> both features zero as well
	for i, v := range vec {
		assert.Zerof(t, v, "position %d", i)
	}
}

func TestEncode_LocationSubstring(t *testing.T) {
	vec := Encode(Record{Location: "Bangalore Karnataka"})
	assert.Equal(t, 1.0, vec[locationOffset]) // bangalore is vocabulary entry 0

	vec = Encode(Record{Location: "somewhere else entirely"})
	for i := 0; i < len(locationVocabulary); i++ {
		assert.Zero(t, vec[locationOffset+i])
	}
}

func TestEncode_UnknownSkillsDropped(t *testing.T) {
	vec := Encode(Record{Skills: []string{"basket weaving", "fortran"}})
	for i := 0; i < len(skillVocabulary); i++ {
		assert.Zero(t, vec[skillOffset+i])
	}
}

func TestEncode_ExperienceOneHot(t *testing.T) {
	vec := Encode(Record{ExperienceLevel: "mid"})
	total := 0.0
	for i := 0; i < len(experienceLevels); i++ {
		total += vec[experienceOffset+i]
	}
	assert.Equal(t, 1.0, total)
	assert.Equal(t, 1.0, vec[experienceOffset+1])

	// unknown level leaves the whole block zero
	vec = Encode(Record{ExperienceLevel: "principal"})
	for i := 0; i < len(experienceLevels); i++ {
		assert.Zero(t, vec[experienceOffset+i])
	}
}

func TestEncode_HighestDegreeWins(t *testing.T) {
	vec := Encode(Record{Education: []string{"BSc Physics", "PhD Physics"}})
	assert.Zero(t, vec[degreeOffset])
	assert.Zero(t, vec[degreeOffset+1])
	assert.Equal(t, 1.0, vec[degreeOffset+2])

	vec = Encode(Record{Education: []string{"MBA", "B.Tech"}})
	assert.Equal(t, 1.0, vec[degreeOffset+1])
	assert.Zero(t, vec[degreeOffset+2])
}

func TestEncode_CategoryFeatures(t *testing.T) {
	vec := Encode(Record{Category: "finance"}) // index 3
	assert.InDelta(t, 0.3, vec[categoryOffset], 1e-12)
	assert.Equal(t, 1.0, vec[categoryOffset+1])

	vec = Encode(Record{Category: "operations"}) // index 7
	assert.InDelta(t, 0.7, vec[categoryOffset], 1e-12)
	assert.Equal(t, 1.0, vec[categoryOffset+1])

	vec = Encode(Record{Category: "education"}) // index 8, even parity
	assert.InDelta(t, 0.8, vec[categoryOffset], 1e-12)
	assert.Zero(t, vec[categoryOffset+1])

	// unknown category falls back to index 0
	vec = Encode(Record{Category: "astronautics"})
	assert.Zero(t, vec[categoryOffset])
	assert.Zero(t, vec[categoryOffset+1])
}

func TestNonZeroFraction(t *testing.T) {
	assert.Zero(t, nonZeroFraction(nil))
	assert.Equal(t, 0.5, nonZeroFraction([]float64{1, 0, 2, 0}))
	assert.Equal(t, 1.0, nonZeroFraction([]float64{1, 1}))
}
