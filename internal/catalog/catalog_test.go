package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, JobTitles[0], DefaultJobTitle())
	assert.Equal(t, CareerLevels[0], DefaultCareerLevel())
	assert.Equal(t, "Business Analyst", DefaultJobTitle())
	assert.Equal(t, "Entry Level", DefaultCareerLevel())
}

func TestCatalogsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, JobTitles)
	assert.NotEmpty(t, CareerLevels)
	for _, title := range JobTitles {
		assert.NotEmpty(t, title)
	}
	for _, level := range CareerLevels {
		assert.NotEmpty(t, level)
	}
}

func TestContainsJobTitle(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"exact match", "Data Scientist", true},
		{"case insensitive", "data scientist", true},
		{"surrounding whitespace", "  Business Analyst ", true},
		{"not in catalog", "Astronaut", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsJobTitle(tt.value))
		})
	}
}

func TestContainsCareerLevel(t *testing.T) {
	assert.True(t, ContainsCareerLevel("Entry Level"))
	assert.True(t, ContainsCareerLevel("SENIOR LEVEL"))
	assert.False(t, ContainsCareerLevel("Intern"))
}
