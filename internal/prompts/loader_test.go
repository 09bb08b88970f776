package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInsightPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("insights.json", "generate-job-insights")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobTitle}}")
	assert.Contains(t, prompt, "{{.CareerLevel}}")
	assert.Contains(t, prompt, "skill_distribution")

	// All four category keys are demanded by the template.
	for _, key := range []string{"skills", "leadership", "tenure", "expertise"} {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
}

func TestGetMissingKey(t *testing.T) {
	ClearCache()

	_, err := Get("insights.json", "does-not-exist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("nope.json", "anything")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "Insights for {{.JobTitle}} ({{.CareerLevel}})"
	result := Format(template, map[string]string{
		"JobTitle":    "Data Scientist",
		"CareerLevel": "Entry Level",
	})
	assert.Equal(t, "Insights for Data Scientist (Entry Level)", result)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("insights.json", "missing-key")
	})
}

func TestFormattedPromptHasNoPlaceholders(t *testing.T) {
	prompt := Format(MustGet("insights.json", "generate-job-insights"), map[string]string{
		"JobTitle":    "Business Analyst",
		"CareerLevel": "Mid Level",
	})
	assert.False(t, strings.Contains(prompt, "{{."), "all placeholders should be substituted")
}
