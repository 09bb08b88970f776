package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhikari20/AIJobInsight/internal/insights"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

const testCSV = `Title,ExperienceLevel,Skills,Responsibilities,Keywords
Data Scientist,Entry Level,"Python; SQL; Communication","Perform data analysis and present findings to stakeholders. Collaborate with the team. Growth opportunities and learning culture.","Statistical Modeling; Data Visualization"
Data Scientist,Entry Level,"Python; Statistics","Assist in building models. Typical tenure 1-3 years.","Statistical Modeling"
Business Analyst,Mid Level,"Excel; Communication; Teamwork","Lead small projects and mentor junior analysts.","Market Analysis"
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job_dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadTestProvider(t *testing.T) *Provider {
	t.Helper()
	provider, err := Load(writeDataset(t, testCSV))
	require.NoError(t, err)
	return provider
}

func TestLoad(t *testing.T) {
	provider := loadTestProvider(t)
	assert.Equal(t, 3, provider.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := writeDataset(t, "Title,Skills\nData Scientist,Python\n")
	_, err := Load(path)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "career_level")
}

func TestInsightsFiltersCaseInsensitively(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "data scientist",
		CareerLevel: "ENTRY LEVEL",
	})
	require.NoError(t, err)
	assert.Equal(t, "data scientist", insight.JobTitle)
	assert.NotEmpty(t, insight.SkillRequirements)
}

func TestInsightsNotFound(t *testing.T) {
	provider := loadTestProvider(t)

	_, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Astronaut",
		CareerLevel: "Entry Level",
	})

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "No job postings found for 'Astronaut' at 'Entry Level' level")
}

func TestInsightsDistribution(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Data Scientist",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)

	// Aggregated skills: Python x2, SQL, Statistics (technical) and
	// Communication (soft) -> 4 technical hits vs 1 soft hit -> 80/20.
	assert.Equal(t, float64(80), insight.SkillDistribution.TechnicalPercentage)
	assert.Equal(t, float64(20), insight.SkillDistribution.SoftPercentage)
}

func TestInsightsDistributionNoKeywordHits(t *testing.T) {
	csv := "Title,ExperienceLevel,Skills,Responsibilities,Keywords\n" +
		"Juggler,Entry Level,Juggling,Juggle objects,Circus Arts\n"
	provider, err := Load(writeDataset(t, csv))
	require.NoError(t, err)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Juggler",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(50), insight.SkillDistribution.TechnicalPercentage)
	assert.Equal(t, float64(50), insight.SkillDistribution.SoftPercentage)
}

func TestInsightsSkillBullets(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Data Scientist",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)

	assert.Contains(t, insight.SkillRequirements[0], "Key skills frequently mentioned include:")
	assert.Contains(t, insight.SkillRequirements[0], "Python")
	assert.Contains(t, insight.SkillRequirements, "Proficiency in Python is highly valued for this role.")
	assert.Contains(t, insight.SkillRequirements,
		"Strong analytical abilities for data interpretation and problem-solving are essential.")
}

func TestInsightsLeadershipAndTenureBullets(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Business Analyst",
		CareerLevel: "Mid Level",
	})
	require.NoError(t, err)

	assert.Contains(t, insight.LeadershipExperience,
		"Opportunities to lead small projects or initiatives and drive strategic decisions may be available.")
	assert.Contains(t, insight.LeadershipExperience,
		"Expect to support or mentor junior team members as you gain experience.")

	// No tenure indicators in that posting -> templated fallback.
	require.Len(t, insight.EmployeeTenure, 1)
	assert.Contains(t, insight.EmployeeTenure[0], "Mid Level Business Analyst roles often see professionals")
}

func TestInsightsTenurePhraseExtraction(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Data Scientist",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)

	assert.Contains(t, insight.EmployeeTenure, "Typical tenure 1-3 years")
	assert.Contains(t, insight.EmployeeTenure,
		"Opportunities for promotion or transitioning to specialized roles are common after gaining experience.")
}

func TestInsightsExpertiseBullets(t *testing.T) {
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Data Scientist",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)

	assert.Contains(t, insight.RequiredExpertise[0], "Core expertise areas include:")
	assert.Contains(t, insight.RequiredExpertise[0], "Statistical Modeling")
	assert.Contains(t, insight.RequiredExpertise,
		"A strong foundation in Statistical Modeling is often a key requirement.")
}

func TestInsightsNormalizesCleanly(t *testing.T) {
	// The provider output, renamed into the raw shape, must pass normalization
	// untouched: four categories, distribution already summing to 100.
	provider := loadTestProvider(t)

	insight, err := provider.Insights(types.InsightRequest{
		JobTitle:    "Data Scientist",
		CareerLevel: "Entry Level",
	})
	require.NoError(t, err)

	raw := &insights.RawResponse{
		SkillDistribution: &insight.SkillDistribution,
		Categories: []insights.RawCategory{
			{Key: "skills", Points: insight.SkillRequirements},
			{Key: "leadership", Points: insight.LeadershipExperience},
			{Key: "tenure", Points: insight.EmployeeTenure},
			{Key: "expertise", Points: insight.RequiredExpertise},
		},
	}

	result, err := insights.Normalize(raw)
	require.NoError(t, err)
	assert.True(t, result.Complete())
	assert.Equal(t, 80, result.Distribution.TechnicalPercentage)
}

func TestMostCommon(t *testing.T) {
	entries := []string{"Python", "SQL", "Python", "Excel", "SQL", "Python", "R"}
	assert.Equal(t, []string{"Python", "SQL", "Excel"}, mostCommon(entries, 3))
	assert.Equal(t, []string{"Python"}, mostCommon(entries, 1))
	assert.Empty(t, mostCommon(nil, 3))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Python", "SQL", "Excel"}, splitList("Python; SQL, Excel"))
	assert.Empty(t, splitList(" ; , "))
}
