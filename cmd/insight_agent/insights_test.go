package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhikari20/AIJobInsight/internal/client"
	"github.com/sadhikari20/AIJobInsight/internal/config"
)

func resetInsightsFlags() {
	insightsJobTitle = ""
	insightsCareerLevel = ""
	insightsBackend = ""
	insightsBaseURL = ""
	insightsAPIKey = ""
	insightsConfigPath = ""
	insightsVerbose = false
}

func TestResolveInsightsConfig_Defaults(t *testing.T) {
	resetInsightsFlags()

	cfg, err := resolveInsightsConfig()
	require.NoError(t, err)

	assert.Equal(t, "Business Analyst", cfg.JobTitle)
	assert.Equal(t, "Entry Level", cfg.CareerLevel)
	assert.Equal(t, config.BackendREST, cfg.Backend)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
}

func TestResolveInsightsConfig_FlagsWin(t *testing.T) {
	resetInsightsFlags()
	insightsJobTitle = "Data Scientist"
	insightsBackend = "gemini"

	cfg, err := resolveInsightsConfig()
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", cfg.JobTitle)
	assert.Equal(t, config.BackendGemini, cfg.Backend)
	// Untouched fields still come from defaults
	assert.Equal(t, "Entry Level", cfg.CareerLevel)
}

func TestResolveInsightsConfig_FileBetweenFlagsAndDefaults(t *testing.T) {
	resetInsightsFlags()

	content := `{"job_title": "Product Manager", "career_level": "Mid Level"}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	insightsConfigPath = tmpFile
	insightsCareerLevel = "Senior Level"

	cfg, err := resolveInsightsConfig()
	require.NoError(t, err)

	// Flag beats file, file beats defaults
	assert.Equal(t, "Senior Level", cfg.CareerLevel)
	assert.Equal(t, "Product Manager", cfg.JobTitle)
}

func TestResolveInsightsConfig_InvalidBackend(t *testing.T) {
	resetInsightsFlags()
	insightsBackend = "soap"

	_, err := resolveInsightsConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'backend' must be")
}

func TestNewSource_REST(t *testing.T) {
	source, closeSource, err := newSource(context.Background(), config.Config{
		Backend: config.BackendREST,
		BaseURL: "http://localhost:8000",
	})
	require.NoError(t, err)
	defer func() { _ = closeSource() }()

	assert.IsType(t, &client.RESTSource{}, source)
}

func TestNewSource_GeminiRequiresKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, _, err := newSource(context.Background(), config.Config{Backend: config.BackendGemini})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewSource_UnknownBackend(t *testing.T) {
	_, _, err := newSource(context.Background(), config.Config{Backend: "carrier-pigeon"})
	assert.Error(t, err)
}
