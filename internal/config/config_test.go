package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"job_title": "Data Scientist",
		"career_level": "Senior Level",
		"backend": "rest",
		"base_url": "http://localhost:8000",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Data Scientist", cfg.JobTitle)
	assert.Equal(t, "Senior Level", cfg.CareerLevel)
	assert.Equal(t, "rest", cfg.Backend)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "grpc"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'backend' must be")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'port' must be between")

	cfg = &Config{Port: 70000}
	err = cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_MissingDataset(t *testing.T) {
	cfg := &Config{DatasetPath: "/nonexistent/postings.csv"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{Backend: BackendGemini, Port: 8000}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		JobTitle: "Product Manager",
		Backend:  "gemini",
	}

	defaults := Config{
		JobTitle:    "Business Analyst",
		CareerLevel: "Entry Level",
		Backend:     "rest",
		BaseURL:     "http://localhost:8000",
		Port:        8000,
		Verbose:     true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win
	assert.Equal(t, "Product Manager", merged.JobTitle)
	assert.Equal(t, "gemini", merged.Backend)

	// Empty values fall back to defaults
	assert.Equal(t, "Entry Level", merged.CareerLevel)
	assert.Equal(t, "http://localhost:8000", merged.BaseURL)
	assert.Equal(t, 8000, merged.Port)
	assert.True(t, merged.Verbose)
}
