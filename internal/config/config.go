// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted in config files and on the command line.
const (
	BackendREST   = "rest"
	BackendGemini = "gemini"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Request inputs
	JobTitle    string `json:"job_title,omitempty"`    // Job title to look up
	CareerLevel string `json:"career_level,omitempty"` // Career level to look up

	// Backend selection
	Backend string `json:"backend,omitempty"`  // Insight backend: "rest" or "gemini"
	BaseURL string `json:"base_url,omitempty"` // Base URL of the REST insight service
	APIKey  string `json:"api_key,omitempty"`  // Gemini API key

	// Server
	Port        int    `json:"port,omitempty"`         // Port for the serve command
	DatasetPath string `json:"dataset_path,omitempty"` // Path to the job postings CSV

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendREST, BackendGemini:
	default:
		return fmt.Errorf("config error: 'backend' must be %q or %q", BackendREST, BackendGemini)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.DatasetPath != "" {
		if _, err := os.Stat(c.DatasetPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.DatasetPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.CareerLevel == "" {
		result.CareerLevel = defaults.CareerLevel
	}
	if result.Backend == "" {
		result.Backend = defaults.Backend
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatasetPath == "" {
		result.DatasetPath = defaults.DatasetPath
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: config true overrides default false, but not vice versa
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
