// Package dataset implements the dataset-backed insight provider: it loads a
// job postings CSV and derives deterministic, data-driven insights for a job
// title / career level pair. This is the engine behind the REST insight
// service's POST /insights endpoint.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// columnMapping renames dataset CSV headers to internal column names.
var columnMapping = map[string]string{
	"Title":            "job_title",
	"ExperienceLevel":  "career_level",
	"Skills":           "required_skills",
	"Responsibilities": "job_description",
	"Keywords":         "expertise_areas",
}

// requiredColumns must be present (post-mapping) for the dataset to load.
var requiredColumns = []string{"job_title", "career_level", "job_description", "required_skills"}

// Row is one job posting record after column mapping and derivation.
type Row struct {
	JobTitle           string
	CareerLevel        string
	Description        string
	RequiredSkills     string
	ExpertiseAreas     string
	LeadershipKeywords string
	TenureInfo         string
}

// LoadError represents a failure loading or mapping the dataset file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset load failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset load failed for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and maps a job postings CSV into a Provider.
func Load(path string) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open dataset file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Tolerate ragged rows; missing cells become ""

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot parse CSV", Cause: err}
	}
	if len(records) < 1 {
		return nil, &LoadError{Path: path, Message: "dataset is empty"}
	}

	rows, err := mapRecords(records)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "column mapping failed", Cause: err}
	}

	return &Provider{rows: rows}, nil
}

// mapRecords applies the column mapping to the header row and builds Rows,
// deriving the leadership and tenure columns from the description when the
// dataset does not carry them directly.
func mapRecords(records [][]string) ([]Row, error) {
	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if mapped, ok := columnMapping[name]; ok {
			name = mapped
		}
		index[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("required column %q is missing; check the CSV headers", col)
		}
	}

	cell := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{
			JobTitle:           cell(record, "job_title"),
			CareerLevel:        cell(record, "career_level"),
			Description:        cell(record, "job_description"),
			RequiredSkills:     cell(record, "required_skills"),
			ExpertiseAreas:     cell(record, "expertise_areas"),
			LeadershipKeywords: cell(record, "leadership_keywords"),
			TenureInfo:         cell(record, "tenure_info"),
		}
		if row.LeadershipKeywords == "" {
			row.LeadershipKeywords = deriveKeywords(leadershipPattern, row.Description)
		}
		if row.TenureInfo == "" {
			row.TenureInfo = deriveKeywords(tenurePattern, row.Description)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// deriveKeywords joins all pattern matches found in the text.
func deriveKeywords(pattern string, text string) string {
	matches := findAllInsensitive(pattern, text)
	return strings.Join(matches, "; ")
}
