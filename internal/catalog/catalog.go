// Package catalog holds the fixed selection catalogs for job titles and
// career levels. The catalogs are ordered; the first entry of each is the
// default selection.
package catalog

import "strings"

// JobTitles is the ordered list of selectable job titles.
var JobTitles = []string{
	"Business Analyst",
	"Data Scientist",
	"Data Analyst",
	"Software Engineer",
	".NET Developer",
	"Product Manager",
}

// CareerLevels is the ordered list of selectable career levels.
var CareerLevels = []string{
	"Entry Level",
	"Mid Level",
	"Senior Level",
}

// DefaultJobTitle returns the default job title selection.
func DefaultJobTitle() string {
	return JobTitles[0]
}

// DefaultCareerLevel returns the default career level selection.
func DefaultCareerLevel() string {
	return CareerLevels[0]
}

// ContainsJobTitle reports whether the value matches a catalog job title.
// Matching is case-insensitive, mirroring how the insight service filters its
// dataset.
func ContainsJobTitle(value string) bool {
	return contains(JobTitles, value)
}

// ContainsCareerLevel reports whether the value matches a catalog career level.
func ContainsCareerLevel(value string) bool {
	return contains(CareerLevels, value)
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}
