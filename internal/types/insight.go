// Package types provides type definitions for structured data used throughout the insight system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CategoryKey identifies one of the four fixed insight categories.
type CategoryKey string

// The four category keys. Every complete InsightResult carries exactly one
// category per key, in this order.
const (
	CategorySkills     CategoryKey = "skills"
	CategoryLeadership CategoryKey = "leadership"
	CategoryTenure     CategoryKey = "tenure"
	CategoryExpertise  CategoryKey = "expertise"
)

// AllCategoryKeys is the canonical category ordering.
var AllCategoryKeys = []CategoryKey{
	CategorySkills,
	CategoryLeadership,
	CategoryTenure,
	CategoryExpertise,
}

// categoryTitles maps each key to its display title. Titles are always derived
// from this table; whatever title a backend returns is ignored.
var categoryTitles = map[CategoryKey]string{
	CategorySkills:     "Skill Requirements",
	CategoryLeadership: "Leadership Experience",
	CategoryTenure:     "Employee Tenure",
	CategoryExpertise:  "Required Expertise",
}

// Valid reports whether the key is one of the four known categories.
func (k CategoryKey) Valid() bool {
	_, ok := categoryTitles[k]
	return ok
}

// Title returns the fixed display title for the key, or "" for unknown keys.
func (k CategoryKey) Title() string {
	return categoryTitles[k]
}

// Descriptor describes how a category is rendered: a marker glyph and a color
// name. The key set is closed, so this is a pure lookup rather than dynamic
// dispatch.
type Descriptor struct {
	Icon  string
	Color string
}

var categoryDescriptors = map[CategoryKey]Descriptor{
	CategorySkills:     {Icon: "⚙", Color: "cyan"},
	CategoryLeadership: {Icon: "★", Color: "yellow"},
	CategoryTenure:     {Icon: "⏳", Color: "green"},
	CategoryExpertise:  {Icon: "◆", Color: "magenta"},
}

// Descriptor returns the rendering descriptor for the key. Unknown keys get a
// plain bullet with no color.
func (k CategoryKey) Descriptor() Descriptor {
	if d, ok := categoryDescriptors[k]; ok {
		return d
	}
	return Descriptor{Icon: "•"}
}

// InsightRequest carries the two user-selected inputs for one insight fetch.
// It is immutable once constructed.
type InsightRequest struct {
	JobTitle    string `json:"job_title" validate:"required,min=1"`
	CareerLevel string `json:"career_level" validate:"required,min=1"`
}

// Validate validates the InsightRequest using the validator.
func (r *InsightRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillDistribution is the technical/soft skill split. After normalization the
// two percentages are non-negative and sum to exactly 100.
type SkillDistribution struct {
	TechnicalPercentage int `json:"technical_percentage"`
	SoftPercentage      int `json:"soft_percentage"`
}

// InsightCategory is one titled bullet list of a result.
type InsightCategory struct {
	Key    CategoryKey `json:"key"`
	Title  string      `json:"title"`
	Points []string    `json:"points"`
}

// InsightResult is the canonical, fully-normalized insight payload. Categories
// are always ordered [skills, leadership, tenure, expertise].
type InsightResult struct {
	Distribution SkillDistribution `json:"skill_distribution"`
	Categories   []InsightCategory `json:"categories"`
}

// Complete reports whether the result holds all four categories in canonical
// order with their fixed titles and a distribution summing to 100.
func (r *InsightResult) Complete() bool {
	if r == nil || len(r.Categories) != len(AllCategoryKeys) {
		return false
	}
	for i, key := range AllCategoryKeys {
		if r.Categories[i].Key != key || r.Categories[i].Title != key.Title() {
			return false
		}
	}
	if r.Distribution.TechnicalPercentage < 0 || r.Distribution.SoftPercentage < 0 {
		return false
	}
	return r.Distribution.TechnicalPercentage+r.Distribution.SoftPercentage == 100
}

// Category returns the category for the given key, or nil if absent.
func (r *InsightResult) Category(key CategoryKey) *InsightCategory {
	for i := range r.Categories {
		if r.Categories[i].Key == key {
			return &r.Categories[i]
		}
	}
	return nil
}
