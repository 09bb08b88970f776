// Package insights repairs raw insight service responses into the canonical
// InsightResult shape. Generative backends return free-text bullet fields and
// arbitrary category ordering; the REST backend returns string arrays. Both
// pass through Normalize so callers only ever see a complete, ordered result.
package insights

import (
	"math"
	"strings"

	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// RawDistribution is the skill distribution as returned by a backend, before
// repair. Values may be any non-negative numbers; they do not have to sum to
// 100.
type RawDistribution struct {
	TechnicalPercentage float64 `json:"technical_percentage"`
	SoftPercentage      float64 `json:"soft_percentage"`
}

// RawCategory is one category entry as returned by a backend. Generative
// responses populate Content with `*`-delimited free text; the REST backend
// populates Points directly.
type RawCategory struct {
	Key     string   `json:"key"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Points  []string `json:"points,omitempty"`
}

// RawResponse is the backend-agnostic raw payload handed to Normalize.
type RawResponse struct {
	SkillDistribution *RawDistribution `json:"skill_distribution"`
	Categories        []RawCategory    `json:"categories"`
}

// Normalize validates and repairs a raw response into a complete
// InsightResult. It never returns a partial result: on any failure the result
// is nil. Normalizing an already-normal result is a no-op.
func Normalize(raw *RawResponse) (*types.InsightResult, error) {
	if raw == nil || raw.SkillDistribution == nil || len(raw.Categories) == 0 {
		return nil, ErrInvalidStructure
	}

	// Last occurrence wins on duplicate keys.
	byKey := make(map[types.CategoryKey]RawCategory, len(raw.Categories))
	for _, entry := range raw.Categories {
		byKey[types.CategoryKey(strings.TrimSpace(entry.Key))] = entry
	}

	categories := make([]types.InsightCategory, 0, len(types.AllCategoryKeys))
	for _, key := range types.AllCategoryKeys {
		entry, ok := byKey[key]
		if !ok {
			return nil, &IncompleteError{Missing: string(key)}
		}
		categories = append(categories, types.InsightCategory{
			Key:    key,
			Title:  key.Title(),
			Points: bulletPoints(entry),
		})
	}

	return &types.InsightResult{
		Distribution: normalizeDistribution(raw.SkillDistribution),
		Categories:   categories,
	}, nil
}

// bulletPoints produces the ordered bullet list for a category entry. Entries
// that already carry a Points array are used as-is after trimming; free-text
// Content is split on the `*` delimiter. A non-empty Content with no
// delimiter yields a single bullet.
func bulletPoints(entry RawCategory) []string {
	if len(entry.Points) > 0 {
		return trimNonEmpty(entry.Points)
	}
	return trimNonEmpty(strings.Split(entry.Content, "*"))
}

func trimNonEmpty(segments []string) []string {
	points := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			points = append(points, trimmed)
		}
	}
	return points
}

// normalizeDistribution rescales the pair so it sums to exactly 100, rounding
// into the technical bucket. A zero (or fully clamped) distribution defaults
// to an even split.
func normalizeDistribution(raw *RawDistribution) types.SkillDistribution {
	technical := math.Max(raw.TechnicalPercentage, 0)
	soft := math.Max(raw.SoftPercentage, 0)

	sum := technical + soft
	if sum == 0 {
		return types.SkillDistribution{TechnicalPercentage: 50, SoftPercentage: 50}
	}

	scaled := int(math.Round(technical / sum * 100))
	return types.SkillDistribution{
		TechnicalPercentage: scaled,
		SoftPercentage:      100 - scaled,
	}
}
