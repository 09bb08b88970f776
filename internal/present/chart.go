package present

import (
	"strings"

	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// chartWidth is the character width of the distribution bar.
const chartWidth = 40

// Chart is the skill-distribution visualization bound to one result. Its
// lifetime matches the current result's: it is built when a result is
// installed and released before the next one is built or on teardown.
type Chart struct {
	distribution types.SkillDistribution
	released     bool
}

// NewChart builds a chart from a normalized distribution.
func NewChart(distribution types.SkillDistribution) *Chart {
	return &Chart{distribution: distribution}
}

// Release marks the chart as released. Rendering a released chart yields
// nothing; double release is a no-op.
func (c *Chart) Release() {
	c.released = true
}

// Released reports whether the chart has been released.
func (c *Chart) Released() bool {
	return c.released
}

// Bar renders the distribution as a fixed-width two-segment bar. The
// technical segment is rounded to the nearest cell.
func (c *Chart) Bar() string {
	if c.released {
		return ""
	}

	technical := (c.distribution.TechnicalPercentage*chartWidth + 50) / 100
	if technical > chartWidth {
		technical = chartWidth
	}
	return strings.Repeat("█", technical) + strings.Repeat("░", chartWidth-technical)
}

// Distribution returns the underlying normalized distribution.
func (c *Chart) Distribution() types.SkillDistribution {
	return c.distribution
}
