package present

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// colorAttributes maps descriptor color names to terminal attributes.
var colorAttributes = map[string]color.Attribute{
	"cyan":    color.FgCyan,
	"yellow":  color.FgYellow,
	"green":   color.FgGreen,
	"magenta": color.FgMagenta,
}

// Renderer writes insight results and errors to a terminal.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out. Colors are disabled when
// stdout is not a terminal.
func NewRenderer(out io.Writer) *Renderer {
	if f, ok := out.(*os.File); ok {
		color.NoColor = !isatty.IsTerminal(f.Fd())
	}
	return &Renderer{out: out}
}

// Render writes the distribution chart and the four category panels.
func (r *Renderer) Render(result *types.InsightResult, chart *Chart) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	fmt.Fprintln(r.out)
	_, _ = bold.Fprintln(r.out, "Skill Distribution")
	if chart != nil && !chart.Released() {
		fmt.Fprintf(r.out, "  %s\n", chart.Bar())
	}
	_, _ = dim.Fprintf(r.out, "  Technical %d%%  /  Soft %d%%\n",
		result.Distribution.TechnicalPercentage, result.Distribution.SoftPercentage)

	for _, category := range result.Categories {
		descriptor := category.Key.Descriptor()
		heading := color.New(color.Bold)
		if attr, ok := colorAttributes[descriptor.Color]; ok {
			heading = heading.Add(attr)
		}

		fmt.Fprintln(r.out)
		_, _ = heading.Fprintf(r.out, "%s %s\n", descriptor.Icon, category.Title)
		for _, point := range category.Points {
			fmt.Fprintf(r.out, "  • %s\n", point)
		}
	}
	fmt.Fprintln(r.out)
}

// RenderError writes the failure message verbatim. No partial result is ever
// shown alongside it.
func (r *Renderer) RenderError(message string) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(r.out, "Error: %s\n", message)
}
