// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sadhikari20/AIJobInsight/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequest outputs a summary of the outgoing insight request.
func (p *Printer) PrintRequest(request types.InsightRequest, backend string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job Title:    %s\n", request.JobTitle))
	sb.WriteString(fmt.Sprintf("Career Level: %s\n", request.CareerLevel))
	sb.WriteString(fmt.Sprintf("Backend:      %s", backend))

	p.printBox("INSIGHT REQUEST", sb.String())
}

// PrintRawResponse outputs the raw backend payload, truncated to keep the
// verbose log readable.
func (p *Printer) PrintRawResponse(payload []byte) {
	if len(payload) == 0 {
		return
	}

	const maxPayloadLines = 12
	text := strings.TrimSpace(string(payload))
	lines := strings.Split(text, "\n")
	if len(lines) > maxPayloadLines {
		truncated := len(lines) - maxPayloadLines
		lines = append(lines[:maxPayloadLines], fmt.Sprintf("... and %d more lines", truncated))
	}

	p.printBox("RAW RESPONSE", strings.Join(lines, "\n"))
}

// PrintResult outputs a human-readable summary of the normalized result.
func (p *Printer) PrintResult(result *types.InsightResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Technical: %d%%   Soft: %d%%\n",
		result.Distribution.TechnicalPercentage, result.Distribution.SoftPercentage))

	for _, category := range result.Categories {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s (%d points)\n", category.Title, len(category.Points)))
		count := min(len(category.Points), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", category.Points[i]))
		}
		if len(category.Points) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(category.Points)-maxItemsToShow))
		}
	}

	p.printBox("NORMALIZED INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
