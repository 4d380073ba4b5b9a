// Package ui renders the end-of-run summary box.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
	// Highlight renders the value in the success color.
	Highlight bool
}

// RenderSummary lays the rows out as an aligned two-column box. Styling
// degrades to plain text on dumb terminals, so scripted captures still see
// the labels and values.
func RenderSummary(rows []SummaryRow) string {
	width := 0
	for _, row := range rows {
		if n := lipgloss.Width(row.Label); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, row.Label))
		style := valueStyle
		if row.Highlight {
			style = goodStyle
		}
		lines = append(lines, fmt.Sprintf("%s  %s", label, style.Render(row.Value)))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(ColorDim)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInk)
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorGood)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)
