// Package render prints frame columns for the command line.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))
	cellStyle = lipgloss.NewStyle()
	sepStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Strings formats every value of col with fmt.Sprint.
func Strings[T any](col []T) []string {
	out := make([]string, len(col))
	for i, v := range col {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Columns lays cols out side by side under headers. Short columns are
// padded with empty cells.
func Columns(headers []string, cols [][]string) string {
	ncols := max(len(headers), len(cols))
	widths := make([]int, ncols)
	rows := 0
	for i := range ncols {
		if i < len(headers) {
			widths[i] = lipgloss.Width(headers[i])
		}
		if i < len(cols) {
			rows = max(rows, len(cols[i]))
			for _, c := range cols[i] {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}

	sep := sepStyle.Render(" │ ")
	var b strings.Builder
	line := func(style lipgloss.Style, cell func(i int) string) {
		parts := make([]string, ncols)
		for i := range ncols {
			parts[i] = style.Width(widths[i]).Render(cell(i))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteByte('\n')
	}

	line(headerStyle, func(i int) string { return at(headers, i) })
	for r := range rows {
		line(cellStyle, func(i int) string {
			if i >= len(cols) {
				return ""
			}
			return at(cols[i], r)
		})
	}
	return b.String()
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
