package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the standard terminal tab stop interval.
const tabWidth = 8

// DisplayWidth calculates the display width of a string, correctly handling
// tab characters which expand to the next 8-column boundary.
// This fixes the issue where lipgloss.Width returns 0 for tabs.
func DisplayWidth(s string) int {
	return displayWidthFrom(s, 0)
}

// displayWidthFrom calculates the display width of a string starting from
// a given column position, as tab expansion depends on the current column.
func displayWidthFrom(s string, startCol int) int {
	col := startCol
	for _, r := range s {
		if r == '\t' {
			// Tab advances to next tab stop (multiple of tabWidth)
			col = ((col / tabWidth) + 1) * tabWidth
		} else {
			col += lipgloss.Width(string(r))
		}
	}
	return col
}

// fitWidth pads plain text with spaces to exactly width cells, cutting it
// with an ellipsis when it is wider.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := DisplayWidth(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		next := displayWidthFrom(string(r), col)
		if next > width-1 {
			break
		}
		b.WriteRune(r)
		col = next
	}
	b.WriteString("…")
	return b.String() + strings.Repeat(" ", max(0, width-col-1))
}
