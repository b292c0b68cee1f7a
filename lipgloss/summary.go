package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/charcheck"
)

// RenderSummary returns a bordered panel naming the document and how many
// of its lines cannot be represented in encoding.
//
// Example output:
//
//	╭──────────╮ 120 lines
//	│ notes.md │ 3 not representable in windows-1252
//	╰──────────╯
func (p *Printer) RenderSummary(path string, s charcheck.Summary, encoding string) string {
	if path == "" {
		path = "<stdin>"
	}

	nodeStyle := p.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	var status string
	if s.Valid() {
		status = fmt.Sprintf("all representable in %s", encoding)
	} else {
		style := p.color(p.renderer.NewStyle().Bold(true), p.palette.InvalidGutter, true)
		status = style.Render(fmt.Sprintf("%d not representable in %s", s.Invalid, encoding))
	}

	counts := lipgloss.JoinVertical(lipgloss.Left,
		" "+pluralize(s.Lines, "line", "lines"),
		" "+status,
	)
	return lipgloss.JoinHorizontal(lipgloss.Center, nodeStyle.Render(path), counts)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
