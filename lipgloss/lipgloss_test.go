package lipgloss_test

import (
	"bytes"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// plainRenderer creates a lipgloss renderer that never emits escapes.
func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// hasANSI reports whether s contains an escape sequence.
func hasANSI(s string) bool {
	return bytes.Contains([]byte(s), []byte("\x1b["))
}
