package bubbletea_test

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/charcheck"
	"github.com/fwojciec/charcheck/cp1252"
	"github.com/muesli/termenv"
)

// trueColorRenderer creates a lipgloss renderer that outputs true colors.
// This is useful for testing color output without affecting global state.
func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// plainRenderer creates a lipgloss renderer without colors.
func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func checkedDoc(path, text string) *charcheck.Document {
	return &charcheck.Document{Path: path, Result: cp1252.Default().Classify(text)}
}
