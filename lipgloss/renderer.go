package lipgloss

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects whether output carries ANSI colors.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses the name of a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// NewRenderer creates a lipgloss renderer writing to w. ColorAuto detects
// the profile from w; the other modes force true color or plain text.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
