// Package lipgloss renders checked documents for the terminal using the
// lipgloss library.
package lipgloss

import "github.com/fwojciec/charcheck"

// Compile-time interface verification.
var _ charcheck.Theme = (*Theme)(nil)

// Theme is a fixed Palette.
type Theme struct {
	palette charcheck.Palette
}

// Palette returns the colors of the theme.
func (t *Theme) Palette() charcheck.Palette {
	return t.palette
}

// DefaultTheme returns a dark theme loosely based on One Dark.
func DefaultTheme() *Theme {
	return &Theme{palette: charcheck.Palette{
		Foreground: "#abb2bf",
		Background: "#282c34",
		Gutter:     "#5c6370",

		Keyword:  "#c678dd",
		Comment:  "#5c6370",
		String:   "#98c379",
		Number:   "#d19a66",
		Operator: "#56b6c2",
		Function: "#61afef",
		Builtin:  "#e5c07b",
		Name:     "#e06c75",

		Invalid:       "#5c2a2e",
		InvalidGutter: "#e06c75",
		Offender:      "#ffd75f",
	}}
}

// TestTheme returns a theme with distinct, predictable colors for tests.
func TestTheme() *Theme {
	return &Theme{palette: charcheck.Palette{
		Foreground: "#ffffff",
		Background: "#000000",
		Gutter:     "#808080",

		Keyword:  "#ff0001",
		Comment:  "#ff0002",
		String:   "#ff0003",
		Number:   "#ff0004",
		Operator: "#ff0005",
		Function: "#ff0006",
		Builtin:  "#ff0007",
		Name:     "#ff0008",

		Invalid:       "#aa0000",
		InvalidGutter: "#ff0000",
		Offender:      "#ffff00",
	}}
}
