package charcheck

// Token is a run of source text with a visual style.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a run of text is drawn.
type Style struct {
	Foreground string // hex color, empty for terminal default
	Background string
	Bold       bool
	Underline  bool
}

// Tokenizer splits source code into styled tokens.
type Tokenizer interface {
	// Tokenize returns tokens for source in the given language, or nil if
	// the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector maps file paths to tokenizer language names.
type LanguageDetector interface {
	// DetectFromPath returns the language for path, or "" if unknown.
	DetectFromPath(path string) string
}

// Color is a hex color string such as "#e06c75".
type Color string

// Palette is the set of colors a theme draws with.
type Palette struct {
	Foreground Color
	Background Color
	Gutter     Color

	Keyword  Color
	Comment  Color
	String   Color
	Number   Color
	Operator Color
	Function Color
	Builtin  Color
	Name     Color

	Invalid       Color // background of lines that are not representable
	InvalidGutter Color
	Offender      Color // foreground of the first offending rune
}

// Theme provides a Palette.
type Theme interface {
	Palette() Palette
}
