// Package charcheck provides domain types for checking text against the
// repertoire of a legacy single-byte encoding.
package charcheck

import "errors"

// ErrNotRepresentable is returned by callers that treat any invalid line as
// a failure, such as the command line tool.
var ErrNotRepresentable = errors.New("text contains characters the encoding cannot represent")

// Repertoire is a fixed set of characters an encoding can render.
type Repertoire interface {
	// Contains reports whether r can be represented.
	Contains(r rune) bool
}

// Classifier classifies every line of a text buffer.
type Classifier interface {
	// Classify splits text into lines and returns a verdict per line.
	Classify(text string) *Result
}

// Line is a maximal run of characters between line terminators.
type Line struct {
	Index   int    // 1-based
	Content string // without the terminator
	Length  int    // in runes, not bytes
}

// Verdict is the validity classification of one line.
type Verdict struct {
	LineIndex int
	Valid     bool
	Column    int  // 1-based column of the first offending rune, 0 if valid
	Offender  rune // first offending rune, 0 if valid
}

// Span identifies the character range of an invalid line.
// Columns are 1-based and EndColumn is exclusive.
type Span struct {
	LineIndex   int
	StartColumn int
	EndColumn   int
}

// Finding is a Span located in a named document, carrying the first
// offending character for diagnostics.
type Finding struct {
	Path     string
	Span     Span
	Column   int
	Offender rune
}

// Summary counts the lines of a Result.
type Summary struct {
	Lines   int
	Invalid int
}

// Valid reports whether no line was flagged.
func (s Summary) Valid() bool {
	return s.Invalid == 0
}
