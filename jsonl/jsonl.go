// Package jsonl reads and writes findings as JSON Lines.
package jsonl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/charcheck"
)

// record is the wire form of one finding.
type record struct {
	Path        string `json:"path"`
	Line        int    `json:"line"`
	StartColumn int    `json:"start_column"`
	EndColumn   int    `json:"end_column"`
	Column      int    `json:"column"`
	Rune        string `json:"rune"`
	CodePoint   string `json:"codepoint"`
}

func toRecord(f charcheck.Finding) record {
	return record{
		Path:        f.Path,
		Line:        f.Span.LineIndex,
		StartColumn: f.Span.StartColumn,
		EndColumn:   f.Span.EndColumn,
		Column:      f.Column,
		Rune:        string(f.Offender),
		CodePoint:   fmt.Sprintf("%U", f.Offender),
	}
}

func (r record) finding() (charcheck.Finding, error) {
	f := charcheck.Finding{
		Path: r.Path,
		Span: charcheck.Span{
			LineIndex:   r.Line,
			StartColumn: r.StartColumn,
			EndColumn:   r.EndColumn,
		},
		Column: r.Column,
	}
	switch {
	case r.CodePoint != "":
		n, err := strconv.ParseUint(strings.TrimPrefix(r.CodePoint, "U+"), 16, 32)
		if err != nil {
			return charcheck.Finding{}, fmt.Errorf("invalid codepoint %q: %w", r.CodePoint, err)
		}
		f.Offender = rune(n)
	case r.Rune != "":
		f.Offender, _ = utf8.DecodeRuneInString(r.Rune)
	}
	return f, nil
}
