// Package gitdiff checks the lines added by a unified diff using the
// go-gitdiff parser.
package gitdiff

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/charcheck"
)

// Compile-time interface verification.
var _ charcheck.DiffChecker = (*Checker)(nil)

// Checker classifies added diff lines against a repertoire.
type Checker struct {
	rep charcheck.Repertoire
}

// NewChecker creates a Checker for rep.
func NewChecker(rep charcheck.Repertoire) *Checker {
	return &Checker{rep: rep}
}

// CheckDiff parses a unified diff and returns a finding for every added line
// that is not representable. Deleted files and binary patches are skipped.
func (c *Checker) CheckDiff(r io.Reader) ([]charcheck.Finding, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}

	var findings []charcheck.Finding
	for _, file := range files {
		if file.IsDelete || file.IsBinary {
			continue
		}
		for _, frag := range file.TextFragments {
			findings = append(findings, c.checkFragment(file.NewName, frag)...)
		}
	}
	return findings, nil
}

func (c *Checker) checkFragment(path string, frag *gitdiff.TextFragment) []charcheck.Finding {
	var findings []charcheck.Finding
	newLine := int(frag.NewPosition)
	for _, line := range frag.Lines {
		if line.Op == gitdiff.OpDelete {
			continue
		}
		if line.Op == gitdiff.OpAdd {
			if f, ok := c.checkLine(path, newLine, line.Line); ok {
				findings = append(findings, f)
			}
		}
		newLine++
	}
	return findings
}

// checkLine classifies one added line located at lineNum in the new file.
// The whole diff line is one line even if it carries a carriage return.
func (c *Checker) checkLine(path string, lineNum int, text string) (charcheck.Finding, bool) {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	col := 0
	for _, r := range text {
		col++
		if !c.rep.Contains(r) {
			return charcheck.Finding{
				Path: path,
				Span: charcheck.Span{
					LineIndex:   lineNum,
					StartColumn: 1,
					EndColumn:   utf8.RuneCountInString(text) + 1,
				},
				Column:   col,
				Offender: r,
			}, true
		}
	}
	return charcheck.Finding{}, false
}
