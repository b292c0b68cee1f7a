package charcheck

import "unicode/utf8"

// Result holds the lines of one buffer and their verdicts. Lines[i] and
// Verdicts[i] always describe the same line.
type Result struct {
	Lines    []Line
	Verdicts []Verdict
}

// Check classifies text against rep and returns a whole-line span for every
// line that is not representable, in document order.
func Check(rep Repertoire, text string) []Span {
	return Classify(rep, text).Spans()
}

// Classify splits text into lines and decides for each whether every
// character is a member of rep. Empty lines are valid.
func Classify(rep Repertoire, text string) *Result {
	lines := SplitLines(text)
	res := &Result{
		Lines:    lines,
		Verdicts: make([]Verdict, len(lines)),
	}
	for i, line := range lines {
		res.Verdicts[i] = classifyLine(rep, line)
	}
	return res
}

// classifyLine stops at the first rune outside the repertoire.
func classifyLine(rep Repertoire, line Line) Verdict {
	col := 0
	for _, r := range line.Content {
		col++
		if !rep.Contains(r) {
			return Verdict{LineIndex: line.Index, Column: col, Offender: r}
		}
	}
	return Verdict{LineIndex: line.Index, Valid: true}
}

// SplitLines splits text on "\r\n", "\n" and a lone "\r". Terminators are
// dropped. Text ending in a terminator yields a trailing empty line, and
// empty text yields no lines.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}

	var lines []Line
	start := 0
	// Terminators are ASCII, so they never occur inside a multi-byte rune.
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = appendLine(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = appendLine(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return appendLine(lines, text[start:])
}

func appendLine(lines []Line, content string) []Line {
	return append(lines, Line{
		Index:   len(lines) + 1,
		Content: content,
		Length:  utf8.RuneCountInString(content),
	})
}

// Spans returns one span per invalid line covering the whole line, in
// ascending line order. Valid lines produce nothing.
func (r *Result) Spans() []Span {
	var spans []Span
	for i, v := range r.Verdicts {
		if v.Valid {
			continue
		}
		spans = append(spans, lineSpan(r.Lines[i]))
	}
	return spans
}

// Findings returns the spans of r located in path, together with the first
// offending character of each line.
func (r *Result) Findings(path string) []Finding {
	var findings []Finding
	for i, v := range r.Verdicts {
		if v.Valid {
			continue
		}
		findings = append(findings, Finding{
			Path:     path,
			Span:     lineSpan(r.Lines[i]),
			Column:   v.Column,
			Offender: v.Offender,
		})
	}
	return findings
}

// InvalidLines returns the 1-based indexes of the invalid lines.
func (r *Result) InvalidLines() []int {
	var idx []int
	for _, v := range r.Verdicts {
		if !v.Valid {
			idx = append(idx, v.LineIndex)
		}
	}
	return idx
}

// Summary counts the lines of r.
func (r *Result) Summary() Summary {
	s := Summary{Lines: len(r.Lines)}
	for _, v := range r.Verdicts {
		if !v.Valid {
			s.Invalid++
		}
	}
	return s
}

func lineSpan(line Line) Span {
	return Span{
		LineIndex:   line.Index,
		StartColumn: 1,
		EndColumn:   line.Length + 1,
	}
}
