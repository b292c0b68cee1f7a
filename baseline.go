package charcheck

// Baseline is a set of known findings, keyed by path and line, that a
// check should not report again.
type Baseline struct {
	known map[baselineKey]struct{}
}

type baselineKey struct {
	path string
	line int
}

// NewBaseline creates a Baseline from previously recorded findings.
func NewBaseline(findings []Finding) *Baseline {
	b := &Baseline{known: make(map[baselineKey]struct{}, len(findings))}
	for _, f := range findings {
		b.known[baselineKey{f.Path, f.Span.LineIndex}] = struct{}{}
	}
	return b
}

// Contains reports whether f was already known. A nil Baseline knows nothing.
func (b *Baseline) Contains(f Finding) bool {
	if b == nil {
		return false
	}
	_, ok := b.known[baselineKey{f.Path, f.Span.LineIndex}]
	return ok
}

// Filter returns the findings not in the baseline, preserving order.
func (b *Baseline) Filter(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !b.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}
