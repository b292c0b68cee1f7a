package charcheck

import "io"

// DiffChecker checks the lines a diff adds.
type DiffChecker interface {
	// CheckDiff reads a unified diff and returns a finding for every added
	// line that is not representable, located by its new line number.
	CheckDiff(r io.Reader) ([]Finding, error)
}
