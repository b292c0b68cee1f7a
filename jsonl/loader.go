package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/charcheck"
)

// maxLineSize bounds a single JSONL record.
const maxLineSize = 10 * 1024 * 1024

// Loader reads findings from JSONL files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every finding in the file at path. Empty lines are skipped.
func (l *Loader) Load(path string) ([]charcheck.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open baseline: %w", err)
	}
	defer f.Close()

	var findings []charcheck.Finding
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		finding, err := r.finding()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		findings = append(findings, finding)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	return findings, nil
}
