package jsonl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/charcheck"
)

// Writer writes one JSON object per finding.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes findings in order.
func (w *Writer) Write(findings []charcheck.Finding) error {
	for _, f := range findings {
		if err := w.enc.Encode(toRecord(f)); err != nil {
			return fmt.Errorf("write finding %s:%d: %w", f.Path, f.Span.LineIndex, err)
		}
	}
	return nil
}
