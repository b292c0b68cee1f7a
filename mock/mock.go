// Package mock provides function-field implementations of the charcheck
// interfaces for tests.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/charcheck"
)

var (
	_ charcheck.Repertoire       = (*Repertoire)(nil)
	_ charcheck.Classifier       = (*Classifier)(nil)
	_ charcheck.Tokenizer        = (*Tokenizer)(nil)
	_ charcheck.LanguageDetector = (*LanguageDetector)(nil)
	_ charcheck.Viewer           = (*Viewer)(nil)
	_ charcheck.DiffChecker      = (*DiffChecker)(nil)
)

type Repertoire struct {
	ContainsFn func(r rune) bool
}

func (m *Repertoire) Contains(r rune) bool {
	return m.ContainsFn(r)
}

type Classifier struct {
	ClassifyFn func(text string) *charcheck.Result
}

func (m *Classifier) Classify(text string) *charcheck.Result {
	return m.ClassifyFn(text)
}

type Tokenizer struct {
	TokenizeFn func(language, source string) []charcheck.Token
}

func (m *Tokenizer) Tokenize(language, source string) []charcheck.Token {
	return m.TokenizeFn(language, source)
}

type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (m *LanguageDetector) DetectFromPath(path string) string {
	return m.DetectFromPathFn(path)
}

type Viewer struct {
	ViewFn func(ctx context.Context, doc *charcheck.Document) error
}

func (m *Viewer) View(ctx context.Context, doc *charcheck.Document) error {
	return m.ViewFn(ctx, doc)
}

type DiffChecker struct {
	CheckDiffFn func(r io.Reader) ([]charcheck.Finding, error)
}

func (m *DiffChecker) CheckDiff(r io.Reader) ([]charcheck.Finding, error) {
	return m.CheckDiffFn(r)
}
