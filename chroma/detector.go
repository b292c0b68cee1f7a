package chroma

import "github.com/alecthomas/chroma/v2/lexers"

// LanguageDetector picks a chroma lexer from a file name.
type LanguageDetector struct{}

// NewLanguageDetector creates a new chroma-based language detector.
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{}
}

// DetectFromPath returns the name of the lexer matching path, or "" when
// no lexer claims it.
func (d *LanguageDetector) DetectFromPath(path string) string {
	if path == "" {
		return ""
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
