// Package chroma provides syntax highlighting and language detection using
// the chroma library.
package chroma

import (
	"errors"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/charcheck"
)

// Compile-time interface verification.
var (
	_ charcheck.Tokenizer        = (*Tokenizer)(nil)
	_ charcheck.LanguageDetector = (*LanguageDetector)(nil)
)

// StyleFunc maps a chroma token type to a visual style.
type StyleFunc func(chroma.TokenType) charcheck.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a chroma-based tokenizer that styles tokens with fn.
func NewTokenizer(fn StyleFunc) (*Tokenizer, error) {
	if fn == nil {
		return nil, errors.New("chroma: style function is required")
	}
	return &Tokenizer{styleFunc: fn}, nil
}

// Tokenize splits source code into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []charcheck.Token {
	if source == "" {
		return []charcheck.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []charcheck.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, charcheck.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return tokens
}

// StyleFromPalette returns a StyleFunc drawing token categories with the
// colors of p.
func StyleFromPalette(p charcheck.Palette) StyleFunc {
	return func(tt chroma.TokenType) charcheck.Style {
		return paletteStyle(p, tt)
	}
}

func paletteStyle(p charcheck.Palette, tt chroma.TokenType) charcheck.Style {
	// Exact matches first, then fall back to the broad category.
	switch tt {
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return charcheck.Style{Foreground: string(p.Builtin)}
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return charcheck.Style{Foreground: string(p.Function)}
	}

	switch {
	case tt.InCategory(chroma.Keyword):
		return charcheck.Style{Foreground: string(p.Keyword), Bold: true}
	case tt.InCategory(chroma.Comment):
		return charcheck.Style{Foreground: string(p.Comment)}
	case tt.InSubCategory(chroma.LiteralString):
		return charcheck.Style{Foreground: string(p.String)}
	case tt.InSubCategory(chroma.LiteralNumber):
		return charcheck.Style{Foreground: string(p.Number)}
	case tt.InCategory(chroma.Operator):
		return charcheck.Style{Foreground: string(p.Operator)}
	case tt.InCategory(chroma.Name):
		return charcheck.Style{Foreground: string(p.Name)}
	default:
		return charcheck.Style{}
	}
}
