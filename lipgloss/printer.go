package lipgloss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/charcheck"
)

// Printer renders checked documents with invalid lines highlighted across
// their whole width and the first offending character marked.
type Printer struct {
	renderer    *lipgloss.Renderer
	palette     charcheck.Palette
	tokenizer   charcheck.Tokenizer
	lineNumbers bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithTokenizer enables syntax colors on valid lines.
func WithTokenizer(t charcheck.Tokenizer) Option {
	return func(p *Printer) {
		p.tokenizer = t
	}
}

// WithLineNumbers toggles the line number gutter. It is on by default.
func WithLineNumbers(on bool) Option {
	return func(p *Printer) {
		p.lineNumbers = on
	}
}

// NewPrinter creates a Printer drawing with the colors of theme.
// If renderer is nil, the default renderer is used.
func NewPrinter(renderer *lipgloss.Renderer, theme charcheck.Theme, opts ...Option) *Printer {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	p := &Printer{
		renderer:    renderer,
		palette:     theme.Palette(),
		lineNumbers: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render returns the whole document, one rendered line per source line.
func (p *Printer) Render(doc *charcheck.Document) string {
	return strings.Join(p.RenderLines(doc), "\n")
}

// RenderLines renders each line of the document. The result has exactly
// one entry per line of doc.Result.
func (p *Printer) RenderLines(doc *charcheck.Document) []string {
	res := doc.Result
	if res == nil || len(res.Lines) == 0 {
		return nil
	}

	tokens := p.lineTokens(doc)
	width := len(strconv.Itoa(len(res.Lines)))

	out := make([]string, len(res.Lines))
	for i, line := range res.Lines {
		v := res.Verdicts[i]
		var b strings.Builder
		if p.lineNumbers {
			b.WriteString(p.gutter(line.Index, width, v.Valid))
		}
		if v.Valid {
			b.WriteString(p.validLine(line, tokens, i))
		} else {
			b.WriteString(p.invalidLine(line, v))
		}
		out[i] = b.String()
	}
	return out
}

// RenderFinding formats f as "path:line:column: message".
func (p *Printer) RenderFinding(f charcheck.Finding, encoding string) string {
	loc := fmt.Sprintf("%s:%d:%d:", f.Path, f.Span.LineIndex, f.Column)
	if f.Path == "" {
		loc = fmt.Sprintf("%d:%d:", f.Span.LineIndex, f.Column)
	}
	locStyle := p.renderer.NewStyle().Bold(true)
	codeStyle := p.color(p.renderer.NewStyle(), p.palette.Offender, true)
	return fmt.Sprintf("%s %s %q is not representable in %s",
		locStyle.Render(loc),
		codeStyle.Render(fmt.Sprintf("%U", f.Offender)),
		string(visible(f.Offender)),
		encoding,
	)
}

func (p *Printer) gutter(index, width int, valid bool) string {
	num := fmt.Sprintf("%*d", width, index)
	if valid {
		return p.color(p.renderer.NewStyle(), p.palette.Gutter, true).Render(num) + " │ "
	}
	style := p.color(p.renderer.NewStyle().Bold(true), p.palette.InvalidGutter, true)
	return style.Render(num) + style.Render(" ▌ ")
}

func (p *Printer) validLine(line charcheck.Line, tokens [][]charcheck.Token, i int) string {
	if i >= len(tokens) || tokens[i] == nil {
		return line.Content
	}
	var b strings.Builder
	for _, tok := range tokens[i] {
		b.WriteString(p.tokenStyle(tok.Style).Render(tok.Text))
	}
	return b.String()
}

func (p *Printer) invalidLine(line charcheck.Line, v charcheck.Verdict) string {
	base := p.color(p.renderer.NewStyle(), p.palette.Invalid, false)
	offender := p.color(base.Bold(true).Underline(true), p.palette.Offender, true)

	var before, after strings.Builder
	col := 0
	var mark string
	for _, r := range line.Content {
		col++
		switch {
		case col < v.Column:
			before.WriteRune(visible(r))
		case col == v.Column:
			mark = string(visible(r))
		default:
			after.WriteRune(visible(r))
		}
	}

	var b strings.Builder
	if before.Len() > 0 {
		b.WriteString(base.Render(before.String()))
	}
	b.WriteString(offender.Render(mark))
	if after.Len() > 0 {
		b.WriteString(base.Render(after.String()))
	}
	return b.String()
}

// lineTokens tokenizes the document once and regroups the tokens by line.
// It returns nil when no tokenizer or language is available.
func (p *Printer) lineTokens(doc *charcheck.Document) [][]charcheck.Token {
	if p.tokenizer == nil || doc.Language == "" {
		return nil
	}
	contents := make([]string, len(doc.Result.Lines))
	for i, l := range doc.Result.Lines {
		contents[i] = l.Content
	}
	tokens := p.tokenizer.Tokenize(doc.Language, strings.Join(contents, "\n"))
	if tokens == nil {
		return nil
	}
	return splitTokenLines(tokens, len(contents))
}

// splitTokenLines breaks tokens at newlines into n lines. Tokens past the
// last line are dropped.
func splitTokenLines(tokens []charcheck.Token, n int) [][]charcheck.Token {
	lines := make([][]charcheck.Token, n)
	cur := 0
	for _, tok := range tokens {
		parts := strings.Split(tok.Text, "\n")
		for j, part := range parts {
			if j > 0 {
				cur++
			}
			if cur >= n {
				return lines
			}
			if part != "" {
				lines[cur] = append(lines[cur], charcheck.Token{Text: part, Style: tok.Style})
			}
		}
	}
	return lines
}

func (p *Printer) tokenStyle(s charcheck.Style) lipgloss.Style {
	style := p.renderer.NewStyle().Bold(s.Bold).Underline(s.Underline)
	style = p.color(style, charcheck.Color(s.Foreground), true)
	return p.color(style, charcheck.Color(s.Background), false)
}

// color sets the foreground or background of style when c is not empty.
func (p *Printer) color(style lipgloss.Style, c charcheck.Color, fg bool) lipgloss.Style {
	if c == "" {
		return style
	}
	if fg {
		return style.Foreground(lipgloss.Color(c))
	}
	return style.Background(lipgloss.Color(c))
}

// visible replaces control characters with a printable stand-in of the
// same width so they cannot drive the terminal.
func visible(r rune) rune {
	switch {
	case r < 0x20:
		return 0x2400 + r
	case r == 0x7F:
		return '␡'
	case r >= 0x80 && r < 0xA0:
		return '�'
	default:
		return r
	}
}
