// Package bubbletea provides an interactive terminal viewer for checked
// documents.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/charcheck"
	dv "github.com/fwojciec/charcheck/lipgloss"
)

// jumpContext is how many lines are kept above an issue after a jump.
const jumpContext = 3

// Option configures a Model.
type Option func(*config)

type config struct {
	renderer  *lipgloss.Renderer
	theme     charcheck.Theme
	tokenizer charcheck.Tokenizer
	encoding  string
}

// WithRenderer sets the lipgloss renderer used for all styling.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *config) {
		c.renderer = r
	}
}

// WithTheme sets the color theme.
func WithTheme(t charcheck.Theme) Option {
	return func(c *config) {
		c.theme = t
	}
}

// WithTokenizer enables syntax colors on valid lines.
func WithTokenizer(t charcheck.Tokenizer) Option {
	return func(c *config) {
		c.tokenizer = t
	}
}

// WithEncoding sets the encoding name shown in the header.
func WithEncoding(name string) Option {
	return func(c *config) {
		c.encoding = name
	}
}

// Model is the bubbletea model of the viewer. Invalid lines are highlighted
// and can be stepped through with n and N.
type Model struct {
	content  string
	header   string
	total    int
	invalid  []int // 1-based line indexes
	cursor   int   // index into invalid, -1 before the first jump
	renderer *lipgloss.Renderer

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	width    int
	height   int
}

// NewModel creates a viewer model for doc.
func NewModel(doc *charcheck.Document, opts ...Option) Model {
	cfg := config{
		theme:    dv.DefaultTheme(),
		encoding: "the target encoding",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.DefaultRenderer()
	}

	var printerOpts []dv.Option
	if cfg.tokenizer != nil {
		printerOpts = append(printerOpts, dv.WithTokenizer(cfg.tokenizer))
	}
	printer := dv.NewPrinter(cfg.renderer, cfg.theme, printerOpts...)

	res := doc.Result
	if res == nil {
		res = &charcheck.Result{}
	}

	return Model{
		content:  printer.Render(doc),
		header:   printer.RenderSummary(doc.Path, res.Summary(), cfg.encoding),
		total:    len(res.Lines),
		invalid:  res.InvalidLines(),
		cursor:   -1,
		renderer: cfg.renderer,
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.jump(1)
		case key.Matches(msg, m.keys.Prev):
			m.jump(-1)
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		case key.Matches(msg, m.keys.Down):
			m.viewport.SetYOffset(m.viewport.YOffset + 1)
		case key.Matches(msg, m.keys.Up):
			m.viewport.SetYOffset(m.viewport.YOffset - 1)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	vh := max(1, height-lipgloss.Height(m.header)-1)
	if !m.ready {
		m.viewport = viewport.New(width, vh)
		m.viewport.SetContent(m.content)
		m.ready = true
		return
	}
	m.viewport.Width = width
	m.viewport.Height = vh
	m.viewport.SetYOffset(m.viewport.YOffset)
}

// jump moves the cursor dir steps through the invalid lines and scrolls the
// selected line into view.
func (m *Model) jump(dir int) {
	if len(m.invalid) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+dir, 0), len(m.invalid)-1)
	m.viewport.SetYOffset(max(0, m.invalid[m.cursor]-1-jumpContext))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header, m.viewport.View(), m.statusBar())
}

func (m Model) statusBar() string {
	pos := fmt.Sprintf(" line %d/%d", min(m.viewport.YOffset+1, m.total), m.total)

	var issue string
	switch {
	case len(m.invalid) == 0:
		issue = "no issues"
	case m.cursor < 0:
		issue = fmt.Sprintf("%d issues", len(m.invalid))
	default:
		issue = fmt.Sprintf("issue %d/%d (line %d)", m.cursor+1, len(m.invalid), m.invalid[m.cursor])
	}

	left := strings.Join([]string{pos, issue}, " · ")
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	room := m.width - lipgloss.Width(helpView) - 1
	if room < DisplayWidth(left) {
		return m.renderer.NewStyle().Reverse(true).Render(fitWidth(left, m.width))
	}
	return m.renderer.NewStyle().Reverse(true).Render(fitWidth(left, room)) + " " + helpView
}

// Cursor returns the 1-based line of the selected issue, or 0 if none.
func (m Model) Cursor() int {
	if m.cursor < 0 {
		return 0
	}
	return m.invalid[m.cursor]
}

// YOffset returns the index of the first visible line.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}
