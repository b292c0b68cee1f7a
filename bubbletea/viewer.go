package bubbletea

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/charcheck"
)

// Compile-time interface verification.
var _ charcheck.Viewer = (*Viewer)(nil)

// Viewer runs the interactive model in the alternate screen.
type Viewer struct {
	opts        []Option
	programOpts []tea.ProgramOption
}

// NewViewer creates a Viewer whose models are built with opts.
func NewViewer(opts ...Option) *Viewer {
	return &Viewer{opts: opts}
}

// WithProgramOptions appends options passed to the bubbletea program.
func (v *Viewer) WithProgramOptions(opts ...tea.ProgramOption) *Viewer {
	v.programOpts = append(v.programOpts, opts...)
	return v
}

// View displays doc and blocks until the user quits or ctx is done.
func (v *Viewer) View(ctx context.Context, doc *charcheck.Document) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, v.programOpts...)
	p := tea.NewProgram(NewModel(doc, v.opts...), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
