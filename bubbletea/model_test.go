package bubbletea_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/charcheck"
	"github.com/fwojciec/charcheck/bubbletea"
	"github.com/fwojciec/charcheck/cp1252"
	"github.com/fwojciec/charcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longDoc has 60 lines with issues on lines 45 and 50.
func longDoc() *charcheck.Document {
	lines := make([]string, 60)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	lines[44] = "bad Ж 45"
	lines[49] = "bad 世 50"
	return checkedDoc("doc.txt", strings.Join(lines, "\n"))
}

func sized(t *testing.T, m bubbletea.Model) bubbletea.Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(bubbletea.Model)
}

func press(t *testing.T, m bubbletea.Model, keys string) bubbletea.Model {
	t.Helper()
	for _, r := range keys {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(bubbletea.Model)
	}
	return m
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("waits for window size", func(t *testing.T) {
		t.Parallel()

		m := bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer()))

		assert.Contains(t, m.View(), "Initializing")
	})

	t.Run("renders header, lines and status", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(longDoc(),
			bubbletea.WithRenderer(plainRenderer()),
			bubbletea.WithEncoding(cp1252.Name)))
		view := m.View()

		assert.Contains(t, view, "doc.txt")
		assert.Contains(t, view, "60 lines")
		assert.Contains(t, view, "2 not representable in windows-1252")
		assert.Contains(t, view, " 1 │ line 1")
		assert.NotContains(t, view, "line 45")
		assert.Contains(t, view, "line 1/60 · 2 issues")
		assert.LessOrEqual(t, strings.Count(view, "\n")+1, 24)
	})

	t.Run("highlights invalid lines", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(checkedDoc("x.txt", "ok\nnot😀ok"),
			bubbletea.WithRenderer(trueColorRenderer())))

		assert.Contains(t, m.View(), "48;2;")
	})

	t.Run("passes tokenizer to the printer", func(t *testing.T) {
		t.Parallel()

		called := false
		tokenizer := &mock.Tokenizer{
			TokenizeFn: func(_, source string) []charcheck.Token {
				called = true
				return []charcheck.Token{{Text: source}}
			},
		}
		doc := checkedDoc("main.go", "package main")
		doc.Language = "Go"

		bubbletea.NewModel(doc, bubbletea.WithRenderer(plainRenderer()), bubbletea.WithTokenizer(tokenizer))

		assert.True(t, called)
	})

	t.Run("handles document without result", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(&charcheck.Document{Path: "empty.txt"},
			bubbletea.WithRenderer(plainRenderer())))

		assert.Contains(t, m.View(), "no issues")
	})
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("n and N step through issues", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer())))
		require.Equal(t, 0, m.Cursor())

		m = press(t, m, "n")
		assert.Equal(t, 45, m.Cursor())
		assert.Contains(t, m.View(), "45 ▌ bad Ж 45")
		assert.Contains(t, m.View(), "issue 1/2 (line 45)")

		m = press(t, m, "n")
		assert.Equal(t, 50, m.Cursor())

		m = press(t, m, "n")
		assert.Equal(t, 50, m.Cursor(), "cursor stops at the last issue")

		m = press(t, m, "N")
		assert.Equal(t, 45, m.Cursor())

		m = press(t, m, "NN")
		assert.Equal(t, 45, m.Cursor(), "cursor stops at the first issue")
	})

	t.Run("jump keeps context above the issue", func(t *testing.T) {
		t.Parallel()

		lines := make([]string, 100)
		for i := range lines {
			lines[i] = "x"
		}
		lines[29] = "Ж"
		m := sized(t, bubbletea.NewModel(checkedDoc("", strings.Join(lines, "\n")),
			bubbletea.WithRenderer(plainRenderer())))

		m = press(t, m, "n")

		assert.Equal(t, 30, m.Cursor())
		assert.Equal(t, 26, m.YOffset())
	})

	t.Run("n is a no-op without issues", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(checkedDoc("", "all\nfine"), bubbletea.WithRenderer(plainRenderer())))

		m = press(t, m, "nN")

		assert.Equal(t, 0, m.Cursor())
		assert.Equal(t, 0, m.YOffset())
		assert.Contains(t, m.View(), "no issues")
	})

	t.Run("G and g scroll to bottom and top", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer())))

		m = press(t, m, "G")
		assert.Greater(t, m.YOffset(), 0)
		assert.Contains(t, m.View(), "line 60")

		m = press(t, m, "g")
		assert.Equal(t, 0, m.YOffset())
	})

	t.Run("j and k scroll by line", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer())))

		m = press(t, m, "jjj")
		assert.Equal(t, 3, m.YOffset())

		m = press(t, m, "k")
		assert.Equal(t, 2, m.YOffset())
	})

	t.Run("q quits", func(t *testing.T) {
		t.Parallel()

		m := sized(t, bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer())))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(longDoc(), bubbletea.WithRenderer(plainRenderer()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("doc.txt")) &&
			bytes.Contains(out, []byte("2 issues"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("issue 1/2 (line 45)"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(bubbletea.Model)
	require.True(t, ok)
	assert.Equal(t, 45, final.Cursor())
}
