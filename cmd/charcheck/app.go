package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/fwojciec/charcheck"
	"github.com/fwojciec/charcheck/fs"
	"github.com/fwojciec/charcheck/jsonl"
	dv "github.com/fwojciec/charcheck/lipgloss"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when there is neither a path nor standard input.
var ErrNoInput = errors.New("no input: pass a path or pipe text on standard input")

// Output formats.
const (
	FormatText   = "text"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// App checks documents against a repertoire and reports what it found.
type App struct {
	Classifier charcheck.Classifier
	Encoding   string

	// Paths lists files and directories to check. Input is read when empty.
	Paths []string
	Input io.Reader

	Output   io.Writer
	Format   string
	Printer  *dv.Printer
	Detector charcheck.LanguageDetector
	Baseline *charcheck.Baseline
	Logger   *slog.Logger

	// Jobs bounds how many files are checked at once. Zero means GOMAXPROCS.
	Jobs int
}

// Run checks every document, reports the findings not in the baseline and
// returns them. It returns charcheck.ErrNotRepresentable when any remain.
func (a *App) Run(ctx context.Context) ([]*charcheck.Document, []charcheck.Finding, error) {
	docs, err := a.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	var findings []charcheck.Finding
	for _, doc := range docs {
		findings = append(findings, doc.Result.Findings(doc.Path)...)
	}
	findings = a.Baseline.Filter(findings)

	if err := a.report(docs, findings); err != nil {
		return nil, nil, err
	}
	if len(findings) > 0 {
		return docs, findings, charcheck.ErrNotRepresentable
	}
	return docs, findings, nil
}

// RunDiff checks the lines added by the diff in Paths[0], or Input when
// Paths is empty.
func (a *App) RunDiff(ctx context.Context, checker charcheck.DiffChecker) ([]charcheck.Finding, error) {
	r, closeFn, err := a.openDiff()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	findings, err := checker.CheckDiff(r)
	if err != nil {
		return nil, err
	}
	findings = a.Baseline.Filter(findings)
	a.logger().Debug("checked diff", "findings", len(findings))

	if err := a.report(nil, findings); err != nil {
		return nil, err
	}
	if len(findings) > 0 {
		return findings, charcheck.ErrNotRepresentable
	}
	return findings, nil
}

func (a *App) load(ctx context.Context) ([]*charcheck.Document, error) {
	if len(a.Paths) == 0 {
		if a.Input == nil {
			return nil, ErrNoInput
		}
		text, err := fs.ReadAll(a.Input)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return []*charcheck.Document{a.check("", text)}, nil
	}

	files, err := fs.Expand(a.Paths)
	if err != nil {
		return nil, err
	}

	docs := make([]*charcheck.Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs())
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := fs.ReadText(path)
			if errors.Is(err, fs.ErrBinary) {
				a.logger().Warn("skipping binary file", "path", path)
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			docs[i] = a.check(path, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop the slots of skipped binary files, keeping path order.
	out := docs[:0]
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (a *App) check(path, text string) *charcheck.Document {
	doc := &charcheck.Document{
		Path:   path,
		Result: a.Classifier.Classify(text),
	}
	if a.Detector != nil {
		doc.Language = a.Detector.DetectFromPath(path)
	}
	s := doc.Result.Summary()
	a.logger().Debug("checked document", "path", path, "lines", s.Lines, "invalid", s.Invalid)
	return doc
}

func (a *App) report(docs []*charcheck.Document, findings []charcheck.Finding) error {
	switch a.Format {
	case FormatJSON:
		return jsonl.NewWriter(a.Output).Write(findings)
	case FormatPretty:
		return a.reportPretty(docs, findings)
	case FormatText, "":
		return a.reportText(findings)
	default:
		return fmt.Errorf("unknown format %q", a.Format)
	}
}

func (a *App) reportText(findings []charcheck.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(a.Output, a.printer().RenderFinding(f, a.Encoding)); err != nil {
			return err
		}
	}
	return nil
}

// reportPretty prints each document that still has findings with its lines
// highlighted, or the findings alone when there are no documents.
func (a *App) reportPretty(docs []*charcheck.Document, findings []charcheck.Finding) error {
	if docs == nil {
		return a.reportText(findings)
	}

	remaining := make(map[string]bool)
	for _, f := range findings {
		remaining[f.Path] = true
	}
	for _, doc := range docs {
		if !remaining[doc.Path] {
			continue
		}
		_, err := fmt.Fprintf(a.Output, "%s\n%s\n\n",
			a.printer().RenderSummary(doc.Path, doc.Result.Summary(), a.Encoding),
			a.printer().Render(doc))
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) openDiff() (io.Reader, func(), error) {
	if len(a.Paths) == 0 {
		if a.Input == nil {
			return nil, nil, ErrNoInput
		}
		return a.Input, func() {}, nil
	}
	f, err := os.Open(a.Paths[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open diff: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func (a *App) jobs() int {
	if a.Jobs > 0 {
		return a.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (a *App) printer() *dv.Printer {
	if a.Printer == nil {
		a.Printer = dv.NewPrinter(nil, dv.DefaultTheme())
	}
	return a.Printer
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// View checks the single file in Paths and opens it in viewer.
func (a *App) View(ctx context.Context, viewer charcheck.Viewer) error {
	docs, err := a.load(ctx)
	if err != nil {
		return err
	}
	if len(docs) != 1 {
		return fmt.Errorf("view needs exactly one text file, got %d", len(docs))
	}
	return viewer.View(ctx, docs[0])
}
