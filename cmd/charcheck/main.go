// Command charcheck flags lines of text that cannot be represented in the
// Windows-1252 encoding.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/charcheck"
	"github.com/fwojciec/charcheck/bubbletea"
	"github.com/fwojciec/charcheck/chroma"
	"github.com/fwojciec/charcheck/cp1252"
	"github.com/fwojciec/charcheck/fs"
	"github.com/fwojciec/charcheck/gitdiff"
	"github.com/fwojciec/charcheck/jsonl"
	dv "github.com/fwojciec/charcheck/lipgloss"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// CLI is the command line interface.
type CLI struct {
	Config   kong.ConfigFlag `help:"Path to a JSON config file." type:"path"`
	LogLevel string          `help:"Log level (debug, info, warn, error)." enum:"debug,info,warn,error" default:"warn" env:"CHARCHECK_LOG_LEVEL"`
	Color    string          `help:"Color output (auto, always, never)." enum:"auto,always,never" default:"auto" env:"CHARCHECK_COLOR"`

	Check CheckCmd `cmd:"" default:"withargs" help:"Check files, directories or standard input"`
	Diff  DiffCmd  `cmd:"" help:"Check the lines added by a unified diff"`
	View  ViewCmd  `cmd:"" help:"Browse a file with unrepresentable lines highlighted"`
}

// Env carries the process environment a command runs in.
type Env struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	CLI    *CLI
}

// CheckCmd checks text documents.
type CheckCmd struct {
	Paths    []string `arg:"" optional:"" help:"Files or directories to check. Reads standard input when empty."`
	Format   string   `short:"f" help:"Output format (text, pretty, json)." enum:"text,pretty,json" default:"text" env:"CHARCHECK_FORMAT"`
	Baseline string   `help:"JSONL file of known findings to ignore." type:"path"`
	Jobs     int      `short:"j" help:"Files checked in parallel (0 uses all CPUs)." default:"0"`
}

func (c *CheckCmd) Run(env *Env) error {
	app, err := newApp(env, c.Format, c.Baseline)
	if err != nil {
		return err
	}
	app.Paths = c.Paths
	app.Jobs = c.Jobs
	_, _, err = app.Run(env.Ctx)
	return err
}

// DiffCmd checks a unified diff.
type DiffCmd struct {
	Path     string `arg:"" optional:"" help:"Diff file. Reads standard input when empty." type:"path"`
	Format   string `short:"f" help:"Output format (text, json)." enum:"text,json" default:"text" env:"CHARCHECK_FORMAT"`
	Baseline string `help:"JSONL file of known findings to ignore." type:"path"`
}

func (c *DiffCmd) Run(env *Env) error {
	app, err := newApp(env, c.Format, c.Baseline)
	if err != nil {
		return err
	}
	if c.Path != "" {
		app.Paths = []string{c.Path}
	}
	_, err = app.RunDiff(env.Ctx, gitdiff.NewChecker(cp1252.Default()))
	return err
}

// ViewCmd opens the interactive viewer.
type ViewCmd struct {
	Path string `arg:"" help:"File to view." type:"existingfile"`
}

func (c *ViewCmd) Run(env *Env) error {
	app, err := newApp(env, FormatText, "")
	if err != nil {
		return err
	}
	app.Paths = []string{c.Path}

	opts := []bubbletea.Option{
		bubbletea.WithEncoding(cp1252.Name),
		bubbletea.WithTheme(dv.DefaultTheme()),
	}
	if tokenizer, err := newTokenizer(); err == nil {
		opts = append(opts, bubbletea.WithTokenizer(tokenizer))
	}
	return app.View(env.Ctx, bubbletea.NewViewer(opts...))
}

// newApp wires an App from the global flags and the command's options.
func newApp(env *Env, format, baselinePath string) (*App, error) {
	mode, err := dv.ParseColorMode(env.CLI.Color)
	if err != nil {
		return nil, err
	}
	theme := dv.DefaultTheme()
	printerOpts := []dv.Option{}
	if format == FormatPretty {
		tokenizer, err := newTokenizer()
		if err != nil {
			return nil, err
		}
		printerOpts = append(printerOpts, dv.WithTokenizer(tokenizer))
	}

	app := &App{
		Classifier: cp1252.Default(),
		Encoding:   cp1252.Name,
		Input:      env.Stdin,
		Output:     env.Stdout,
		Format:     format,
		Printer:    dv.NewPrinter(dv.NewRenderer(env.Stdout, mode), theme, printerOpts...),
		Detector:   chroma.NewLanguageDetector(),
		Logger:     newLogger(env.Stderr, env.CLI.LogLevel),
	}

	if baselinePath != "" {
		known, err := jsonl.NewLoader().Load(baselinePath)
		if err != nil {
			return nil, err
		}
		app.Baseline = charcheck.NewBaseline(known)
		app.Logger.Debug("loaded baseline", "path", baselinePath, "findings", len(known))
	}
	return app, nil
}

func newTokenizer() (*chroma.Tokenizer, error) {
	return chroma.NewTokenizer(chroma.StyleFromPalette(dv.DefaultTheme().Palette()))
}

// Main parses args, runs the selected command and returns the exit code.
// configFile is loaded before flags when it exists.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, configFile string) int {
	var configPaths []string
	if configFile != "" {
		configPaths = append(configPaths, configFile)
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("charcheck"),
		kong.Description("Flag lines that cannot be represented in "+cp1252.Name+"."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Configuration(kong.JSON, configPaths...),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitError
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "charcheck: %v\n", err)
		return ExitError
	}

	env := &Env{Ctx: ctx, Stdin: stdin, Stdout: stdout, Stderr: stderr, CLI: &cli}
	err = kctx.Run(env)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, charcheck.ErrNotRepresentable):
		return ExitFindings
	default:
		fmt.Fprintf(stderr, "charcheck: %v\n", err)
		return ExitError
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Main(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, fs.DefaultConfigFile())
	stop()
	os.Exit(code)
}
