package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/rgbconv/rgb"
	"github.com/lixenwraith/rgbconv/status"
	"github.com/lixenwraith/rgbconv/terminal"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usageText = `Usage: rgbconv <command> [flags] [args]

Commands:
  convert  [--] r,g,b ...       validate channel triples and print them (-- before negative values)
  palette  [file.toml]          list a palette (built-in when no file is given)
  nearest  [-palette f] r,g,b   find the closest palette entry
  jobs                          run the background job monitor

Run 'rgbconv <command> -h' for command flags.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries the resolved settings of one invocation
type app struct {
	out      io.Writer
	errOut   io.Writer
	log      *slog.Logger
	mode     terminal.ColorMode
	swatches bool
	metrics  *status.Registry
}

// commonFlags are registered on every subcommand
type commonFlags struct {
	color    *string
	logLevel *string
	swatch   *bool
}

func newFlagSet(name string, stdout, stderr io.Writer) (*flag.FlagSet, commonFlags) {
	cfg := loadCLIConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := commonFlags{
		color:    fs.String("color", cfg.ColorMode, "Color mode: auto, truecolor, 256"),
		logLevel: fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error"),
		swatch:   fs.Bool("swatch", isTerminal(stdout), "Print a color swatch before each line"),
	}
	return fs, cf
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	var cmd func(context.Context, *app, []string) int
	var fs *flag.FlagSet
	var cf commonFlags

	switch args[0] {
	case "convert":
		fs, cf = newFlagSet("convert", stdout, stderr)
		cmd = runConvert
	case "palette":
		fs, cf = newFlagSet("palette", stdout, stderr)
		export := fs.Bool("export", false, "Write the palette as TOML instead of listing it")
		cmd = func(ctx context.Context, a *app, rest []string) int {
			return runPalette(ctx, a, rest, *export)
		}
	case "nearest":
		fs, cf = newFlagSet("nearest", stdout, stderr)
		path := fs.String("palette", "", "Palette file (built-in when empty)")
		cmd = func(ctx context.Context, a *app, rest []string) int {
			return runNearest(ctx, a, rest, *path)
		}
	case "jobs":
		fs, cf = newFlagSet("jobs", stdout, stderr)
		cfg := status.LoadJobConfig()
		fs.IntVar(&cfg.Jobs, "n", cfg.Jobs, "Number of jobs to run")
		fs.DurationVar(&cfg.JobInterval, "job-interval", cfg.JobInterval, "Time per job")
		fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "Monitor poll interval")
		cmd = func(ctx context.Context, a *app, _ []string) int {
			return runJobs(ctx, a, cfg)
		}
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usageText)
		return exitUsage
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	a, err := newApp(cf, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return exitUsage
	}
	defer a.logMetrics()

	return cmd(ctx, a, fs.Args())
}

func newApp(cf commonFlags, stdout, stderr io.Writer) (*app, error) {
	log, err := newLogger(stderr, *cf.logLevel)
	if err != nil {
		return nil, err
	}
	mode, err := terminal.ParseColorMode(*cf.color)
	if err != nil {
		return nil, err
	}
	return &app{
		out:      stdout,
		errOut:   stderr,
		log:      log,
		mode:     mode,
		swatches: *cf.swatch,
		metrics:  status.NewRegistry(),
	}, nil
}

// printColor writes one result line, prefixed with a swatch when enabled
func (a *app) printColor(label string, c rgb.Color) {
	line := fmt.Sprintf("%s %s xterm-%d", c, c.Hex(), terminal.Index256(c))
	if label != "" {
		line = label + " " + line
	}
	if a.swatches {
		if err := terminal.WriteSwatch(a.out, c, a.mode, line); err != nil {
			a.log.Error("write failed", "error", err)
		}
		return
	}
	fmt.Fprintln(a.out, line)
}

// record tallies and logs one conversion result
func (a *app) record(input string, err error) {
	a.metrics.Record(err)
	logConversion(a.log, input, err, status.OutcomeKey(err))
}

func (a *app) logMetrics() {
	for _, e := range a.metrics.Outcomes.Snapshot() {
		a.log.Debug("conversion outcomes", "outcome", e.Key, "count", e.Value)
	}
}
