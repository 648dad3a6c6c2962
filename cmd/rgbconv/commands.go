package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/rgbconv/palette"
	"github.com/lixenwraith/rgbconv/rgb"
	"github.com/lixenwraith/rgbconv/status"
)

// parseTriple splits "r,g,b" into channel values
// Values beyond int16 saturate so they still report out of range
func parseTriple(arg string) ([]int16, error) {
	parts := strings.Split(arg, ",")
	vals := make([]int16, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		vals[i] = rgb.Saturate16(n)
	}
	return vals, nil
}

// convertArg parses and validates one command-line triple
func convertArg(arg string) (rgb.Color, error) {
	vals, err := parseTriple(arg)
	if err != nil {
		return rgb.Color{}, err
	}
	return rgb.FromSlice(vals)
}

func runConvert(_ context.Context, a *app, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "convert: at least one r,g,b argument required")
		return exitUsage
	}

	code := exitOK
	for _, arg := range args {
		c, err := convertArg(arg)
		a.record(arg, err)
		if err != nil {
			fmt.Fprintf(a.errOut, "%s: %v\n", arg, err)
			code = exitFailure
			continue
		}
		a.printColor(arg+" ->", c)
	}
	return code
}

// loadPalette returns the built-in palette for an empty path
// Entry errors are reported and the valid remainder is still returned
func (a *app) loadPalette(path string) (*palette.Palette, bool) {
	if path == "" {
		return palette.Default(), true
	}

	p, err := palette.LoadFile(path)
	if err == nil {
		p.Range(func(name string, _ rgb.Color) bool {
			a.record(name, nil)
			return true
		})
		return p, true
	}

	var entries palette.EntryErrors
	if !errors.As(err, &entries) {
		fmt.Fprintf(a.errOut, "palette: %v\n", err)
		return nil, false
	}
	for _, e := range entries {
		a.record(e.Name, e.Err)
		fmt.Fprintf(a.errOut, "%s: %v\n", path, e)
	}
	p.Range(func(name string, _ rgb.Color) bool {
		a.record(name, nil)
		return true
	})
	return p, false
}

func runPalette(_ context.Context, a *app, args []string, export bool) int {
	if len(args) > 1 {
		fmt.Fprintln(a.errOut, "palette: at most one file argument")
		return exitUsage
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	p, clean := a.loadPalette(path)
	if p == nil {
		return exitFailure
	}

	if export {
		if err := p.Encode(a.out); err != nil {
			fmt.Fprintf(a.errOut, "palette: %v\n", err)
			return exitFailure
		}
	} else {
		width := 0
		for _, name := range p.Names() {
			width = max(width, len(name))
		}
		p.Range(func(name string, c rgb.Color) bool {
			a.printColor(fmt.Sprintf("%-*s", width, name), c)
			return true
		})
	}

	if !clean {
		return exitFailure
	}
	return exitOK
}

func runNearest(_ context.Context, a *app, args []string, path string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "nearest: at least one r,g,b argument required")
		return exitUsage
	}

	p, clean := a.loadPalette(path)
	if p == nil {
		return exitFailure
	}

	code := exitOK
	if !clean {
		code = exitFailure
	}
	for _, arg := range args {
		c, err := convertArg(arg)
		a.record(arg, err)
		if err != nil {
			fmt.Fprintf(a.errOut, "%s: %v\n", arg, err)
			code = exitFailure
			continue
		}
		name, dist, ok := p.Nearest(c)
		if !ok {
			fmt.Fprintln(a.errOut, "nearest: palette is empty")
			return exitFailure
		}
		match, _ := p.Get(name)
		a.printColor(fmt.Sprintf("%s -> %s (dE %.2f)", arg, name, dist), match)
	}
	return code
}

func runJobs(ctx context.Context, a *app, cfg status.JobConfig) int {
	if cfg.Jobs < 0 || cfg.JobInterval <= 0 || cfg.PollInterval <= 0 {
		fmt.Fprintln(a.errOut, "jobs: job count must be non-negative and intervals positive")
		return exitUsage
	}

	var s status.JobStatus
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return status.RunJobs(gctx, &s, cfg.Jobs, cfg.JobInterval)
	})
	g.Go(func() error {
		return status.WaitFor(gctx, &s, uint32(cfg.Jobs), cfg.PollInterval, func(done uint32) {
			a.log.Debug("jobs pending", "completed", done, "total", cfg.Jobs)
			fmt.Fprintln(a.out, "waiting...")
		})
	})

	if err := g.Wait(); err != nil {
		a.log.Warn("jobs interrupted", "completed", s.Completed(), "error", err)
		return exitFailure
	}
	fmt.Fprintf(a.out, "%d jobs completed\n", s.Completed())
	return exitOK
}
