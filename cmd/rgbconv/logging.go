package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger creates a text logger on w at the named level
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// logConversion logs one converter result with its outcome bucket
func logConversion(log *slog.Logger, input string, err error, outcome string) {
	if err != nil {
		log.Warn("conversion failed", "input", input, "outcome", outcome, "error", err)
		return
	}
	log.Debug("conversion completed", "input", input)
}
