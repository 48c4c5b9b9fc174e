// Package logging builds the slog logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the logger's level, format and optional log file.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive).
	Level string
	// Format is "text" or "json".
	Format string
	// File, if set, receives a copy of every record.
	File string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger from cfg and sets it as the slog default. The
// returned close func releases the log file.
//
// Format "json" produces structured JSON output.
// Format "text" produces human-readable output with source info.
// Unknown levels fall back to info.
func New(cfg Config) (*slog.Logger, func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(out, f)
		closeFn = f.Close
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidFormat reports whether format is a supported log format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	}
	return false
}
