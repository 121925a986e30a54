package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds a plain text handler with no timestamp and no level
// column. Debug output is enabled by --debug, ADVENT_DEBUG or log_level.
func newLogger(w io.Writer, debug bool, configured string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(configured) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if debug || os.Getenv("ADVENT_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
