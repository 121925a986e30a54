package main

import (
	"io"
	"os"

	"github.com/aledsdavies/advent/pkgs/config"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// ShouldUseColor decides color output from the --no-color flag, the config
// mode and whether w is a terminal
func ShouldUseColor(w io.Writer, noColorFlag bool, mode string) bool {
	if noColorFlag {
		return false
	}
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
