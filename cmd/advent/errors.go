package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/advent/pkgs/errors"
)

// Exit codes
const (
	ExitSuccess  = 0
	ExitFailure  = 1 // usage, lookup and config errors
	ExitIOError  = 2
	ExitMismatch = 3 // --check found an answer that differs from the record
)

// CLIError represents a formatted CLI error with a hint
type CLIError struct {
	Message string
	Details string
	Hint    string
	Code    int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) && cliErr.Code != 0 {
		return cliErr.Code
	}
	if errors.IsErrorType(err, errors.ErrFileNotFound) || errors.IsErrorType(err, errors.ErrInputRead) {
		return ExitIOError
	}
	return ExitFailure
}

// FormatError formats an error for CLI output with colors. verbose prints the
// cause chain with stacks.
func FormatError(w io.Writer, err error, useColor, verbose bool) {
	if err == nil {
		return
	}

	var cliErr *CLIError
	var codedErr *errors.Error
	switch {
	case stderrors.As(err, &cliErr):
		formatCLIError(w, cliErr, useColor)
	case stderrors.As(err, &codedErr):
		formatCodedError(w, codedErr, useColor, verbose)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}

func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}

func formatCodedError(w io.Writer, err *errors.Error, useColor, verbose bool) {
	_, _ = fmt.Fprintf(w, "%s%s %s\n",
		Colorize("Error: ", ColorRed, useColor),
		Colorize("["+err.Code+"]", ColorGray, useColor),
		err.Message)

	if err.Cause != nil {
		if verbose {
			_, _ = fmt.Fprintf(w, "%s%+v\n", Colorize("  caused by: ", ColorGray, useColor), err.Cause)
		} else {
			_, _ = fmt.Fprintf(w, "%s%v\n", Colorize("  caused by: ", ColorGray, useColor), err.Cause)
		}
	}

	switch err.Code {
	case errors.ErrFileNotFound:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor),
			"save the puzzle input under the configured input_dir, or pass --input (use - for stdin)")
	case errors.ErrPuzzleNotFound:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor),
			"run 'advent list' to see the available puzzles")
	}
}
