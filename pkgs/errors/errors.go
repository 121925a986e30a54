package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error codes for the categories of failure outside the scanner core.
// "No pattern found" is never an error; an empty result is a normal answer.
const (
	// Input errors
	ErrInputRead    = "INPUT_READ_ERROR"
	ErrFileNotFound = "FILE_NOT_FOUND"
	ErrInputParse   = "INPUT_PARSE_ERROR"

	// Puzzle errors
	ErrPuzzleNotFound = "PUZZLE_NOT_FOUND"

	// Support errors
	ErrConfig      = "CONFIG_ERROR"
	ErrAnswerStore = "ANSWER_STORE_ERROR"
)

// Error is a structured error with a code and context
type Error struct {
	Code    string
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap allows error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// Format prints the cause with its stack for %+v
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.Cause != nil {
			_, _ = fmt.Fprintf(s, "%s: %s\n%+v", e.Code, e.Message, e.Cause)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// New creates a new Error with a stack-free message
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Wrap creates a new Error around cause, recording the stack at the wrap site
func Wrap(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   pkgerrors.WithStack(cause),
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *Error) GetContext(key string) (any, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// NewFileNotFoundError reports a missing input file
func NewFileNotFoundError(path string, cause error) *Error {
	return Wrap(ErrFileNotFound, fmt.Sprintf("input file '%s' not found", path), cause).
		WithContext("path", path)
}

// NewInputError reports a failure reading input
func NewInputError(path string, cause error) *Error {
	return Wrap(ErrInputRead, fmt.Sprintf("failed to read input '%s'", path), cause).
		WithContext("path", path)
}

// NewParseError reports a malformed token in puzzle input
func NewParseError(line int, token string, cause error) *Error {
	return Wrap(ErrInputParse, fmt.Sprintf("line %d: cannot parse %q", line, token), cause).
		WithContext("line", line).
		WithContext("token", token)
}

// NewPuzzleNotFoundError reports an unknown puzzle, with the closest match if any
func NewPuzzleNotFoundError(name, suggestion string) *Error {
	msg := fmt.Sprintf("puzzle '%s' not found", name)
	if suggestion != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
	}
	return New(ErrPuzzleNotFound, msg).
		WithContext("puzzle", name).
		WithContext("suggestion", suggestion)
}

// NewConfigError reports an unreadable or invalid config file
func NewConfigError(path string, cause error) *Error {
	return Wrap(ErrConfig, fmt.Sprintf("failed to load config '%s'", path), cause).
		WithContext("path", path)
}

// NewAnswerStoreError reports a failure loading or saving recorded answers
func NewAnswerStoreError(path string, cause error) *Error {
	return Wrap(ErrAnswerStore, fmt.Sprintf("answer store '%s'", path), cause).
		WithContext("path", path)
}

// IsErrorType checks whether any error in the chain carries code
func IsErrorType(err error, code string) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}
