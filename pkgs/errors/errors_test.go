package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCauseReachable(t *testing.T) {
	err := NewFileNotFoundError("input/3.txt", fs.ErrNotExist)

	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.True(t, IsErrorType(err, ErrFileNotFound))
	assert.False(t, IsErrorType(err, ErrInputRead))
	assert.Contains(t, err.Error(), "FILE_NOT_FOUND")
	assert.Contains(t, err.Error(), "input/3.txt")

	path, ok := err.GetContext("path")
	require.True(t, ok)
	assert.Equal(t, "input/3.txt", path)
}

func TestIsErrorTypeThroughWrapping(t *testing.T) {
	inner := NewParseError(4, "x7", fmt.Errorf("strconv: bad"))
	outer := fmt.Errorf("day 1: %w", inner)

	assert.True(t, IsErrorType(outer, ErrInputParse))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrInputParse))
	assert.False(t, IsErrorType(nil, ErrInputParse))
}

func TestPuzzleNotFoundSuggestion(t *testing.T) {
	withHint := NewPuzzleNotFoundError("dya3", "day3")
	assert.Equal(t, "PUZZLE_NOT_FOUND: puzzle 'dya3' not found (did you mean 'day3'?)", withHint.Error())

	noHint := NewPuzzleNotFoundError("day99", "")
	assert.Equal(t, "PUZZLE_NOT_FOUND: puzzle 'day99' not found", noHint.Error())
	assert.Nil(t, noHint.Unwrap())
}

func TestFormatVerbose(t *testing.T) {
	err := NewInputError("-", fmt.Errorf("broken pipe"))

	plain := fmt.Sprintf("%v", err)
	assert.Equal(t, err.Error(), plain)

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "INPUT_READ_ERROR: failed to read input '-'")
	assert.Contains(t, verbose, "broken pipe")
	// stack frames from pkg/errors
	assert.Contains(t, verbose, "errors_test.go")
}
