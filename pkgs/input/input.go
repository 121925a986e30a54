// Package input reads puzzle input and splits it into the shapes the
// solvers work with.
package input

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/aledsdavies/advent/pkgs/errors"
)

// DefaultFile is the input path used when none is given
const DefaultFile = "input.txt"

// Stdin is the path that selects standard input
const Stdin = "-"

// stdin is swapped in tests
var stdin io.ReadCloser = os.Stdin

// Open handles the three input modes:
// 1. Explicit stdin with "-"
// 2. Piped stdin when the default file is requested but does not exist
// 3. File input
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}

	if stderrors.Is(err, fs.ErrNotExist) {
		if path == DefaultFile && hasPipedInput() {
			return io.NopCloser(stdin), nil
		}
		return nil, errors.NewFileNotFoundError(path, err)
	}
	return nil, errors.NewInputError(path, err)
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	f, ok := stdin.(*os.File)
	if !ok {
		// a substituted reader always counts as piped
		return true
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// Load reads the whole input at path
func Load(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInputError(path, err)
	}
	return data, nil
}

// Lines splits data into lines, trimming '\r' and one trailing empty line
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Ints parses whitespace-separated integers. lineNo is 1-based and only used
// in errors.
func Ints(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.NewParseError(lineNo, f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// IntRows parses every non-blank line with Ints
func IntRows(lines []string) ([][]int, error) {
	rows := make([][]int, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		row, err := Ints(l, i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Columns parses rows of exactly width integers and returns them as columns
func Columns(lines []string, width int) ([][]int, error) {
	rows, err := IntRows(lines)
	if err != nil {
		return nil, err
	}

	cols := make([][]int, width)
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.New(errors.ErrInputParse, "row has wrong number of columns").
				WithContext("row", i+1).
				WithContext("want", width).
				WithContext("got", len(row))
		}
		for c, v := range row {
			cols[c] = append(cols[c], v)
		}
	}
	return cols, nil
}
