package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aledsdavies/advent/pkgs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withStdin substitutes standard input for one test
func withStdin(t *testing.T, content string) {
	t.Helper()
	orig := stdin
	stdin = io.NopCloser(strings.NewReader(content))
	t.Cleanup(func() { stdin = orig })
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "3.txt")
	require.NoError(t, os.WriteFile(path, []byte("mul(2,3)\n"), 0o644))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mul(2,3)\n", string(data))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrFileNotFound))
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadDirectoryIsReadError(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrInputRead))
}

func TestLoadStdin(t *testing.T) {
	withStdin(t, "3   4\n4   3\n")

	data, err := Load(Stdin)
	require.NoError(t, err)
	assert.Equal(t, "3   4\n4   3\n", string(data))
}

func TestLoadDefaultFallsBackToPipe(t *testing.T) {
	t.Chdir(t.TempDir())
	withStdin(t, "piped")

	data, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, "piped", string(data))
}

func TestLoadDefaultPrefersFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("from file"), 0o644))
	t.Chdir(dir)
	withStdin(t, "piped")

	data, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines([]byte(tt.input)))
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints(" 7 6  4 -2 1 ", 1)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 4, -2, 1}, got)

	_, err = Ints("1 x2 3", 5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrInputParse))
	assert.Contains(t, err.Error(), `line 5: cannot parse "x2"`)
}

func TestColumns(t *testing.T) {
	cols, err := Columns([]string{"3   4", "4   3", "", "2   5"}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 4, 2}, {4, 3, 5}}, cols)

	_, err = Columns([]string{"1 2", "1 2 3"}, 2)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrInputParse))
}
