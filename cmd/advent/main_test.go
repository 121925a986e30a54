package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/advent/pkgs/answers"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

const day3Input = "xmul(2,3)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"

// env is an isolated workspace with a config pointing at its own input dir
type env struct {
	dir    string
	inputs string
	config string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("ADVENT_INPUT_DIR", "")
	t.Setenv("ADVENT_DEBUG", "")
	t.Setenv("NO_COLOR", "")

	dir := t.TempDir()
	e := &env{
		dir:    dir,
		inputs: filepath.Join(dir, "inputs"),
		config: filepath.Join(dir, "advent.toml"),
	}
	require.NoError(t, os.MkdirAll(e.inputs, 0o755))
	cfg := "input_dir = " + `"` + filepath.ToSlash(e.inputs) + `"` + "\ncolor = \"never\"\n"
	require.NoError(t, os.WriteFile(e.config, []byte(cfg), 0o644))
	return e
}

func (e *env) writeInput(t *testing.T, day, content string) string {
	t.Helper()
	path := filepath.Join(e.inputs, day+".txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the CLI and returns exit code, stdout and stderr
func (e *env) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), append([]string{"--config", e.config}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingleDay(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, "3", day3Input)

	code, stdout, stderr := e.run(t, "run", "3")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "day3  part1=161 part2=161\n", stdout)
}

func TestRunWithInputFlag(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.dir, "memory.txt")
	require.NoError(t, os.WriteFile(path, []byte("mul(2,4)don't()mul(5,5)do()mul(8,5)"), 0o644))

	code, stdout, stderr := e.run(t, "run", "day03", "-i", path)
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "day3  part1=73 part2=48\n", stdout)
}

func TestRunInputFlagNeedsOneDay(t *testing.T) {
	e := newEnv(t)

	code, _, stderr := e.run(t, "run", "1", "2", "--input", "x.txt")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "--input needs exactly one day")
	assert.Contains(t, stderr, "Hint:")
}

func TestRunAllSkipsMissingInputs(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, "1", "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n")
	e.writeInput(t, "3", day3Input)

	code, stdout, stderr := e.run(t, "run")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "day1  part1=11 part2=31\nday3  part1=161 part2=161\n", stdout)
	assert.Contains(t, stderr, "skipping puzzle without input")
}

func TestRunUnknownDay(t *testing.T) {
	e := newEnv(t)

	code, _, stderr := e.run(t, "run", "dy3")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "[PUZZLE_NOT_FOUND]")
	assert.Contains(t, stderr, "did you mean 'day3'")
	assert.Contains(t, stderr, "advent list")
}

func TestRunMissingInput(t *testing.T) {
	e := newEnv(t)

	code, _, stderr := e.run(t, "run", "2")
	assert.Equal(t, ExitIOError, code)
	assert.Contains(t, stderr, "[FILE_NOT_FOUND]")
}

func TestRunBadInputReportsFailure(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, "2", "1 2 x\n")

	code, stdout, _ := e.run(t, "run", "2")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "INPUT_PARSE_ERROR")
}

func TestRecordThenCheck(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, "3", day3Input)

	code, _, stderr := e.run(t, "run", "3", "--record")
	require.Equal(t, ExitSuccess, code, stderr)

	code, stdout, stderr := e.run(t, "run", "3", "--check")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "day3  part1=161 part2=161  match\n", stdout)

	// a different recorded answer is a mismatch
	storePath := filepath.Join(e.inputs, "answers.cbor")
	store, err := answers.Load(storePath)
	require.NoError(t, err)
	store.Record("day3", []byte(day3Input), puzzle.Answer{Part1: 1, Part2: 2})
	require.NoError(t, store.Save(storePath))

	code, stdout, stderr = e.run(t, "run", "3", "--check")
	assert.Equal(t, ExitMismatch, code)
	assert.Contains(t, stdout, "mismatch")
	assert.Contains(t, stderr, "answer changed for day3")
}

func TestList(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, "4", "XMAS\n")

	code, stdout, stderr := e.run(t, "list")
	require.Equal(t, ExitSuccess, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "day1\t"))
	assert.True(t, strings.HasSuffix(lines[0], "missing"))
	assert.True(t, strings.HasSuffix(lines[3], "ok"))
}

func TestScan(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.dir, "memory.txt")
	require.NoError(t, os.WriteFile(path, []byte("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"), 0o644))

	code, stdout, stderr := e.run(t, "scan", path)
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "     1  mul(2,4) = 8\n")
	assert.Contains(t, stdout, "sum: 161\n")

	code, stdout, stderr = e.run(t, "scan", path, "--conditionals")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "sum: 48\n")
	assert.Contains(t, stdout, "suppressed=2 toggles=2")
}

func TestScanTrace(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.dir, "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte("mul(1,2)"), 0o644))

	code, stdout, stderr := e.run(t, "scan", path, "--trace")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "Literal(3) -> OpenParen (re-examine)")
	assert.Contains(t, stdout, "CloseParen -> Complete")
}

func TestBadConfig(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.config, []byte(`color = "rainbow"`), 0o644))

	code, _, stderr := e.run(t, "list")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "[CONFIG_ERROR]")
}

func TestWatchCallsOnChange(t *testing.T) {
	e := newEnv(t)
	path := e.writeInput(t, "3", "mul(1,1)")

	var stderr bytes.Buffer
	a := &app{stderr: &stderr, logger: newLogger(&stderr, false, "info")}

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, path, func() { calls.Add(1) })
	}()

	// keep writing until the watcher is registered and reacts
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("mul(2,2)"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 500*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
