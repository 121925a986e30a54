package days

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/advent/pkgs/errors"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

const day1Sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

const day2Sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

// day 3 has different samples per part; both parts run on the concatenation
const day3Sample = "xmul(2,3)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))\n" +
	"xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))\n"

const day4Sample = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func TestSamples(t *testing.T) {
	tests := []struct {
		day   string
		input string
		want  puzzle.Answer
	}{
		{"day1", day1Sample, puzzle.Answer{Part1: 11, Part2: 31}},
		{"day2", day2Sample, puzzle.Answer{Part1: 2, Part2: 4}},
		// part 2 ends the first line enabled, so the second line's
		// don't()...do() gating applies: 161 + 48
		{"day3", day3Sample, puzzle.Answer{Part1: 161 + 161, Part2: 161 + 48}},
		{"day4", day4Sample, puzzle.Answer{Part1: 18, Part2: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			solve, err := puzzle.Default.Lookup(tt.day)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			got, err := solve([]byte(tt.input))
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("answer mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDay3ToggleCarriesAcrossLines(t *testing.T) {
	got, err := day3([]byte("don't()\nmul(2,2)\ndo()\nmul(3,3)\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := puzzle.Answer{Part1: 13, Part2: 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answer mismatch (-want +got):\n%s", diff)
	}
}

func TestDay3EmptyInput(t *testing.T) {
	got, err := day3(nil)
	if err != nil {
		t.Fatalf("empty input must not be an error: %v", err)
	}
	if diff := cmp.Diff(puzzle.Answer{}, got); diff != "" {
		t.Errorf("answer mismatch (-want +got):\n%s", diff)
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		solve puzzle.Solver
		input string
	}{
		{"day1 bad number", day1, "3 x\n"},
		{"day1 ragged", day1, "3 4\n5\n"},
		{"day2 bad number", day2, "1 2 three\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.solve([]byte(tt.input))
			if !errors.IsErrorType(err, errors.ErrInputParse) {
				t.Errorf("expected %s, got %v", errors.ErrInputParse, err)
			}
		})
	}
}

func TestSafe(t *testing.T) {
	tests := []struct {
		levels []int
		safe   bool
		damped bool
	}{
		{[]int{1}, true, true},
		{[]int{1, 1}, false, true},
		{[]int{1, 5, 6}, false, true},
		{[]int{5, 1, 2, 3}, false, true},
		{[]int{1, 2, 3, 2}, false, true},
		{[]int{1, 2, 9, 10}, false, false},
	}

	for _, tt := range tests {
		if got := safe(tt.levels); got != tt.safe {
			t.Errorf("safe(%v) = %v, want %v", tt.levels, got, tt.safe)
		}
		if got := safe(tt.levels) || safeWithDampener(tt.levels); got != tt.damped {
			t.Errorf("dampened(%v) = %v, want %v", tt.levels, got, tt.damped)
		}
	}
}

func TestAllDaysRegistered(t *testing.T) {
	want := []string{"day1", "day2", "day3", "day4"}
	if diff := cmp.Diff(want, puzzle.Default.Names()); diff != "" {
		t.Errorf("registered days (-want +got):\n%s", diff)
	}
}
