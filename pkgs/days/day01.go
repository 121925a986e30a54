package days

import (
	"sort"

	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

func init() {
	register("day1", day1)
}

// day1 compares two location lists: total distance between the sorted lists,
// and a similarity score weighting each left value by its right-hand count.
func day1(data []byte) (puzzle.Answer, error) {
	cols, err := input.Columns(input.Lines(data), 2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	left, right := cols[0], cols[1]

	return puzzle.Answer{
		Part1: listDistance(left, right),
		Part2: similarity(left, right),
	}, nil
}

func listDistance(left, right []int) int64 {
	l := append([]int(nil), left...)
	r := append([]int(nil), right...)
	sort.Ints(l)
	sort.Ints(r)

	var total int64
	for i := range l {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		total += int64(d)
	}
	return total
}

func similarity(left, right []int) int64 {
	counts := make(map[int]int64, len(right))
	for _, v := range right {
		counts[v]++
	}

	var score int64
	for _, v := range left {
		score += int64(v) * counts[v]
	}
	return score
}
