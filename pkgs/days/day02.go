package days

import (
	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

func init() {
	register("day2", day2)
}

// day2 counts safe reports, then reports made safe by dropping one level
func day2(data []byte) (puzzle.Answer, error) {
	reports, err := input.IntRows(input.Lines(data))
	if err != nil {
		return puzzle.Answer{}, err
	}

	var ans puzzle.Answer
	for _, r := range reports {
		if safe(r) {
			ans.Part1++
			ans.Part2++
			continue
		}
		if safeWithDampener(r) {
			ans.Part2++
		}
	}
	return ans, nil
}

// safe reports whether levels move strictly in one direction by 1 to 3 per step
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	dir := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		step := d
		if step < 0 {
			step = -step
		}
		if step < 1 || step > 3 {
			return false
		}
		sign := 1
		if d < 0 {
			sign = -1
		}
		if dir == 0 {
			dir = sign
		} else if sign != dir {
			return false
		}
	}
	return true
}

// safeWithDampener tries every single-level removal
func safeWithDampener(levels []int) bool {
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if safe(buf) {
			return true
		}
	}
	return false
}
