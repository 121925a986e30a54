package days

import (
	"github.com/aledsdavies/advent/pkgs/grid"
	"github.com/aledsdavies/advent/pkgs/input"
	"github.com/aledsdavies/advent/pkgs/puzzle"
)

func init() {
	register("day4", day4)
}

// day4 counts XMAS in every direction, then MAS crosses
func day4(data []byte) (puzzle.Answer, error) {
	g := grid.Parse(input.Lines(data))

	var ans puzzle.Answer
	g.Each(func(p grid.Pt[int], ch byte) {
		switch ch {
		case 'X':
			for _, dir := range grid.Directions {
				if g.Word(p, dir, "XMAS") {
					ans.Part1++
				}
			}
		case 'A':
			if isCross(g, p) {
				ans.Part2++
			}
		}
	})
	return ans, nil
}

// isCross reports whether both diagonals through p read MAS in either direction
func isCross(g *grid.Grid, p grid.Pt[int]) bool {
	diagonal := func(a, b grid.Pt[int]) bool {
		ca, okA := g.At(p.Add(a))
		cb, okB := g.At(p.Add(b))
		if !okA || !okB {
			return false
		}
		return (ca == 'M' && cb == 'S') || (ca == 'S' && cb == 'M')
	}
	return diagonal(grid.Pt[int]{-1, -1}, grid.Pt[int]{1, 1}) &&
		diagonal(grid.Pt[int]{1, -1}, grid.Pt[int]{-1, 1})
}
