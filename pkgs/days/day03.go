package days

import (
	"github.com/aledsdavies/advent/pkgs/puzzle"
	"github.com/aledsdavies/advent/pkgs/scanner"
)

var (
	mulScanner         = scanner.New()
	conditionalScanner = scanner.NewConditional()
)

func init() {
	register("day3", day3)
}

// day3 sums mul(a,b) products in corrupted memory, then again honoring
// do() and don't()
func day3(data []byte) (puzzle.Answer, error) {
	return puzzle.Answer{
		Part1: int64(scanner.Sum(mulScanner.Scan(data))),
		Part2: int64(scanner.Sum(conditionalScanner.Scan(data))),
	}, nil
}
