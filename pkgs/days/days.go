// Package days holds the daily solvers. Importing it registers every day in
// puzzle.Default.
package days

import "github.com/aledsdavies/advent/pkgs/puzzle"

func register(name string, s puzzle.Solver) {
	puzzle.Default.Register(name, s)
}
