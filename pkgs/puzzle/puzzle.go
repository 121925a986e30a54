// Package puzzle registers daily solvers and runs them.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/aledsdavies/advent/core/invariant"
	"github.com/aledsdavies/advent/pkgs/errors"
)

// Answer holds the two parts of a puzzle. A part left unsolved is marked so a
// zero answer is never mistaken for a result.
type Answer struct {
	Part1     int64
	Part2     int64
	Unsolved1 bool
	Unsolved2 bool
}

// String renders both parts, "-" for an unsolved part
func (a Answer) String() string {
	part := func(v int64, unsolved bool) string {
		if unsolved {
			return "-"
		}
		return strconv.FormatInt(v, 10)
	}
	return fmt.Sprintf("part1=%s part2=%s", part(a.Part1, a.Unsolved1), part(a.Part2, a.Unsolved2))
}

// Solver computes both parts from raw input
type Solver func(input []byte) (Answer, error)

// Registry maps canonical puzzle names ("day3") to solvers
type Registry struct {
	mu      sync.RWMutex
	solvers map[string]Solver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[string]Solver)}
}

// Default is populated by the days package
var Default = NewRegistry()

// Register adds a solver. Registering a name twice is a programming error.
func (r *Registry) Register(name string, s Solver) {
	canonical := Canonical(name)
	invariant.Precondition(canonical != "", "puzzle name must not be empty")
	invariant.Precondition(s != nil, "solver for %s must not be nil", canonical)

	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.solvers[canonical]
	invariant.Precondition(!exists, "puzzle %s registered twice", canonical)
	r.solvers[canonical] = s
}

// Canonical maps "3", "03", "day3" and "Day03" to "day3". Names that are not
// day numbers are lower-cased and returned as is.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	digits := strings.TrimPrefix(name, "day")
	if n, err := strconv.Atoi(digits); err == nil && n > 0 {
		return "day" + strconv.Itoa(n)
	}
	return name
}

// Lookup finds a solver by name, suggesting the closest name when missing
func (r *Registry) Lookup(name string) (Solver, error) {
	canonical := Canonical(name)

	r.mu.RLock()
	s, ok := r.solvers[canonical]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}
	return nil, errors.NewPuzzleNotFoundError(name, findClosestMatch(canonical, r.Names()))
}

// Names returns registered names in day order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.solvers))
	for n := range r.solvers {
		names = append(names, n)
	}
	r.mu.RUnlock()

	sort.Slice(names, func(i, j int) bool {
		return lessName(names[i], names[j])
	})
	return names
}

// lessName orders day numbers numerically, then everything else by string
func lessName(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimPrefix(a, "day"))
	nb, errB := strconv.Atoi(strings.TrimPrefix(b, "day"))
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// findClosestMatch finds the closest string match using fuzzy matching
func findClosestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	// Not a subsequence of anything: fall back to edit distance, only
	// suggesting near misses
	best, bestDist := "", len(target)/2+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Result is the outcome of one puzzle in RunAll
type Result struct {
	Name   string
	Answer Answer
	Err    error
}

// RunAll solves the named puzzles concurrently. inputs maps canonical names to
// raw input. Results come back in the order of names. Solvers share no state,
// so each runs in its own goroutine; puzzles not yet started when ctx is done
// report ctx.Err().
func (r *Registry) RunAll(ctx context.Context, names []string, inputs map[string][]byte) []Result {
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		canonical := Canonical(name)
		results[i].Name = canonical

		solver, err := r.Lookup(canonical)
		if err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		go func(res *Result, solve Solver, data []byte) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				res.Err = err
				return
			}
			res.Answer, res.Err = solve(data)
			if res.Err != nil {
				res.Err = fmt.Errorf("%s: %w", res.Name, res.Err)
			}
		}(&results[i], solver, inputs[canonical])
	}
	wg.Wait()

	return results
}
