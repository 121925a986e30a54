// Package invariant provides contract assertions for the puzzle code.
//
// Assertions guard conditions that can only fail through a programming error:
// a state machine that stops advancing, a counter that leaves its range, a result
// that contradicts the work that produced it. Puzzle input never trips them; bad
// input is absorbed or reported through ordinary error values.
//
// All functions panic on violation.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func Register(name string, s Solver) {
//	    invariant.Precondition(name != "", "puzzle name must not be empty")
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency while a function runs.
// Panics with INVARIANT VIOLATION if condition is false.
//
// Example:
//
//	stalls := 0
//	for pos < len(text) {
//	    next, consumed := Step(st, text[pos])
//	    // ...
//	    invariant.Invariant(stalls <= maxStalls, "scanner stalled at %d", pos)
//	}
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// InRange panics if value is outside [minVal, maxVal].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("INVARIANT", "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// fail panics with a formatted message and the caller's location.
func fail(kind, format string, args ...any) {
	// skip runtime.Callers, fail and the exported wrapper
	pc := make([]uintptr, 4)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
