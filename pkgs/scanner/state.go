package scanner

import (
	"fmt"
)

// MaxDigits is the longest numeric argument accepted. A longer digit run
// invalidates the attempt instead of being truncated.
const MaxDigits = 3

// StateKind is the discriminant of the scan state
type StateKind int

const (
	// StateSeeking is idle: looking for the first character of any literal
	StateSeeking StateKind = iota

	// StateLiteral is matching a literal prefix
	StateLiteral

	// StateOpenParen expects '(' right after the literal
	StateOpenParen

	// StateFirstNumber accumulates 1-3 digits
	StateFirstNumber

	// StateComma expects ',' after the first number
	StateComma

	// StateSecondNumber accumulates 1-3 digits
	StateSecondNumber

	// StateCloseParen expects ')'
	StateCloseParen

	// StateComplete holds a fully recognized pattern
	StateComplete
)

// String returns a human-readable state name
func (k StateKind) String() string {
	names := []string{
		"Seeking",
		"Literal",
		"OpenParen",
		"FirstNumber",
		"Comma",
		"SecondNumber",
		"CloseParen",
		"Complete",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// State is the current position in a pattern pursuit. The zero value is
// StateSeeking.
type State struct {
	Kind     StateKind
	Pattern  *Pattern // set once the literal is complete
	Progress int      // literal characters matched (StateLiteral)
	Digits   int      // digits in the current number
	First    int
	Second   int

	node *node // trie position while in StateLiteral
}

// String renders the state for traces
func (s State) String() string {
	switch s.Kind {
	case StateLiteral:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Progress)
	case StateFirstNumber, StateSecondNumber:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Digits)
	default:
		return s.Kind.String()
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Step is the transition function. It returns the next state and whether ch
// was consumed. A state that cannot accept ch fails back to StateSeeking
// without consuming, so ch is re-examined as a possible literal start. Only
// StateSeeking discards a character it cannot use.
func (s *Scanner) Step(st State, ch byte) (State, bool) {
	switch st.Kind {
	case StateSeeking:
		if next := s.root.child(ch); next != nil {
			return State{Kind: StateLiteral, Progress: 1, node: next}, true
		}
		return State{}, true

	case StateLiteral:
		if next := st.node.child(ch); next != nil {
			st.node = next
			st.Progress++
			return st, true
		}
		if p := st.node.pattern; p != nil {
			// Literal done; ch belongs to the argument list
			return State{Kind: StateOpenParen, Pattern: p}, false
		}
		return State{}, false

	case StateOpenParen:
		if ch != '(' {
			return State{}, false
		}
		if st.Pattern.Arity == 0 {
			return State{Kind: StateCloseParen, Pattern: st.Pattern}, true
		}
		return State{Kind: StateFirstNumber, Pattern: st.Pattern}, true

	case StateFirstNumber:
		if isDigit(ch) {
			st.First = st.First*10 + int(ch-'0')
			st.Digits++
			if st.Digits == MaxDigits {
				st.Kind = StateComma
			}
			return st, true
		}
		if st.Digits == 0 {
			return State{}, false
		}
		st.Kind = StateComma
		return st, false

	case StateComma:
		if ch != ',' {
			return State{}, false
		}
		st.Kind = StateSecondNumber
		st.Digits = 0
		return st, true

	case StateSecondNumber:
		if isDigit(ch) {
			st.Second = st.Second*10 + int(ch-'0')
			st.Digits++
			if st.Digits == MaxDigits {
				st.Kind = StateCloseParen
			}
			return st, true
		}
		if st.Digits == 0 {
			return State{}, false
		}
		st.Kind = StateCloseParen
		return st, false

	case StateCloseParen:
		if ch != ')' {
			return State{}, false
		}
		st.Kind = StateComplete
		st.Digits = 0
		return st, true

	default:
		// StateComplete is resolved by the pass before the next character
		return State{}, false
	}
}
