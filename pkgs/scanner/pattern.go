package scanner

import "fmt"

// PatternKind identifies what a recognized pattern does
type PatternKind int

const (
	// PatternMul is the multiplication call mul(a,b)
	PatternMul PatternKind = iota

	// PatternDo re-enables emission
	PatternDo

	// PatternDont disables emission
	PatternDont
)

// String returns a human-readable pattern kind
func (k PatternKind) String() string {
	names := []string{
		"Mul",
		"Do",
		"Dont",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Unknown(%d)", k)
}

// Pattern is a literal prefix followed by a parenthesized argument list
type Pattern struct {
	Kind    PatternKind
	Literal string
	Arity   int // 0 or 2 numeric arguments
}

// String renders the pattern the way it appears in input
func (p Pattern) String() string {
	if p.Arity == 0 {
		return p.Literal + "()"
	}
	return p.Literal + "(a,b)"
}

var (
	// Mul matches mul(a,b) with 1-3 digit arguments
	Mul = Pattern{Kind: PatternMul, Literal: "mul", Arity: 2}

	// Do matches do()
	Do = Pattern{Kind: PatternDo, Literal: "do", Arity: 0}

	// Dont matches don't()
	Dont = Pattern{Kind: PatternDont, Literal: "don't", Arity: 0}
)

// node is one position in the literal prefix trie. Literals that share a
// prefix (do, don't) share nodes; pattern is set where a literal ends.
type node struct {
	edges   []edge
	pattern *Pattern
}

type edge struct {
	ch   byte
	next *node
}

// child returns the node reached by ch, or nil
func (n *node) child(ch byte) *node {
	for _, e := range n.edges {
		if e.ch == ch {
			return e.next
		}
	}
	return nil
}

// buildTrie compiles the literal set. Patterns are copied so the trie never
// aliases caller memory.
func buildTrie(patterns []Pattern) *node {
	root := &node{}
	for i := range patterns {
		p := patterns[i]
		cur := root
		for j := 0; j < len(p.Literal); j++ {
			next := cur.child(p.Literal[j])
			if next == nil {
				next = &node{}
				cur.edges = append(cur.edges, edge{ch: p.Literal[j], next: next})
			}
			cur = next
		}
		cur.pattern = &p
	}
	return root
}
