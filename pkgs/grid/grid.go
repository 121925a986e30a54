// Package grid holds 2-D points and a bounds-checked byte grid.
package grid

import (
	"golang.org/x/exp/constraints"
)

// Pt is a point or direction, X is the column and Y the row
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Add returns p+q
func (p Pt[T]) Add(q Pt[T]) Pt[T] {
	return Pt[T]{p.X + q.X, p.Y + q.Y}
}

// Scale returns p*k
func (p Pt[T]) Scale(k T) Pt[T] {
	return Pt[T]{p.X * k, p.Y * k}
}

// Directions are the eight neighbours, clockwise from north
var Directions = []Pt[int]{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is a rectangular block of bytes. Rows shorter than the first are
// treated as padded with nothing: At reports false past their end.
type Grid struct {
	rows [][]byte
}

// Parse builds a grid from lines, skipping blank ones
func Parse(lines []string) *Grid {
	g := &Grid{}
	for _, l := range lines {
		if l == "" {
			continue
		}
		g.rows = append(g.rows, []byte(l))
	}
	return g
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the width of the first row
func (g *Grid) Cols() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// At returns the byte at p and whether p is inside the grid
func (g *Grid) At(p Pt[int]) (byte, bool) {
	if p.Y < 0 || p.Y >= len(g.rows) {
		return 0, false
	}
	row := g.rows[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return 0, false
	}
	return row[p.X], true
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(p Pt[int], ch byte)) {
	for y, row := range g.rows {
		for x, ch := range row {
			fn(Pt[int]{x, y}, ch)
		}
	}
}

// Word reports whether word can be read from p stepping by dir
func (g *Grid) Word(p, dir Pt[int], word string) bool {
	for i := 0; i < len(word); i++ {
		ch, ok := g.At(p.Add(dir.Scale(i)))
		if !ok || ch != word[i] {
			return false
		}
	}
	return true
}
