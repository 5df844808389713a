// Package grid provides the rectangular cell arena used by maze generation
// and path search. It supports:
//
//   - Fixed dimensions for the lifetime of the grid
//   - 4-directional adjacency in a deterministic order
//   - Search-state reset and deep cloning for private run snapshots
package grid

import (
	"fmt"
	"iter"
)

// neighborOffsets is the fixed neighbour order: up, down, left, right.
// BFS and DFS tie-breaks depend on it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an R×C arena of cells stored row-major.
// The zero value is not usable; construct with New or NewFilled.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New returns a rows×cols grid of Empty cells with reset search state.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Algorithmic complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	return NewFilled(rows, cols, Empty)
}

// NewFilled is New with every cell set to kind.
func NewFilled(rows, cols int, kind Kind) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		r, c := g.coordinate(i)
		g.cells[i] = Cell{Kind: kind, Row: r, Col: c, Distance: Infinity, Parent: NoCoord}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns Rows()*Cols().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0,R)×[0,C).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cell at c for in-place mutation.
// Returns an error wrapping ErrOutOfRange if c is outside the grid.
func (g *Grid) At(c Coord) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v not in %d×%d", ErrOutOfRange, c, g.rows, g.cols)
	}
	return &g.cells[g.index(c)], nil
}

// MustAt is At for coordinates already known to be in bounds.
// It panics on an out-of-range coordinate.
func (g *Grid) MustAt(c Coord) *Cell {
	cell, err := g.At(c)
	if err != nil {
		panic(err)
	}
	return cell
}

// Kind returns the kind at c, or an ErrOutOfRange error.
func (g *Grid) Kind(c Coord) (Kind, error) {
	cell, err := g.At(c)
	if err != nil {
		return 0, err
	}
	return cell.Kind, nil
}

// SetKind sets the kind at c.
func (g *Grid) SetKind(c Coord, k Kind) error {
	cell, err := g.At(c)
	if err != nil {
		return err
	}
	cell.Kind = k
	return nil
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// up, down, left, right. Out-of-range neighbours are omitted; walls are not.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ResetSearchState sets every cell's Distance to Infinity and Parent to
// NoCoord. Kinds are untouched. Call it before each new search run.
// Complexity: O(R×C).
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].Distance = Infinity
		g.cells[i].Parent = NoCoord
	}
}

// Clone returns a deep copy of g.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Cells iterates over all cells in row-major order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == k {
			n++
		}
	}
	return n
}

// Find returns the coordinate of the first cell (row-major) of kind k.
func (g *Grid) Find(k Kind) (Coord, bool) {
	for i := range g.cells {
		if g.cells[i].Kind == k {
			return g.cells[i].Coord(), true
		}
	}
	return NoCoord, false
}

// Replace turns every cell of kind from into kind to and returns how many
// cells changed.
func (g *Grid) Replace(from, to Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == from {
			g.cells[i].Kind = to
			n++
		}
	}
	return n
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
