// Package maze implements randomized depth-first maze carving.
//
// Notes on implementation choices:
//
//   - Carving is written with an explicit frame stack instead of recursion.
//     Each frame keeps its own shuffled direction list and cursor, so cells
//     are opened in exactly the order the recursive formulation opens them
//     and the random source is consumed identically.
//   - Directions are shuffled with rand.Shuffle (Fisher–Yates), a uniform
//     permutation.
package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// strides are the four carving steps; shuffled per cell.
var strides = [4]grid.Coord{{Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: -2}, {Row: -2, Col: 0}}

// frame is one level of the backtracking stack.
type frame struct {
	at   grid.Coord
	dirs [4]grid.Coord
	next int
}

// carver encapsulates mutable carving state.
type carver struct {
	g     *grid.Grid
	opts  Options
	stack []frame
}

// Generate returns a rows×cols perfect maze.
//
// Returns grid.ErrEmptyGrid if rows or cols is not positive. Grids without
// an interior (rows<3 or cols<3) come back all-wall.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.NewFilled(rows, cols, grid.Wall)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if rows < 3 || cols < 3 {
		return g, nil
	}

	c := &carver{g: g, opts: o, stack: make([]frame, 0, (rows*cols)/4+1)}
	c.carve(Origin)

	return g, nil
}

// carve opens from and runs the backtracking loop until the stack empties.
func (c *carver) carve(from grid.Coord) {
	c.enter(from)
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.next == len(top.dirs) {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		target := top.at.Add(d.Row, d.Col)
		if !c.interior(target) || c.g.MustAt(target).Kind != grid.Wall {
			continue
		}
		c.g.MustAt(top.at.Add(d.Row/2, d.Col/2)).Kind = grid.Empty
		c.enter(target) // top is invalid after this append
	}
}

// enter opens at and pushes a frame with freshly shuffled directions.
func (c *carver) enter(at grid.Coord) {
	c.g.MustAt(at).Kind = grid.Empty
	f := frame{at: at, dirs: strides}
	c.opts.Rand.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	c.stack = append(c.stack, f)
}

// interior reports 0 < row < R-1 and 0 < col < C-1.
func (c *carver) interior(at grid.Coord) bool {
	return at.Row > 0 && at.Row < c.g.Rows()-1 && at.Col > 0 && at.Col < c.g.Cols()-1
}
