package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Verify checks that g is a perfect maze as produced by Generate:
//
//  1. Every border cell is a wall (ErrBorder).
//  2. All open cells form one region that contains Origin (ErrDisconnected).
//  3. The open cells are acyclic: adjacencies == open cells - 1 (ErrCycle).
//
// A grid without open cells passes.
// Complexity: O(R×C).
func Verify(g *grid.Grid) error {
	rows, cols := g.Rows(), g.Cols()
	for c := range g.Cells() {
		onBorder := c.Row == 0 || c.Row == rows-1 || c.Col == 0 || c.Col == cols-1
		if onBorder && c.Kind.Passable() {
			return fmt.Errorf("%w: %v is %s", ErrBorder, c.Coord(), c.Kind)
		}
	}

	open := g.Passable()
	if open == 0 {
		return nil
	}

	regions := g.OpenRegions()
	if len(regions) != 1 || regions[0][0] != Origin {
		return fmt.Errorf("%w: %d regions", ErrDisconnected, len(regions))
	}
	if edges := g.OpenEdges(); edges != open-1 {
		return fmt.Errorf("%w: %d adjacencies between %d open cells", ErrCycle, edges, open)
	}
	return nil
}
