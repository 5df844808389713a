// Package grid defines cell kinds, coordinates, cells and sentinel errors
// for the grid subpackage of github.com/katalvlaran/lvmaze.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfRange indicates a coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown rune in parsed text.
	ErrBadCell = errors.New("grid: unknown cell rune")
)

// Infinity is the Distance of a cell not yet reached by the current search.
const Infinity = math.MaxInt

// Kind is the mutually exclusive state of a cell.
type Kind uint8

const (
	// Empty is a passable, unmarked cell.
	Empty Kind = iota
	// Wall blocks movement.
	Wall
	// Start is the search origin. At most one per session.
	Start
	// End is the search target. At most one per session.
	End
	// Visited marks a cell the renderer has seen settled by a search.
	Visited
	// Path marks a cell on the reconstructed route.
	Path
)

var kindNames = [...]string{
	Empty:   "empty",
	Wall:    "wall",
	Start:   "start",
	End:     "end",
	Visited: "visited",
	Path:    "path",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Passable reports whether a search may enter a cell of this kind.
func (k Kind) Passable() bool {
	return k != Wall
}

// Endpoint reports whether k is Start or End. Endpoints are never
// overwritten by Visited or Path marking.
func (k Kind) Endpoint() bool {
	return k == Start || k == End
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// NoCoord is the Parent of a cell without a predecessor.
var NoCoord = Coord{Row: -1, Col: -1}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is one grid position.
//
// Row and Col never change after construction. Distance and Parent are
// search-scoped, see Grid.ResetSearchState.
type Cell struct {
	Kind     Kind
	Row, Col int
	Distance int   // tentative cost from Start; Infinity if unreached
	Parent   Coord // predecessor on the best known path; NoCoord if none
}

// Coord returns the cell identity.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// HasParent reports whether the cell has a predecessor.
func (c Cell) HasParent() bool {
	return c.Parent != NoCoord
}

// Reached reports whether the current search assigned a finite distance.
func (c Cell) Reached() bool {
	return c.Distance != Infinity
}
