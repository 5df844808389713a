// Package grid is the data model shared by the maze generator and the
// search engine: a fixed-size rectangular arena of cells with a
// 4-directional neighbour rule.
//
// What:
//
//   - Grid stores R×C Cells row-major; a cell's identity is its Coord.
//   - Each Cell carries a Kind (Empty, Wall, Start, End, Visited, Path) and
//     the search-scoped bookkeeping Distance and Parent.
//   - Parent is stored as a Coord into the arena, never as a pointer, so
//     parent chains cannot form reference cycles and grids clone cheaply.
//   - Neighbors yields up to four in-bounds coordinates in the fixed order
//     up, down, left, right. Walls are not filtered here.
//   - OpenRegions / OpenEdges describe the passable sub-graph
//     (connected regions and the number of adjacencies between open cells).
//   - Parse / Format convert grids to and from a one-rune-per-cell text form.
//
// Search state:
//
//	Distance and Parent belong to a single search run. Callers must invoke
//	ResetSearchState before every new run; the search engine does not do
//	it for them and stale values corrupt traversal.
//
// Complexity:
//
//   - At, InBounds, Neighbors: O(1).
//   - ResetSearchState, Clone, Count: O(R×C).
//   - OpenRegions, OpenEdges: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols is not positive.
//   - ErrOutOfRange:     a coordinate lies outside [0,R)×[0,C).
//   - ErrNonRectangular: parsed text has rows of differing lengths.
//   - ErrBadCell:        parsed text contains an unknown cell rune.
package grid
