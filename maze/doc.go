// Package maze carves perfect mazes into a fully walled grid.grid using
// randomized depth-first backtracking with 2-cell strides.
//
// What
//
//   - Generate fills an R×C grid with walls and carves from the fixed
//     interior cell (1,1). At each cell the four stride-2 directions
//     (0,2), (2,0), (0,-2), (-2,0) are shuffled with a uniform random
//     permutation; every direction whose target lies strictly inside the
//     border and is still a wall gets its midpoint and target opened, then
//     carving continues from the target.
//   - The border ring (row 0, row R-1, col 0, col C-1) always stays Wall.
//   - The result is a perfect maze: every open cell is reachable from (1,1)
//     and the open cells form a tree (no loops).
//   - Verify checks those invariants on any grid.
//
// Determinism
//
//	Generate is non-deterministic by default (time-seeded source). Pass
//	WithSeed or WithRand to make the carving reproducible: the same seed
//	always yields the same maze.
//
// Small grids
//
//	Grids with fewer than 3 rows or columns have no interior; Generate
//	returns them all-wall instead of failing.
//
// Complexity
//
//   - Time:   O(R×C)
//   - Memory: O(R×C) for the grid plus O(R×C/4) for the backtracking stack.
//
// Errors
//
//   - grid.ErrEmptyGrid       rows or cols is not positive.
//   - ErrBorder, ErrDisconnected, ErrCycle from Verify.
package maze
