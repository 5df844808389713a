// Package session is the interactive layer around the search engine: it owns
// one grid, places endpoints and walls from clicks, regenerates mazes and
// guards the grid so that at most one search runs against it at a time.
//
// What
//
//   - Click protocol: the first click places Start, the second click on a
//     different cell places End, every later click toggles Wall ↔ Empty.
//     Clicks on Start, End, Visited or Path cells after both endpoints are
//     placed change nothing.
//   - Generate replaces the grid with a freshly carved maze; Clear with an
//     empty grid. Both forget the endpoints.
//   - Begin starts a Run on a private clone of the grid. While the run is
//     ranged over, every settled cell is marked Visited on the session grid
//     (never over Start or End) with its distance, so renderers can draw the
//     overlay from a Snapshot. Finish marks the path and releases the guard;
//     Cancel releases it without marking and may follow Finish. A run left
//     part-way has no path to mark: Finish reports ErrIncomplete instead of
//     an empty path.
//
// Concurrency
//
//	All methods are safe for concurrent use. Everything that would change the
//	grid is refused with ErrBusy while a Run is active. A Run itself is owned
//	by one goroutine.
//
// Errors
//
//   - ErrBusy: a run is active.
//   - ErrNoEndpoints: Begin before both Start and End are placed.
//   - ErrNotActive: Finish on a run that was cancelled or already finished.
//   - ErrIncomplete: Finish on a run stopped before it reached End or ran
//     out of cells.
//   - ErrAmbiguous: Load of a grid with several Start or End cells.
//   - grid.ErrOutOfRange, grid.ErrEmptyGrid: wrapped from the grid package.
package session
