// Package search finds a route between two cells of a grid.Grid using one
// of four interchangeable strategies that share a single frontier loop.
//
// What
//
//   - Strategies: Dijkstra, AStar, BFS, DFS. They differ only in how the
//     frontier gives up its next cell (the removal Policy):
//   - BFS, Dijkstra → FIFO (oldest first). Every move costs 1, so FIFO
//     already yields shortest paths and the two behave identically.
//   - AStar         → Heuristic: the entry minimising
//     Distance + Manhattan(cell, end), first inserted wins ties.
//   - DFS           → LIFO (newest first).
//   - Each iteration pops a cell; stops on End; skips cells already
//     settled (duplicates are allowed in the frontier); otherwise settles the
//     cell, emits an Event, then relaxes every passable unsettled neighbour
//     (Distance+1 if strictly better, Parent updated) and pushes it
//     unconditionally.
//   - Path walks Parent links back from End, reverses them and puts Start
//     first. It is empty when End was never popped.
//
// Visitation sequence
//
//	Search.Events returns a lazy, single-pass iter.Seq. The engine suspends
//	exactly once per iteration, right after settling a cell and before
//	touching its neighbours. Breaking out of the range loop is the
//	cancellation signal; distances and parents written up to that point stay
//	valid partial results. Complete tells a finished run (End reached or
//	frontier exhausted) from one stopped early, whose empty Path means
//	nothing.
//
//	The start cell must be passable: New refuses a wall with ErrBlockedStart,
//	so no event ever carries a wall.
//
// Search state
//
//	The engine writes Distance and Parent on the grid's own cells and never
//	changes kinds. It does not reset them: call grid.Grid.ResetSearchState
//	before each run, or pass a fresh grid.Grid.Clone. Running over stale
//	state is a caller error that yields stale distances, not a failure.
//	At most one search may run on a grid at a time.
//
// Usage
//
//	g.ResetSearchState()
//	s, err := search.New(g, start, end, search.AStar)
//	if err != nil {
//	    // ErrNilGrid, ErrInvalidStrategy, ErrOptionViolation, ErrBlockedStart or grid.ErrOutOfRange
//	}
//	for ev := range s.Events() {
//	    draw(ev.Cell)
//	}
//	path := s.Path() // empty when no route exists
//
//	// Callback form:
//	path, err := search.Run(g, start, end, search.BFS, func(c grid.Cell) { /* ... */ })
//
// Options
//
//   - WithContext(ctx):   stop when ctx is done; Err reports ctx.Err().
//   - WithOnVisit(fn):    hook per settled cell; an error aborts the run.
//   - WithMaxSteps(n):    settle at most n cells (n>0); 0 means no limit.
//
// Complexity (N = R×C)
//
//   - FIFO, LIFO: O(N) time, O(N) memory (each cell pushes ≤ 4 entries).
//   - Heuristic:  O(N²) time in the worst case (linear scan per pop).
package search
