package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// room builds a rows×cols grid whose border ring is Wall and interior Empty.
func room(t testing.TB, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for c := range g.Cells() {
		if c.Row == 0 || c.Col == 0 || c.Row == rows-1 || c.Col == cols-1 {
			c.Kind = grid.Wall
		}
	}
	return g
}

// drain runs a search to completion and returns the settled cells in order.
func drain(t testing.TB, g *grid.Grid, start, end grid.Coord, st search.Strategy) ([]grid.Coord, search.Path) {
	t.Helper()
	s, err := search.New(g, start, end, st)
	require.NoError(t, err)
	var order []grid.Coord
	for ev := range s.Events() {
		order = append(order, ev.Cell.Coord())
	}
	require.NoError(t, s.Err())
	return order, s.Path()
}

// assertValidPath checks endpoints, adjacency and passability of p.
func assertValidPath(t *testing.T, g *grid.Grid, p search.Path, start, end grid.Coord) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0])
	assert.Equal(t, end, p[len(p)-1])
	for i, c := range p {
		k, err := g.Kind(c)
		require.NoError(t, err)
		assert.True(t, k.Passable(), "path cell %v is %s", c, k)
		if i > 0 {
			assert.Equal(t, 1, p[i-1].Manhattan(c), "cells %v and %v are not adjacent", p[i-1], c)
		}
	}
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

func TestNew_Validation(t *testing.T) {
	g := room(t, 5, 5)

	_, err := search.New(nil, grid.At(1, 1), grid.At(3, 3), search.BFS)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.New(g, grid.At(1, 1), grid.At(3, 3), search.Strategy(42))
	assert.ErrorIs(t, err, search.ErrInvalidStrategy)

	_, err = search.New(g, grid.At(-1, 1), grid.At(3, 3), search.BFS)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = search.New(g, grid.At(1, 1), grid.At(3, 5), search.BFS)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = search.New(g, grid.At(1, 1), grid.At(3, 3), search.BFS, search.WithMaxSteps(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	// the grid stays usable after every failure
	_, p := drain(t, g, grid.At(1, 1), grid.At(3, 3), search.BFS)
	assert.Equal(t, 5, p.Len())
}

// TestNew_WallStart: a wall never enters the frontier, so no event can
// carry one and no path can cross one.
func TestNew_WallStart(t *testing.T) {
	g := grid.MustParse("#..\n...\n..E\n")
	for _, st := range search.Strategies() {
		t.Run(st.String(), func(t *testing.T) {
			s, err := search.New(g, grid.At(0, 0), grid.At(2, 2), st)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, search.ErrBlockedStart)

			path, err := search.Run(g, grid.At(0, 0), grid.At(2, 2), st, nil)
			assert.Nil(t, path)
			assert.ErrorIs(t, err, search.ErrBlockedStart)
		})
	}
	assert.Equal(t, grid.Infinity, g.MustAt(grid.At(0, 0)).Distance, "a refused start is left untouched")
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want search.Strategy
	}{
		{"dijkstra", search.Dijkstra},
		{"astar", search.AStar},
		{"BFS", search.BFS},
		{" dfs ", search.DFS},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := search.ParseStrategy(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "greedy", "a*", "dfs2"} {
		_, err := search.ParseStrategy(bad)
		assert.ErrorIs(t, err, search.ErrInvalidStrategy, "input %q", bad)
	}
}

func TestStrategy_TextAndPolicy(t *testing.T) {
	assert.Equal(t, []search.Strategy{search.Dijkstra, search.AStar, search.BFS, search.DFS}, search.Strategies())

	policies := map[search.Strategy]search.Policy{
		search.Dijkstra: search.FIFO,
		search.BFS:      search.FIFO,
		search.DFS:      search.LIFO,
		search.AStar:    search.Heuristic,
	}
	for st, p := range policies {
		assert.Equal(t, p, st.Policy(), st.String())

		b, err := st.MarshalText()
		require.NoError(t, err)
		var back search.Strategy
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, st, back)
	}

	_, err := search.Strategy(-1).MarshalText()
	assert.ErrorIs(t, err, search.ErrInvalidStrategy)
	var s search.Strategy
	assert.ErrorIs(t, s.UnmarshalText([]byte("nope")), search.ErrInvalidStrategy)
	assert.Equal(t, "strategy(7)", search.Strategy(7).String())
	assert.Equal(t, "heuristic", search.Heuristic.String())
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestBFS_OpenRoom covers the 5×5 open room from (1,1) to (3,3): 4 moves,
// with the exact order fixed by the up, down, left, right neighbour rule.
func TestBFS_OpenRoom(t *testing.T) {
	g := room(t, 5, 5)
	order, p := drain(t, g, grid.At(1, 1), grid.At(3, 3), search.BFS)

	assert.Equal(t, search.Path{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}, p)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 4, p.Moves())
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 3, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 3}, {Row: 3, Col: 2}, {Row: 2, Col: 3}}, order)
	assert.Equal(t, 4, g.MustAt(grid.At(3, 3)).Distance)
}

// TestSearch_StartWalledIn expects one event (the start) and no path.
func TestSearch_StartWalledIn(t *testing.T) {
	g := grid.MustParse(`
#####
#S#E#
#####
`)
	for _, st := range search.Strategies() {
		t.Run(st.String(), func(t *testing.T) {
			g.ResetSearchState()
			s, err := search.New(g, grid.At(1, 1), grid.At(1, 3), st)
			require.NoError(t, err)

			var events []search.Event
			for ev := range s.Events() {
				events = append(events, ev)
			}
			require.Len(t, events, 1)
			assert.Equal(t, grid.At(1, 1), events[0].Cell.Coord())
			assert.Equal(t, 0, events[0].Cell.Distance)
			assert.False(t, s.Found())
			assert.True(t, s.Complete(), "an exhausted frontier is a finished search")
			assert.Empty(t, s.Path())
			assert.NoError(t, s.Err())
			assert.True(t, s.Done())
		})
	}
}

// TestSearch_StartIsEnd short-circuits on the first pop.
func TestSearch_StartIsEnd(t *testing.T) {
	for _, st := range search.Strategies() {
		t.Run(st.String(), func(t *testing.T) {
			g := room(t, 5, 5)
			order, p := drain(t, g, grid.At(2, 2), grid.At(2, 2), st)
			assert.Empty(t, order)
			assert.Equal(t, search.Path{{Row: 2, Col: 2}}, p)
			assert.Zero(t, p.Moves())
		})
	}
}

// TestDFS_Corridor checks LIFO degenerates to corridor order without branching.
func TestDFS_Corridor(t *testing.T) {
	g := grid.MustParse("S.....E\n")
	order, p := drain(t, g, grid.At(0, 0), grid.At(0, 6), search.DFS)

	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}}, order)
	assert.Equal(t, 7, p.Len())
	assertValidPath(t, g, p, grid.At(0, 0), grid.At(0, 6))
}

// TestDFS_LIFOOrder locks the newest-first removal on a branching 3×3 grid.
func TestDFS_LIFOOrder(t *testing.T) {
	g, _ := grid.New(3, 3)
	order, p := drain(t, g, grid.At(0, 0), grid.At(2, 2), search.DFS)

	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}, order)
	assert.Equal(t, search.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, p)
}

// TestAStar_StraightLine: with the goal on the same row of an open grid
// A* never leaves that row.
func TestAStar_StraightLine(t *testing.T) {
	g, _ := grid.New(10, 10)
	order, p := drain(t, g, grid.At(0, 0), grid.At(0, 9), search.AStar)

	want := make([]grid.Coord, 0, 9)
	for c := 0; c < 9; c++ {
		want = append(want, grid.At(0, c))
	}
	assert.Equal(t, want, order)
	assert.Equal(t, 10, p.Len())

	g.ResetSearchState()
	bfsOrder, _ := drain(t, g, grid.At(0, 0), grid.At(0, 9), search.BFS)
	assert.Greater(t, len(bfsOrder), len(order), "A* should settle fewer cells than BFS here")
}

// TestAStar_TieBreakInsertionOrder: every interior cell of the room has the
// same score, so A* falls back to insertion order and matches BFS.
func TestAStar_TieBreakInsertionOrder(t *testing.T) {
	g := room(t, 5, 5)
	astarOrder, astarPath := drain(t, g, grid.At(1, 1), grid.At(3, 3), search.AStar)

	g.ResetSearchState()
	bfsOrder, bfsPath := drain(t, g, grid.At(1, 1), grid.At(3, 3), search.BFS)

	assert.Equal(t, bfsOrder, astarOrder)
	assert.Equal(t, bfsPath, astarPath)
}

// TestBFS_Detour: path length exceeds the Manhattan distance exactly when
// walls force a detour.
func TestBFS_Detour(t *testing.T) {
	g := grid.MustParse(`
S.#.E
..#..
.....
`)
	start, end := grid.At(0, 0), grid.At(0, 4)
	_, p := drain(t, g, start, end, search.BFS)
	assertValidPath(t, g, p, start, end)
	assert.Equal(t, 8, p.Moves())
	assert.Greater(t, p.Moves(), start.Manhattan(end))
}

// TestBFS_OpenGridManhattan: without obstacles BFS and Dijkstra moves equal
// the Manhattan distance.
func TestBFS_OpenGridManhattan(t *testing.T) {
	pairs := [][2]grid.Coord{
		{{Row: 0, Col: 0}, {Row: 6, Col: 7}},
		{{Row: 3, Col: 5}, {Row: 0, Col: 1}},
		{{Row: 6, Col: 0}, {Row: 0, Col: 7}},
		{{Row: 2, Col: 2}, {Row: 2, Col: 6}},
	}
	for _, st := range []search.Strategy{search.BFS, search.Dijkstra, search.AStar} {
		for _, pr := range pairs {
			g, _ := grid.New(7, 8)
			_, p := drain(t, g, pr[0], pr[1], st)
			assertValidPath(t, g, p, pr[0], pr[1])
			assert.Equal(t, pr[0].Manhattan(pr[1]), p.Moves(), "%s %v→%v", st, pr[0], pr[1])
		}
	}
}

//----------------------------------------------------------------------------//
// Properties over generated mazes
//----------------------------------------------------------------------------//

// TestProperties_Mazes checks, for every strategy over several mazes: no
// wall is ever settled, no cell is settled twice, the path is valid, and a
// perfect maze has a single route every strategy agrees on.
func TestProperties_Mazes(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := maze.Generate(25, 41, maze.WithSeed(seed))
		require.NoError(t, err)
		start, end := grid.At(1, 1), grid.At(23, 39)

		var reference search.Path
		for _, st := range search.Strategies() {
			g.ResetSearchState()
			order, p := drain(t, g, start, end, st)

			seen := make(map[grid.Coord]bool, len(order))
			for _, c := range order {
				k, _ := g.Kind(c)
				assert.NotEqual(t, grid.Wall, k, "seed %d %s settled wall %v", seed, st, c)
				assert.False(t, seen[c], "seed %d %s settled %v twice", seed, st, c)
				seen[c] = true
			}

			assertValidPath(t, g, p, start, end)
			assert.GreaterOrEqual(t, p.Moves(), start.Manhattan(end))
			if reference == nil {
				reference = p
			}
			assert.Equal(t, reference, p, "seed %d %s", seed, st)
		}
	}
}

// TestProperties_BFSMatchesDijkstra: identical events and paths on a grid
// with loops and obstacles.
func TestProperties_BFSMatchesDijkstra(t *testing.T) {
	g := grid.MustParse(`
..........
.##.###...
.#...#..#.
.#.#.#.##.
...#......
.###.####.
..........
`)
	start, end := grid.At(0, 0), grid.At(6, 9)
	bfsOrder, bfsPath := drain(t, g, start, end, search.BFS)
	distBFS := g.MustAt(end).Distance

	g.ResetSearchState()
	dijOrder, dijPath := drain(t, g, start, end, search.Dijkstra)

	assert.Equal(t, bfsOrder, dijOrder)
	assert.Equal(t, bfsPath, dijPath)
	assert.Equal(t, distBFS, bfsPath.Moves())
	assertValidPath(t, g, bfsPath, start, end)
}

// TestProperties_Idempotent: reset + search twice gives the same events
// and path for every strategy.
func TestProperties_Idempotent(t *testing.T) {
	g := grid.MustParse(`
..........
.##.###...
.#...#..#.
.#.#.#.##.
...#......
`)
	start, end := grid.At(2, 2), grid.At(4, 9)
	for _, st := range search.Strategies() {
		t.Run(st.String(), func(t *testing.T) {
			g.ResetSearchState()
			o1, p1 := drain(t, g, start, end, st)
			g.ResetSearchState()
			o2, p2 := drain(t, g, start, end, st)
			assert.Equal(t, o1, o2)
			assert.Equal(t, p1, p2)
			assertValidPath(t, g, p1, start, end)
		})
	}
}

// TestProperties_BFSDistancesMonotone: events arrive in non-decreasing
// distance under FIFO, with consecutive step numbers.
func TestProperties_BFSDistancesMonotone(t *testing.T) {
	g, err := maze.Generate(21, 21, maze.WithSeed(5))
	require.NoError(t, err)
	s, err := search.New(g, grid.At(1, 1), grid.At(19, 19), search.BFS)
	require.NoError(t, err)

	last, step := 0, 0
	for ev := range s.Events() {
		step++
		assert.Equal(t, step, ev.Step)
		assert.GreaterOrEqual(t, ev.Cell.Distance, last)
		last = ev.Cell.Distance
	}
	assert.True(t, s.Found())
	assert.Equal(t, step, s.Steps())
}

//----------------------------------------------------------------------------//
// Stale state
//----------------------------------------------------------------------------//

// TestStaleStateWithoutReset documents that skipping ResetSearchState
// leaves stale distances and a broken path; with the reset both are right.
func TestStaleStateWithoutReset(t *testing.T) {
	g := room(t, 5, 5)
	_, first := drain(t, g, grid.At(1, 1), grid.At(3, 3), search.BFS)
	require.Equal(t, 5, first.Len())

	// reverse direction without a reset
	_, stale := drain(t, g, grid.At(3, 3), grid.At(1, 1), search.BFS)
	assert.Equal(t, 1, g.MustAt(grid.At(1, 2)).Distance, "distance left over from the first run")
	assert.NotEqual(t, grid.At(1, 1), stale[len(stale)-1], "stale parents cannot reach the new end")

	g.ResetSearchState()
	_, fresh := drain(t, g, grid.At(3, 3), grid.At(1, 1), search.BFS)
	assert.Equal(t, 3, g.MustAt(grid.At(1, 2)).Distance)
	assert.Equal(t, 5, fresh.Len())
	assertValidPath(t, g, fresh, grid.At(3, 3), grid.At(1, 1))
}

//----------------------------------------------------------------------------//
// Cancellation and hooks
//----------------------------------------------------------------------------//

func TestEvents_StopPulling(t *testing.T) {
	g := room(t, 10, 10)
	s, err := search.New(g, grid.At(1, 1), grid.At(8, 8), search.BFS)
	require.NoError(t, err)

	var settled []grid.Coord
	for ev := range s.Events() {
		settled = append(settled, ev.Cell.Coord())
		if len(settled) == 3 {
			break
		}
	}
	assert.Equal(t, 3, s.Steps())
	assert.False(t, s.Found())
	assert.True(t, s.Done())
	assert.False(t, s.Complete(), "a break is not a finished search")
	assert.NoError(t, s.Err())
	assert.Empty(t, s.Path())
	for _, c := range settled {
		assert.True(t, s.Settled(c))
		assert.True(t, g.MustAt(c).Reached(), "partial results stay valid for %v", c)
	}
	assert.False(t, s.Settled(grid.At(99, 99)))

	n := 0
	for range s.Events() {
		n++
	}
	assert.Zero(t, n, "the sequence is single-pass")
}

func TestWithContext_Cancelled(t *testing.T) {
	g := room(t, 6, 6)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path, err := search.Run(g, grid.At(1, 1), grid.At(4, 4), search.AStar, nil, search.WithContext(ctx))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithOnVisit_Abort(t *testing.T) {
	g := room(t, 6, 6)
	boom := errors.New("boom")
	calls := 0
	var seen []grid.Coord

	path, err := search.Run(g, grid.At(1, 1), grid.At(4, 4), search.BFS,
		func(c grid.Cell) { seen = append(seen, c.Coord()) },
		search.WithOnVisit(func(grid.Cell) error {
			calls++
			if calls == 3 {
				return boom
			}
			return nil
		}),
	)
	assert.Nil(t, path)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, seen, 2, "the aborting cell is not delivered")
}

func TestWithMaxSteps(t *testing.T) {
	g := room(t, 6, 6)
	s, err := search.New(g, grid.At(1, 1), grid.At(4, 4), search.DFS, search.WithMaxSteps(2))
	require.NoError(t, err)
	n := 0
	for range s.Events() {
		n++
	}
	assert.Equal(t, 2, n)
	assert.False(t, s.Found())
	assert.False(t, s.Complete())
	assert.Empty(t, s.Path())
}

func TestRun_CallbackForm(t *testing.T) {
	g := room(t, 5, 5)
	var visited []grid.Cell
	p, err := search.Run(g, grid.At(1, 1), grid.At(3, 3), search.Dijkstra, func(c grid.Cell) {
		visited = append(visited, c)
	})
	require.NoError(t, err)
	assert.Len(t, visited, 8)
	assert.Equal(t, 0, visited[0].Distance)
	assert.Equal(t, "(1,1)→(2,1)→(3,1)→(3,2)→(3,3)", p.String())
	assert.True(t, p.Contains(grid.At(3, 2)))
	assert.False(t, p.Contains(grid.At(1, 3)))

	_, err = search.Run(nil, grid.At(0, 0), grid.At(0, 0), search.BFS, nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestSearch_Accessors(t *testing.T) {
	g := room(t, 5, 5)
	s, err := search.New(g, grid.At(1, 1), grid.At(3, 3), search.AStar)
	require.NoError(t, err)
	assert.Equal(t, search.AStar, s.Strategy())
	assert.Equal(t, grid.At(1, 1), s.Start())
	assert.Equal(t, grid.At(3, 3), s.End())
	assert.False(t, s.Done())
	assert.Equal(t, 0, g.MustAt(grid.At(1, 1)).Distance, "New seeds the start distance")
}

func TestSearch_VisitedMatchesEvents(t *testing.T) {
	g := room(t, 5, 5)
	s, err := search.New(g, grid.At(1, 1), grid.At(3, 3), search.DFS)
	require.NoError(t, err)

	var seen []grid.Coord
	for ev := range s.Events() {
		seen = append(seen, ev.Cell.Coord())
		assert.True(t, s.Settled(ev.Cell.Coord()))
	}
	assert.Equal(t, seen, s.Visited())
	assert.Len(t, seen, s.Steps())
	assert.False(t, s.Settled(grid.At(-1, 0)))
}

// TestSearch_NeverChangesKinds: kinds are the renderer's business.
func TestSearch_NeverChangesKinds(t *testing.T) {
	g := grid.MustParse(`
#######
#S...E#
#.###.#
#.....#
#######
`)
	before := g.String()
	for _, st := range search.Strategies() {
		g.ResetSearchState()
		_, p := drain(t, g, grid.At(1, 1), grid.At(1, 5), st)
		assert.NotEmpty(t, p)
	}
	assert.Equal(t, before, g.String())
}
