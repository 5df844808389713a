// Package search provides the unified frontier search over a grid.Grid,
// producing a lazy visitation sequence and the reconstructed path.
package search

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmaze/grid"
)

// Search is one run over a grid. It is single-pass and not safe for
// concurrent use; the grid it borrows must not be mutated while it runs.
type Search struct {
	g          *grid.Grid
	start, end grid.Coord
	strategy   Strategy
	opts       Options

	frontier *frontier
	settled  []bool       // row-major settled flags
	order    []grid.Coord // settled cells in visit order

	steps    int
	started  bool
	done     bool
	complete bool
	found    bool
	err      error
}

// New prepares a run from start to end on g with the given strategy.
// It sets start's Distance to 0 and clears its Parent; every other cell is
// left as found, so callers reset search state beforehand.
//
// Returns ErrNilGrid for a nil grid, ErrOptionViolation for bad options,
// ErrInvalidStrategy for an undefined strategy, an error wrapping
// grid.ErrOutOfRange when start or end lies outside g and ErrBlockedStart
// when start is a wall.
func New(g *grid.Grid, start, end grid.Coord, strategy Strategy, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(strategy))
	}
	if _, err := g.At(end); err != nil {
		return nil, fmt.Errorf("search: end: %w", err)
	}
	sc, err := g.At(start)
	if err != nil {
		return nil, fmt.Errorf("search: start: %w", err)
	}
	if !sc.Kind.Passable() {
		return nil, fmt.Errorf("%w: %v", ErrBlockedStart, start)
	}

	s := &Search{
		g:        g,
		start:    start,
		end:      end,
		strategy: strategy,
		opts:     o,
		settled:  make([]bool, g.Len()),
	}
	s.frontier = newFrontier(strategy.Policy(), s.score)

	sc.Distance = 0
	sc.Parent = grid.NoCoord
	s.frontier.push(start)

	return s, nil
}

// Strategy returns the strategy of the run.
func (s *Search) Strategy() Strategy { return s.strategy }

// Start returns the start coordinate.
func (s *Search) Start() grid.Coord { return s.start }

// End returns the end coordinate.
func (s *Search) End() grid.Coord { return s.end }

// Steps returns how many cells have been settled so far.
func (s *Search) Steps() int { return s.steps }

// Found reports whether End was popped from the frontier.
func (s *Search) Found() bool { return s.found }

// Done reports whether the run has stopped, for any reason.
func (s *Search) Done() bool { return s.done }

// Complete reports whether the run reached End or exhausted the frontier.
// It is false after a break out of Events, a MaxSteps stop or an abort,
// when Path cannot tell "no route" from "not searched yet".
func (s *Search) Complete() bool { return s.complete }

// Err returns the context or OnVisit error that aborted the run, if any.
// Exhausting the frontier and the caller breaking out of Events are not
// errors.
func (s *Search) Err() error { return s.err }

// Settled reports whether c was settled during this run.
func (s *Search) Settled(c grid.Coord) bool {
	if !s.g.InBounds(c) {
		return false
	}
	return s.settled[s.index(c)]
}

// Visited returns the settled cells in the order they were visited.
// The slice is a copy.
func (s *Search) Visited() []grid.Coord {
	out := make([]grid.Coord, len(s.order))
	copy(out, s.order)
	return out
}

// Events returns the lazy visitation sequence. The loop runs as the caller
// ranges over it and suspends after each settled cell. The sequence can be
// consumed once; later calls yield nothing.
func (s *Search) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if s.started {
			return
		}
		s.started = true
		defer func() { s.done = true }()

		for {
			if s.opts.MaxSteps > 0 && s.steps >= s.opts.MaxSteps {
				return
			}
			select {
			case <-s.opts.Ctx.Done():
				s.err = s.opts.Ctx.Err()
				return
			default:
			}

			current, ok := s.frontier.pop()
			if !ok {
				s.complete = true // no path
				return
			}
			if current == s.end {
				s.found, s.complete = true, true
				return
			}
			idx := s.index(current)
			if s.settled[idx] {
				continue
			}
			s.settled[idx] = true
			s.steps++

			cell := s.g.MustAt(current)
			if err := s.opts.OnVisit(*cell); err != nil {
				s.err = fmt.Errorf("search: OnVisit error at %v: %w", current, err)
				return
			}
			if !yield(Event{Step: s.steps, Cell: *cell, Frontier: s.frontier.len()}) {
				return
			}
			s.relax(current, cell.Distance)
		}
	}
}

// relax offers every passable, unsettled neighbour of current a distance
// of d+1 and pushes it onto the frontier whether or not it improved.
func (s *Search) relax(current grid.Coord, d int) {
	for _, n := range s.g.Neighbors(current) {
		nc := s.g.MustAt(n)
		if !nc.Kind.Passable() || s.settled[s.index(n)] {
			continue
		}
		if cand := d + 1; cand < nc.Distance {
			nc.Distance = cand
			nc.Parent = current
		}
		s.frontier.push(n)
	}
}

// Path reconstructs the route Start..End from Parent links. It returns an
// empty Path unless End was reached. The walk stops at Start, at a cell
// without a parent, or after Len() cells, so stale parents left by a run
// without a reset cannot loop.
func (s *Search) Path() Path {
	if !s.found {
		return nil
	}
	var rev []grid.Coord
	cur := s.end
	for i := 0; i < s.g.Len() && cur != s.start; i++ {
		cell := s.g.MustAt(cur)
		if !cell.HasParent() {
			break
		}
		rev = append(rev, cur)
		cur = cell.Parent
	}

	path := make(Path, 0, len(rev)+1)
	path = append(path, s.start)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// Run is the callback form: it drains Events, calling onVisit (may be nil)
// for every settled cell, and returns the path. An empty path with a nil
// error means no route exists.
func Run(g *grid.Grid, start, end grid.Coord, strategy Strategy, onVisit func(grid.Cell), opts ...Option) (Path, error) {
	s, err := New(g, start, end, strategy, opts...)
	if err != nil {
		return nil, err
	}
	for ev := range s.Events() {
		if onVisit != nil {
			onVisit(ev.Cell)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.Path(), nil
}

// score is the Heuristic priority: current distance plus Manhattan
// distance to End.
func (s *Search) score(c grid.Coord) int {
	return s.g.MustAt(c).Distance + c.Manhattan(s.end)
}

func (s *Search) index(c grid.Coord) int {
	return c.Row*s.g.Cols() + c.Col
}
