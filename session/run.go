package session

import (
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
)

// Run is one search holding the session grid. Obtain it from Begin, range
// over Events, then call Finish or Cancel. Both release the grid; further
// calls to Cancel are no-ops and further calls to Finish return
// ErrNotActive.
type Run struct {
	// ID identifies the run in logs and over the HTTP API.
	ID uuid.UUID

	sess    *Session
	search  *search.Search
	began   time.Time
	visited int
}

// Begin starts a search with the given strategy from Start to End. Marks of
// the previous run are cleared first. The search works on a private clone;
// opts are passed to search.New.
//
// Returns ErrBusy if another run is active, ErrNoEndpoints if Start or End
// is missing and any error of search.New.
func (s *Session) Begin(strategy search.Strategy, opts ...search.Option) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return nil, ErrBusy
	}
	if s.start == grid.NoCoord || s.end == grid.NoCoord {
		return nil, ErrNoEndpoints
	}

	s.clearMarks()
	sr, err := search.New(s.g.Clone(), s.start, s.end, strategy, opts...)
	if err != nil {
		return nil, err
	}

	r := &Run{ID: uuid.New(), sess: s, search: sr, began: time.Now()}
	s.run = r
	s.logger.Debug("search started", "run", r.ID, "strategy", strategy, "start", s.start, "end", s.end)
	return r, nil
}

// Strategy returns the strategy of the run.
func (r *Run) Strategy() search.Strategy { return r.search.Strategy() }

// Steps returns the number of cells settled so far.
func (r *Run) Steps() int { return r.search.Steps() }

// Active reports whether r still holds the session grid.
func (r *Run) Active() bool {
	r.sess.mu.Lock()
	defer r.sess.mu.Unlock()
	return r.sess.run == r
}

// Events yields the visitation sequence, marking each settled cell Visited
// on the session grid before it is delivered. The sequence ends early once
// the run is cancelled.
func (r *Run) Events() iter.Seq[search.Event] {
	return func(yield func(search.Event) bool) {
		for ev := range r.search.Events() {
			if !r.mark(ev.Cell) {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func (r *Run) mark(c grid.Cell) bool {
	s := r.sess
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != r {
		return false
	}
	cell := s.g.MustAt(c.Coord())
	if !cell.Kind.Endpoint() {
		cell.Kind = grid.Visited
	}
	cell.Distance = c.Distance
	cell.Parent = c.Parent
	r.visited++
	return true
}

// Finish releases the grid and reports the outcome. If Events was never
// ranged over, the whole search runs here first. A run that ended normally
// gets its path cells (except Start and End) marked Path; the path is empty
// when no route exists.
//
// A run stopped part-way, by a break out of Events, a MaxSteps limit or an
// abort, has no path result: Finish releases the grid without marking and
// returns the search error, or ErrIncomplete when there is none. Events are
// single-pass, so a sequence left early is not resumed.
func (r *Run) Finish() (search.Path, error) {
	for range r.Events() {
	}

	s := r.sess
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != r {
		return nil, ErrNotActive
	}
	s.run = nil

	elapsed := time.Since(r.began).Round(time.Millisecond)
	if err := r.search.Err(); err != nil {
		s.logger.Warn("search aborted", "run", r.ID, "err", err, "visited", r.visited)
		return nil, err
	}
	if !r.search.Complete() {
		s.logger.Warn("search aborted", "run", r.ID, "err", ErrIncomplete, "visited", r.visited)
		return nil, ErrIncomplete
	}

	path := r.search.Path()
	for _, c := range path {
		if cell := s.g.MustAt(c); !cell.Kind.Endpoint() {
			cell.Kind = grid.Path
		}
	}

	if len(path) == 0 {
		s.logger.Info("no path", "run", r.ID, "strategy", r.Strategy(), "visited", r.visited, "elapsed", elapsed)
	} else {
		s.logger.Info("path found", "run", r.ID, "strategy", r.Strategy(), "visited", r.visited, "length", path.Len(), "elapsed", elapsed)
	}
	return path, nil
}

// Cancel releases the grid without marking a path. Visited marks stay.
// Calling it on an inactive run, including one already finished, does
// nothing.
func (r *Run) Cancel() {
	s := r.sess
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != r {
		return
	}
	s.run = nil
	s.logger.Debug("search cancelled", "run", r.ID, "visited", r.visited)
}
