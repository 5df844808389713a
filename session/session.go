package session

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// Session owns one grid and the endpoints placed on it.
type Session struct {
	mu sync.Mutex

	g          *grid.Grid
	start, end grid.Coord // NoCoord until placed
	run        *Run       // non-nil while a search holds the grid

	logger *log.Logger
	rng    *rand.Rand
}

// New returns a session over an empty rows×cols grid.
// Returns an error wrapping grid.ErrEmptyGrid if rows or cols is < 1.
func New(rows, cols int, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Session{
		g:      g,
		start:  grid.NoCoord,
		end:    grid.NoCoord,
		logger: o.Logger,
		rng:    o.Rand,
	}, nil
}

// Rows returns the number of grid rows.
func (s *Session) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Rows()
}

// Cols returns the number of grid columns.
func (s *Session) Cols() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Cols()
}

// Start returns the Start coordinate and whether it has been placed.
func (s *Session) Start() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.start != grid.NoCoord
}

// End returns the End coordinate and whether it has been placed.
func (s *Session) End() (grid.Coord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.end, s.end != grid.NoCoord
}

// Busy reports whether a run currently holds the grid.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run != nil
}

// Snapshot returns a deep copy of the grid for rendering.
func (s *Session) Snapshot() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Clone()
}

// Click applies the click protocol at c and returns the cell's kind after
// the click.
func (s *Session) Click(c grid.Coord) (grid.Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return 0, ErrBusy
	}
	cell, err := s.g.At(c)
	if err != nil {
		return 0, fmt.Errorf("session: click: %w", err)
	}

	switch {
	case s.start == grid.NoCoord:
		cell.Kind = grid.Start
		s.start = c
		s.logger.Debug("start placed", "cell", c)
	case s.end == grid.NoCoord && c != s.start:
		cell.Kind = grid.End
		s.end = c
		s.logger.Debug("end placed", "cell", c)
	case cell.Kind == grid.Wall:
		cell.Kind = grid.Empty
	case cell.Kind == grid.Empty:
		cell.Kind = grid.Wall
	}
	return cell.Kind, nil
}

// Generate replaces the grid with a new maze of the same size and forgets
// both endpoints.
func (s *Session) Generate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return ErrBusy
	}
	g, err := maze.Generate(s.g.Rows(), s.g.Cols(), maze.WithRand(s.rng))
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.g = g
	s.start, s.end = grid.NoCoord, grid.NoCoord
	s.logger.Info("maze generated", "rows", g.Rows(), "cols", g.Cols(), "open", g.Passable())
	return nil
}

// Clear replaces the grid with an empty one and forgets both endpoints.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return ErrBusy
	}
	g, err := grid.New(s.g.Rows(), s.g.Cols())
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.g = g
	s.start, s.end = grid.NoCoord, grid.NoCoord
	s.logger.Debug("grid cleared")
	return nil
}

// ClearSearch turns Visited and Path cells back to Empty and resets search
// state, keeping walls and endpoints.
func (s *Session) ClearSearch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return ErrBusy
	}
	s.clearMarks()
	return nil
}

// Load replaces the grid with a copy of g, taking Start and End from its
// cells. Visited and Path marks in g are kept.
func (s *Session) Load(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("session: load: %w", grid.ErrEmptyGrid)
	}
	if g.Count(grid.Start) > 1 || g.Count(grid.End) > 1 {
		return ErrAmbiguous
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil {
		return ErrBusy
	}
	s.g = g.Clone()
	s.g.ResetSearchState()
	s.start, _ = s.g.Find(grid.Start)
	s.end, _ = s.g.Find(grid.End)
	s.logger.Debug("grid loaded", "rows", s.g.Rows(), "cols", s.g.Cols())
	return nil
}

// clearMarks requires s.mu.
func (s *Session) clearMarks() {
	s.g.Replace(grid.Visited, grid.Empty)
	s.g.Replace(grid.Path, grid.Empty)
	s.g.ResetSearchState()
}
