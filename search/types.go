// Package search defines strategies, removal policies, options and error
// definitions for grid path search.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidStrategy is returned for an unrecognised strategy selector.
	// There is no fallback to a default strategy.
	ErrInvalidStrategy = errors.New("search: invalid strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBlockedStart is returned when the start cell is not passable.
	ErrBlockedStart = errors.New("search: start cell is a wall")
)

// Strategy selects the traversal.
type Strategy int

const (
	// Dijkstra expands in FIFO order; identical to BFS under unit costs.
	Dijkstra Strategy = iota
	// AStar expands the entry minimising distance + Manhattan distance to End.
	AStar
	// BFS expands in FIFO order.
	BFS
	// DFS expands in LIFO order.
	DFS
)

var strategyNames = [...]string{
	Dijkstra: "dijkstra",
	AStar:    "astar",
	BFS:      "bfs",
	DFS:      "dfs",
}

// Strategies lists every strategy in menu order.
func Strategies() []Strategy {
	return []Strategy{Dijkstra, AStar, BFS, DFS}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= Dijkstra && s <= DFS
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a name (case-insensitive) to its Strategy.
// Unknown names fail with ErrInvalidStrategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range strategyNames {
		if sn == n {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of dijkstra, astar, bfs, dfs)", ErrInvalidStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Policy is the frontier removal rule.
type Policy int

const (
	// FIFO removes the oldest entry.
	FIFO Policy = iota
	// LIFO removes the newest entry.
	LIFO
	// Heuristic removes the first entry with the lowest score.
	Heuristic
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case Heuristic:
		return "heuristic"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Policy returns the removal rule used by s.
func (s Strategy) Policy() Policy {
	switch s {
	case AStar:
		return Heuristic
	case DFS:
		return LIFO
	default:
		return FIFO
	}
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customise a search run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every settled cell before its Event is
	// delivered. Returning an error aborts the run.
	OnVisit func(c grid.Cell) error

	// MaxSteps, if > 0, stops the run after that many settled cells.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnVisit hook and no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Cell) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook run for each settled cell; returning an
// error from it stops the search.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps limits the number of settled cells.
//
//	n > 0: stop after n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Event records one settled cell.
type Event struct {
	// Step is the 1-based position of the event in the run.
	Step int
	// Cell is a copy of the settled cell, Distance included.
	Cell grid.Cell
	// Frontier is the number of frontier entries left when the cell was settled.
	Frontier int
}

// Path is an ordered route from Start to End inclusive; empty if End was
// not reached.
type Path []grid.Coord

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Moves returns the number of steps between cells, Len()-1, or 0.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c grid.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// String formats the path as "(r,c)→(r,c)→…".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, "→")
}
