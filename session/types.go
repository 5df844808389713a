package session

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Default dimensions of a new session grid.
const (
	DefaultRows = 25
	DefaultCols = 40
)

var (
	// ErrBusy is returned when the grid is locked by an active run.
	ErrBusy = errors.New("session: a search is in progress")

	// ErrNoEndpoints is returned by Begin when Start or End is missing.
	ErrNoEndpoints = errors.New("session: start and end must both be placed")

	// ErrNotActive is returned by Finish on a run that no longer holds the grid.
	ErrNotActive = errors.New("session: run is not active")

	// ErrIncomplete is returned by Finish when the search stopped before
	// reaching End or exhausting the grid, so no path result exists.
	ErrIncomplete = errors.New("session: search stopped before it finished")

	// ErrAmbiguous is returned by Load for grids with duplicate endpoints.
	ErrAmbiguous = errors.New("session: grid holds more than one start or end")
)

// Option configures a Session.
type Option func(*Options)

// Options holds the collaborators of a Session.
type Options struct {
	// Logger receives lifecycle messages. Defaults to a discarding logger.
	Logger *log.Logger

	// Rand drives maze generation. Guarded by the session lock.
	Rand *rand.Rand
}

// DefaultOptions returns a discarding logger and a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithLogger sets the lifecycle logger. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand sets the maze random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
