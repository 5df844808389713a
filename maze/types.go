// Package maze provides tunable options and error definitions for maze
// generation and verification.
package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors returned by Verify.
var (
	// ErrBorder indicates an open cell on the outer ring.
	ErrBorder = errors.New("maze: border cell is not a wall")

	// ErrDisconnected indicates open cells unreachable from the carving origin.
	ErrDisconnected = errors.New("maze: open cells are not all connected")

	// ErrCycle indicates the open cells contain a loop.
	ErrCycle = errors.New("maze: open cells contain a cycle")
)

// Origin is the fixed interior cell carving starts from.
var Origin = grid.Coord{Row: 1, Col: 1}

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds the random source used for direction shuffles.
type Options struct {
	// Rand drives the direction shuffles. Not safe for concurrent use;
	// do not share one *rand.Rand across goroutines.
	Rand *rand.Rand
}

// DefaultOptions returns Options with a time-seeded source, so successive
// calls produce different mazes.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand injects the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed makes generation reproducible: equal seeds give equal mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}
