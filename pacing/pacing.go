// Package pacing throttles the consumption of a search so that each settled
// cell and each path cell can be shown before the next one arrives.
//
// Speed follows the 1..100 slider of the interactive tool: a visit waits
// 100ms/speed, a path cell a fixed 50ms. The zero Pacer does not wait.
package pacing

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
)

// Speed bounds and the default slider position.
const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50
)

const (
	visitBase = 100 * time.Millisecond
	// PathDelay is the pause between path cells.
	PathDelay = 50 * time.Millisecond
)

// ErrSpeed is returned for a speed outside MinSpeed..MaxSpeed.
var ErrSpeed = errors.New("pacing: speed must be between 1 and 100")

// Pacer holds the pauses between consecutive items.
type Pacer struct {
	VisitDelay time.Duration
	PathDelay  time.Duration
}

// FromSpeed maps a slider speed to a Pacer.
func FromSpeed(speed int) (Pacer, error) {
	if speed < MinSpeed || speed > MaxSpeed {
		return Pacer{}, fmt.Errorf("%w: %d", ErrSpeed, speed)
	}
	return Pacer{VisitDelay: visitBase / time.Duration(speed), PathDelay: PathDelay}, nil
}

// Visits re-yields seq with VisitDelay between events. The sequence ends
// when ctx is done; the caller inspects ctx.Err to tell the cases apart.
func (p Pacer) Visits(ctx context.Context, seq iter.Seq[search.Event]) iter.Seq[search.Event] {
	return throttle(ctx, p.VisitDelay, seq)
}

// Path yields the cells of path with PathDelay between them.
func (p Pacer) Path(ctx context.Context, path search.Path) iter.Seq[grid.Coord] {
	return throttle(ctx, p.PathDelay, func(yield func(grid.Coord) bool) {
		for _, c := range path {
			if !yield(c) {
				return
			}
		}
	})
}

// throttle delays every item after the first by d. A non-positive d only
// adds the ctx check.
func throttle[T any](ctx context.Context, d time.Duration, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var tick <-chan time.Time
		if d > 0 {
			t := time.NewTicker(d)
			defer t.Stop()
			tick = t.C
		}

		first := true
		for v := range seq {
			if !first && tick != nil {
				select {
				case <-ctx.Done():
					return
				case <-tick:
				}
			}
			first = false
			if ctx.Err() != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
