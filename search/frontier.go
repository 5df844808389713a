package search

import "github.com/katalvlaran/lvmaze/grid"

// compactAt is the FIFO read offset past which consumed entries are dropped.
const compactAt = 64

// frontier is the single pending-cell collection shared by every strategy.
// Duplicates are allowed; the search loop discards already settled cells.
type frontier struct {
	policy Policy
	items  []grid.Coord
	head   int                  // FIFO read offset
	score  func(grid.Coord) int // Heuristic only; evaluated at pop time
}

func newFrontier(p Policy, score func(grid.Coord) int) *frontier {
	return &frontier{policy: p, score: score}
}

// len returns the number of pending entries.
func (f *frontier) len() int {
	return len(f.items) - f.head
}

// push appends c.
func (f *frontier) push(c grid.Coord) {
	f.items = append(f.items, c)
}

// pop removes the next entry according to the policy.
func (f *frontier) pop() (grid.Coord, bool) {
	if f.len() == 0 {
		return grid.NoCoord, false
	}
	switch f.policy {
	case LIFO:
		last := len(f.items) - 1
		c := f.items[last]
		f.items = f.items[:last]
		return c, true
	case Heuristic:
		return f.popBest(), true
	default:
		c := f.items[f.head]
		f.head++
		if f.head >= compactAt && f.head*2 >= len(f.items) {
			n := copy(f.items, f.items[f.head:])
			f.items = f.items[:n]
			f.head = 0
		}
		return c, true
	}
}

// popBest removes the first entry with the lowest score. Scores are read
// at pop time, so an entry whose cell distance improved after it was
// pushed competes with its current value. Strict < keeps the earliest
// inserted entry on ties.
func (f *frontier) popBest() grid.Coord {
	best := f.head
	bestScore := f.score(f.items[best])
	for i := f.head + 1; i < len(f.items); i++ {
		if s := f.score(f.items[i]); s < bestScore {
			best, bestScore = i, s
		}
	}
	c := f.items[best]
	copy(f.items[best:], f.items[best+1:])
	f.items = f.items[:len(f.items)-1]
	return c
}
