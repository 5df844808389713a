package session_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// ExampleSession drives a run end to end: place endpoints and a wall,
// search, then print the marked grid.
func ExampleSession() {
	s, err := session.New(3, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range []grid.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 4}, {Row: 1, Col: 2}, {Row: 0, Col: 2}} {
		if _, err := s.Click(c); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	run, err := s.Begin(search.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := run.Finish()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("moves:", path.Moves())
	fmt.Print(s.Snapshot())
	// Output:
	// moves: 6
	// oo#..
	// S*#*E
	// o***o
}
