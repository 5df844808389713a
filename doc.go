// Package lvmaze carves grid mazes and searches them cell by cell.
//
// What is lvmaze?
//
//	A small toolkit and CLI around one idea: a single frontier loop that
//	becomes Dijkstra, A*, BFS or DFS depending on how it gives up its next
//	cell, with every settled cell observable as it happens.
//
// Under the hood:
//
//	grid/      Cell, Coord, Kind and the rectangular Grid (text codec, regions)
//	maze/      perfect-maze carving from (1,1) and a structural Verify
//	search/    strategies, the shared frontier and the lazy iter.Seq of events
//	session/   one editable grid, the click protocol and the one-run-at-a-time guard
//	pacing/    speed 1..100 turned into visit and path delays
//	render/    lipgloss terminal view, DOT trees and SVG via graphviz
//	config/    TOML configuration with defaults
//	server/    chi HTTP API streaming search events as NDJSON
//	cmd/lvmaze the cobra CLI: generate, solve, watch, serve
//
// Quick start:
//
//	g, _ := maze.Generate(25, 41, maze.WithSeed(1))
//	path, _ := search.Run(g, grid.At(1, 1), grid.At(23, 39), search.AStar, nil)
//	fmt.Println(path.Moves())
package lvmaze
