// Package server exposes a session.Session over HTTP.
//
// Routes
//
//	GET  /healthz                     liveness probe
//	GET  /grid                        grid as JSON (text rows and cell list)
//	PUT  /grid                        replace the grid with a text-form body
//	POST /maze                        carve a new maze
//	POST /clear                       empty grid, endpoints forgotten
//	POST /search/clear                drop Visited and Path marks
//	POST /cells/{row}/{col}/click     apply the click protocol to one cell
//	POST /search?strategy=&speed=     run a search, streamed as NDJSON
//
// A search streams one "visit" record per settled cell, then one "path"
// record per path cell, and ends with one "result" record. With speed
// (1..100) visits and path cells are paced like the interactive tool;
// without it records are written as fast as possible. Closing the
// connection cancels the run, and a run stopped early reports its error in
// the result record with no path.
//
// Errors are JSON objects {"error": "..."}: 409 while a search runs, 422
// before both endpoints are placed, 400 for bad coordinates, strategies,
// speeds or grid text.
package server
