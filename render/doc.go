// Package render draws grids and finished searches.
//
// Terminal renders a grid with one coloured block per cell using lipgloss:
// the colours match the interactive tool (empty #1f2937, wall #4b5563,
// start #059669, end #dc2626, path #3b82f6, visited #6366f1) and visited
// cells show the last digits of their distance. Plain returns the uncoloured
// text form.
//
// TreeDOT and MazeDOT export Graphviz DOT: the parent forest left on the grid
// by a search (edges parent → child, path edges highlighted) and the graph of
// open cells. SVG renders any DOT document through goccy/go-graphviz.
package render
