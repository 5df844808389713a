package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmaze/grid"
)

// Cell colours.
var (
	ColorEmpty   = lipgloss.Color("#1f2937")
	ColorWall    = lipgloss.Color("#4b5563")
	ColorStart   = lipgloss.Color("#059669")
	ColorEnd     = lipgloss.Color("#dc2626")
	ColorPath    = lipgloss.Color("#3b82f6")
	ColorVisited = lipgloss.Color("#6366f1")

	colorText = lipgloss.Color("#e5e7eb")
)

// KindColor returns the fill colour of kind k.
func KindColor(k grid.Kind) lipgloss.Color {
	switch k {
	case grid.Wall:
		return ColorWall
	case grid.Start:
		return ColorStart
	case grid.End:
		return ColorEnd
	case grid.Path:
		return ColorPath
	case grid.Visited:
		return ColorVisited
	default:
		return ColorEmpty
	}
}

// legendOrder is the order used by Legend.
var legendOrder = []grid.Kind{grid.Start, grid.End, grid.Wall, grid.Visited, grid.Path}

// Terminal renders grids as coloured blocks.
type Terminal struct {
	// CellWidth is the number of terminal columns per cell.
	CellWidth int
	// Distances overlays the distance of visited cells.
	Distances bool

	styles map[grid.Kind]lipgloss.Style
}

// NewTerminal returns a renderer with two columns per cell and the distance
// overlay enabled.
func NewTerminal() *Terminal {
	t := &Terminal{CellWidth: 2, Distances: true, styles: make(map[grid.Kind]lipgloss.Style)}
	for _, k := range []grid.Kind{grid.Empty, grid.Wall, grid.Start, grid.End, grid.Visited, grid.Path} {
		t.styles[k] = lipgloss.NewStyle().
			Background(KindColor(k)).
			Foreground(colorText).
			Align(lipgloss.Right)
	}
	return t
}

// Render returns one line per grid row, without a trailing newline.
func (t *Terminal) Render(g *grid.Grid) string {
	w := t.width()
	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			c := g.MustAt(grid.At(row, col))
			b.WriteString(t.styles[c.Kind].Width(w).Render(t.label(*c, w)))
		}
	}
	return b.String()
}

// label is the text inside a cell: S and E on endpoints, the distance on
// visited cells, nothing elsewhere.
func (t *Terminal) label(c grid.Cell, w int) string {
	switch c.Kind {
	case grid.Start:
		return "S"
	case grid.End:
		return "E"
	case grid.Visited:
		if !t.Distances || !c.Reached() {
			return ""
		}
		d := strconv.Itoa(c.Distance)
		if len(d) > w {
			d = d[len(d)-w:]
		}
		return d
	}
	return ""
}

// Legend returns a one-line key of the cell colours.
func (t *Terminal) Legend() string {
	parts := make([]string, 0, len(legendOrder))
	for _, k := range legendOrder {
		swatch := t.styles[k].Width(t.width()).Render("")
		parts = append(parts, swatch+" "+k.String())
	}
	return strings.Join(parts, "  ")
}

func (t *Terminal) width() int {
	if t.CellWidth < 1 {
		return 1
	}
	return t.CellWidth
}

// Plain returns the uncoloured text form of g.
func Plain(g *grid.Grid) string {
	return g.String()
}
