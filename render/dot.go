package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/search"
)

func nodeID(c grid.Coord) string {
	return fmt.Sprintf("%d_%d", c.Row, c.Col)
}

// TreeDOT converts the parent links left on g by a search into a DOT
// digraph. Every reached cell is a node labelled with its coordinate and
// distance; every parent link is an edge parent → child. Nodes and edges on
// path are drawn in the path colour.
func TreeDOT(g *grid.Grid, path search.Path) string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph search {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for c := range g.Cells() {
		if !c.Reached() {
			continue
		}
		attrs := fmt.Sprintf("label=\"%s\\n%d\"", c.Coord(), c.Distance)
		switch {
		case c.Kind == grid.Start || c.Kind == grid.End:
			attrs += fmt.Sprintf(", fillcolor=%q, fontcolor=white", string(KindColor(c.Kind)))
		case onPath[c.Coord()]:
			attrs += fmt.Sprintf(", fillcolor=%q, fontcolor=white", string(ColorPath))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c.Coord()), attrs)
	}

	buf.WriteString("\n")
	for c := range g.Cells() {
		if !c.Reached() || !c.HasParent() {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q", nodeID(c.Parent), nodeID(c.Coord()))
		if onPath[c.Parent] && onPath[c.Coord()] {
			fmt.Fprintf(&buf, " [color=%q, penwidth=3]", string(ColorPath))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// MazeDOT converts the open cells of g into an undirected DOT graph with an
// edge between every pair of 4-adjacent open cells.
func MazeDOT(g *grid.Grid) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10];\n")
	buf.WriteString("\n")

	for c := range g.Cells() {
		if !c.Kind.Passable() {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n",
			nodeID(c.Coord()), c.Coord().String(), string(KindColor(c.Kind)))
	}

	buf.WriteString("\n")
	for c := range g.Cells() {
		if !c.Kind.Passable() {
			continue
		}
		for _, n := range []grid.Coord{c.Coord().Add(1, 0), c.Coord().Add(0, 1)} {
			if k, err := g.Kind(n); err == nil && k.Passable() {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(c.Coord()), nodeID(n))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT document to SVG with Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing scales from the
// origin with width and height equal to the view box.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
