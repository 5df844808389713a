package grid

// OpenRegions finds all 4-connected regions of passable cells.
// Returns one slice of coordinates per region; regions appear in row-major
// order of their first cell and each region lists its cells in BFS order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) OpenRegions() [][]Coord {
	seen := make([]bool, len(g.cells))
	var regions [][]Coord

	for i := range g.cells {
		if seen[i] || !g.cells[i].Kind.Passable() {
			continue
		}
		// BFS to collect the region
		queue := []int{i}
		seen[i] = true
		var region []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uc := g.cells[u].Coord()
			region = append(region, uc)
			for _, d := range neighborOffsets {
				vc := uc.Add(d[0], d[1])
				if !g.InBounds(vc) {
					continue
				}
				v := g.index(vc)
				if seen[v] || !g.cells[v].Kind.Passable() {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// OpenEdges counts undirected adjacencies between pairs of passable cells.
// A passable sub-graph is a forest exactly when
// OpenEdges() == passable cells - len(OpenRegions()).
//
// Time: O(R·C).
func (g *Grid) OpenEdges() int {
	edges := 0
	for i := range g.cells {
		if !g.cells[i].Kind.Passable() {
			continue
		}
		c := g.cells[i].Coord()
		// look down and right only so each pair counts once
		for _, n := range [2]Coord{c.Add(1, 0), c.Add(0, 1)} {
			if g.InBounds(n) && g.cells[g.index(n)].Kind.Passable() {
				edges++
			}
		}
	}
	return edges
}

// Passable returns the number of non-wall cells.
func (g *Grid) Passable() int {
	return len(g.cells) - g.Count(Wall)
}
