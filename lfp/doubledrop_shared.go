package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// leaves returns every cell with no upstream neighbours, in row-major
// order — the candidate sources for the double-drop algorithms (spec.md
// §4.8).
func leaves(g *grid.FlowGrid) []grid.CellLocation {
	var ls []grid.CellLocation
	for _, c := range g.Cells() {
		if g.IsLeaf(c.Row, c.Col) {
			ls = append(ls, c)
		}
	}
	return ls
}

// dropWalk walks downstream from leaf, calling update at every visited
// cell with the hop count since leaf and leaf's own row-major rank.
// update is responsible for keeping only the best (greatest counter,
// tie broken by smaller leaf rank) record per cell.
func dropWalk(g *grid.FlowGrid, leaf grid.CellLocation, update func(cellIdx, counter, leafRank int)) error {
	n := g.Width * g.Height
	leafRank := g.Index(leaf.Row, leaf.Col)
	cur := leaf
	counter := 0
	for steps := 0; ; steps++ {
		if steps > n {
			return grid.ErrGridMalformed
		}
		update(g.Index(cur.Row, cur.Col), counter, leafRank)
		next, ok := g.Downstream(cur.Row, cur.Col)
		if !ok {
			return nil
		}
		cur = next
		counter++
	}
}

// locationFromRank converts a 0-based row-major rank back to a
// CellLocation.
func locationFromRank(g *grid.FlowGrid, rank int) grid.CellLocation {
	return grid.CellLocation{Row: rank/g.Width + 1, Col: rank%g.Width + 1}
}
