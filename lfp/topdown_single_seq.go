package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// TopDownSingleSeq is the single-update BFS of spec.md §4.6. Unlike
// TopDownMaxSeq it never materialises a dense distance field: each
// outlet keeps only a rolling (bestDistance, bestSource) pair, updated
// as BFS layers discover new cells. Because children are pushed in the
// fixed upstream-enumeration order at every node, a breadth-first
// traversal visits nodes in non-decreasing depth and, within a depth,
// in the same left-to-right order a depth-first walk would — so "first
// to reach a new maximum" reproduces RecursiveSeq's tie-break exactly,
// without ever comparing two full paths.
type TopDownSingleSeq struct{}

// Single implements Algorithm.
func (TopDownSingleSeq) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	sources, depths, err := topDownSingleMulti(g, []grid.CellLocation{outlet})
	if err != nil {
		return grid.NoCell, 0, err
	}
	return sources[0], depths[0], nil
}

// Multi implements Algorithm natively, per spec.md §4.9.
func (TopDownSingleSeq) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	return topDownSingleMulti(g, outlets)
}

type bestSource struct {
	dist int
	loc  grid.CellLocation
}

func topDownSingleMulti(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	if err := validateAcyclic(g); err != nil {
		return nil, nil, err
	}

	n := g.Width * g.Height
	visited := make([]bool, n)
	owner := make([]int, n)
	best := make([]bestSource, len(outlets))

	frontier := make([]grid.CellLocation, len(outlets))
	for i, o := range outlets {
		if err := validateOutlet(g, o); err != nil {
			return nil, nil, err
		}
		idx := g.Index(o.Row, o.Col)
		visited[idx] = true
		owner[idx] = i
		best[i] = bestSource{dist: 0, loc: o}
		frontier[i] = o
	}

	depth := 0
	for len(frontier) > 0 {
		var next []grid.CellLocation
		for _, cur := range frontier {
			ci := g.Index(cur.Row, cur.Col)
			for _, up := range g.UpstreamNeighbours(cur.Row, cur.Col) {
				ui := g.Index(up.Row, up.Col)
				if visited[ui] {
					continue
				}
				visited[ui] = true
				owner[ui] = owner[ci]
				next = append(next, up)
			}
		}
		depth++
		for _, c := range next {
			i := owner[g.Index(c.Row, c.Col)]
			if depth > best[i].dist { // strictly greater: first (leftmost) wins ties
				best[i] = bestSource{dist: depth, loc: c}
			}
		}
		frontier = next
	}

	sources := make([]grid.CellLocation, len(outlets))
	depths := make([]int, len(outlets))
	for i, b := range best {
		sources[i], depths[i] = b.loc, b.dist
	}
	return sources, depths, nil
}
