package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// rowMajor returns the 0-based row-major rank of a cell, used for the
// double-drop tie-break and as a deterministic ordering key elsewhere.
func rowMajor(g *grid.FlowGrid, c grid.CellLocation) int {
	return (c.Row-1)*g.Width + (c.Col - 1)
}

// branchIndex reports the position of child within parent's fixed
// upstream-enumeration order (NW,N,NE,W,E,SW,S,SE). It panics if child
// is not an upstream neighbour of parent, which would indicate a bug in
// the caller rather than malformed input.
func branchIndex(g *grid.FlowGrid, parent, child grid.CellLocation) int {
	for i, u := range g.UpstreamNeighbours(parent.Row, parent.Col) {
		if u == child {
			return i
		}
	}
	panic("lfp: branchIndex: child is not an upstream neighbour of parent")
}

// ascentPath reconstructs the sequence of fixed-order branch indices
// taken from outlet down to leaf, by walking leaf's unique downstream
// chain back up to outlet and recording, at each step, which
// upstream-enumeration rank the child held at its parent. Comparing two
// leaves' ascent paths lexicographically (root to leaf) is exactly the
// tie-break spec.md §4.5 describes: "lexicographically smallest by
// upstream-enumeration order at each ascent step".
func ascentPath(g *grid.FlowGrid, outlet, leaf grid.CellLocation, depth int) []int {
	chain := make([]grid.CellLocation, 0, depth+1)
	cur := leaf
	for cur != outlet {
		chain = append(chain, cur)
		next, ok := g.Downstream(cur.Row, cur.Col)
		if !ok {
			break
		}
		cur = next
	}
	chain = append(chain, outlet)
	// chain is leaf..outlet; reverse to outlet..leaf and record branch
	// ranks at each step.
	path := make([]int, 0, len(chain)-1)
	for i := len(chain) - 1; i > 0; i-- {
		path = append(path, branchIndex(g, chain[i], chain[i-1]))
	}
	return path
}

// lessAscent reports whether a's ascent path is lexicographically
// smaller than b's: the two leaves share a common outlet and, by
// construction, their paths diverge at some ancestor, where the earlier
// fixed-order branch wins.
func lessAscent(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// cellRecord holds the BFS distance (hops from its owning outlet) and
// owning outlet index for one grid cell, or unset (-1, -1).
type cellRecord struct {
	dist  int
	owner int
}

// cellColor marks a cell's state during validateAcyclic's walk: white
// (unvisited), gray (on the walk currently in progress), or black
// (proven to terminate at a pour point).
type cellColor byte

const (
	cellWhite cellColor = iota
	cellGray
	cellBlack
)

// validateAcyclic reports grid.ErrGridMalformed if any cell's downstream
// chain loops back on itself. Every cell has at most one downstream
// neighbour, so the grid's downstream relation is a functional graph;
// this walks each cell's chain once, colouring cells gray while their
// walk is in progress and black once it is known to reach a pour point
// (grid.FlowGrid.Downstream reports ok=false) or an already-black cell.
// Re-encountering a gray cell means the current walk looped back on
// itself: a cycle. No teacher file performs this check (the teacher's
// D8 rasters are assumed acyclic by construction), so this is introduced
// fresh from spec.md §7's GridMalformed contract; the three-colour
// technique is the standard way to detect a cycle in a functional graph
// without the false negatives a plain "already visited" flag produces
// once several downstream chains merge into a shared, acyclic tail.
func validateAcyclic(g *grid.FlowGrid) error {
	n := g.Width * g.Height
	color := make([]cellColor, n)
	for start := 0; start < n; start++ {
		if color[start] != cellWhite {
			continue
		}
		var path []int
		cur := start
		for {
			if color[cur] == cellBlack {
				break
			}
			if color[cur] == cellGray {
				return grid.ErrGridMalformed
			}
			color[cur] = cellGray
			path = append(path, cur)
			loc := grid.CellLocation{Row: cur/g.Width + 1, Col: cur%g.Width + 1}
			next, ok := g.Downstream(loc.Row, loc.Col)
			if !ok {
				break
			}
			cur = g.Index(next.Row, next.Col)
		}
		for _, p := range path {
			color[p] = cellBlack
		}
	}
	return nil
}

// buildDistanceField runs the BFS of spec.md §4.5 from every outlet
// simultaneously, labelling each reachable cell's hop-distance and
// attributing it to whichever outlet's subtree contains it.
// validateAcyclic guards against a cycle beforehand: without it, a
// revisited cell is indistinguishable from a legitimate merge of two
// already-explored branches, so plain "already visited" bookkeeping
// during the BFS itself cannot catch a cycle reliably.
func buildDistanceField(g *grid.FlowGrid, outlets []grid.CellLocation) ([]cellRecord, error) {
	if err := validateAcyclic(g); err != nil {
		return nil, err
	}

	n := g.Width * g.Height
	recs := make([]cellRecord, n)
	for i := range recs {
		recs[i] = cellRecord{dist: -1, owner: -1}
	}

	queue := make([]grid.CellLocation, 0, len(outlets))
	for i, o := range outlets {
		if err := validateOutlet(g, o); err != nil {
			return nil, err
		}
		idx := g.Index(o.Row, o.Col)
		recs[idx] = cellRecord{dist: 0, owner: i}
		queue = append(queue, o)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ci := g.Index(cur.Row, cur.Col)
		for _, up := range g.UpstreamNeighbours(cur.Row, cur.Col) {
			ui := g.Index(up.Row, up.Col)
			if recs[ui].dist != -1 {
				continue
			}
			recs[ui] = cellRecord{dist: recs[ci].dist + 1, owner: recs[ci].owner}
			queue = append(queue, up)
		}
	}
	return recs, nil
}

// selectDeepest scans a completed distance field and, for each outlet,
// returns the deepest cell in its subtree, breaking ties with
// lessAscent. This is the shared final-selection step for
// TopDownMaxSeq and TopDownSingleOmp: both populate (dist, owner)
// through different means but settle ties identically.
func selectDeepest(g *grid.FlowGrid, recs []cellRecord, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	type candidate struct {
		loc  grid.CellLocation
		path []int
	}
	best := make([]*candidate, len(outlets))
	maxDist := make([]int, len(outlets))
	for i := range maxDist {
		maxDist[i] = -1
	}

	for idx, r := range recs {
		if r.owner < 0 {
			continue
		}
		if r.dist < maxDist[r.owner] {
			continue
		}
		loc := grid.CellLocation{Row: idx/g.Width + 1, Col: idx%g.Width + 1}
		if r.dist > maxDist[r.owner] {
			maxDist[r.owner] = r.dist
			best[r.owner] = &candidate{loc: loc, path: ascentPath(g, outlets[r.owner], loc, r.dist)}
			continue
		}
		path := ascentPath(g, outlets[r.owner], loc, r.dist)
		if lessAscent(path, best[r.owner].path) {
			best[r.owner] = &candidate{loc: loc, path: path}
		}
	}

	sources := make([]grid.CellLocation, len(outlets))
	depths := make([]int, len(outlets))
	for i := range outlets {
		// best[i] is never nil: the outlet cell itself is always in recs
		// at dist 0, so it is at minimum its own candidate.
		sources[i], depths[i] = best[i].loc, maxDist[i]
	}
	return sources, depths, nil
}
