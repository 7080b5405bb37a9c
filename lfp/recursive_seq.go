package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// RecursiveSeq is the depth-first inversion of spec.md §4.3: starting at
// the outlet, visit every upstream neighbour and return the depth and
// leaf of the deepest subtree. Traversal is grounded on tem.TEC.climb
// (tem/tem.go in the teacher repo), which performed the same upstream
// descent for unit-contributing-area counts via plain recursion; here
// the descent uses an explicit work stack instead, so pathologically
// long flow paths never exhaust the host stack.
type RecursiveSeq struct{}

// recursiveFrame is one level of the explicit DFS stack.
type recursiveFrame struct {
	loc       grid.CellLocation
	children  []grid.CellLocation
	next      int
	bestDepth int
	bestLeaf  grid.CellLocation
}

func recursiveSeqDepth(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	onPath := map[grid.CellLocation]bool{outlet: true}
	stack := []*recursiveFrame{{
		loc:       outlet,
		children:  g.UpstreamNeighbours(outlet.Row, outlet.Col),
		bestDepth: -1,
	}}

	for {
		top := stack[len(stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			if onPath[child] {
				return grid.NoCell, 0, grid.ErrGridMalformed
			}
			onPath[child] = true
			stack = append(stack, &recursiveFrame{
				loc:       child,
				children:  g.UpstreamNeighbours(child.Row, child.Col),
				bestDepth: -1,
			})
			continue
		}

		depth, leaf := 0, top.loc
		if top.bestDepth >= 0 {
			depth, leaf = top.bestDepth+1, top.bestLeaf
		}
		delete(onPath, top.loc)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return leaf, depth, nil
		}
		parent := stack[len(stack)-1]
		// strictly-greater replace preserves the first (fixed-order)
		// child among equal-depth siblings, per spec.md §4.3's tie-break.
		if depth > parent.bestDepth {
			parent.bestDepth = depth
			parent.bestLeaf = leaf
		}
	}
}

// Single implements Algorithm.
func (RecursiveSeq) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	if err := validateOutlet(g, outlet); err != nil {
		return grid.NoCell, 0, err
	}
	return recursiveSeqDepth(g, outlet)
}

// Multi implements Algorithm by looping Single, per spec.md §4.9.
func (a RecursiveSeq) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	return multiBySingle(g, outlets, a.Single)
}
