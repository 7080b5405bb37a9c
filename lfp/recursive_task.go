package lfp

import (
	"sync"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// RecursiveTask is the task-parallel DFS of spec.md §4.4: identical
// traversal and tie-break to RecursiveSeq, but every recursive call on a
// subtree may be dispatched as an independent goroutine while the
// current depth is at or below TaskLimit. Fork/join is grounded on
// evaluate.concur.go's sync.WaitGroup fan-out/fan-in (the teacher's
// per-timestep concurrent realization evaluation); here each child's
// result is written into a slot indexed by its fixed upstream-order
// rank, and the reduction walks those slots in rank order, so the
// result never depends on goroutine scheduling.
type RecursiveTask struct {
	TaskLimit int
}

// ancestorChain is an immutable, shared path of ancestors used for
// cycle detection across concurrently-explored branches; each goroutine
// only ever appends one more link, never mutates a shared one.
type ancestorChain struct {
	loc    grid.CellLocation
	parent *ancestorChain
}

func (a *ancestorChain) contains(loc grid.CellLocation) bool {
	for n := a; n != nil; n = n.parent {
		if n.loc == loc {
			return true
		}
	}
	return false
}

type taskResult struct {
	depth int
	leaf  grid.CellLocation
	err   error
}

func recursiveTaskDepth(g *grid.FlowGrid, loc grid.CellLocation, depth, taskLimit int, ancestors *ancestorChain) (int, grid.CellLocation, error) {
	children := g.UpstreamNeighbours(loc.Row, loc.Col)
	if len(children) == 0 {
		return 0, loc, nil
	}

	chain := &ancestorChain{loc: loc, parent: ancestors}
	results := make([]taskResult, len(children))

	eval := func(i int, child grid.CellLocation) {
		if chain.contains(child) {
			results[i] = taskResult{err: grid.ErrGridMalformed}
			return
		}
		d, l, err := recursiveTaskDepth(g, child, depth+1, taskLimit, chain)
		results[i] = taskResult{depth: d, leaf: l, err: err}
	}

	if depth <= taskLimit {
		var wg sync.WaitGroup
		wg.Add(len(children))
		for i, child := range children {
			go func(i int, child grid.CellLocation) {
				defer wg.Done()
				eval(i, child)
			}(i, child)
		}
		wg.Wait()
	} else {
		for i, child := range children {
			eval(i, child)
		}
	}

	best, bestLeaf := -1, grid.NoCell
	for _, r := range results { // reduced in fixed upstream-order rank, never goroutine-completion order
		if r.err != nil {
			return 0, grid.NoCell, r.err
		}
		if r.depth > best {
			best, bestLeaf = r.depth, r.leaf
		}
	}
	return best + 1, bestLeaf, nil
}

// Single implements Algorithm.
func (a RecursiveTask) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	if err := validateOutlet(g, outlet); err != nil {
		return grid.NoCell, 0, err
	}
	depth, leaf, err := recursiveTaskDepth(g, outlet, 0, a.TaskLimit, nil)
	if err != nil {
		return grid.NoCell, 0, err
	}
	return leaf, depth, nil
}

// Multi implements Algorithm by looping Single, per spec.md §4.9.
func (a RecursiveTask) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	return multiBySingle(g, outlets, a.Single)
}
