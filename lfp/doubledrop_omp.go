package lfp

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// DoubleDropOmp parallelises DoubleDropSeq's pass one across leaves
// (spec.md §4.8). Concurrent writers to the same cell are resolved with
// a single atomic compare-and-swap per update, packing (counter, leaf
// rank) into one uint64 so the "greater counter, else earlier leaf"
// ordering can be applied as one lock-free read-modify-write — the
// update rule is associative and commutative, so any interleaving of
// workers yields the same final record, matching spec.md §5's
// worker-count-independence requirement.
type DoubleDropOmp struct{}

// packDrop reserves counter+1 in the high 32 bits so the zero value of a
// []uint64 slice already means "unset" (counter -1).
func packDrop(counter, leafRank int) uint64 {
	return uint64(uint32(counter+1))<<32 | uint64(uint32(leafRank))
}

func unpackDrop(v uint64) (counter, leafRank int) {
	return int(uint32(v>>32)) - 1, int(uint32(v))
}

func casUpdateDrop(cell *uint64, counter, leafRank int) {
	next := packDrop(counter, leafRank)
	for {
		old := atomic.LoadUint64(cell)
		oc, ol := unpackDrop(old)
		if !(counter > oc || (counter == oc && leafRank < ol)) {
			return
		}
		if atomic.CompareAndSwapUint64(cell, old, next) {
			return
		}
	}
}

func doubleDropBuildOmp(g *grid.FlowGrid) (cells []uint64, err error) {
	if err := validateAcyclic(g); err != nil {
		return nil, err
	}

	n := g.Width * g.Height
	cells = make([]uint64, n)

	ls := leaves(g)
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunks := partitionLocations(ls, workers)

	var wg sync.WaitGroup
	errs := make([]error, len(chunks))
	wg.Add(len(chunks))
	for w, chunk := range chunks {
		go func(w int, chunk []grid.CellLocation) {
			defer wg.Done()
			update := func(idx, counter, leafRank int) {
				casUpdateDrop(&cells[idx], counter, leafRank)
			}
			for _, leaf := range chunk {
				if err := dropWalk(g, leaf, update); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, chunk)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return cells, nil
}

func doubleDropReportOmp(g *grid.FlowGrid, cells []uint64, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	sources := make([]grid.CellLocation, len(outlets))
	depths := make([]int, len(outlets))
	for i, o := range outlets {
		if err := validateOutlet(g, o); err != nil {
			return nil, nil, err
		}
		counter, leafRank := unpackDrop(cells[g.Index(o.Row, o.Col)])
		sources[i] = locationFromRank(g, leafRank)
		depths[i] = counter
	}
	return sources, depths, nil
}

// Single implements Algorithm.
func (DoubleDropOmp) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	cells, err := doubleDropBuildOmp(g)
	if err != nil {
		return grid.NoCell, 0, err
	}
	sources, depths, err := doubleDropReportOmp(g, cells, []grid.CellLocation{outlet})
	if err != nil {
		return grid.NoCell, 0, err
	}
	return sources[0], depths[0], nil
}

// Multi implements Algorithm; see DoubleDropSeq.Multi's doc comment.
func (DoubleDropOmp) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	cells, err := doubleDropBuildOmp(g)
	if err != nil {
		return nil, nil, err
	}
	return doubleDropReportOmp(g, cells, outlets)
}

// partitionLocations splits cells into at most workers contiguous
// chunks; identical shape to partition but kept separate since it
// partitions the leaf set rather than a BFS frontier.
func partitionLocations(cells []grid.CellLocation, workers int) [][]grid.CellLocation {
	return partition(cells, workers)
}
