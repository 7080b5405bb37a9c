package lfp

import (
	"runtime"
	"sync"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// TopDownSingleOmp is the OpenMP-style parallel counterpart of
// TopDownSingleSeq (spec.md §4.7): each BFS layer is partitioned across
// workers and processed concurrently, separated from the next layer by
// a barrier. Because the inverted tree gives every cell exactly one
// downstream edge, a cell can only ever be discovered by the one
// frontier member that is its true downstream neighbour, so distinct
// workers never write the same cell — no locks guard the per-cell
// update, matching evaluate.concur.go's sync.WaitGroup fan-out/fan-in
// shape. Layer order is not preserved across workers, so — unlike
// TopDownSingleSeq — final tie-breaking cannot rely on discovery order;
// instead it runs the same deterministic ascent-path selection
// TopDownMaxSeq uses, once the (worker-count independent) distance
// field is complete.
type TopDownSingleOmp struct{}

// Single implements Algorithm.
func (TopDownSingleOmp) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	sources, depths, err := topDownSingleOmpMulti(g, []grid.CellLocation{outlet})
	if err != nil {
		return grid.NoCell, 0, err
	}
	return sources[0], depths[0], nil
}

// Multi implements Algorithm natively, per spec.md §4.9.
func (TopDownSingleOmp) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	return topDownSingleOmpMulti(g, outlets)
}

func topDownSingleOmpMulti(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	if err := validateAcyclic(g); err != nil {
		return nil, nil, err
	}

	n := g.Width * g.Height
	recs := make([]cellRecord, n)
	for i := range recs {
		recs[i] = cellRecord{dist: -1, owner: -1}
	}

	frontier := make([]grid.CellLocation, len(outlets))
	for i, o := range outlets {
		if err := validateOutlet(g, o); err != nil {
			return nil, nil, err
		}
		idx := g.Index(o.Row, o.Col)
		recs[idx] = cellRecord{dist: 0, owner: i}
		frontier[i] = o
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	for len(frontier) > 0 {
		chunks := partition(frontier, workers)
		nexts := make([][]grid.CellLocation, len(chunks))
		var wg sync.WaitGroup
		wg.Add(len(chunks))
		for w, chunk := range chunks {
			go func(w int, chunk []grid.CellLocation) {
				defer wg.Done()
				nexts[w] = expandLayer(g, recs, chunk)
			}(w, chunk)
		}
		wg.Wait()

		var next []grid.CellLocation
		for _, l := range nexts {
			next = append(next, l...)
		}
		frontier = next
	}

	return selectDeepest(g, recs, outlets)
}

// expandLayer discovers the upstream neighbours of every cell in
// layer, writing their distance/owner directly into recs. Safe to call
// concurrently across disjoint layer partitions: see TopDownSingleOmp's
// doc comment for why no cell is ever targeted by two workers.
func expandLayer(g *grid.FlowGrid, recs []cellRecord, layer []grid.CellLocation) []grid.CellLocation {
	var next []grid.CellLocation
	for _, cur := range layer {
		ci := g.Index(cur.Row, cur.Col)
		for _, up := range g.UpstreamNeighbours(cur.Row, cur.Col) {
			ui := g.Index(up.Row, up.Col)
			if recs[ui].dist != -1 {
				continue
			}
			recs[ui] = cellRecord{dist: recs[ci].dist + 1, owner: recs[ci].owner}
			next = append(next, up)
		}
	}
	return next
}

// partition splits cells into at most workers contiguous, near-equal
// chunks, preserving relative order within each.
func partition(cells []grid.CellLocation, workers int) [][]grid.CellLocation {
	if len(cells) < workers {
		workers = len(cells)
	}
	if workers == 0 {
		return nil
	}
	chunks := make([][]grid.CellLocation, 0, workers)
	base, rem := len(cells)/workers, len(cells)%workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, cells[start:start+size])
		start += size
	}
	return chunks
}
