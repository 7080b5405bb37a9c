package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// DoubleDropSeq is the two-pass algorithm of spec.md §4.8. Pass one
// ("drop") walks downstream from every leaf, recording at each visited
// cell the longest walk (and earliest, row-major, leaf on ties) seen so
// far; pass two ("report") simply reads off the record stored at each
// outlet. Grounded on model/router.go's two-phase build-then-read
// shape (subset() builds cross-references, write() reads them back).
type DoubleDropSeq struct{}

func doubleDropBuild(g *grid.FlowGrid) (counters, leafRanks []int, err error) {
	if err := validateAcyclic(g); err != nil {
		return nil, nil, err
	}

	n := g.Width * g.Height
	counters = make([]int, n)
	leafRanks = make([]int, n)
	for i := range counters {
		counters[i] = -1
		leafRanks[i] = -1
	}
	update := func(idx, counter, leafRank int) {
		if counter > counters[idx] || (counter == counters[idx] && leafRank < leafRanks[idx]) {
			counters[idx] = counter
			leafRanks[idx] = leafRank
		}
	}
	for _, leaf := range leaves(g) { // row-major order
		if err := dropWalk(g, leaf, update); err != nil {
			return nil, nil, err
		}
	}
	return counters, leafRanks, nil
}

func doubleDropReport(g *grid.FlowGrid, counters, leafRanks []int, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	sources := make([]grid.CellLocation, len(outlets))
	depths := make([]int, len(outlets))
	for i, o := range outlets {
		if err := validateOutlet(g, o); err != nil {
			return nil, nil, err
		}
		idx := g.Index(o.Row, o.Col)
		sources[i] = locationFromRank(g, leafRanks[idx])
		depths[i] = counters[idx]
	}
	return sources, depths, nil
}

// Single implements Algorithm.
func (DoubleDropSeq) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	counters, leafRanks, err := doubleDropBuild(g)
	if err != nil {
		return grid.NoCell, 0, err
	}
	sources, depths, err := doubleDropReport(g, counters, leafRanks, []grid.CellLocation{outlet})
	if err != nil {
		return grid.NoCell, 0, err
	}
	return sources[0], depths[0], nil
}

// Multi implements Algorithm. spec.md §4.9 restricts algorithm 6 to the
// first outlet in the CLI's non-multi mode, but the underlying pass is
// grid-wide regardless of outlet count, so Multi can honestly report
// every outlet's drop-walk record from a single build.
func (DoubleDropSeq) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	counters, leafRanks, err := doubleDropBuild(g)
	if err != nil {
		return nil, nil, err
	}
	return doubleDropReport(g, counters, leafRanks, outlets)
}
