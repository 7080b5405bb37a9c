package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// TopDownMaxSeq is the max-length BFS of spec.md §4.5: it labels every
// upstream cell with its hop-distance from the outlet set, then scans
// for the deepest cell per outlet. It is the multi-outlet-native member
// of the family; non-multi callers simply pass a one-element outlet
// slice. Grounded on model/router.go's concurrency-free topological
// scan of subwatershed membership, generalized here to a distance
// rather than a watershed id.
type TopDownMaxSeq struct{}

// Single implements Algorithm.
func (TopDownMaxSeq) Single(g *grid.FlowGrid, outlet grid.CellLocation) (grid.CellLocation, int, error) {
	sources, depths, err := topDownMaxMulti(g, []grid.CellLocation{outlet})
	if err != nil {
		return grid.NoCell, 0, err
	}
	return sources[0], depths[0], nil
}

// Multi implements Algorithm natively, per spec.md §4.9.
func (TopDownMaxSeq) Multi(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	return topDownMaxMulti(g, outlets)
}

func topDownMaxMulti(g *grid.FlowGrid, outlets []grid.CellLocation) ([]grid.CellLocation, []int, error) {
	recs, err := buildDistanceField(g, outlets)
	if err != nil {
		return nil, nil, err
	}
	return selectDeepest(g, recs, outlets)
}
