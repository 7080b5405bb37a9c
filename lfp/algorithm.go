// Package lfp implements the longest-flow-path algorithm family of
// spec.md §4: two recursive variants, three top-down BFS variants and
// two double-drop variants, all operating over a grid.FlowGrid's
// inverted upstream tree.
package lfp

import "github.com/HuidaeCho/longest-flow-path/grid"

// Algorithm computes, for one or more outlets, the cell that begins the
// longest flow path draining into each. Single and Multi must agree:
// Multi(g, []CellLocation{o}) == ([]CellLocation{Single(g, o)}, ...).
type Algorithm interface {
	// Single returns the source location and its hop-distance (depth)
	// from outlet.
	Single(g *grid.FlowGrid, outlet grid.CellLocation) (source grid.CellLocation, depth int, err error)
	// Multi returns one (source, depth) pair per input outlet, in the
	// same order as outlets.
	Multi(g *grid.FlowGrid, outlets []grid.CellLocation) (sources []grid.CellLocation, depths []int, err error)
}

func validateOutlet(g *grid.FlowGrid, o grid.CellLocation) error {
	if !g.InBounds(o.Row, o.Col) {
		return grid.ErrOutletOutOfBounds
	}
	return nil
}

// multiBySingle is the fallback multi-outlet implementation for
// algorithms with no native multi-outlet pass (spec.md §4.9: RecursiveSeq,
// RecursiveTask, DoubleDropSeq, DoubleDropOmp). It loops single in input
// order.
func multiBySingle(g *grid.FlowGrid, outlets []grid.CellLocation, single func(*grid.FlowGrid, grid.CellLocation) (grid.CellLocation, int, error)) ([]grid.CellLocation, []int, error) {
	sources := make([]grid.CellLocation, len(outlets))
	depths := make([]int, len(outlets))
	for i, o := range outlets {
		s, d, err := single(g, o)
		if err != nil {
			return nil, nil, err
		}
		sources[i] = s
		depths[i] = d
	}
	return sources, depths, nil
}
