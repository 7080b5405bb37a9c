package grid

import (
	"fmt"

	ghgrid "github.com/maseology/goHydro/grid"
)

// upstreamOffsets is the fixed enumeration order spec.md §4.2 requires:
// NW, N, NE, W, E, SW, S, SE. Tie-breaks throughout the lfp package are
// defined in terms of this order, so it must never be reordered.
var upstreamOffsets = [8][2]int{
	{-1, -1}, // NW
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, -1},  // W
	{0, 1},   // E
	{1, -1},  // SW
	{1, 0},   // S
	{1, 1},   // SE
}

// FlowGrid is a dense, row-major, one-based D8 flow-direction raster.
// It is immutable for the lifetime of any algorithm invocation: no
// method on FlowGrid mutates Codes.
type FlowGrid struct {
	Width, Height int
	Codes         []uint8 // row-major, len == Width*Height
	Meta          *ghgrid.Definition // opaque georeferencing metadata, passed through from the loader; may be nil
}

// New validates and constructs a FlowGrid from a dense D8 code buffer.
func New(width, height int, codes []uint8, meta *ghgrid.Definition) (*FlowGrid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf(" grid.New: negative dimension %dx%d", height, width)
	}
	if len(codes) != width*height {
		return nil, fmt.Errorf(" grid.New: buffer length %d does not match %dx%d", len(codes), height, width)
	}
	return &FlowGrid{Width: width, Height: height, Codes: codes, Meta: meta}, nil
}

// InBounds reports 1 <= r <= Height and 1 <= c <= Width.
func (g *FlowGrid) InBounds(r, c int) bool {
	return r >= 1 && r <= g.Height && c >= 1 && c <= g.Width
}

// Index returns the 0-based row-major offset of (r, c) into Codes.
func (g *FlowGrid) Index(r, c int) int {
	return (r-1)*g.Width + (c - 1)
}

// CodeAt returns the D8 code stored at (r, c). The caller must ensure
// InBounds(r, c).
func (g *FlowGrid) CodeAt(r, c int) uint8 {
	return g.Codes[g.Index(r, c)]
}

// Downstream applies the codec at (r, c) and returns the downstream
// cell. ok is false when the cell is TERMINAL or when its downstream
// offset falls outside the grid.
func (g *FlowGrid) Downstream(r, c int) (loc CellLocation, ok bool) {
	dr, dc, has := Offset(g.CodeAt(r, c))
	if !has {
		return NoCell, false
	}
	nr, nc := r+dr, c+dc
	if !g.InBounds(nr, nc) {
		return NoCell, false
	}
	return CellLocation{Row: nr, Col: nc}, true
}

// UpstreamNeighbours enumerates the up to eight neighbours of (r, c)
// whose downstream offset points back at (r, c). The enumeration order
// is fixed: NW, N, NE, W, E, SW, S, SE — this order is a contract, not
// an implementation detail, because every deterministic tie-break in
// package lfp is defined in terms of it.
func (g *FlowGrid) UpstreamNeighbours(r, c int) []CellLocation {
	var up []CellLocation
	for _, o := range upstreamOffsets {
		nr, nc := r+o[0], c+o[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if FlowsInto(g.CodeAt(nr, nc), -o[0], -o[1]) {
			up = append(up, CellLocation{Row: nr, Col: nc})
		}
	}
	return up
}

// IsLeaf reports whether (r, c) has no upstream neighbours, i.e. it is
// a candidate source for the double-drop algorithms.
func (g *FlowGrid) IsLeaf(r, c int) bool {
	return len(g.UpstreamNeighbours(r, c)) == 0
}

// Cells returns every in-bounds CellLocation in row-major order.
func (g *FlowGrid) Cells() []CellLocation {
	cells := make([]CellLocation, 0, g.Width*g.Height)
	for r := 1; r <= g.Height; r++ {
		for c := 1; c <= g.Width; c++ {
			cells = append(cells, CellLocation{Row: r, Col: c})
		}
	}
	return cells
}
