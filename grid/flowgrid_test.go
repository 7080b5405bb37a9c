package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		name       string
		code       uint8
		wantDR     int
		wantDC     int
		wantHasDwn bool
	}{
		{"east", East, 0, 1, true},
		{"southeast", Southeast, 1, 1, true},
		{"south", South, 1, 0, true},
		{"southwest", Southwest, 1, -1, true},
		{"west", West, 0, -1, true},
		{"northwest", Northwest, -1, -1, true},
		{"north", North, -1, 0, true},
		{"northeast", Northeast, -1, 1, true},
		{"terminal zero", 0, 0, 0, false},
		{"terminal unrecognised", 200, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, dc, has := Offset(tt.code)
			assert.Equal(t, tt.wantHasDwn, has)
			if has {
				assert.Equal(t, tt.wantDR, dr)
				assert.Equal(t, tt.wantDC, dc)
			}
		})
	}
}

func TestFlowsInto(t *testing.T) {
	assert.True(t, FlowsInto(West, 0, -1))
	assert.False(t, FlowsInto(West, 0, 1))
	assert.False(t, FlowsInto(0, 0, -1))
}

func TestNewValidatesDimensions(t *testing.T) {
	_, err := New(2, 2, []uint8{0, 0, 0}, nil)
	require.Error(t, err)

	_, err = New(-1, 2, nil, nil)
	require.Error(t, err)

	g, err := New(2, 2, []uint8{0, 0, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
}

func TestInBounds(t *testing.T) {
	g, err := New(3, 3, make([]uint8, 9), nil)
	require.NoError(t, err)
	assert.True(t, g.InBounds(1, 1))
	assert.True(t, g.InBounds(3, 3))
	assert.False(t, g.InBounds(0, 1))
	assert.False(t, g.InBounds(4, 1))
	assert.False(t, g.InBounds(1, 4))
}

func TestDownstreamTerminal(t *testing.T) {
	g, err := New(1, 1, []uint8{0}, nil)
	require.NoError(t, err)
	_, ok := g.Downstream(1, 1)
	assert.False(t, ok)
}

func TestDownstreamOutOfBounds(t *testing.T) {
	// single cell flowing East has no in-bounds downstream target.
	g, err := New(1, 1, []uint8{East}, nil)
	require.NoError(t, err)
	_, ok := g.Downstream(1, 1)
	assert.False(t, ok)
}

// scenario S1: linear chain 1x5, codes [E,E,E,E,terminal].
func TestUpstreamNeighboursOrderS1(t *testing.T) {
	g, err := New(5, 1, []uint8{East, East, East, East, 0}, nil)
	require.NoError(t, err)
	up := g.UpstreamNeighbours(1, 5)
	require.Len(t, up, 1)
	assert.Equal(t, CellLocation{Row: 1, Col: 4}, up[0])
}

// scenario S3: fixed enumeration order NW before NE at a Y-junction.
func TestUpstreamNeighboursFixedOrder(t *testing.T) {
	// (2,2) receives from (1,1) [SE] and (1,3) [SW], enumerated NW,N,NE,W,E,SW,S,SE
	// so (1,1) (a NW neighbour of (2,2)) must precede (1,3) (a NE neighbour).
	codes := make([]uint8, 9)
	codes[idx(3, 1, 1)] = Southeast // (1,1) -> SE -> (2,2)
	codes[idx(3, 1, 3)] = Southwest // (1,3) -> SW -> (2,2)
	g, err := New(3, 3, codes, nil)
	require.NoError(t, err)
	up := g.UpstreamNeighbours(2, 2)
	require.Len(t, up, 2)
	assert.Equal(t, CellLocation{Row: 1, Col: 1}, up[0])
	assert.Equal(t, CellLocation{Row: 1, Col: 3}, up[1])
}

func TestIsLeafAndCells(t *testing.T) {
	g, err := New(2, 1, []uint8{East, 0}, nil)
	require.NoError(t, err)
	assert.True(t, g.IsLeaf(1, 1))
	assert.False(t, g.IsLeaf(1, 2))
	cells := g.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, CellLocation{Row: 1, Col: 1}, cells[0])
	assert.Equal(t, CellLocation{Row: 1, Col: 2}, cells[1])
}

func TestNoCellSentinel(t *testing.T) {
	assert.True(t, NoCell.IsNoCell())
	assert.False(t, CellLocation{Row: 1, Col: 1}.IsNoCell())
}

// idx computes the 0-based row-major index for a width-w grid, mirroring
// FlowGrid.Index without requiring a constructed grid.
func idx(w, r, c int) int {
	return (r-1)*w + (c - 1)
}
