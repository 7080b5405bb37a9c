package lfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// allAlgorithms returns one instance of every algorithm index 1..7, used
// to check spec.md §8 property 1 (consistency across algorithms).
func allAlgorithms(t *testing.T) []Algorithm {
	t.Helper()
	var algs []Algorithm
	for i := 1; i <= 7; i++ {
		a, err := New(i, 2)
		require.NoError(t, err)
		algs = append(algs, a)
	}
	return algs
}

func mustGrid(t *testing.T, w, h int, codes []uint8) *grid.FlowGrid {
	t.Helper()
	g, err := grid.New(w, h, codes, nil)
	require.NoError(t, err)
	return g
}

// S1 linear chain: 1x5, codes [E,E,E,E,terminal]; outlet (1,5); source (1,1), depth 4.
func TestScenarioS1LinearChain(t *testing.T) {
	g := mustGrid(t, 5, 1, []uint8{grid.East, grid.East, grid.East, grid.East, 0})
	outlet := grid.CellLocation{Row: 1, Col: 5}
	for _, a := range allAlgorithms(t) {
		src, depth, err := a.Single(g, outlet)
		require.NoError(t, err)
		assert.Equal(t, grid.CellLocation{Row: 1, Col: 1}, src)
		assert.Equal(t, 4, depth)
	}
}

// S2 diagonal: 3x3, (3,3) flows NW to (2,2), (2,2) flows NW to (1,1); outlet
// (1,1); source (3,3), depth 2.
func TestScenarioS2Diagonal(t *testing.T) {
	codes := make([]uint8, 9)
	codes[cellIndex(3, 2, 2)] = grid.Northwest
	codes[cellIndex(3, 3, 3)] = grid.Northwest
	g := mustGrid(t, 3, 3, codes)
	outlet := grid.CellLocation{Row: 1, Col: 1}
	for _, a := range allAlgorithms(t) {
		src, depth, err := a.Single(g, outlet)
		require.NoError(t, err)
		assert.Equal(t, grid.CellLocation{Row: 3, Col: 3}, src)
		assert.Equal(t, 2, depth)
	}
}

// S3 Y-junction, equal arms: outlet (3,2); (3,1)->E->(3,2), (3,3)->W->(3,2);
// (1,1)->SE->(2,2), (1,3)->SW->(2,2); (2,2)->S->(3,2). Expected source
// (1,1): NW neighbour of (2,2) is enumerated before NE.
func TestScenarioS3YJunctionTieBreak(t *testing.T) {
	codes := make([]uint8, 9)
	codes[cellIndex(3, 3, 1)] = grid.East
	codes[cellIndex(3, 3, 3)] = grid.West
	codes[cellIndex(3, 1, 1)] = grid.Southeast
	codes[cellIndex(3, 1, 3)] = grid.Southwest
	codes[cellIndex(3, 2, 2)] = grid.South
	g := mustGrid(t, 3, 3, codes)
	outlet := grid.CellLocation{Row: 3, Col: 2}
	for _, a := range allAlgorithms(t) {
		src, depth, err := a.Single(g, outlet)
		require.NoError(t, err)
		assert.Equal(t, grid.CellLocation{Row: 1, Col: 1}, src)
		assert.Equal(t, 2, depth)
	}
}

// S4 isolated outlet: 3x3 all-zero grid, outlet (2,2); source (2,2), depth 0.
func TestScenarioS4IsolatedOutlet(t *testing.T) {
	g := mustGrid(t, 3, 3, make([]uint8, 9))
	outlet := grid.CellLocation{Row: 2, Col: 2}
	for _, a := range allAlgorithms(t) {
		src, depth, err := a.Single(g, outlet)
		require.NoError(t, err)
		assert.Equal(t, outlet, src)
		assert.Equal(t, 0, depth)
	}
}

// S5 out-of-bounds outlet: 3x3 grid, outlet (4,4) -> ErrOutletOutOfBounds.
func TestScenarioS5OutletOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3, make([]uint8, 9))
	outlet := grid.CellLocation{Row: 4, Col: 4}
	for _, a := range allAlgorithms(t) {
		_, _, err := a.Single(g, outlet)
		require.ErrorIs(t, err, grid.ErrOutletOutOfBounds)
	}
}

// S6 multi-outlet: S1 extended to 2x5 with row 2 replicating row 1; outlets
// [(1,5),(2,5)] under each of algorithms 3-5 in multi-outlet mode. Expected
// sources [(1,1),(2,1)].
func TestScenarioS6MultiOutlet(t *testing.T) {
	row := []uint8{grid.East, grid.East, grid.East, grid.East, 0}
	codes := append(append([]uint8{}, row...), row...)
	g := mustGrid(t, 5, 2, codes)
	outlets := []grid.CellLocation{{Row: 1, Col: 5}, {Row: 2, Col: 5}}

	for i := 3; i <= 5; i++ {
		a, err := New(i, 1)
		require.NoError(t, err)
		sources, depths, err := a.Multi(g, outlets)
		require.NoError(t, err)
		require.Equal(t, []grid.CellLocation{{Row: 1, Col: 1}, {Row: 2, Col: 1}}, sources)
		require.Equal(t, []int{4, 4}, depths)
	}
}

// property 5: multi-outlet equivalence for algorithms 3-5.
func TestMultiOutletEquivalenceToSingle(t *testing.T) {
	row := []uint8{grid.West, grid.West, grid.West, grid.West, 0}
	codes := append(append([]uint8{}, row...), row...)
	g := mustGrid(t, 5, 2, codes)
	outlets := []grid.CellLocation{{Row: 1, Col: 5}, {Row: 2, Col: 5}}

	for i := 3; i <= 5; i++ {
		a, err := New(i, 0)
		require.NoError(t, err)
		multiSrc, multiDepth, err := a.Multi(g, outlets)
		require.NoError(t, err)
		for j, o := range outlets {
			singleSrc, singleDepth, err := a.Single(g, o)
			require.NoError(t, err)
			assert.Equal(t, singleSrc, multiSrc[j])
			assert.Equal(t, singleDepth, multiDepth[j])
		}
	}
}

// property 6: RecursiveTask matches RecursiveSeq at several task limits,
// and DoubleDropOmp / TopDownSingleOmp match their sequential counterparts.
func TestParallelMatchesSequential(t *testing.T) {
	codes := make([]uint8, 9)
	codes[cellIndex(3, 3, 1)] = grid.East
	codes[cellIndex(3, 3, 3)] = grid.West
	codes[cellIndex(3, 1, 1)] = grid.Southeast
	codes[cellIndex(3, 1, 3)] = grid.Southwest
	codes[cellIndex(3, 2, 2)] = grid.South
	g := mustGrid(t, 3, 3, codes)
	outlet := grid.CellLocation{Row: 3, Col: 2}

	seqSrc, seqDepth, err := RecursiveSeq{}.Single(g, outlet)
	require.NoError(t, err)
	for _, limit := range []int{0, 1, 2, 100} {
		src, depth, err := RecursiveTask{TaskLimit: limit}.Single(g, outlet)
		require.NoError(t, err)
		assert.Equal(t, seqSrc, src)
		assert.Equal(t, seqDepth, depth)
	}

	singleSrc, singleDepth, err := TopDownSingleSeq{}.Single(g, outlet)
	require.NoError(t, err)
	ompSrc, ompDepth, err := TopDownSingleOmp{}.Single(g, outlet)
	require.NoError(t, err)
	assert.Equal(t, singleSrc, ompSrc)
	assert.Equal(t, singleDepth, ompDepth)

	ddSrc, ddDepth, err := DoubleDropSeq{}.Single(g, outlet)
	require.NoError(t, err)
	ddOmpSrc, ddOmpDepth, err := DoubleDropOmp{}.Single(g, outlet)
	require.NoError(t, err)
	assert.Equal(t, ddSrc, ddOmpSrc)
	assert.Equal(t, ddDepth, ddOmpDepth)
}

// property 4: idempotence -- repeated invocations produce identical results.
func TestIdempotence(t *testing.T) {
	g := mustGrid(t, 5, 1, []uint8{grid.West, grid.West, grid.West, grid.West, 0})
	outlet := grid.CellLocation{Row: 1, Col: 5}
	a := TopDownMaxSeq{}
	src1, depth1, err := a.Single(g, outlet)
	require.NoError(t, err)
	src2, depth2, err := a.Single(g, outlet)
	require.NoError(t, err)
	assert.Equal(t, src1, src2)
	assert.Equal(t, depth1, depth2)
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New(0, 0)
	require.ErrorIs(t, err, ErrAlgorithmUnknown)
	_, err = New(8, 0)
	require.ErrorIs(t, err, ErrAlgorithmUnknown)
}

func TestCycleDetection(t *testing.T) {
	// (1,1) -> E -> (1,2) -> W -> (1,1): a two-cell cycle.
	g := mustGrid(t, 2, 1, []uint8{grid.East, grid.West})
	outlet := grid.CellLocation{Row: 1, Col: 1}
	for _, a := range allAlgorithms(t) {
		_, _, err := a.Single(g, outlet)
		require.ErrorIs(t, err, grid.ErrGridMalformed)
	}
}

// cellIndex computes the 0-based row-major index for a width-w grid.
func cellIndex(w, r, c int) int {
	return (r-1)*w + (c - 1)
}
