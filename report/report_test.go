package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

func TestWriteCSVFormat(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "out.csv")
	sources := []grid.CellLocation{{Row: 1, Col: 1}, {Row: 3, Col: 3}}
	require.NoError(t, WriteCSV(fp, sources))

	contents, err := os.ReadFile(fp)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "row,column", lines[0])
	assert.Contains(t, lines[1], "1")
	assert.Contains(t, lines[2], "3")
}

func TestWriteCSVIdempotent(t *testing.T) {
	fp1 := filepath.Join(t.TempDir(), "out1.csv")
	fp2 := filepath.Join(t.TempDir(), "out2.csv")
	sources := []grid.CellLocation{{Row: 2, Col: 5}}
	require.NoError(t, WriteCSV(fp1, sources))
	require.NoError(t, WriteCSV(fp2, sources))

	c1, err := os.ReadFile(fp1)
	require.NoError(t, err)
	c2, err := os.ReadFile(fp2)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestAlgorithmLabel(t *testing.T) {
	assert.Equal(t, "recursive (sequential)", AlgorithmLabel(1))
	assert.Equal(t, "double drop (parallel)", AlgorithmLabel(7))
	assert.Equal(t, "", AlgorithmLabel(0))
	assert.Equal(t, "", AlgorithmLabel(8))
}
