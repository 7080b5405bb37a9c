package outlet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "outlets.txt")
	require.NoError(t, os.WriteFile(fp, []byte(contents), 0o644))
	return fp
}

func TestLoadWellFormed(t *testing.T) {
	fp := writeTemp(t, "1 5 outletA\n2 5 outletB\n\n  \n3 1 outletC\n")
	outlets, err := Load(fp)
	require.NoError(t, err)
	require.Len(t, outlets, 3)
	assert.Equal(t, grid.CellLocation{Row: 1, Col: 5}, outlets[0].Location)
	assert.Equal(t, "outletA", outlets[0].Label)
	assert.Equal(t, grid.CellLocation{Row: 2, Col: 5}, outlets[1].Location)
	assert.Equal(t, grid.CellLocation{Row: 3, Col: 1}, outlets[2].Location)
}

func TestLoadMalformedLine(t *testing.T) {
	fp := writeTemp(t, "1 5 outletA\nnot-a-number 2 label\n")
	_, err := Load(fp)
	require.ErrorIs(t, err, ErrParse)
}

func TestLoadMissingFields(t *testing.T) {
	fp := writeTemp(t, "1 5\n")
	_, err := Load(fp)
	require.ErrorIs(t, err, ErrParse)
}

func TestLoadEmptyFile(t *testing.T) {
	fp := writeTemp(t, "\n\n")
	_, err := Load(fp)
	require.ErrorIs(t, err, ErrParse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
}

func TestLocations(t *testing.T) {
	outlets := []Outlet{
		{Location: grid.CellLocation{Row: 1, Col: 2}, Label: "a"},
		{Location: grid.CellLocation{Row: 3, Col: 4}, Label: "b"},
	}
	locs := Locations(outlets)
	assert.Equal(t, []grid.CellLocation{{Row: 1, Col: 2}, {Row: 3, Col: 4}}, locs)
}
