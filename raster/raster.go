// Package raster loads D8 flow-direction grids from disk into
// grid.FlowGrid values. Adapted from grid/grid.go's ReadGDEF
// (text-header parsing with an accumulated error list, mmio.ReadTextLines)
// and tem/constructor.go's loadUHDEM (mmio.OpenBinary length-prefixed
// binary cell arrays).
package raster

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	ghgrid "github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// Load reads a D8 flow-direction grid from fp, dispatching on file
// extension: ".d8"/".bin" for the little-endian binary encoding, ".asc"
// for the whitespace-delimited text encoding.
func Load(fp string) (*grid.FlowGrid, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf(" raster.Load: file %s does not exist", fp)
	}
	switch strings.ToLower(filepath.Ext(fp)) {
	case ".d8", ".bin":
		return loadBinary(fp)
	case ".asc":
		return loadASCII(fp)
	default:
		return nil, fmt.Errorf(" raster.Load: %w: %s", ErrUnknownFormat, fp)
	}
}

// loadBinary reads the int32-height, int32-width, height*width-byte
// layout written by the companion SaveBinary function, via mmio.OpenBinary,
// the same primitive tem/constructor.go's loadUHDEM reads its
// length-prefixed cell array with.
func loadBinary(fp string) (*grid.FlowGrid, error) {
	buf := mmio.OpenBinary(fp)
	height := mmio.ReadInt32(buf)
	width := mmio.ReadInt32(buf)

	n := int(height) * int(width)
	codes := make([]byte, n)
	if _, err := io.ReadFull(buf, codes); err != nil {
		return nil, fmt.Errorf(" raster.loadBinary: reading codes: %w", err)
	}

	return grid.New(int(width), int(height), codes, &ghgrid.Definition{})
}

// loadASCII reads a header of "ncols N" / "nrows N" lines (order
// insensitive, case-insensitive keys, any additional georeferencing
// lines ignored) followed by nrows lines of ncols whitespace-separated
// D8 codes. Grounded on grid/grid.go's ReadGDEF, which reads its own
// grid-definition header off mmio.ReadTextLines.
func loadASCII(fp string) (*grid.FlowGrid, error) {
	raw, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" raster.loadASCII: %w", err)
	}
	var lines []string
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var ncols, nrows int
	var stErr []string
	body := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		// a line whose first token is a number is a data row, even when it
		// has exactly two columns like a header line.
		if _, numErr := strconv.Atoi(fields[0]); len(fields) != 2 || numErr == nil {
			body = i
			break
		}
		key, val := strings.ToLower(fields[0]), fields[1]
		switch key {
		case "ncols":
			if ncols, err = strconv.Atoi(val); err != nil {
				stErr = append(stErr, fmt.Sprintf(" failed to read 'ncols': %v", err))
			}
		case "nrows":
			if nrows, err = strconv.Atoi(val); err != nil {
				stErr = append(stErr, fmt.Sprintf(" failed to read 'nrows': %v", err))
			}
		default:
			// georeferencing header line (xllcorner, cellsize, ...): ignored
			body = i + 1
			continue
		}
		body = i + 1
	}
	if len(stErr) > 0 {
		return nil, fmt.Errorf(" raster.loadASCII: %s", strings.Join(stErr, "; "))
	}
	if ncols == 0 || nrows == 0 {
		return nil, fmt.Errorf(" raster.loadASCII: %w", grid.ErrGridMalformed)
	}

	codes := make([]byte, 0, ncols*nrows)
	for _, line := range lines[body:] {
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf(" raster.loadASCII: %w", err)
			}
			codes = append(codes, byte(v))
		}
	}

	return grid.New(ncols, nrows, codes, &ghgrid.Definition{})
}
