// Package outlet loads the list of outlet cells an lfp run reports on.
// Adapted from basin/loadUCA.go's mmio.FileExists guard.
package outlet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// Outlet is one labelled cell from the outlet file.
type Outlet struct {
	Location grid.CellLocation
	Label    string
}

// Load parses whitespace-separated "row col label" triples from fp, one
// per line, skipping blank lines. A malformed line returns ErrParse
// wrapping the offending line number and text. Grounded on
// basin/loadUCA.go's mmio.FileExists guard and mmio.ReadTextLines call.
func Load(fp string) ([]Outlet, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf(" outlet.Load: file %s does not exist", fp)
	}
	raw, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" outlet.Load: %w", err)
	}

	var outlets []Outlet
	for i, l := range raw {
		lineNo := i + 1
		line := strings.TrimSpace(l)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf(" outlet.Load: %w: line %d: %q", ErrParse, lineNo, line)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf(" outlet.Load: %w: line %d: %q", ErrParse, lineNo, line)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf(" outlet.Load: %w: line %d: %q", ErrParse, lineNo, line)
		}
		outlets = append(outlets, Outlet{
			Location: grid.CellLocation{Row: row, Col: col},
			Label:    strings.Join(fields[2:], " "),
		})
	}
	if len(outlets) == 0 {
		return nil, fmt.Errorf(" outlet.Load: %w: no outlets found in %s", ErrParse, fp)
	}
	return outlets, nil
}

// Locations extracts the bare CellLocation slice, in file order, for
// passing to an lfp.Algorithm's Multi method.
func Locations(outlets []Outlet) []grid.CellLocation {
	locs := make([]grid.CellLocation, len(outlets))
	for i, o := range outlets {
		locs[i] = o.Location
	}
	return locs
}
