// Package grid implements the D8 flow-direction data model: the codec
// that maps a direction byte to a downstream offset, and the dense
// FlowGrid that the longest-flow-path algorithms traverse.
package grid

import "fmt"

// CellLocation is a one-based (row, col) coordinate into a FlowGrid.
// The zero value, (0,0), is the explicit "no-cell" sentinel.
type CellLocation struct {
	Row, Col int
}

// NoCell is the sentinel returned where no location applies.
var NoCell = CellLocation{Row: 0, Col: 0}

// IsNoCell reports whether c is the (0,0) sentinel.
func (c CellLocation) IsNoCell() bool {
	return c.Row == 0 && c.Col == 0
}

func (c CellLocation) String() string {
	return fmt.Sprintf("(row %d, col %d)", c.Row, c.Col)
}
