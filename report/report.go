// Package report writes the CSV result file and mirrors the console
// progress style of run/main.go: mmio.NewTimer-wrapped phases, a bounded
// preview of outlet/source listings, and a uiprogress bar while a
// multi-outlet algorithm is in flight.
package report

import (
	"fmt"

	"github.com/maseology/mmio"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// cellPrintLimit bounds how many outlet/source locations the console
// preview prints before collapsing the remainder into "...".
const cellPrintLimit = 8

// AlgorithmLabel names an algorithm index for console display, matching
// original_source/Source/main.cpp's algorithmLabel table.
func AlgorithmLabel(index int) string {
	switch index {
	case 1:
		return "recursive (sequential)"
	case 2:
		return "recursive (task-based parallel)"
	case 3:
		return "top-down: maximum length (sequential)"
	case 4:
		return "top-down: single update (sequential)"
	case 5:
		return "top-down: single update (parallel)"
	case 6:
		return "double drop (sequential)"
	case 7:
		return "double drop (parallel)"
	default:
		return ""
	}
}

// PrintCells prints up to cellPrintLimit locations under label, noting
// the total count and eliding the rest.
func PrintCells(label string, cells []grid.CellLocation) {
	total := len(cells)
	toPrint := total
	if toPrint > cellPrintLimit {
		toPrint = cellPrintLimit
	}
	fmt.Printf(" number of %s locations: %d\n", label, total)
	for i := 0; i < toPrint; i++ {
		fmt.Printf(" - row %d, column %d\n", cells[i].Row, cells[i].Col)
	}
	if toPrint < total {
		fmt.Println(" - ...")
	}
}

// WriteCSV emits the row,column result file: a header line followed by
// one line per source, in input-outlet order. Deterministic and
// timestamp-free, so repeated runs over the same inputs produce
// byte-identical output.
func WriteCSV(fp string, sources []grid.CellLocation) error {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	if err := csvw.WriteHead("row,column"); err != nil {
		return fmt.Errorf(" report.WriteCSV: %w", err)
	}
	for _, s := range sources {
		if err := csvw.WriteLine(s.Row, s.Col); err != nil {
			return fmt.Errorf(" report.WriteCSV: %w", err)
		}
	}
	return nil
}

// Timer wraps mmio.NewTimer for the two phases run/main.go always
// reports: input load and algorithm execution.
type Timer struct {
	t interface {
		Lap(string)
		Print(string)
	}
}

// NewTimer starts a new phase timer.
func NewTimer() *Timer {
	return &Timer{t: mmio.NewTimer()}
}

// Lap prints label and the elapsed time since NewTimer, in the style of
// run/main.go's deferred tt.Lap call.
func (tm *Timer) Lap(label string) {
	tm.t.Lap(label)
}

// Print prints label and the elapsed time since NewTimer without
// resetting it, mirroring mmio.Timer.Print.
func (tm *Timer) Print(label string) {
	tm.t.Print(label)
}
