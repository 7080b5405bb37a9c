// Command lfp is the longest-flow-path CLI front-end: it wires the
// raster loader, the outlet-list loader, the lfp.Algorithm family and
// the CSV writer together, per spec.md §6. This is the sole package
// that calls log.Fatalf; every package it imports returns errors.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/HuidaeCho/longest-flow-path/grid"
	"github.com/HuidaeCho/longest-flow-path/lfp"
	"github.com/HuidaeCho/longest-flow-path/outlet"
	"github.com/HuidaeCho/longest-flow-path/raster"
	"github.com/HuidaeCho/longest-flow-path/report"
)

// errArgumentsMissing is returned when fewer than the four required
// positional arguments are supplied. It never reaches log.Fatalf: main
// prints usage and exits non-zero without the "failed" banner other
// errors get, per spec.md §7's usability note.
var errArgumentsMissing = errors.New("lfp: required arguments missing")

func usage() {
	fmt.Println("required arguments:")
	fmt.Println(" 1.  flow direction filename")
	fmt.Println(" 2.  outlet location filename (containing row and column coordinates, one-based indexing)")
	fmt.Println(" 3.  algorithm index")
	fmt.Println(" 4.  output filename")
	fmt.Println("(5.) algorithm parameter (task-based recursive: task creation limit, top-down: 1 for all outlets (default: only first outlet))")
	fmt.Println()
	fmt.Println("available algorithms:")
	for i := 1; i <= 7; i++ {
		fmt.Printf(" %d.  %s\n", i, report.AlgorithmLabel(i))
	}
}

// multiCapable reports whether algorithmIndex has a native multi-outlet
// pass whose selection is gated by algorithmParameter, per spec.md §6.
func multiCapable(algorithmIndex int) bool {
	return algorithmIndex >= 3 && algorithmIndex <= 5
}

func run(args []string) error {
	if len(args) < 4 {
		usage()
		return errArgumentsMissing
	}

	directionFp, outletFp, algIndexStr, outputFp := args[0], args[1], args[2], args[3]

	algIndex, err := strconv.Atoi(algIndexStr)
	if err != nil {
		return fmt.Errorf(" lfp: invalid algorithm index %q: %w", algIndexStr, err)
	}

	algParam := 0
	if len(args) > 4 {
		algParam, err = strconv.Atoi(args[4])
		if err != nil {
			return fmt.Errorf(" lfp: invalid algorithm parameter %q: %w", args[4], err)
		}
	}

	algorithm, err := lfp.New(algIndex, algParam)
	if err != nil {
		return err
	}

	tt := report.NewTimer()

	fmt.Printf("loading flow direction file (%s)...\n", directionFp)
	g, err := raster.Load(directionFp)
	if err != nil {
		return err
	}
	fmt.Printf("flow direction data: %d rows, %d columns\n", g.Height, g.Width)

	fmt.Printf("loading outlet file (%s)...\n", outletFp)
	outlets, err := outlet.Load(outletFp)
	if err != nil {
		return err
	}
	locations := outlet.Locations(outlets)
	tt.Lap("input load complete")

	fmt.Printf("executing %s algorithm...\n", report.AlgorithmLabel(algIndex))

	var sources []grid.CellLocation
	if multiCapable(algIndex) && algParam != 0 {
		report.PrintCells("outlet", locations)

		var bar *report.ProgressBar
		if len(locations) > 8 {
			bar = report.StartProgress(len(locations))
		}
		sources, _, err = algorithm.Multi(g, locations)
		if bar != nil {
			for _, s := range sources {
				bar.Advance(s)
			}
			bar.Stop()
		}
		if err != nil {
			return err
		}
		report.PrintCells("source", sources)
	} else {
		fmt.Printf("outlet location: row %d, column %d\n", locations[0].Row, locations[0].Col)
		source, _, serr := algorithm.Single(g, locations[0])
		if serr != nil {
			return serr
		}
		sources = []grid.CellLocation{source}
		fmt.Printf("source location: row %d, column %d\n", source.Row, source.Col)
	}
	tt.Lap("algorithm execution complete")

	if err := report.WriteCSV(outputFp, sources); err != nil {
		return err
	}
	tt.Print("run complete")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errArgumentsMissing) {
			os.Exit(1)
		}
		log.Fatalf("%v", err)
	}
}
