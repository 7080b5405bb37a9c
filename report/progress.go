package report

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// ProgressBar drives a uiprogress bar across a multi-outlet run of
// algorithms 3-5, grounded on evaluate.serial.go's AddBar/PrependFunc
// per-timestep reporting shape — here advanced once per outlet
// processed rather than once per model timestep.
type ProgressBar struct {
	bar  *uiprogress.Bar
	done chan string
}

// StartProgress begins a bar sized to total outlets. Grounded on
// evaluate.serial.go's pairing of a blocking PrependFunc receive with a
// blocking send from the work loop: the label channel is unbuffered on
// purpose, so the bar's next redraw always shows the outlet Advance just
// finished rather than racing ahead with a non-blocking peek.
func StartProgress(total int) *ProgressBar {
	uiprogress.Start()
	done := make(chan string)
	bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-done
	})
	return &ProgressBar{bar: bar, done: done}
}

// Advance marks one more outlet resolved, labelling the step with its
// source location for the bar's prefix. Blocks until PrependFunc's next
// redraw consumes the label, matching evaluate.serial.go's rendezvous.
func (p *ProgressBar) Advance(source grid.CellLocation) {
	p.bar.Incr()
	p.done <- fmt.Sprintf("row %d, col %d", source.Row, source.Col)
}

// Stop finishes the progress display.
func (p *ProgressBar) Stop() {
	close(p.done)
	uiprogress.Stop()
}
