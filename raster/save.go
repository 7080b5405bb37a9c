package raster

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/HuidaeCho/longest-flow-path/grid"
)

// SaveBinary writes g in the .d8/.bin layout Load's loadBinary reads
// back: int32 height, int32 width, then height*width D8 code bytes.
// Used by tests to build fixtures without hand-crafting binary files.
func SaveBinary(fp string, g *grid.FlowGrid) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" raster.SaveBinary: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(g.Height)); err != nil {
		return fmt.Errorf(" raster.SaveBinary: writing height: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(g.Width)); err != nil {
		return fmt.Errorf(" raster.SaveBinary: writing width: %w", err)
	}
	if _, err := w.Write(g.Codes); err != nil {
		return fmt.Errorf(" raster.SaveBinary: writing codes: %w", err)
	}
	return w.Flush()
}
