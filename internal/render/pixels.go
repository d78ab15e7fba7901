package render

import (
	"image/color"

	"life-torus/pkg/core"
)

// CellSource is the read-only view of a board the painter needs.
type CellSource interface {
	Size() core.Size
	Range(fn func(core.Point))
}

// fillCellsRGBA paints a size.W*size.H RGBA buffer with off, then marks every
// live cell with on. Cells outside the source size are skipped.
func fillCellsRGBA(buf []byte, cells CellSource, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	size := cells.Size()
	cells.Range(func(p core.Point) {
		if !size.Contains(p) {
			return
		}
		base := (p.Y*size.W + p.X) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	})
}
