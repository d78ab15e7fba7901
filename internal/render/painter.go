//go:build ebiten

package render

import (
	"image/color"

	"life-torus/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardPainter draws a board as scaled cells with optional grid lines.
type BoardPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewBoardPainter allocates a painter. It reallocates itself whenever the
// board size changes.
func NewBoardPainter() *BoardPainter { return &BoardPainter{} }

func (bp *BoardPainter) ensure(size core.Size) {
	if bp.img != nil && bp.size == size {
		return
	}
	if bp.img != nil {
		bp.img.Dispose()
	}
	bp.size = size
	bp.img = ebiten.NewImage(size.W, size.H)
	bp.buf = make([]byte, 4*size.Area())
}

// Blit uploads the live cells and draws them with each cell dot pixels wide.
func (bp *BoardPainter) Blit(dst *ebiten.Image, cells CellSource, on, off color.Color, dot int) {
	bp.ensure(cells.Size())
	fillCellsRGBA(bp.buf, cells, on, off)
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dot), float64(dot))
	dst.DrawImage(bp.img, op)
}

// Grid draws one-pixel lines along every cell boundary.
func Grid(dst *ebiten.Image, size core.Size, dot int, clr color.Color) {
	bounds := dst.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	for x := 0; x < size.W; x++ {
		fx := float32(x*dot) + 0.5
		vector.StrokeLine(dst, fx, 0, fx, h, 1, clr, false)
	}
	for y := 0; y < size.H; y++ {
		fy := float32(y*dot) + 0.5
		vector.StrokeLine(dst, 0, fy, w, fy, 1, clr, false)
	}
}
