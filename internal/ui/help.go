//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	helpPadding    = 12
	helpLineHeight = 16
)

// Help renders the list of controls in a box centred on the screen.
type Help struct {
	lines []string
	panel *ebiten.Image
}

// NewHelp builds the overlay listing both paused and running controls.
func NewHelp() *Help {
	lines := helpLines("Conway's Game of Life (paused)", PausedControls)
	lines = append(lines, "")
	lines = append(lines, helpLines("While running", PlayingControls)...)
	return &Help{lines: lines}
}

// Draw renders the overlay onto screen.
func (h *Help) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	if h.panel == nil {
		width := 0
		for _, l := range h.lines {
			if w := text.BoundString(face, l).Dx(); w > width {
				width = w
			}
		}
		h.panel = ebiten.NewImage(width+2*helpPadding, len(h.lines)*helpLineHeight+2*helpPadding)
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
		for i, l := range h.lines {
			y := helpPadding + (i+1)*helpLineHeight - 4
			text.Draw(h.panel, l, face, helpPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}

	sb := screen.Bounds()
	pb := h.panel.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((sb.Dx()-pb.Dx())/2), float64((sb.Dy()-pb.Dy())/2))
	screen.DrawImage(h.panel, op)
}
