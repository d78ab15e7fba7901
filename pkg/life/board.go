// Package life implements Conway's Game of Life on a toroidal grid, storing
// only the coordinates of live cells.
//
// A Board is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package life

import (
	"fmt"
	"slices"

	"life-torus/pkg/core"
)

// Board holds the live cells of a width x height toroidal grid.
type Board struct {
	size core.Size
	live map[core.Point]struct{}
	gen  int
}

// New returns an empty board with the provided dimensions. Dimensions below
// one are clamped to one.
func New(w, h int) *Board {
	b := &Board{}
	b.Resize(w, h)
	return b
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.size }

// Len returns the number of live cells.
func (b *Board) Len() int { return len(b.live) }

// Generation returns how many steps have been taken since the board was
// created, resized, cleared, filled or loaded.
func (b *Board) Generation() int { return b.gen }

// IsAlive reports whether (x, y) is live. Coordinates outside the grid are dead.
func (b *Board) IsAlive(x, y int) bool {
	_, ok := b.live[core.Point{X: x, Y: y}]
	return ok
}

// Cells returns the live coordinates in row-major order. The slice is a copy.
func (b *Board) Cells() []core.Point {
	out := make([]core.Point, 0, len(b.live))
	for p := range b.live {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, c core.Point) int {
		if a.Y != c.Y {
			return a.Y - c.Y
		}
		return a.X - c.X
	})
	return out
}

// Range calls fn for every live cell in no particular order. fn must not
// modify the board.
func (b *Board) Range(fn func(core.Point)) {
	for p := range b.live {
		fn(p)
	}
}

// Toggle flips the state of (x, y).
func (b *Board) Toggle(x, y int) error {
	p, err := b.point(x, y)
	if err != nil {
		return err
	}
	if _, ok := b.live[p]; ok {
		delete(b.live, p)
	} else {
		b.live[p] = struct{}{}
	}
	return nil
}

// Set makes (x, y) live or dead.
func (b *Board) Set(x, y int, alive bool) error {
	p, err := b.point(x, y)
	if err != nil {
		return err
	}
	if alive {
		b.live[p] = struct{}{}
	} else {
		delete(b.live, p)
	}
	return nil
}

// Clear kills every cell.
func (b *Board) Clear() {
	b.live = make(map[core.Point]struct{})
	b.gen = 0
}

// Resize changes the grid dimensions and clears the board, since existing
// coordinates lose their meaning on a different grid.
func (b *Board) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.size = core.Size{W: w, H: h}
	b.Clear()
}

// Equal reports whether both boards have the same dimensions and live cells.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size || len(b.live) != len(o.live) {
		return false
	}
	for p := range b.live {
		if _, ok := o.live[p]; !ok {
			return false
		}
	}
	return true
}

func (b *Board) point(x, y int) (core.Point, error) {
	p := core.Point{X: x, Y: y}
	if !b.size.Contains(p) {
		return p, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, b.size.W, b.size.H)
	}
	return p, nil
}
