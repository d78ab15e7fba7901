package life

import "errors"

var (
	// ErrOutOfBounds is returned when a mutation addresses a cell outside the grid.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrLoad is returned when a saved board cannot be read or parsed.
	ErrLoad = errors.New("life: load failed")
)
