//go:build !ebiten

package ui

// Help is a no-op placeholder for headless builds.
type Help struct{}

// NewHelp returns nil in the headless build.
func NewHelp() *Help { return nil }

// Draw is a no-op in the headless build.
func (h *Help) Draw(any) {}
