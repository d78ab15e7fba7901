package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"life-torus/pkg/core"
	"life-torus/pkg/life"
)

// Mode is the interaction state of a session.
type Mode int

const (
	// Paused lets the user edit the board.
	Paused Mode = iota
	// Playing advances the board on the configured cadence.
	Playing
)

func (m Mode) String() string {
	if m == Playing {
		return "PLAYING"
	}
	return "PAUSED"
}

// Session owns the board and every piece of presentation state around it.
// All input is translated into Session calls, which keeps the windowing layer
// free of simulation logic.
type Session struct {
	board   *life.Board
	cadence *core.Cadence
	rng     *core.RNG
	log     *log.Logger

	savePath string
	window   core.Size
	dot      int
	mode     Mode
	showGrid bool
	showHelp bool

	dragging bool
	last     core.Point
}

// NewSession creates a paused session with an empty board sized to the
// configured window.
func NewSession(cfg Config, logger *log.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		cadence:  core.NewCadence(cfg.Timestep),
		rng:      core.NewRNG(seed),
		log:      logger,
		savePath: cfg.SavePath,
		window:   core.Size{W: cfg.Width, H: cfg.Height},
		dot:      max(cfg.Dot, 1),
		showGrid: cfg.ShowGrid,
		showHelp: cfg.ShowHelp,
	}
	s.board = life.New(s.window.W/s.dot, s.window.H/s.dot)
	return s
}

// Board exposes the simulated board for rendering.
func (s *Session) Board() *life.Board { return s.board }

// Mode returns whether the session is paused or playing.
func (s *Session) Mode() Mode { return s.mode }

// Dot returns the cell size in pixels.
func (s *Session) Dot() int { return s.dot }

// Window returns the window size in pixels.
func (s *Session) Window() core.Size { return s.window }

// ShowGrid reports whether grid lines are drawn.
func (s *Session) ShowGrid() bool { return s.showGrid }

// ShowHelp reports whether the controls overlay is drawn.
func (s *Session) ShowHelp() bool { return s.showHelp && s.mode == Paused }

// Timestep returns the frames between generations.
func (s *Session) Timestep() int { return s.cadence.Timestep() }

// Title describes the session for the window title bar.
func (s *Session) Title() string {
	if s.mode == Playing {
		return fmt.Sprintf("Conway's Game of Life (%s) generation %d", s.mode, s.board.Generation())
	}
	return fmt.Sprintf("Conway's Game of Life (%s)", s.mode)
}

// TogglePlay switches between paused and playing. Starting play hides the
// controls overlay.
func (s *Session) TogglePlay() {
	s.dragging = false
	if s.mode == Paused {
		s.mode = Playing
		s.showHelp = false
		return
	}
	s.mode = Paused
}

// Tick advances one frame and steps the board when the cadence fires. It
// reports whether a generation was computed.
func (s *Session) Tick() bool {
	if s.mode != Playing {
		return false
	}
	if !s.cadence.Tick() {
		return false
	}
	s.board.Step()
	return true
}

// Faster shortens the time between generations.
func (s *Session) Faster() { s.cadence.Faster() }

// Slower lengthens the time between generations.
func (s *Session) Slower() { s.cadence.Slower() }

// GrowDot makes cells one pixel larger. The board is resized and cleared.
func (s *Session) GrowDot() {
	s.dot++
	s.resizeBoard()
}

// ShrinkDot makes cells one pixel smaller, down to one pixel. The board is
// resized and cleared.
func (s *Session) ShrinkDot() {
	if s.dot > 1 {
		s.dot--
	}
	s.resizeBoard()
}

// WindowResized records a new window size. A different size resizes and
// clears the board.
func (s *Session) WindowResized(w, h int) {
	size := core.Size{W: max(w, 1), H: max(h, 1)}
	if size == s.window {
		return
	}
	s.window = size
	s.resizeBoard()
}

func (s *Session) resizeBoard() {
	s.board.Resize(s.window.W/s.dot, s.window.H/s.dot)
	s.dragging = false
}

// ToggleGrid shows or hides grid lines.
func (s *Session) ToggleGrid() { s.showGrid = !s.showGrid }

// ToggleHelp shows or hides the controls overlay.
func (s *Session) ToggleHelp() { s.showHelp = !s.showHelp }

// Clear empties the board and pauses.
func (s *Session) Clear() {
	s.board.Clear()
	s.mode = Paused
}

// Randomize fills the board with a random population.
func (s *Session) Randomize() life.Density {
	return s.board.RandomFill(s.rng)
}

// Save writes the board to the save file. Failures are logged and returned.
func (s *Session) Save() error {
	if err := s.board.SaveFile(s.savePath); err != nil {
		s.log.Printf("save %s: %v", s.savePath, err)
		return err
	}
	return nil
}

// Load replaces the board with the save file and fits the cell size to the
// window width. On failure the board is kept and the error is logged.
func (s *Session) Load() error {
	if err := s.board.LoadFile(s.savePath); err != nil {
		s.log.Printf("load %s: %v", s.savePath, err)
		return err
	}
	w := s.board.Size().W
	s.dot = max((s.window.W+w-1)/w, 1)
	s.dragging = false
	return nil
}

// CellAt translates a pixel position into cell coordinates.
func (s *Session) CellAt(px, py int) core.Point {
	return core.Point{X: floorDiv(px, s.dot), Y: floorDiv(py, s.dot)}
}

// Press toggles the cell under the pointer and starts a drag.
func (s *Session) Press(px, py int) {
	p := s.CellAt(px, py)
	s.toggle(p)
	s.dragging = true
	s.last = p
}

// Drag toggles the cell under the pointer if the pointer entered it since the
// last press or drag.
func (s *Session) Drag(px, py int) {
	if !s.dragging {
		return
	}
	p := s.CellAt(px, py)
	if p == s.last {
		return
	}
	s.toggle(p)
	s.last = p
}

// Release ends a drag.
func (s *Session) Release() { s.dragging = false }

func (s *Session) toggle(p core.Point) {
	err := s.board.Toggle(p.X, p.Y)
	// The pointer may sit in the margin left over when the window is not a
	// multiple of the cell size.
	if err != nil && !errors.Is(err, life.ErrOutOfBounds) {
		s.log.Printf("toggle %v: %v", p, err)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
