//go:build ebiten

package app

import (
	"image/color"

	"life-torus/internal/render"
	"life-torus/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.BoardPainter
	help    *ui.Help

	dotColour  color.Color
	bgColour   color.Color
	gridColour color.Color

	repeatDelay    int
	repeatInterval int
	title          string
}

// New constructs a Game for the provided session and resolved theme.
func New(session *Session, theme Theme) *Game {
	return &Game{
		session:        session,
		painter:        render.NewBoardPainter(),
		help:           ui.NewHelp(),
		dotColour:      theme.Dot,
		bgColour:       theme.Background,
		gridColour:     theme.Grid,
		repeatDelay:    theme.RepeatDelay,
		repeatInterval: theme.RepeatInterval,
	}
}

func (g *Game) repeating(key ebiten.Key) bool {
	return repeatDue(inpututil.KeyPressDuration(key), g.repeatDelay, g.repeatInterval)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		s.Clear()
	}

	if s.Mode() == Paused {
		g.updatePaused()
	} else {
		g.updatePlaying()
	}

	s.Tick()
	if title := s.Title(); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

func (g *Game) updatePaused() {
	s := g.session
	if g.repeating(ebiten.KeyArrowRight) {
		s.GrowDot()
	}
	if g.repeating(ebiten.KeyArrowLeft) {
		s.ShrinkDot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = s.Save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		_ = s.Load()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize()
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.Press(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Drag(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.Release()
	}
}

func (g *Game) updatePlaying() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.Slower()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.Press(x, y)
		s.Release()
	}
}

// Draw renders the board, grid and help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	b := s.Board()
	screen.Fill(g.bgColour)
	g.painter.Blit(screen, b, g.dotColour, g.bgColour, s.Dot())
	if s.ShowGrid() {
		render.Grid(screen, b.Size(), s.Dot(), g.gridColour)
	}
	if s.ShowHelp() {
		g.help.Draw(screen)
	}
}

// Layout tracks the window size; the logical screen is the window itself.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.WindowResized(outsideWidth, outsideHeight)
	w := g.session.Window()
	return w.W, w.H
}
