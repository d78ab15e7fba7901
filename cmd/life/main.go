//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-torus/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
		log.Printf("config: %v (using defaults)", err)
	}
	// Flags win over the settings file.
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	theme, err := cfg.ResolveTheme()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session := app.NewSession(*cfg, log.Default())
	game := app.New(session, theme)

	ebiten.SetWindowTitle(session.Title())
	ebiten.SetTPS(cfg.RefreshRate)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
