//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pixel-wall/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	resolved, err := cfg.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg, resolved)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle(app.Title(cfg.Width, cfg.Height))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(resolved.WindowW, resolved.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
