//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	_ "lifegrid/internal/seeders"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	state, err := app.LoadState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(state, cfg)
	px := state.Config.PixelSize()

	ebiten.SetWindowTitle("gameoflife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(px.W, px.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
