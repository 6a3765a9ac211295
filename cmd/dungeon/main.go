//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dungeon/internal/app"
	"dungeon/internal/core"
	_ "dungeon/internal/gen/diagonal"
	_ "dungeon/internal/gen/room"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Generators()[cfg.Gen]
	if !ok {
		log.Fatalf("unknown generator %q", cfg.Gen)
	}

	game := app.New(factory(cfg.Params), cfg)

	ebiten.SetWindowTitle("dungeon — " + cfg.Gen)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
