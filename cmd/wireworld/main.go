//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"wireworld/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	world, err := cfg.BuildWorld()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg)
	rows, cols := world.Grid().Dims()

	ebiten.SetWindowTitle("wireworld")
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
