package main

import (
	"log"

	"github.com/integrii/flaggy"

	"wireworld/internal/app"
	"wireworld/internal/view"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	world, err := cfg.BuildWorld()
	if err != nil {
		log.Fatal(err)
	}

	ui := view.NewConsoleUI(world, view.Options{
		Interval: cfg.Interval,
		SavePath: cfg.File,
		Density:  cfg.Density,
	})
	ui.Start()
}
