package app

import (
	"time"

	"github.com/integrii/flaggy"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/worldio"
)

// Config represents the command-line parameters shared by the GUI and
// terminal front ends.
type Config struct {
	File     string
	Rows     int
	Cols     int
	Scale    int
	Interval time.Duration
	Random   bool
	Seed     int64
	Density  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     32,
		Cols:     32,
		Scale:    12,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		Density:  0.35,
	}
}

// Bind registers the configuration with the global flaggy parser. Call
// flaggy.Parse afterwards.
func (c *Config) Bind() {
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&c.File, "f", "file", "YAML board file to load; also the save target")
	flaggy.Int(&c.Rows, "y", "rows", "Rows for a blank board when no file is given")
	flaggy.Int(&c.Cols, "x", "cols", "Columns for a blank board when no file is given")
	flaggy.Int(&c.Scale, "p", "scale", "Pixel scale multiplier (GUI build)")
	flaggy.Duration(&c.Interval, "i", "interval", "Interval between steps during playback, for example 150ms")
	flaggy.Bool(&c.Random, "r", "random", "Start from randomly scattered conductors instead of the demo circuit")
	flaggy.Int64(&c.Seed, "s", "seed", "Seed for random scattering")
	flaggy.Float64(&c.Density, "d", "density", "Conductor density for random scattering")
}

// BuildWorld creates the starting session: a board file when one is named,
// otherwise random wiring when requested, otherwise the demonstration
// circuit.
func (c *Config) BuildWorld() (*wireworld.World, error) {
	if c.File != "" {
		g, err := worldio.Load(c.File)
		if err != nil {
			return nil, err
		}
		return wireworld.New(g), nil
	}
	if c.Random {
		g, err := core.New(c.Rows, c.Cols)
		if err != nil {
			return nil, err
		}
		w := wireworld.New(g)
		w.Scatter(c.Seed, c.Density)
		return w, nil
	}
	return wireworld.New(wireworld.DefaultBoard()), nil
}
