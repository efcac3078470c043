//go:build ebiten

package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wireworld/internal/core"
	"wireworld/internal/render"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/ui"
	"wireworld/internal/worldio"
)

// Game adapts a Wireworld session to the ebiten.Game interface. It starts
// paused so the board can be edited before playback.
type Game struct {
	world   *wireworld.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	savePath string
	density  float64

	paused   bool
	tickOnce bool
	timer    *core.FixedStep
	pending  core.ChangeSet
	repaint  bool
}

// New constructs a Game over the provided session.
func New(world *wireworld.World, cfg *Config) *Game {
	rows, cols := world.Grid().Dims()
	savePath := cfg.File
	if savePath == "" {
		savePath = "wireworld-board"
	}
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(rows, cols),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(),
		scale:    cfg.Scale,
		savePath: savePath,
		density:  cfg.Density,
		paused:   true,
		timer:    core.NewFixedStep(cfg.Interval),
		repaint:  true,
	}
}

// Update handles input and advances the board when playback is running.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.queue(g.world.Reset())
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
		g.repaint = true
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.world.Scatter(time.Now().UnixNano(), g.density)
		g.repaint = true
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if path, err := worldio.Save(g.savePath, g.world.Grid()); err != nil {
			log.Printf("save failed: %v", err)
		} else {
			log.Printf("board saved to %s", path)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.overlay.Toggle()
	}

	g.handleViewportKeys()
	g.handleMouse()

	// Playback advances at the configured interval, not at the frame rate.
	if g.tickOnce {
		g.queue(g.world.Advance())
		g.tickOnce = false
	} else if !g.paused && g.timer.ShouldStep() {
		g.queue(g.world.Advance())
	}
	return nil
}

func (g *Game) handleViewportKeys() {
	if !g.overlay.Visible() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.world.MoveViewport(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.world.MoveViewport(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.world.MoveViewport(1, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.world.MoveViewport(1, 1)
	}
}

func (g *Game) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		row, col, ok := g.cellAtCursor()
		if !ok {
			return
		}
		cs, err := g.world.CycleCell(row, col)
		if err != nil {
			return
		}
		g.queue(cs)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if row, col, ok := g.cellAtCursor(); ok {
			g.world.CenterViewport(row, col)
		}
	}
}

func (g *Game) cellAtCursor() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale
	if !g.world.Grid().InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

func (g *Game) queue(cs core.ChangeSet) {
	g.pending = append(g.pending, cs...)
}

// Draw paints only the cells that changed since the last frame, plus the
// viewport outline and the status HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.repaint {
		g.painter.Blit(screen, g.world.Grid(), g.scale)
		g.repaint = false
	} else {
		g.painter.Apply(screen, g.world.Grid(), g.pending, g.scale)
	}
	g.pending = g.pending[:0]

	g.overlay.Draw(screen, g.world.Viewport(), g.scale)

	rows, cols := g.world.Grid().Dims()
	g.hud.Draw(screen, ui.Status{
		Generation: g.world.Generation(),
		Rows:       rows,
		Cols:       cols,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.world.Grid().Dims()
	return cols * g.scale, rows * g.scale
}
