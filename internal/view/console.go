// Package view provides the terminal front end: a gocui layout with a
// scrolling window over the board, a status panel and vim-ish keybindings.
package view

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"wireworld/internal/core"
	"wireworld/internal/sims/wireworld"
	"wireworld/internal/worldio"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders a Wireworld session in the terminal. The board view
// shows the session's viewport, so boards larger than the terminal scroll
// with the arrow keys.
type ConsoleUI struct {
	mu    sync.Mutex
	world *wireworld.World

	g *gocui.Gui
	k []keyBinding

	interval time.Duration
	savePath string
	density  float64

	playing bool
	stopCh  chan struct{}

	fillers [4]string
}

// Options configures a ConsoleUI.
type Options struct {
	Interval time.Duration
	SavePath string
	Density  float64
}

// NewConsoleUI builds the terminal UI over the given session.
func NewConsoleUI(world *wireworld.World, opts Options) *ConsoleUI {
	if opts.SavePath == "" {
		opts.SavePath = "wireworld-board"
	}
	t := &ConsoleUI{
		world:    world,
		interval: opts.Interval,
		savePath: opts.SavePath,
		density:  opts.Density,
		fillers: [4]string{
			core.Empty:        "░",
			core.ElectronHead: aurora.Blue("█").BgBlue().String(),
			core.ElectronTail: aurora.Red("█").BgRed().String(),
			core.Conductor:    aurora.Yellow("█").BgYellow().String(),
		},
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Quit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'o', "O", "Reset to step 0", t.cmdReset, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'z', "Z", "Random wires", t.cmdScatter, ""},
		{'w', "W", "Save board", t.cmdSave, ""},
		{gocui.KeyArrowUp, "ARROWS", "Scroll viewport", t.viewportMove(0, -1), ""},
		{gocui.KeyArrowDown, "", "", t.viewportMove(0, 1), ""},
		{gocui.KeyArrowLeft, "", "", t.viewportMove(1, -1), ""},
		{gocui.KeyArrowRight, "", "", t.viewportMove(1, 1), ""},
		{'K', "K/J/H/L", "Grow n/s/w/e", t.resizeEdge(core.North, 1), ""},
		{'J', "", "", t.resizeEdge(core.South, 1), ""},
		{'H', "", "", t.resizeEdge(core.West, 1), ""},
		{'L', "", "", t.resizeEdge(core.East, 1), ""},
		{'k', "k/j/h/l", "Shrink n/s/w/e", t.resizeEdge(core.North, -1), ""},
		{'j', "", "", t.resizeEdge(core.South, -1), ""},
		{'h', "", "", t.resizeEdge(core.West, -1), ""},
		{'l', "", "", t.resizeEdge(core.East, -1), ""},
		{gocui.MouseLeft, "MOUSE", "Cycle cell state", t.cmdMouseClick, "board"},
	}

	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()
	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the gocui main loop until quit.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.stopPlayback()
	t.g.Close()
}

// Refresh redraws the board and status panels.
func (t *ConsoleUI) Refresh() {
	t.renderBoard()
	t.renderStatus()
}

func (t *ConsoleUI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("board")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		defer t.mu.Unlock()

		grid := t.world.Grid()
		vp := t.world.Viewport()
		cells := grid.Cells()

		var b bytes.Buffer
		for r := vp.Top; r < vp.Top+vp.Rows; r++ {
			if r != vp.Top {
				b.WriteByte('\n')
			}
			for c := vp.Left; c < vp.Left+vp.Cols; c++ {
				b.WriteString(t.fillers[cells[grid.Index(r, c)]])
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()

		t.mu.Lock()
		rows, cols := t.world.Grid().Dims()
		gen := t.world.Generation()
		vp := t.world.Viewport()
		var counts [4]int
		for _, s := range t.world.Grid().Cells() {
			counts[s]++
		}
		playing := t.playing
		t.mu.Unlock()

		mode := aurora.Colorize("paused", aurora.BlueFg).String()
		if playing {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}

		_, _ = fmt.Fprintln(v, t.renderProp("Step", "%05d", gen))
		_, _ = fmt.Fprintln(v, t.renderProp("Board", "%v x %v", rows, cols))
		_, _ = fmt.Fprintln(v, t.renderProp("Viewport", "(%v,%v) %vx%v", vp.Top, vp.Left, vp.Rows, vp.Cols))
		_, _ = fmt.Fprintln(v, t.renderProp("Conductors", "%v", counts[core.Conductor]))
		_, _ = fmt.Fprintln(v, t.renderProp("Heads", "%v", counts[core.ElectronHead]))
		_, _ = fmt.Fprintln(v, t.renderProp("Tails", "%v", counts[core.ElectronTail]))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.interval))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26
	if maxX < leftColumnWidth+4 || maxY < 6 {
		// Terminal too small to lay out; wait for a resize event.
		return nil
	}

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Wireworld"
		v.Frame = true
	}
	t.fitViewport(g)
	t.renderBoard()

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

// fitViewport clamps the session viewport to what the board view can show,
// so scrolling and mouse mapping stay consistent with the terminal size.
func (t *ConsoleUI) fitViewport(g *gocui.Gui) {
	v, err := g.View("board")
	if err != nil {
		return
	}
	w, h := v.Size()
	if w < 1 || h < 1 {
		return
	}
	t.mu.Lock()
	t.world.ResizeViewport(h, w)
	t.mu.Unlock()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.mu.Lock()
	t.world.Advance()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.playing {
		return nil
	}
	t.playing = true
	t.stopCh = make(chan struct{})
	go t.playLoop(t.stopCh)
	return nil
}

// playLoop drives periodic stepping outside the engine, which stays
// synchronous. Only one loop runs at a time, so step calls never overlap.
func (t *ConsoleUI) playLoop(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.world.Advance()
			t.mu.Unlock()
			t.Refresh()
		}
	}
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.stopPlayback()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) stopPlayback() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return
	}
	t.playing = false
	close(t.stopCh)
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.mu.Lock()
	t.world.Reset()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.mu.Lock()
	t.world.Clear()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdScatter(_ *gocui.View) error {
	t.mu.Lock()
	t.world.Scatter(time.Now().UnixNano(), t.density)
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdSave(_ *gocui.View) error {
	t.mu.Lock()
	grid := t.world.Grid().Clone()
	t.mu.Unlock()
	if _, err := worldio.Save(t.savePath, grid); err != nil {
		log.Printf("save failed: %v", err)
	}
	return nil
}

func (t *ConsoleUI) viewportMove(axis, delta int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.mu.Lock()
		t.world.MoveViewport(axis, delta)
		t.mu.Unlock()
		t.Refresh()
		return nil
	}
}

func (t *ConsoleUI) resizeEdge(edge core.Edge, count int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		t.mu.Lock()
		// Shrinking a 1-rank dimension is rejected by the engine; ignore it.
		_ = t.world.Resize(edge, count)
		t.mu.Unlock()
		t.Refresh()
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.mu.Lock()
	vp := t.world.Viewport()
	_, err := t.world.CycleCell(vp.Top+cy, vp.Left+cx)
	t.mu.Unlock()
	if err != nil {
		return nil
	}
	t.Refresh()
	return nil
}
