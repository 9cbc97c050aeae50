// Package term draws a simulation into a terminal with tcell.
package term

import (
	"context"
	"time"

	"cellauto/internal/core"
	"cellauto/internal/render"

	"github.com/gdamore/tcell/v2"
)

const maxFrameInterval = time.Second / 30

// Viewer renders one cell as two terminal columns and maps keys to sim
// controls: q or esc quits, space pauses, n steps, r resets, s reseeds from
// the clock and l toggles component colours.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	seed   int64
	paused bool

	on, off tcell.Style
}

// NewViewer binds a sim to an initialised screen.
func NewViewer(screen tcell.Screen, sim core.Sim, seed int64) *Viewer {
	return &Viewer{
		screen: screen,
		sim:    sim,
		seed:   seed,
		on:     tcell.StyleDefault.Background(tcell.ColorWhite),
		off:    tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Paused reports whether ticks are suspended.
func (v *Viewer) Paused() bool { return v.paused }

// HandleEvent applies a terminal event and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.sim.Step()
		case 'r':
			v.sim.Reset(v.seed)
		case 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
		case 'l':
			if l, ok := v.sim.(core.Labeller); ok {
				l.SetLabel(!l.Labelling())
			}
		}
	}
	return false
}

// Draw paints the current cells and the sim title below them.
func (v *Viewer) Draw() {
	size := v.sim.Size()
	cells := v.sim.Cells()
	if len(cells) != size.W*size.H {
		return
	}
	labelled := false
	if l, ok := v.sim.(core.Labeller); ok {
		labelled = l.Labelling()
	}
	v.screen.Clear()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			style := v.cellStyle(cells[row*size.W+col], labelled)
			v.screen.SetContent(col*2, row, ' ', nil, style)
			v.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}
	if t, ok := v.sim.(core.Titler); ok {
		for i, r := range t.Title() {
			v.screen.SetContent(i, size.H, r, nil, tcell.StyleDefault)
		}
	}
	v.screen.Show()
}

func (v *Viewer) cellStyle(value uint, labelled bool) tcell.Style {
	if labelled {
		if value == 0 {
			return v.off
		}
		c := render.LabelColor(value)
		return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	if value != 0 {
		return v.on
	}
	return v.off
}

// Run steps the sim tps times per second until the user quits or ctx ends.
// The caller owns the screen and finalises it afterwards.
func (v *Viewer) Run(ctx context.Context, tps int) error {
	clock := core.NewFixedStep(tps)
	frame := time.NewTicker(min(maxFrameInterval, clock.Interval()))
	defer frame.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-frame.C:
			if v.paused || !clock.ShouldStep() {
				continue
			}
			v.sim.Step()
			v.Draw()
		}
	}
}
