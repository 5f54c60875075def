// Package term runs a simulation inside a tcell terminal screen.
package term

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"edge-life/internal/render"
	"edge-life/pkg/core"
)

// Runner drives a simulation at a fixed tick rate and paints it into a tcell
// screen. Keys: q/Esc quit, Space pause, Enter resume, n single step, r reset,
// s reseed from the clock.
type Runner struct {
	sim     core.Sim
	screen  tcell.Screen
	painter *render.TerminalPainter
	step    *core.FixedStep
	seed    int64

	paused   bool
	tickOnce bool
}

// NewRunner wires a simulation to an initialized screen.
func NewRunner(sim core.Sim, screen tcell.Screen, tps int, seed int64, invert bool) *Runner {
	return &Runner{
		sim:     sim,
		screen:  screen,
		painter: render.NewTerminalPainter(invert),
		step:    core.NewFixedStep(tps),
		seed:    seed,
	}
}

// Run loops until a quit key is pressed or the screen is finalized. Each
// frame paints the current generation before the sim steps, so the previous
// buffer always holds what was last on screen.
func (r *Runner) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(max(r.step.Interval()/2, time.Millisecond))
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.handle(ev) {
				return nil
			}
		case <-ticker.C:
		}

		if (!r.paused && r.step.ShouldStep()) || r.tickOnce {
			r.sim.Step()
			r.tickOnce = false
		}
		r.draw()
	}
}

// handle applies a single event and reports whether the loop should exit.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			r.paused = false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.paused = !r.paused
			case 'n':
				r.tickOnce = true
			case 'r':
				r.reset(r.seed)
			case 's':
				r.reset(time.Now().UnixNano())
			}
		}
	}
	return false
}

func (r *Runner) reset(seed int64) {
	r.seed = seed
	r.sim.Reset(seed)
	r.tickOnce = false
}

func (r *Runner) draw() {
	r.screen.Clear()
	render.DrawText(r.screen, 0, 0, r.status())
	r.painter.Draw(r.screen, r.sim.Cells(), r.sim.Size().W, 1)
	r.screen.Show()
}

func (r *Runner) status() string {
	parts := []string{r.sim.Name()}
	if p, ok := r.sim.(core.StatsProvider); ok {
		for _, s := range p.Stats() {
			parts = append(parts, strings.ToLower(s.Label)+"="+s.Value)
		}
	}
	if r.paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, " ")
}
