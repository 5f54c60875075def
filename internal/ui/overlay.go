//go:build ebiten

package ui

import (
	"image/color"

	"edge-life/internal/render"
	"edge-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	bornColor = color.RGBA{R: 40, G: 200, B: 90, A: 160}
	diedColor = color.RGBA{R: 220, G: 60, B: 50, A: 160}
)

// Overlay tints cells that were born or died in the last generation.
type Overlay struct {
	sim     core.Sim
	prev    core.PreviousProvider
	scale   int
	show    bool
	painter *render.GridPainter
}

// NewOverlay constructs an overlay; it stays inert for sims that do not
// expose their previous generation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	if p, ok := sim.(core.PreviousProvider); ok {
		o.prev = p
		size := sim.Size()
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	return o
}

// Update toggles the overlay on the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the transition tint on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.prev == nil {
		return
	}
	o.painter.BlitTransitions(screen, o.prev.Previous(), o.sim.Cells(), bornColor, diedColor, o.scale)
}
