//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"edge-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 18
)

// HUD renders the statistics panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	stats      []core.Stat
	title      string
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached statistics from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.StatsProvider)
	if !ok {
		h.stats = nil
		return
	}
	h.stats = provider.Stats()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := panelPadding + 12
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.paused {
		text.Draw(h.panel, "PAUSED", face, h.width-panelPadding-6*7, y, color.RGBA{R: 230, G: 180, B: 60, A: 255})
	}
	y += lineHeight
	for _, s := range h.stats {
		y += lineHeight
		text.Draw(h.panel, fmt.Sprintf("%-11s %s", s.Label, s.Value), face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Stats"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
