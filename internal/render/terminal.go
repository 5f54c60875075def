package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalPainter draws boolean cells into a tcell screen, two columns per
// cell so the grid keeps a roughly square aspect.
type TerminalPainter struct {
	Alive tcell.Style
	Dead  tcell.Style
}

// NewTerminalPainter returns a painter using white-on-black cells.
func NewTerminalPainter(invert bool) *TerminalPainter {
	alive := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	dead := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if invert {
		alive, dead = dead, alive
	}
	return &TerminalPainter{Alive: alive, Dead: dead}
}

// Draw paints the cells starting at row top. Rows and columns beyond the
// screen are skipped. It does not call Show.
func (p *TerminalPainter) Draw(screen tcell.Screen, cells []bool, w, top int) {
	if w <= 0 {
		return
	}
	sw, sh := screen.Size()
	for i, alive := range cells {
		x, y := (i%w)*2, top+i/w
		if y >= sh {
			return
		}
		if x+1 >= sw {
			continue
		}
		style := p.Dead
		if alive {
			style = p.Alive
		}
		screen.SetContent(x, y, ' ', nil, style)
		screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// DrawText writes s at (x, y) in the default style, clipped to the screen width.
func DrawText(screen tcell.Screen, x, y int, s string) {
	sw, _ := screen.Size()
	for _, r := range s {
		if x >= sw {
			return
		}
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
