package life

import (
	"fmt"

	"github.com/pkg/errors"

	"edge-life/pkg/core"
)

// ErrInvalidDimensions is returned when a grid would have no cells or a
// ragged last row.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// IndexError is the panic value raised when a flat index falls outside the
// grid.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("life: index %d out of range [0,%d)", e.Index, e.Len)
}

// Grid holds the current and previous generations of a bounded Life board.
// Both buffers are row-major with stride w and are reused in place for the
// lifetime of the grid.
type Grid struct {
	w, h int
	cur  []bool
	prev []bool
}

// NewGrid allocates a w*h grid, seeding the current generation with one coin
// flip per cell from src. The previous generation starts all dead.
func NewGrid(w, h int, src core.RandomSource) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", w, h)
	}
	g := &Grid{w: w, h: h, cur: make([]bool, w*h), prev: make([]bool, w*h)}
	if src != nil {
		core.FillBool(src, g.cur)
	}
	return g, nil
}

// FromCells builds a grid whose current generation is a copy of cells.
func FromCells(w int, cells []bool) (*Grid, error) {
	if w <= 0 || len(cells) == 0 || len(cells)%w != 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "width=%d cells=%d", w, len(cells))
	}
	g := &Grid{w: w, h: len(cells) / w, cur: make([]bool, len(cells)), prev: make([]bool, len(cells))}
	copy(g.cur, cells)
	return g, nil
}

// Width returns the row stride.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cur) }

// Current exposes the current generation. The slice is owned by the grid.
func (g *Grid) Current() []bool { return g.cur }

// Previous exposes the generation the current one was computed from.
func (g *Grid) Previous() []bool { return g.prev }

// SnapshotPrevious copies the current generation into the previous buffer.
func (g *Grid) SnapshotPrevious() {
	copy(g.prev, g.cur)
}

// Read returns the current state of cell i. It panics with *IndexError when i
// is out of range.
func (g *Grid) Read(i int) bool {
	g.check(i)
	return g.cur[i]
}

// Set overwrites cell i of the current generation.
func (g *Grid) Set(i int, alive bool) {
	g.check(i)
	g.cur[i] = alive
}

// Index returns the flat index for column x of row y.
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Contains reports whether (x, y) lies on the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Population counts live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Fill reseeds the current generation from src and clears the previous one.
func (g *Grid) Fill(src core.RandomSource) {
	core.FillBool(src, g.cur)
	clear(g.prev)
}

// Clear kills every cell in both generations.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.prev)
}

func (g *Grid) check(i int) {
	if i < 0 || i >= len(g.cur) {
		panic(&IndexError{Index: i, Len: len(g.cur)})
	}
}
