package life

import (
	"fmt"
	"unsafe"
)

// Neighbors counts the live cells around flat index i of prev. Cells on the
// border have fewer neighbors; nothing wraps to the opposite edge.
func Neighbors(prev []bool, w, i int) int {
	above := i >= w
	below := i < len(prev)-w
	left := i%w != 0
	right := (i+1)%w != 0

	n := 0
	count := func(j int) {
		if prev[j] {
			n++
		}
	}
	if above {
		if left {
			count(i - w - 1)
		}
		count(i - w)
		if right {
			count(i - w + 1)
		}
	}
	if left {
		count(i - 1)
	}
	if right {
		count(i + 1)
	}
	if below {
		if left {
			count(i + w - 1)
		}
		count(i + w)
		if right {
			count(i + w + 1)
		}
	}
	return n
}

// Next applies the life rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Evaluate writes the generation following prev into next. Every cell of next
// is overwritten, so its prior contents never leak into the result. prev and
// next must be distinct buffers of equal length with stride w.
func Evaluate(prev, next []bool, w int) {
	if w <= 0 || len(prev)%w != 0 {
		panic(fmt.Sprintf("life: buffer of %d cells does not tile width %d", len(prev), w))
	}
	if len(prev) != len(next) {
		panic(fmt.Sprintf("life: generation buffers differ in length: %d != %d", len(prev), len(next)))
	}
	if overlaps(prev, next) {
		panic("life: generation buffers overlap")
	}
	for i, alive := range prev {
		next[i] = Next(alive, Neighbors(prev, w, i))
	}
}

// overlaps reports whether a and b share any backing memory.
func overlaps(a, b []bool) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// Advance promotes the current generation to previous and computes a new
// current generation from it.
func Advance(g *Grid) {
	g.SnapshotPrevious()
	Evaluate(g.prev, g.cur, g.w)
}
