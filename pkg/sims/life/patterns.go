package life

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for pattern names with no registered shape.
var ErrUnknownPattern = errors.New("unknown pattern")

// PatternRandom keeps the coin-flip seeding instead of stamping a shape.
const PatternRandom = "random"

// Offsets are listed as {x, y} relative to the stamp origin.
var patterns = map[string][][2]int{
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"plus":    {{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
}

// PatternNames lists the stampable patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidPattern reports whether name can be passed to Stamp.
func ValidPattern(name string) bool {
	if name == "" || name == PatternRandom {
		return true
	}
	_, ok := patterns[name]
	return ok
}

// Stamp sets the cells of the named pattern alive with its origin at (x, y).
// Cells that fall outside the grid are dropped.
func Stamp(g *Grid, name string, x, y int) error {
	cells, ok := patterns[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	for _, c := range cells {
		px, py := x+c[0], y+c[1]
		if !g.Contains(px, py) {
			continue
		}
		g.Set(g.Index(px, py), true)
	}
	return nil
}
