package life

import (
	"strconv"

	"edge-life/pkg/core"
)

// Life implements Conway's Game of Life on a bounded grid; cells past the
// border are permanently dead.
type Life struct {
	cfg  Config
	grid *Grid
	seed int64
	gen  int
}

// New returns a Life simulation for cfg, seeded with cfg.Seed.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height, nil)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, grid: grid}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.Width(), H: l.grid.Height()} }

// Cells exposes the current generation.
func (l *Life) Cells() []bool { return l.grid.Current() }

// Previous exposes the generation the current one was computed from.
func (l *Life) Previous() []bool { return l.grid.Previous() }

// Grid exposes the underlying generation pair.
func (l *Life) Grid() *Grid { return l.grid }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// Seed returns the seed used by the last reset.
func (l *Life) Seed() int64 { return l.seed }

// Reset reseeds the board in place. A zero seed falls back to the configured
// one. When a pattern is configured the board is cleared and the pattern is
// stamped at the center instead of filling randomly.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.gen = 0

	if l.cfg.Pattern == "" || l.cfg.Pattern == PatternRandom {
		l.grid.Fill(core.NewRNG(seed))
		return
	}
	l.grid.Clear()
	if err := Stamp(l.grid, l.cfg.Pattern, l.grid.Width()/2-1, l.grid.Height()/2-1); err != nil {
		// New validates the pattern, so this only fires on a broken invariant.
		panic(err)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Advance(l.grid)
	l.gen++
}

// Stats reports values for status displays.
func (l *Life) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Generation", Value: strconv.Itoa(l.gen)},
		{Label: "Population", Value: strconv.Itoa(l.grid.Population())},
		{Label: "Seed", Value: strconv.FormatInt(l.seed, 10)},
		{Label: "Size", Value: strconv.Itoa(l.grid.Width()) + "x" + strconv.Itoa(l.grid.Height())},
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		sim, err := New(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
