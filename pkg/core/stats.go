package core

// Stat is a single labelled value shown on status panels.
type Stat struct {
	Label string
	Value string
}

// StatsProvider exposes display statistics for the HUD and terminal status line.
type StatsProvider interface {
	Stats() []Stat
}

// PreviousProvider exposes the generation a sim stepped from, for overlays
// that highlight births and deaths.
type PreviousProvider interface {
	Previous() []bool
}
