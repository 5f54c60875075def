package life

import (
	"errors"
	"slices"
	"testing"

	"edge-life/pkg/core"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero width err=%v", err)
	}

	cfg = DefaultConfig()
	cfg.Pattern = "pentadecathlon"
	if _, err := New(cfg); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("unknown pattern err=%v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	cfg.Seed = 99

	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := slices.Clone(sim.Cells())
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	if sim.Generation() != 5 {
		t.Fatalf("expected generation 5, got %d", sim.Generation())
	}

	sim.Reset(0)
	if sim.Seed() != 99 {
		t.Fatalf("zero seed should fall back to config seed, got %d", sim.Seed())
	}
	if sim.Generation() != 0 {
		t.Fatal("reset should zero the generation counter")
	}
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("reset with config seed not deterministic")
	}
	if slices.Contains(sim.Previous(), true) {
		t.Fatal("reset should clear the previous generation")
	}

	sim.Reset(777)
	if slices.Equal(initial, sim.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestPatternStampedAtCenter(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Seed: 1, Pattern: "plus"}
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := parseCells(
		"010",
		"111",
		"010",
	)
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("unexpected seeded board %v", sim.Cells())
	}

	sim.Step()
	if !slices.Equal(sim.Previous(), want) {
		t.Fatal("previous should hold the seeded board after one step")
	}
	if sim.Grid().Read(4) || !sim.Grid().Read(0) {
		t.Fatal("plus should lose its center and gain its corners")
	}
}

func TestStats(t *testing.T) {
	sim, err := New(Config{Width: 4, Height: 4, Seed: 3, Pattern: "block"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.Step()

	got := map[string]string{}
	for _, s := range sim.Stats() {
		got[s.Label] = s.Value
	}
	want := map[string]string{"Generation": "1", "Population": "4", "Seed": "3", "Size": "4x4"}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("stat %s=%q, expected %q", k, got[k], v)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim, err := factory(map[string]string{"w": "10", "h": "6"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Size() != (core.Size{W: 10, H: 6}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
	if len(sim.Cells()) != 60 {
		t.Fatalf("unexpected cell count %d", len(sim.Cells()))
	}

	if _, err := factory(map[string]string{"pattern": "nope"}); err == nil {
		t.Fatal("factory accepted an unknown pattern")
	}
}

func TestResetPanicsOnUnvalidatedPattern(t *testing.T) {
	grid, err := NewGrid(4, 4, nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	sim := &Life{cfg: Config{Width: 4, Height: 4, Seed: 1, Pattern: "nope"}, grid: grid}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownPattern) {
			t.Fatalf("Reset panic=%v, expected ErrUnknownPattern", r)
		}
	}()
	sim.Reset(1)
}
