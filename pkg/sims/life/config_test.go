package life

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"edge-life/pkg/core"
)

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w":       "64",
		"seed":    "12",
		"pattern": "glider",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Width != 64 {
		t.Fatalf("width=%d", cfg.Width)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("absent height should keep default, got %d", cfg.Height)
	}
	if cfg.Seed != 12 || cfg.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if got, err := FromMap(nil); err != nil || got != DefaultConfig() {
		t.Fatalf("nil map should yield defaults, got %+v, %v", got, err)
	}
	if got, err := FromMap(cfg.ToMap()); err != nil || got != cfg {
		t.Fatalf("ToMap/FromMap mismatch: %+v != %+v (%v)", got, cfg, err)
	}
	if _, err := FromMap(map[string]string{"seed": "x"}); err == nil {
		t.Fatal("unparseable seed accepted")
	}
}

func TestFactoryRejectsInvalidDimensions(t *testing.T) {
	factory := core.Sims()["life"]
	tests := []map[string]string{
		{"w": "0"},
		{"h": "-3"},
		{"w": "abc"},
		{"w": "0", "h": "0"},
	}
	for _, params := range tests {
		sim, err := factory(params)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("factory(%v) err=%v, expected ErrInvalidDimensions", params, err)
		}
		if sim != nil {
			t.Fatalf("factory(%v) built a %+v grid", params, sim.Size())
		}
	}
}

func TestLoadConfigZeroWidthFailsConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	params, err := FromMap(cfg.ToMap())
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if _, err := New(params); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero width from file err=%v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{name: "default", cfg: DefaultConfig()},
		{name: "empty pattern", cfg: Config{Width: 1, Height: 1}},
		{name: "zero height", cfg: Config{Width: 4}, want: ErrInvalidDimensions},
		{name: "bad pattern", cfg: Config{Width: 4, Height: 4, Pattern: "x"}, want: ErrUnknownPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, expected %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 120, "pattern": "blinker"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 120 || cfg.Pattern != "blinker" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height || cfg.Seed != DefaultConfig().Seed {
		t.Fatalf("absent fields should keep defaults, got %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width": "wide"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
