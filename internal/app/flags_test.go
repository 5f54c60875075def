package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edge-life/pkg/core"
	"edge-life/pkg/sims/life"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg, fs
}

func TestSimParamsFromFlags(t *testing.T) {
	cfg, fs := parse(t, "-w", "64", "-seed", "7", "-pattern", "glider")
	params, err := cfg.SimParams(fs)
	if err != nil {
		t.Fatalf("SimParams: %v", err)
	}
	want := map[string]string{"w": "64", "h": "480", "seed": "7", "pattern": "glider"}
	for k, v := range want {
		if params[k] != v {
			t.Fatalf("param %s=%q, expected %q", k, params[k], v)
		}
	}
}

func TestSimParamsFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 100, "height": 50, "seed": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, fs := parse(t, "-config", path, "-h", "20")
	params, err := cfg.SimParams(fs)
	if err != nil {
		t.Fatalf("SimParams: %v", err)
	}
	want := map[string]string{"w": "100", "h": "20", "seed": "3", "pattern": "random"}
	for k, v := range want {
		if params[k] != v {
			t.Fatalf("param %s=%q, expected %q", k, params[k], v)
		}
	}
}

func TestSimParamsMissingConfigFile(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "absent.json"))
	if _, err := cfg.SimParams(fs); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestZeroWidthFlagFailsConstruction(t *testing.T) {
	cfg, fs := parse(t, "-w", "0")
	params, err := cfg.SimParams(fs)
	if err != nil {
		t.Fatalf("SimParams: %v", err)
	}
	sim, err := core.Sims()[cfg.Sim](params)
	if !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("-w 0 err=%v, expected ErrInvalidDimensions", err)
	}
	if sim != nil {
		t.Fatalf("-w 0 built a %+v grid", sim.Size())
	}
}

func TestPatternUsageListsPatterns(t *testing.T) {
	_, fs := parse(t)
	usage := fs.Lookup("pattern").Usage
	for _, name := range append([]string{life.PatternRandom}, life.PatternNames()...) {
		if !strings.Contains(usage, name) {
			t.Fatalf("usage %q missing pattern %q", usage, name)
		}
	}
}
