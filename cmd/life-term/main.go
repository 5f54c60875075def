package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"edge-life/internal/app"
	"edge-life/internal/term"
	"edge-life/pkg/core"
	_ "edge-life/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	cfg.TPS = 10
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	params, err := cfg.SimParams(flag.CommandLine)
	if err != nil {
		log.Fatalf("load config: %+v", err)
	}
	sim, err := factory(params)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	runErr := term.NewRunner(sim, screen, cfg.TPS, cfg.Seed, cfg.Invert).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
