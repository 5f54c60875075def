package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"edge-life/pkg/sims/life"
)

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 64, "number of seeds to survey")
	first := flag.Int64("first-seed", 1, "first seed; seeds are consecutive")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	top := flag.Int("top", 10, "number of longest-lived seeds to print")
	flag.Parse()

	base := life.DefaultConfig()
	base.Width = *width
	base.Height = *height
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	fmt.Printf("Surveying %d seeds (%d workers, %d steps, %dx%d)\n", *seeds, *workers, *steps, *width, *height)

	results := make([]life.SurveyResult, *seeds)
	var eg errgroup.Group
	eg.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := range results {
		cfg := base
		cfg.Seed = *first + int64(i)
		eg.Go(func() error {
			res, err := life.Survey(cfg, *steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("survey failed: %+v", err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool { return lifespan(results[i]) > lifespan(results[j]) })

	stagnant, extinct := 0, 0
	for _, res := range results {
		if res.StagnantAt >= 0 {
			stagnant++
		}
		if res.DiedOut {
			extinct++
		}
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d steps=%d stagnantAt=%d pop=%d->%d peak=%d\n",
			i+1, res.Seed, res.Steps, res.StagnantAt, res.InitialPop, res.FinalPop, res.PeakPop)
	}
	fmt.Printf("\nSettled: %d/%d  extinct: %d/%d\n", stagnant, len(results), extinct, len(results))
}

// lifespan ranks runs that never settled above all settled ones.
func lifespan(res life.SurveyResult) int {
	if res.StagnantAt < 0 {
		return res.Steps + 1
	}
	return res.StagnantAt
}
