package life

import (
	"crypto/md5"
	"fmt"
)

// stagnationWindow is how many recent generation hashes are kept for cycle
// detection; it catches still lifes and oscillators of period up to 3.
const stagnationWindow = 3

// SurveyResult summarises a headless run.
type SurveyResult struct {
	Seed         int64
	Steps        int
	InitialPop   int
	FinalPop     int
	PeakPop      int
	StagnantAt   int
	DiedOut      bool
	StoppedEarly bool
}

// Survey runs cfg for up to steps generations and records population
// statistics. The run stops at the first generation whose state repeats one of
// the previous stagnationWindow states; StagnantAt is -1 when that never
// happens.
func Survey(cfg Config, steps int) (SurveyResult, error) {
	sim, err := New(cfg)
	if err != nil {
		return SurveyResult{}, err
	}
	res := SurveyResult{Seed: sim.Seed(), StagnantAt: -1}
	res.InitialPop = sim.grid.Population()
	res.PeakPop = res.InitialPop

	history := []string{gridHash(sim.grid)}
	for sim.Generation() < steps {
		sim.Step()
		pop := sim.grid.Population()
		if pop > res.PeakPop {
			res.PeakPop = pop
		}

		h := gridHash(sim.grid)
		if containsHash(history, h) {
			res.StagnantAt = sim.Generation()
			res.StoppedEarly = sim.Generation() < steps
			break
		}
		history = append(history, h)
		if len(history) > stagnationWindow {
			history = history[1:]
		}
	}
	res.Steps = sim.Generation()
	res.FinalPop = sim.grid.Population()
	res.DiedOut = res.FinalPop == 0
	return res, nil
}

func containsHash(history []string, h string) bool {
	for _, prev := range history {
		if prev == h {
			return true
		}
	}
	return false
}

func gridHash(g *Grid) string {
	h := md5.New()
	buf := make([]byte, 0, g.Width())
	for row := 0; row < g.Height(); row++ {
		buf = buf[:0]
		for _, alive := range g.cur[row*g.w : (row+1)*g.w] {
			if alive {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
