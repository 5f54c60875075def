package app

// stepGate decides whether a frame's Update may advance the sim. Ebiten runs
// Update before the first Draw, so stepping is held until the current
// generation has been painted at least once; a reset re-arms the hold so the
// fresh board is shown before it evolves.
type stepGate struct {
	paused   bool
	tickOnce bool
	drawn    bool
}

// ready reports whether the sim should step this frame and consumes a
// pending single-step request when it does.
func (s *stepGate) ready() bool {
	if !s.drawn {
		return false
	}
	if s.paused && !s.tickOnce {
		return false
	}
	s.tickOnce = false
	return true
}

func (s *stepGate) markDrawn() { s.drawn = true }

func (s *stepGate) reset() {
	s.tickOnce = false
	s.drawn = false
}
