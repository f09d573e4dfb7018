package character

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sequence is a resumable timed task polled once per tick. When its duration
// has elapsed it runs its continuation synchronously inside that tick.
type Sequence struct {
	tween    *gween.Tween
	elapsed  float64
	progress float64
	done     func()
	running  bool
}

// Start begins the sequence. Starting a running sequence restarts it.
func (s *Sequence) Start(duration float64, done func()) {
	s.tween = gween.New(0, 1, float32(duration), ease.InOutQuad)
	s.elapsed = 0
	s.progress = 0
	s.done = done
	s.running = true
}

// Update advances the sequence by dt seconds.
func (s *Sequence) Update(dt float64) {
	if !s.running {
		return
	}
	s.elapsed += dt
	current, finished := s.tween.Set(float32(s.elapsed))
	s.progress = float64(current)
	if !finished {
		return
	}
	s.progress = 1
	s.running = false
	done := s.done
	s.done = nil
	if done != nil {
		done()
	}
}

func (s *Sequence) Running() bool {
	return s.running
}

// Progress returns the eased completion in [0, 1].
func (s *Sequence) Progress() float64 {
	return s.progress
}
