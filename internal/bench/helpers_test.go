package bench

import (
	"time"

	"cellbench/internal/model"
)

// midpointSource always returns the middle of the requested range, which
// makes every "nominal ± jitter" draw come out to exactly the nominal.
type midpointSource struct{}

func (midpointSource) Uniform(lo, hi float64) float64 { return (lo + hi) / 2 }
func (midpointSource) Intn(int) int                   { return 0 }

// scriptSource replays a fixed sequence of Uniform draws, cycling when
// exhausted. Intn always returns zero.
type scriptSource struct {
	vals []float64
	i    int
}

func (s *scriptSource) Uniform(lo, hi float64) float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *scriptSource) Intn(int) int { return 0 }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestEngine(src Source) *Engine {
	store := NewStore(model.DefaultRegistry())
	return NewEngine(store, NewLog(), src)
}
