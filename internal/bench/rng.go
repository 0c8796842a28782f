package bench

import (
	"math/rand"
	"sync"
)

// Source supplies every random draw used by initialization and ticks.
// Injecting it keeps the engine deterministic: the same seed and the same
// sequence of operations reproduce a byte-identical state table and
// history log.
//
// Implementations must be safe for concurrent use; the HTTP host can
// trigger initialize and tick from different connections.
type Source interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + (hi-lo)*s.r.Float64()
}

func (s *randSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
