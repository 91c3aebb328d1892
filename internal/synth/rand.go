package synth

import (
	"math/rand"
	"sync"
)

// lockedSource serializes access to an underlying random source so one
// *rand.Rand can feed generators that run on concurrent requests.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand returns a seeded *rand.Rand that is safe to share between
// generators serving concurrent requests. With the same seed it yields
// the same sequence as rand.New(rand.NewSource(seed)).
func NewRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}
