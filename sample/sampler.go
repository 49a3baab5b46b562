package sample

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Sampler draws k elements from values, uniformly and with replacement.
type Sampler interface {
	Sample(values []float64, k int) []float64
}

// RandomSampler is safe for concurrent use. Draws are serialized so a
// seeded sampler stays reproducible for a given call order.
type RandomSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomSampler(seed uint64) *RandomSampler {
	return &RandomSampler{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func NewRandomSamplerFromSource(src rand.Source) *RandomSampler {
	return &RandomSampler{
		rnd: rand.New(src),
	}
}

func (s *RandomSampler) Sample(values []float64, k int) []float64 {
	if len(values) == 0 || k <= 0 {
		return []float64{}
	}
	res := make([]float64, k)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range res {
		res[i] = values[s.rnd.Intn(len(values))]
	}
	return res
}

var (
	defaultOnce    sync.Once
	defaultSampler *RandomSampler
)

// Default returns a process wide sampler seeded from the clock.
func Default() Sampler {
	defaultOnce.Do(func() {
		defaultSampler = NewRandomSampler(uint64(time.Now().UnixNano()))
	})
	return defaultSampler
}

// Subsample returns values unchanged when len(values) <= n, otherwise n
// draws from s. A nil s uses Default().
func Subsample(s Sampler, values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	if s == nil {
		s = Default()
	}
	return s.Sample(values, n)
}
