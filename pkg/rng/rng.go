// Package rng provides the seeded pseudo-random stream shared by graph generation
// and weight synthesis. Fixing the seed fixes every random choice of a run.
package rng

import (
	"math"
	"math/rand"
	"sync"
)

// Source is a seeded pseudo-random stream. It is not safe for concurrent use.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the value the stream was seeded with.
func (s *Source) Seed() int64 { return s.seed }

// Derive returns an independent stream seeded from this stream's seed and offset.
// Draws from the derived stream never advance s.
func (s *Source) Derive(offset int64) *Source {
	return New(s.seed ^ (offset * 0x5851f42d4c957f2d))
}

// Float64 returns a uniform draw from [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Intn returns a uniform draw from [0,n). It panics if n <= 0.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Int63n returns a uniform draw from [0,n). It panics if n <= 0.
func (s *Source) Int63n(n int64) int64 { return s.r.Int63n(n) }

// Geometric returns the number of failures before the first success in Bernoulli
// trials that fail with probability p. p must lie in [0,1).
func (s *Source) Geometric(p float64) int {
	if p <= 0 {
		return 0
	}
	u := 1 - s.r.Float64() // (0,1]
	return int(math.Floor(math.Log(u) / math.Log(p)))
}

// Shuffle pseudo-randomizes the order of the first k elements of a by partial
// Fisher-Yates, so that a[:k] is a uniform k-sample of a.
func (s *Source) Shuffle(a []int, k int) {
	if k > len(a) {
		k = len(a)
	}
	for i := 0; i < k; i++ {
		j := i + s.r.Intn(len(a)-i)
		a[i], a[j] = a[j], a[i]
	}
}

// Process-wide stream
var (
	defaultSource *Source
	mu            sync.Mutex
	onReseed      func(old, seed int64)
)

// Seed configures the process-wide stream. It is meant to be called once per run,
// before any generation; reseeding is allowed but reported through OnReseed.
func Seed(seed int64) *Source {
	mu.Lock()
	defer mu.Unlock()

	if defaultSource != nil && onReseed != nil {
		onReseed(defaultSource.seed, seed)
	}
	defaultSource = New(seed)
	return defaultSource
}

// Default returns the process-wide stream, seeding it with 0 if Seed was never called.
func Default() *Source {
	mu.Lock()
	defer mu.Unlock()

	if defaultSource == nil {
		defaultSource = New(0)
	}
	return defaultSource
}

// OnReseed installs a hook invoked when Seed replaces an existing process-wide stream.
func OnReseed(fn func(old, seed int64)) {
	mu.Lock()
	defer mu.Unlock()
	onReseed = fn
}
