package dataset

import (
	"golang.org/x/exp/rand"
)

const (
	// Universe is the exclusive upper bound of generated values.
	Universe = 1_000_000

	// DefaultSeed seeds generators when the caller does not pick one.
	DefaultSeed uint64 = 2021

	// sparseRatio selects rejection sampling while n <= universe/sparseRatio.
	sparseRatio = 4
)

// Generator produces synthetic datasets from an explicit seeded source.
//
// Thread-safety: Generator is NOT safe for concurrent use. The harness drives
// it from a single goroutine.
type Generator struct {
	rng      *rand.Rand
	seed     uint64
	universe int
}

// New creates a generator over [0, Universe) seeded with seed.
func New(seed uint64) *Generator {
	return NewWithUniverse(seed, Universe)
}

// NewWithUniverse creates a generator over [0, universe).
// Panics if universe is not positive.
func NewWithUniverse(seed uint64, universe int) *Generator {
	if universe <= 0 {
		panic("dataset: universe must be positive")
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		universe: universe,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Universe returns the exclusive upper bound of generated values.
func (g *Generator) Universe() int {
	return g.universe
}

// Generate returns n distinct values from [0, universe) in random order.
//
// Returns a *SizeError if n is negative or larger than the universe.
func (g *Generator) Generate(n int) ([]int, error) {
	if n < 0 {
		return nil, newSizeError(ErrCodeNegativeSize, n, g.universe)
	}
	if n > g.universe {
		return nil, newSizeError(ErrCodeSizeExceedsUniverse, n, g.universe)
	}
	if n == 0 {
		return []int{}, nil
	}
	if n <= g.universe/sparseRatio {
		return g.sampleSparse(n), nil
	}
	return g.sampleDense(n), nil
}

// sampleSparse draws with rejection, tracking picks in a set.
func (g *Generator) sampleSparse(n int) []int {
	out := make([]int, 0, n)
	seen := make(map[int]struct{}, n)
	for len(out) < n {
		v := g.rng.Intn(g.universe)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// sampleDense runs a partial Fisher-Yates shuffle over the whole pool.
func (g *Generator) sampleDense(n int) []int {
	pool := make([]int, g.universe)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + g.rng.Intn(g.universe-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
