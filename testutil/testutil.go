package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// DupUint64s returns n draws from a key space of the given size, so the
// result is unsorted and, for space < n, guaranteed to contain duplicates.
// Locks only once per call.
func (r *RNG) DupUint64s(n int, space uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = r.rand.Uint64() % space
	}
	return keys
}

// DupInts is DupUint64s for int keys.
func (r *RNG) DupInts(n, space int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.rand.Intn(space)
	}
	return keys
}
