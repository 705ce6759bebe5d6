// Package rngutil centralizes deterministic random generation for every
// heuristic in this module (construct's tie-breaks need none, but shake and
// gvns do). Adapted from the teacher corpus's tsp/rng.go: a single seeded
// *rand.Rand is threaded in from the caller (spec.md §9's "Randomness
// discipline" — one PRNG instance, no hidden unseeded sources), with a
// Fisher-Yates shuffle and a permutation helper for shake's recreate-order
// shuffle.
package rngutil

import "math/rand"

// defaultSeed is used whenever a caller passes seed == 0, matching the
// teacher's "seed==0 -> deterministic default stream" convention rather than
// seeding from wall-clock time.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand for the given seed. seed == 0 maps
// to defaultSeed so a zero-value Options never silently becomes
// non-deterministic.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// SampleWithoutReplacement draws k distinct indices from [0, n) uniformly at
// random, using a partial Fisher-Yates shuffle (O(n) time regardless of k,
// O(n) space). It is used by shake.Ruin to pick the removal set: every
// customer is equally likely, matching spec.md §4.5.
func SampleWithoutReplacement(n, k int, rng *rand.Rand) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
