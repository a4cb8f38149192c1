// Package tabu - RNG utilities for the multistart driver.
//
// Goals:
//   - Determinism: a non-negative seed ⇒ identical read results across runs.
//   - Explicit escape hatch: a negative seed requests a time-derived base
//     seed, preserving the "caller may ask for non-determinism" convention.
//   - Independence: every read owns its own substream; math/rand.Rand is
//     not goroutine-safe and is never shared across reads.
package tabu

import (
	"math/rand"
	"time"
)

// baseSeed resolves the Options.Seed policy: negative ⇒ time-derived,
// anything else is used verbatim.
//
// Complexity: O(1).
func baseSeed(seed int64) int64 {
	if seed < 0 {
		return time.Now().UnixNano()
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so per-read substreams stay
// decorrelated even for adjacent stream ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// readRNG returns the independent deterministic RNG for one read.
//
// Complexity: O(1).
func readRNG(parent int64, read int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(read))))
}

// randomState draws a uniform binary assignment of length n from rng.
//
// Complexity: O(n) time, O(n) space.
func randomState(n int, rng *rand.Rand) []int8 {
	out := make([]int8, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = int8(rng.Intn(2))
	}

	return out
}
