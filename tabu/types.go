// Package tabu - options, generators and sentinel errors.
package tabu

import (
	"errors"
	"time"
)

// Sentinel errors; every precondition is rejected before any search work.
var (
	// ErrTenureRange indicates tenure outside [0, n).
	ErrTenureRange = errors.New("tabu: tenure must be an integer in range [0, num vars - 1]")
	// ErrBadTimeout indicates a non-positive timeout.
	ErrBadTimeout = errors.New("tabu: timeout must be positive")
	// ErrBadNumReads indicates a non-positive read count.
	ErrBadNumReads = errors.New("tabu: num reads must be a positive integer")
	// ErrStateLength indicates an initial state whose length differs from n.
	ErrStateLength = errors.New("tabu: initial state length mismatch")
	// ErrStateValue indicates an initial state value outside {0, 1}.
	ErrStateValue = errors.New("tabu: initial state values must be 0 or 1")
	// ErrInsufficientStates indicates GenerateNone with fewer initial
	// states than reads.
	ErrInsufficientStates = errors.New("tabu: insufficient initial states given")
	// ErrEmptyStates indicates GenerateTile over an empty state list.
	ErrEmptyStates = errors.New("tabu: cannot tile an empty initial state list")
	// ErrUnknownGenerator indicates an unrecognized Generator value.
	ErrUnknownGenerator = errors.New("tabu: unknown initial states generator")
)

// Generator selects how InitialStates are expanded when fewer than
// NumReads are supplied (extra states are always truncated).
type Generator int

const (
	// GenerateRandom pads missing initial states with seeded random ones.
	GenerateRandom Generator = iota
	// GenerateTile cycles the supplied initial states.
	GenerateTile
	// GenerateNone rejects the call when states are missing.
	GenerateNone
)

// defaultTenureCap bounds the derived default tenure (quarter of n, capped).
const defaultTenureCap = 20

// Options configures a multistart Sample call. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Tenure is the number of iterations a just-flipped variable stays
	// forbidden. Negative means "derive the default": max(min(20, n/4), 0).
	Tenure int

	// Timeout is the wall-clock budget of every individual run.
	Timeout time.Duration

	// NumReads is the number of independent runs; one record per read.
	NumReads int

	// InitialStates supplies per-read starting assignments, expanded or
	// truncated to NumReads according to Generator.
	InitialStates [][]int8

	// Generator is the expansion policy for missing initial states.
	Generator Generator

	// Seed drives random state generation. Negative requests a time-based
	// seed (non-reproducible); any other value is reproducible.
	Seed int64
}

// DefaultOptions mirrors the classic sampler defaults for an n-variable
// model: derived tenure, 20ms per read, a single read, random expansion,
// deterministic seed.
func DefaultOptions(n int) Options {
	return Options{
		Tenure:    DefaultTenure(n),
		Timeout:   20 * time.Millisecond,
		NumReads:  1,
		Generator: GenerateRandom,
		Seed:      0,
	}
}

// DefaultTenure derives the default tabu tenure for n variables:
// a quarter of n capped at 20, never negative.
func DefaultTenure(n int) int {
	t := n / 4
	if t > defaultTenureCap {
		t = defaultTenureCap
	}
	if t < 0 {
		t = 0
	}

	return t
}
