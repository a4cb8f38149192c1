// Package infer - options, results and sentinel errors.
package infer

import "errors"

// Sentinel errors; preconditions are rejected before any table is built.
var (
	// ErrBadMaxSolutions indicates a non-positive solution cap.
	ErrBadMaxSolutions = errors.New("infer: max solutions must be a positive integer")
	// ErrBadBeta indicates a non-positive or non-finite inverse temperature.
	ErrBadBeta = errors.New("infer: beta must be positive and finite")
	// ErrBadNumReads indicates a non-positive read count.
	ErrBadNumReads = errors.New("infer: num reads must be a positive integer")
	// ErrTreeMismatch indicates the tree was built for a different model size.
	ErrTreeMismatch = errors.New("infer: junction tree does not match the model")
)

// Solution is one full assignment with its energy (offset included).
type Solution struct {
	Assignment []int8
	Energy     float64
}

// SampleOptions configures the probabilistic mode.
type SampleOptions struct {
	// Beta is the Boltzmann inverse temperature: P(x) ∝ exp(−Beta·E(x)).
	Beta float64

	// NumReads is the number of independent draws.
	NumReads int

	// Marginals requests exact variable and interaction marginals.
	Marginals bool

	// Seed drives the draws. Negative requests a time-based seed
	// (non-reproducible); any other value is reproducible.
	Seed int64
}

// DefaultSampleOptions mirrors the classic sampler defaults: beta 3, one
// read, marginals on, deterministic seed.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Beta:      3.0,
		NumReads:  1,
		Marginals: true,
		Seed:      0,
	}
}

// PairProbs holds the four joint configuration probabilities of one
// interaction: PairProbs[a][b] = P(x_i == a ∧ x_j == b) for the pair {i, j}
// with i < j. The four entries sum to 1.
type PairProbs [2][2]float64

// SampleResult is the probabilistic-mode output.
type SampleResult struct {
	// Assignments holds NumReads independent Boltzmann draws, read order.
	Assignments [][]int8

	// Energies[i] is the model energy of Assignments[i].
	Energies []float64

	// LogPartitionFunction is log Σ_x exp(−Beta·E(x)).
	LogPartitionFunction float64

	// VariableMarginals[i] = P(x_i == 1); nil unless Marginals was set.
	VariableMarginals []float64

	// InteractionMarginals maps every nonzero interaction {i, j} (i < j)
	// to its exact four-configuration probabilities; nil unless Marginals.
	InteractionMarginals map[[2]int]PairProbs
}
