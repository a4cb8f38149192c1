// Package tabu - multistart driver over independent search runs.
//
// Each read is one independent Search run: no state is shared between
// reads beyond the read-only model, results are collected positionally,
// and every read owns its own RNG substream (used only to generate random
// initial states). Reads run concurrently, but the outputs are identical
// to a sequential loop.
package tabu

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlqubo/qubo"
	"github.com/katalvlaran/lvlqubo/sampleset"
)

// Sample runs opts.NumReads independent tabu searches on m and packages
// each read's best assignment, positionally, into a SampleSet.
//
// Contracts:
//   - opts.NumReads ≥ 1; opts.Timeout > 0; tenure as in Search.
//   - InitialStates are expanded to NumReads per opts.Generator and
//     truncated when over-supplied.
//   - A non-negative Seed makes the whole call reproducible.
//
// Errors: option sentinels from types.go, Search sentinels, qubo sentinels
// from initial-state validation — all before the first run starts.
//
// Complexity: NumReads independent runs, parallel up to GOMAXPROCS.
func Sample(m *qubo.Model, opts Options) (*sampleset.SampleSet, error) {
	var n = m.NumVariables()

	// Degenerate model: one empty assignment per read, energy == offset.
	if n == 0 {
		if opts.NumReads < 1 {
			return nil, ErrBadNumReads
		}
		assignments := make([][]int8, opts.NumReads)
		energies := make([]float64, opts.NumReads)
		for i := 0; i < opts.NumReads; i++ {
			assignments[i] = []int8{}
			energies[i] = m.Offset()
		}

		return sampleset.FromReads(assignments, energies)
	}

	tenure := opts.Tenure
	if tenure < 0 {
		tenure = DefaultTenure(n)
	}
	if tenure >= n {
		return nil, ErrTenureRange
	}
	if opts.Timeout <= 0 {
		return nil, ErrBadTimeout
	}
	if opts.NumReads < 1 {
		return nil, ErrBadNumReads
	}

	starts, err := expandStates(n, opts)
	if err != nil {
		return nil, err
	}

	var (
		assignments = make([][]int8, opts.NumReads)
		energies    = make([]float64, opts.NumReads)
		g           errgroup.Group
	)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for read := 0; read < opts.NumReads; read++ {
		read := read
		g.Go(func() error {
			best, e, serr := Search(m, starts[read], tenure, opts.Timeout)
			if serr != nil {
				return serr
			}
			assignments[read] = best
			energies[read] = e

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return sampleset.FromReads(assignments, energies)
}

// expandStates validates the supplied initial states and expands them to
// exactly NumReads entries according to the generator policy.
//
// Complexity: O(NumReads·n).
func expandStates(n int, opts Options) ([][]int8, error) {
	var (
		i, k int
	)
	for i = 0; i < len(opts.InitialStates); i++ {
		if len(opts.InitialStates[i]) != n {
			return nil, ErrStateLength
		}
		for k = 0; k < n; k++ {
			if v := opts.InitialStates[i][k]; v != 0 && v != 1 {
				return nil, ErrStateValue
			}
		}
	}

	switch opts.Generator {
	case GenerateNone:
		if len(opts.InitialStates) < opts.NumReads {
			return nil, ErrInsufficientStates
		}
	case GenerateTile:
		if len(opts.InitialStates) == 0 {
			return nil, ErrEmptyStates
		}
	case GenerateRandom:
		// Missing states are drawn below.
	default:
		return nil, ErrUnknownGenerator
	}

	var (
		out    = make([][]int8, opts.NumReads)
		parent = baseSeed(opts.Seed)
	)
	for i = 0; i < opts.NumReads; i++ {
		switch {
		case i < len(opts.InitialStates):
			out[i] = append([]int8(nil), opts.InitialStates[i]...)
		case opts.Generator == GenerateTile:
			out[i] = append([]int8(nil), opts.InitialStates[i%len(opts.InitialStates)]...)
		default: // GenerateRandom
			out[i] = randomState(n, readRNG(parent, i))
		}
	}

	return out, nil
}
