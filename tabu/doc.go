// Package tabu implements multistart tabu local search over QUBO models.
//
// 🚀 What is tabu search here?
//
//	One run keeps a current assignment and, for every variable, the energy
//	change of flipping it (Δ). Each iteration flips the non-tabu variable
//	with the most negative Δ (lowest index on ties), refreshes all Δ values
//	in O(n), and forbids re-flipping that variable for `tenure` iterations.
//	A tabu flip is admitted only when it would land strictly below the
//	best energy ever seen (aspiration). The run stops on a wall-clock
//	budget, checked cooperatively once per iteration.
//
// ✨ Key features:
//   - monotone best-so-far: the returned energy never exceeds the start's
//   - amortized O(n) iterations: the energy is never recomputed from scratch
//   - multistart driver: independent runs, one per read, executed in
//     parallel over a shared read-only model with positional results
//   - explicit initial-state policy: none / tile / random expansion
//   - deterministic given a non-negative seed; negative seed ⇒ time-based
//
// ⚙️ Usage:
//
//	opts := tabu.DefaultOptions(m.NumVariables())
//	opts.NumReads = 10
//	opts.Seed = 42
//	set, err := tabu.Sample(m, opts)
//	best, _ := set.First()
//
// Performance:
//
//   - Search: O(n) per iteration after an O(n²) warm-up of the Δ vector
//   - Sample: reads are embarrassingly parallel (errgroup-fan-out)
//
// Tabu search is a heuristic: it guarantees improvement over the start
// state, not global optimality. Use package infer for exact answers.
package tabu
