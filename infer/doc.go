// Package infer runs exact message passing over junction trees built by
// package elimtree, in two modes sharing one cluster-table core.
//
// 🚀 The two modes:
//
//	Solve  — min-sum with bounded k-best tables: processes clusters leaf to
//	         root, eliminating each cluster's unique variable while keeping
//	         only the maxSolutions lowest-energy partial records per
//	         separator assignment, then backtracks retained records into
//	         the global top-k (assignment, energy) pairs, ascending.
//	Sample — sum-product in the log domain at inverse temperature beta:
//	         the forward pass retains full 2^|bag| tables and yields the
//	         log partition function; the backward pass draws independent
//	         Boltzmann samples top-down, one RNG substream per read; an
//	         extra calibration pass reports exact variable and pairwise
//	         interaction marginals (not Monte Carlo estimates).
//
// ✨ Guarantees:
//   - Solve is globally exact whenever maxSolutions is large enough that
//     no intermediate table truncates; otherwise the result is a valid
//     lower-energy-biased top-k approximation.
//   - Sample performs no truncation: logZ, marginals and draw
//     distributions are exact for the given beta under the tree's width.
//   - Deterministic: fixed seeds reproduce draws; energy ties in Solve
//     break by lexicographically smaller assignment.
//
// ⚙️ Usage:
//
//	t, _ := elimtree.Build(m, order, maxComplexity)
//	top, _ := infer.Solve(m, t, 8)
//	res, _ := infer.Sample(m, t, infer.SampleOptions{Beta: 3, NumReads: 100, Marginals: true, Seed: 7})
//
// Performance:
//
//   - Solve:  O(Σ 2^|sep|·k log k) over clusters
//   - Sample: O(Σ 2^|bag|) forward/calibration, O(n) per draw
//
// Both modes cost exponential space only in the tree's width, which
// elimtree bounds structurally at build time.
package infer
