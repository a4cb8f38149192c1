// Package lvlqubo is an in-process toolkit for quadratic pseudo-boolean
// optimization: solving and sampling QUBO/Ising objectives over binary
// variables.
//
// 🚀 What is lvlqubo?
//
//	A deterministic, dependency-light library that brings together:
//		• Model store: dense symmetric QUBO (linear + pairwise + offset)
//		• Heuristics: multistart tabu search with incremental flip gains
//		• Exactness: junction-tree elimination for top-k lowest-energy states
//		• Probability: Boltzmann sampling, log partition function, exact marginals
//		• Structure: elimination-tree builder with treewidth guard + min-fill order
//
// ✨ Why choose lvlqubo?
//
//   - Predictable – sentinel errors, seeded RNG streams, lowest-index tie-breaks
//   - Exact where it counts – junction-tree engines are exact under the
//     configured treewidth bound; tabu is an honest any-time heuristic
//   - Concurrent by design – read-only model/tree shared across parallel reads
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	qubo/      — quadratic model store + spin/binary conversion
//	tabu/      — tabu local search engine + multistart driver
//	elimtree/  — tree-decomposition builder, treewidth, min-fill heuristic
//	infer/     — message passing: top-k solve, Boltzmann sample + marginals
//	sampleset/ — energy-ordered result records with occurrence tiling
//
// Quick ASCII intuition for an elimination tree over variables a..d:
//
//	    {a,b}
//	      │
//	    {b,c}───{c,d}
//
//	each bag owns the terms of its eliminated variable; messages flow
//	leaf-to-root for solving, root-to-leaf for sampling.
//
// Dive into README.md for full examples and the per-package tutorials.
//
//	go get github.com/katalvlaran/lvlqubo
package lvlqubo
