// Package qubo stores quadratic pseudo-boolean objectives over 0-based
// binary variables and evaluates their energies.
//
// 🚀 What is a QUBO model here?
//
//	E(x) = offset + Σ h[i]·x[i] + Σ_{i<j} J[i][j]·x[i]·x[j],  x[i] ∈ {0,1}
//
//	The store keeps h as a linear vector, J as a dense symmetric matrix
//	with the diagonal folded into h, plus a scalar offset. Once built, a
//	Model is immutable and safe to share by reference across goroutines.
//
// ✨ Key features:
//   - strict construction: shape, symmetry and finiteness validated up front
//   - sparse ingestion via NewFromTerms (upper-triangle canonicalization)
//   - Ising support: FromIsing builds the equivalent binary model,
//     SpinAssignment/BinaryAssignment translate assignments both ways
//   - zero-variable models are valid and evaluate to the offset
//
// ⚙️ Usage:
//
//	m, err := qubo.New(
//	  []float64{0, -1, 0.5},
//	  [][]float64{{0, -1, 0}, {-1, 0, 1.5}, {0, 1.5, 0}},
//	  0,
//	)
//	e, _ := m.Energy([]int8{1, 1, 0}) // -2
//
// Performance:
//
//   - Energy:    O(n²) worst case, O(n + m) via adjacency for sparse J
//   - Accessors: O(1)
//
// See example_test.go for runnable scenarios.
package qubo
