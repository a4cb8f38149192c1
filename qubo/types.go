// Package qubo - core types and sentinel errors for the model store.
package qubo

import "errors"

// Sentinel errors for model construction and evaluation.
var (
	// ErrDimensionMismatch indicates h, J or an assignment has the wrong shape.
	ErrDimensionMismatch = errors.New("qubo: dimension mismatch")
	// ErrAsymmetric indicates J[i][j] differs from J[j][i] beyond tolerance.
	ErrAsymmetric = errors.New("qubo: quadratic matrix is not symmetric")
	// ErrNonFinite indicates a NaN or infinite weight was supplied.
	ErrNonFinite = errors.New("qubo: non-finite weight")
	// ErrIndexRange indicates a variable index outside [0, n).
	ErrIndexRange = errors.New("qubo: variable index out of range")
	// ErrBadAssignment indicates an assignment value outside {0, 1}.
	ErrBadAssignment = errors.New("qubo: assignment values must be 0 or 1")
)

// symTol is the structural tolerance for the symmetry check in New.
// It is a shape-validation constant, not an energy tolerance.
const symTol = 1e-12

// Model is an immutable dense QUBO:
//
//	E(x) = Offset + Σ h[i]·x[i] + Σ_{i<j} q[i*n+j]·x[i]·x[j]
//
// q holds the full symmetric matrix in flat row-major form with a zero
// diagonal (any diagonal input is folded into h during construction).
// A Model is read-only after construction and safe for concurrent use.
type Model struct {
	n      int
	h      []float64
	q      []float64 // flat n×n, symmetric, zero diagonal
	offset float64

	adj [][]int // per-variable sorted neighbors with nonzero coupling
}
