// Package qubo - spin/binary (Ising ↔ QUBO) conversion helpers.
//
// The substitution s = 2x − 1 maps spins {−1,+1} onto binaries {0,1}:
//
//	h_i·s_i          → 2h_i·x_i − h_i
//	J_ij·s_i·s_j     → 4J_ij·x_i·x_j − 2J_ij·x_i − 2J_ij·x_j + J_ij
//
// so the converted model is exactly energy-equivalent, not an approximation.
package qubo

import "math"

// FromIsing builds the binary Model equivalent to the Ising objective
//
//	E(s) = offset + Σ h[i]·s[i] + Σ_{i<j} j[i][j]·s[i]·s[j],  s[i] ∈ {−1,+1}.
//
// Contracts: same shape/symmetry/finiteness rules as New.
//
// Complexity: O(n²) time, O(n²) space.
func FromIsing(h []float64, j [][]float64, offset float64) (*Model, error) {
	var n = len(h)
	if len(j) != n {
		return nil, ErrDimensionMismatch
	}

	var (
		hb  = make([]float64, n)
		jb  = make([][]float64, n)
		off = offset
		i   int
		k   int
		w   float64
		d   float64 // symmetry defect scratch
	)
	for i = 0; i < n; i++ {
		if len(j[i]) != n {
			return nil, ErrDimensionMismatch
		}
		if math.IsNaN(h[i]) || math.IsInf(h[i], 0) {
			return nil, ErrNonFinite
		}
		hb[i] = 2 * h[i]
		off -= h[i]
		jb[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		// Diagonal spin terms are constants: s·s == 1.
		w = j[i][i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrNonFinite
		}
		off += w

		for k = i + 1; k < n; k++ {
			w = j[i][k]
			if math.IsNaN(w) || math.IsInf(w, 0) || math.IsNaN(j[k][i]) || math.IsInf(j[k][i], 0) {
				return nil, ErrNonFinite
			}
			d = w - j[k][i]
			if d < 0 {
				d = -d
			}
			if d > symTol {
				return nil, ErrAsymmetric
			}
			if w == 0 {
				continue
			}
			jb[i][k] = 4 * w
			jb[k][i] = 4 * w
			hb[i] -= 2 * w
			hb[k] -= 2 * w
			off += w
		}
	}

	// New re-validates symmetry/finiteness of the derived matrix.
	return New(hb, jb, off)
}

// SpinAssignment maps a binary assignment onto spins: 0 → −1, 1 → +1.
//
// Errors: ErrBadAssignment on values outside {0, 1}.
func SpinAssignment(x []int8) ([]int8, error) {
	out := make([]int8, len(x))

	var i int
	for i = 0; i < len(x); i++ {
		switch x[i] {
		case 0:
			out[i] = -1
		case 1:
			out[i] = 1
		default:
			return nil, ErrBadAssignment
		}
	}

	return out, nil
}

// BinaryAssignment maps a spin assignment onto binaries: −1 → 0, +1 → 1.
//
// Errors: ErrBadAssignment on values outside {−1, +1}.
func BinaryAssignment(s []int8) ([]int8, error) {
	out := make([]int8, len(s))

	var i int
	for i = 0; i < len(s); i++ {
		switch s[i] {
		case -1:
			out[i] = 0
		case 1:
			out[i] = 1
		default:
			return nil, ErrBadAssignment
		}
	}

	return out, nil
}
