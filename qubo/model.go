// Package qubo - model constructors and read-only accessors.
//
// Design principles:
//   - Strict sentinels: only errors from types.go; no fmt.Errorf in constructors.
//   - Deterministic: adjacency and interaction lists are index-sorted.
//   - Immutability: inputs are copied; accessors never expose internal slices
//     except via documented read-only views.
package qubo

import (
	"math"
	"sort"
)

// New builds a Model from a linear vector h, a dense quadratic matrix j and
// a scalar offset.
//
// Contracts:
//   - j must be len(h)×len(h); j may be nil only when len(h) == 0.
//   - j must be symmetric within 1e-12; NaN/±Inf anywhere is rejected.
//   - Diagonal entries j[i][i] are folded into h[i] (x² == x for binary x).
//
// Complexity: O(n²) time, O(n²) space.
func New(h []float64, j [][]float64, offset float64) (*Model, error) {
	var n = len(h)
	if len(j) != n {
		return nil, ErrDimensionMismatch
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, ErrNonFinite
	}

	m := &Model{
		n:      n,
		h:      make([]float64, n),
		q:      make([]float64, n*n),
		offset: offset,
	}

	var (
		i, k     int     // loop indices
		aik, aki float64 // matrix entries under validation
		d        float64 // symmetry defect scratch
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(h[i]) || math.IsInf(h[i], 0) {
			return nil, ErrNonFinite
		}
		if len(j[i]) != n {
			return nil, ErrDimensionMismatch
		}
		m.h[i] = h[i]
	}
	for i = 0; i < n; i++ {
		// Diagonal folds into the linear term: x·x == x over {0,1}.
		aik = j[i][i]
		if math.IsNaN(aik) || math.IsInf(aik, 0) {
			return nil, ErrNonFinite
		}
		m.h[i] += aik

		for k = i + 1; k < n; k++ {
			aik = j[i][k]
			aki = j[k][i]
			if math.IsNaN(aik) || math.IsInf(aik, 0) || math.IsNaN(aki) || math.IsInf(aki, 0) {
				return nil, ErrNonFinite
			}
			d = aik - aki
			if d < 0 {
				d = -d
			}
			if d > symTol {
				return nil, ErrAsymmetric
			}
			m.q[i*n+k] = aik
			m.q[k*n+i] = aik
		}
	}

	m.buildAdjacency()

	return m, nil
}

// NewFromTerms builds a Model from sparse linear and quadratic term maps.
// Quadratic keys are canonicalized to i<j and duplicate (i,j)/(j,i) entries
// are accumulated, mirroring upper-triangle problem canonicalization.
//
// Contracts:
//   - n ≥ 0; every index must lie in [0, n); loop keys (i == i) fold into h.
//
// Complexity: O(n² + |linear| + |quad|) time, O(n²) space.
func NewFromTerms(n int, linear map[int]float64, quad map[[2]int]float64, offset float64) (*Model, error) {
	if n < 0 {
		return nil, ErrDimensionMismatch
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, ErrNonFinite
	}

	m := &Model{
		n:      n,
		h:      make([]float64, n),
		q:      make([]float64, n*n),
		offset: offset,
	}

	var (
		i, u, v int
		w       float64
	)
	for i, w = range linear {
		if i < 0 || i >= n {
			return nil, ErrIndexRange
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrNonFinite
		}
		m.h[i] += w
	}
	for k, w := range quad {
		u, v = k[0], k[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrIndexRange
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrNonFinite
		}
		if u == v {
			// Self-interaction over binary variables is a linear term.
			m.h[u] += w

			continue
		}
		m.q[u*n+v] += w
		m.q[v*n+u] += w
	}

	m.buildAdjacency()

	return m, nil
}

// buildAdjacency derives the per-variable sorted neighbor lists from q.
// Called exactly once at construction; the result is read-only afterwards.
func (m *Model) buildAdjacency() {
	m.adj = make([][]int, m.n)

	var i, k int
	for i = 0; i < m.n; i++ {
		for k = 0; k < m.n; k++ {
			if k != i && m.q[i*m.n+k] != 0 {
				m.adj[i] = append(m.adj[i], k)
			}
		}
		// Row scan emits k ascending already; sort kept for future ingestion paths.
		sort.Ints(m.adj[i])
	}
}

// NumVariables reports n, the number of binary variables.
func (m *Model) NumVariables() int { return m.n }

// Offset reports the scalar energy offset.
func (m *Model) Offset() float64 { return m.offset }

// Linear reports h[i].
//
// Errors: ErrIndexRange when i ∉ [0, n).
func (m *Model) Linear(i int) (float64, error) {
	if i < 0 || i >= m.n {
		return 0, ErrIndexRange
	}

	return m.h[i], nil
}

// Quadratic reports the pairwise weight between i and j (symmetric; zero
// when no interaction exists or i == j).
//
// Errors: ErrIndexRange when i or j ∉ [0, n).
func (m *Model) Quadratic(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexRange
	}
	if i == j {
		return 0, nil
	}

	return m.q[i*m.n+j], nil
}

// Interactions returns all nonzero pairwise terms as sorted {i, j} pairs
// with i < j. The slice is freshly allocated on each call.
//
// Complexity: O(n²) time.
func (m *Model) Interactions() [][2]int {
	out := make([][2]int, 0)

	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.q[i*m.n+j] != 0 {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Adjacency returns the per-variable sorted neighbor lists of the nonzero
// interaction graph. The returned slices are shared and must be treated as
// read-only; this is the documented hot-path view for tree builders.
func (m *Model) Adjacency() [][]int { return m.adj }

// Energy evaluates E(x) for a binary assignment x of length n.
//
// Contracts:
//   - len(x) == n; every value ∈ {0, 1}.
//
// Errors: ErrDimensionMismatch, ErrBadAssignment.
//
// Complexity: O(n + Σ deg(i)) time via adjacency, O(1) space.
func (m *Model) Energy(x []int8) (float64, error) {
	if len(x) != m.n {
		return 0, ErrDimensionMismatch
	}

	var (
		e    = m.offset
		i, k int
		j    int
	)
	for i = 0; i < m.n; i++ {
		if x[i] != 0 && x[i] != 1 {
			return 0, ErrBadAssignment
		}
	}
	for i = 0; i < m.n; i++ {
		if x[i] == 0 {
			continue
		}
		e += m.h[i]
		for k = 0; k < len(m.adj[i]); k++ {
			j = m.adj[i][k]
			// Count each pair once (i < j) to honor the Σ_{i<j} convention.
			if j > i && x[j] == 1 {
				e += m.q[i*m.n+j]
			}
		}
	}

	return e, nil
}
