// Package tabu - single-run tabu search engine.
//
// Design principles:
//   - Incremental energy: per-variable flip gains Δ are maintained in O(n)
//     per applied flip; the objective is evaluated from scratch exactly once.
//   - Deterministic move selection: most negative Δ wins, ties go to the
//     lowest variable index; no RNG inside a run.
//   - Cooperative time budget: the wall clock is consulted once per
//     iteration boundary, never preemptively.
//   - Strict sentinels: all preconditions rejected before the first flip.
package tabu

import (
	"time"

	"github.com/katalvlaran/lvlqubo/qubo"
)

// searchState is the per-run mutable state. One instance per run, never
// shared, created fresh by Search and discarded after the best values are
// extracted (multistart safety is structural, not locked).
type searchState struct {
	x          []int8    // current assignment
	energy     float64   // energy of x, maintained incrementally
	delta      []float64 // delta[i] = E(x with i flipped) − E(x)
	tabuUntil  []int64   // first iteration at which i is legal again
	best       []int8    // best assignment so far
	bestEnergy float64
}

// Search runs one bounded-time tabu trajectory on m from the given start
// assignment and returns the best assignment found with its energy.
//
// Contracts:
//   - 0 ≤ tenure < n (except n == 0, which returns immediately).
//   - timeout > 0; checked cooperatively once per iteration.
//   - start is copied; the caller's slice is never mutated.
//   - The returned energy is ≤ the start assignment's energy (monotone
//     best-so-far).
//
// Errors: ErrTenureRange, ErrBadTimeout, ErrStateLength, ErrStateValue —
// all before any search work.
//
// Complexity: O(n²) warm-up, then O(n) per iteration.
func Search(m *qubo.Model, start []int8, tenure int, timeout time.Duration) ([]int8, float64, error) {
	var n = m.NumVariables()

	// Degenerate model: trivial success, empty assignment.
	if n == 0 {
		return []int8{}, m.Offset(), nil
	}

	if tenure < 0 || tenure >= n {
		return nil, 0, ErrTenureRange
	}
	if timeout <= 0 {
		return nil, 0, ErrBadTimeout
	}
	if len(start) != n {
		return nil, 0, ErrStateLength
	}

	var i int
	for i = 0; i < n; i++ {
		if start[i] != 0 && start[i] != 1 {
			return nil, 0, ErrStateValue
		}
	}

	st, err := newSearchState(m, start)
	if err != nil {
		return nil, 0, err
	}

	var (
		deadline = time.Now().Add(timeout)
		it       int64 // current iteration, drives the tabu clock
		f        int   // selected flip
	)
	for !time.Now().After(deadline) {
		f = st.selectFlip(it)
		if f < 0 {
			// Unreachable under tenure < n (at most tenure vars are tabu),
			// kept as a hard stop rather than a spin.
			break
		}

		st.applyFlip(m, f)
		st.tabuUntil[f] = it + int64(tenure) + 1

		if st.energy < st.bestEnergy {
			st.bestEnergy = st.energy
			copy(st.best, st.x)
		}

		it++
	}

	return st.best, st.bestEnergy, nil
}

// newSearchState evaluates the start assignment once and warms up the Δ
// vector: delta[i] = (1 − 2x[i])·(h[i] + Σ_j q[i][j]·x[j]).
//
// Complexity: O(n²) time, O(n) space.
func newSearchState(m *qubo.Model, start []int8) (*searchState, error) {
	var n = m.NumVariables()

	st := &searchState{
		x:         append([]int8(nil), start...),
		delta:     make([]float64, n),
		tabuUntil: make([]int64, n),
		best:      make([]int8, n),
	}

	e, err := m.Energy(st.x)
	if err != nil {
		return nil, err
	}
	st.energy = e
	st.bestEnergy = e
	copy(st.best, st.x)

	var (
		i, k int
		j    int
		g    float64 // h[i] + Σ_j q[i][j]·x[j], the field seen by i
		w    float64
		adj  = m.Adjacency()
	)
	for i = 0; i < n; i++ {
		g, _ = m.Linear(i)
		for k = 0; k < len(adj[i]); k++ {
			j = adj[i][k]
			if st.x[j] == 1 {
				w, _ = m.Quadratic(i, j)
				g += w
			}
		}
		st.delta[i] = float64(1-2*st.x[i]) * g
	}

	return st, nil
}

// selectFlip picks the admissible variable with the most negative Δ at
// iteration it. Admissible: not tabu, or tabu but strictly below the best
// energy ever seen (aspiration). Strict < keeps the lowest index on ties.
//
// Complexity: O(n).
func (st *searchState) selectFlip(it int64) int {
	var (
		f    = -1
		i    int
		cand float64
	)
	for i = 0; i < len(st.x); i++ {
		if st.tabuUntil[i] > it && st.energy+st.delta[i] >= st.bestEnergy {
			continue // tabu and no aspiration override
		}
		cand = st.delta[i]
		if f < 0 || cand < st.delta[f] {
			f = i
		}
	}

	return f
}

// applyFlip flips variable f, updating the energy and every Δ in O(n).
// For i ≠ f the field of i shifts by q[i][f]·(x[f]' − x[f]); Δf negates.
//
// Complexity: O(n) time (deg(f) via adjacency), O(1) space.
func (st *searchState) applyFlip(m *qubo.Model, f int) {
	var (
		s   = float64(1 - 2*st.x[f]) // +1 when 0→1, −1 when 1→0
		adj = m.Adjacency()
		k   int
		j   int
		w   float64
	)

	st.energy += st.delta[f]

	for k = 0; k < len(adj[f]); k++ {
		j = adj[f][k]
		w, _ = m.Quadratic(f, j)
		st.delta[j] += float64(1-2*st.x[j]) * w * s
	}

	st.delta[f] = -st.delta[f]
	st.x[f] = 1 - st.x[f]
}
