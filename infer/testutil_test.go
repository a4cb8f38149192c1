package infer_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// scenarioModel builds the reference 3-variable model whose spectrum is
// −2, −1, 0, 0, 0, 0.5, 0.5, 1.
func scenarioModel(t *testing.T) *qubo.Model {
	t.Helper()

	m, err := qubo.New(
		[]float64{0, -1, 0.5},
		[][]float64{
			{0, -1, 0},
			{-1, 0, 1.5},
			{0, 1.5, 0},
		},
		0,
	)
	require.NoError(t, err)

	return m
}

// scenarioTree builds the scenario's junction tree over order 0,1,2.
func scenarioTree(t *testing.T, m *qubo.Model) *elimtree.Tree {
	t.Helper()

	tree, err := elimtree.Build(m, []int{0, 1, 2}, m.NumVariables())
	require.NoError(t, err)

	return tree
}

// frustratedLoopModel builds an 8-variable model with cycles and mixed
// signs, small enough to brute-force yet wide enough to exercise fill-in.
func frustratedLoopModel(t *testing.T) *qubo.Model {
	t.Helper()

	m, err := qubo.NewFromTerms(8,
		map[int]float64{0: 0.2, 3: -0.7, 5: 1.1, 7: -0.4},
		map[[2]int]float64{
			{0, 1}: -1.0, {1, 2}: 0.8, {2, 3}: -0.6, {3, 0}: 0.9,
			{3, 4}: -1.2, {4, 5}: 0.5, {5, 6}: -0.3, {6, 7}: 1.4,
			{7, 4}: -0.8, {2, 6}: 0.7,
		},
		0.3,
	)
	require.NoError(t, err)

	return m
}

// enumState decodes a bitmask into an assignment (bit i = variable i).
func enumState(mask, n int) []int8 {
	x := make([]int8, n)
	for i := 0; i < n; i++ {
		x[i] = int8((mask >> uint(i)) & 1)
	}

	return x
}

// bruteEnergies returns all 2^n energies, ascending.
func bruteEnergies(t *testing.T, m *qubo.Model) []float64 {
	t.Helper()

	var n = m.NumVariables()
	out := make([]float64, 0, 1<<uint(n))
	for mask := 0; mask < 1<<uint(n); mask++ {
		e, err := m.Energy(enumState(mask, n))
		require.NoError(t, err)
		out = append(out, e)
	}
	sort.Float64s(out)

	return out
}

// bruteLogZ computes log Σ_x exp(−beta·E(x)) by direct summation.
func bruteLogZ(t *testing.T, m *qubo.Model, beta float64) float64 {
	t.Helper()

	var n = m.NumVariables()
	max := math.Inf(-1)
	logs := make([]float64, 0, 1<<uint(n))
	for mask := 0; mask < 1<<uint(n); mask++ {
		e, err := m.Energy(enumState(mask, n))
		require.NoError(t, err)
		l := -beta * e
		logs = append(logs, l)
		if l > max {
			max = l
		}
	}

	sum := 0.0
	for _, l := range logs {
		sum += math.Exp(l - max)
	}

	return max + math.Log(sum)
}

// bruteVariableMarginal computes P(x_v = 1) by direct summation.
func bruteVariableMarginal(t *testing.T, m *qubo.Model, beta float64, v int) float64 {
	t.Helper()

	var (
		n     = m.NumVariables()
		logZ  = bruteLogZ(t, m, beta)
		total = 0.0
	)
	for mask := 0; mask < 1<<uint(n); mask++ {
		if (mask>>uint(v))&1 == 0 {
			continue
		}
		e, err := m.Energy(enumState(mask, n))
		require.NoError(t, err)
		total += math.Exp(-beta*e - logZ)
	}

	return total
}

// brutePairMarginal computes P(x_i == a ∧ x_j == b) by direct summation.
func brutePairMarginal(t *testing.T, m *qubo.Model, beta float64, i, j, a, b int) float64 {
	t.Helper()

	var (
		n     = m.NumVariables()
		logZ  = bruteLogZ(t, m, beta)
		total = 0.0
	)
	for mask := 0; mask < 1<<uint(n); mask++ {
		if (mask>>uint(i))&1 != a || (mask>>uint(j))&1 != b {
			continue
		}
		e, err := m.Energy(enumState(mask, n))
		require.NoError(t, err)
		total += math.Exp(-beta*e - logZ)
	}

	return total
}
