package infer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/infer"
	"github.com/katalvlaran/lvlqubo/qubo"
	"github.com/katalvlaran/lvlqubo/sampleset"
)

// TestSolve_ScenarioGroundState verifies maxSolutions=1 returns exactly
// the brute-force ground state of the reference model.
func TestSolve_ScenarioGroundState(t *testing.T) {
	m := scenarioModel(t)
	tree := scenarioTree(t, m)

	top, err := infer.Solve(m, tree, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)

	assert.Equal(t, []int8{1, 1, 0}, top[0].Assignment)
	assert.InDelta(t, -2.0, top[0].Energy, 1e-12)
}

// TestSolve_ScenarioFullSpectrum verifies maxSolutions=8 returns all 8
// states sorted ascending, matching brute force exactly.
func TestSolve_ScenarioFullSpectrum(t *testing.T) {
	m := scenarioModel(t)
	tree := scenarioTree(t, m)

	top, err := infer.Solve(m, tree, 8)
	require.NoError(t, err)
	require.Len(t, top, 8)

	want := bruteEnergies(t, m)
	for i, sol := range top {
		assert.InDelta(t, want[i], sol.Energy, 1e-9, "rank %d", i)

		e, err := m.Energy(sol.Assignment)
		require.NoError(t, err)
		assert.InDelta(t, sol.Energy, e, 1e-9, "rank %d energy must match its assignment", i)

		if i > 0 {
			assert.LessOrEqual(t, top[i-1].Energy, sol.Energy, "ascending order")
		}
	}

	// Equal-energy ranks break lexicographically.
	assert.Equal(t, []int8{0, 0, 0}, top[2].Assignment)
	assert.Equal(t, []int8{1, 0, 0}, top[3].Assignment)
	assert.Equal(t, []int8{1, 1, 1}, top[4].Assignment)
}

// TestSolve_CapsAtStateCount verifies maxSolutions > 2^n truncates to 2^n.
func TestSolve_CapsAtStateCount(t *testing.T) {
	m := scenarioModel(t)
	tree := scenarioTree(t, m)

	top, err := infer.Solve(m, tree, 1000)
	require.NoError(t, err)
	assert.Len(t, top, 8, "at most 2^n distinct assignments exist")
}

// TestSolve_BruteForceCrossCheck compares top-k and the full spectrum
// against brute force on a cyclic 8-variable model under a min-fill order.
func TestSolve_BruteForceCrossCheck(t *testing.T) {
	m := frustratedLoopModel(t)

	tree, err := elimtree.Build(m, elimtree.MinFillOrder(m), m.NumVariables())
	require.NoError(t, err)

	want := bruteEnergies(t, m)

	// Bounded top-k is still exact for the k best energies.
	top, err := infer.Solve(m, tree, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	for i, sol := range top {
		assert.InDelta(t, want[i], sol.Energy, 1e-9, "rank %d", i)
	}

	// Full spectrum equality when maxSolutions ≥ 2^n.
	full, err := infer.Solve(m, tree, 1<<8)
	require.NoError(t, err)
	require.Len(t, full, 1<<8)

	got := make([]float64, len(full))
	for i, sol := range full {
		got[i] = sol.Energy
	}
	require.True(t, sort.Float64sAreSorted(got), "energies must be non-decreasing")
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "rank %d", i)
	}
}

// TestSolve_Preconditions covers the sentinel guards.
func TestSolve_Preconditions(t *testing.T) {
	m := scenarioModel(t)
	tree := scenarioTree(t, m)

	_, err := infer.Solve(m, tree, 0)
	assert.ErrorIs(t, err, infer.ErrBadMaxSolutions)

	other, err := qubo.New([]float64{0}, [][]float64{{0}}, 0)
	require.NoError(t, err)
	_, err = infer.Solve(other, tree, 1)
	assert.ErrorIs(t, err, infer.ErrTreeMismatch)
}

// TestSolve_ZeroVariables verifies the degenerate trivial-success path.
func TestSolve_ZeroVariables(t *testing.T) {
	m, err := qubo.New(nil, nil, 2.5)
	require.NoError(t, err)
	tree, err := elimtree.Build(m, nil, 1)
	require.NoError(t, err)

	top, err := infer.Solve(m, tree, 4)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Empty(t, top[0].Assignment)
	assert.Equal(t, 2.5, top[0].Energy)
}

// TestSolve_TilingDeterminism exercises the occurrence tiling of solve
// results: reads beyond the distinct states split deterministically.
func TestSolve_TilingDeterminism(t *testing.T) {
	m := scenarioModel(t)
	tree := scenarioTree(t, m)

	top, err := infer.Solve(m, tree, 3)
	require.NoError(t, err)

	records := make([]sampleset.Record, len(top))
	for i, sol := range top {
		records[i] = sampleset.Record{Assignment: sol.Assignment, Energy: sol.Energy}
	}

	tiled, err := sampleset.Tile(records, 11)
	require.NoError(t, err)

	total := 0
	for _, rec := range tiled.Records {
		total += rec.NumOccurrences
	}
	assert.Equal(t, 11, total)
	assert.Equal(t, 4, tiled.Records[0].NumOccurrences, "excess reads go lowest-energy-first")
	assert.Equal(t, 4, tiled.Records[1].NumOccurrences)
	assert.Equal(t, 3, tiled.Records[2].NumOccurrences)
}

// TestSolve_StarReconstruction verifies assignments rebuild correctly
// when one cluster fans out to several children: a hub variable
// eliminated last parents every leaf cluster, so the backtracking
// recursion must consume one retained pick per child.
func TestSolve_StarReconstruction(t *testing.T) {
	m, err := qubo.NewFromTerms(5,
		map[int]float64{0: 0.3, 1: -0.2, 3: 0.4, 4: -0.5},
		map[[2]int]float64{
			{0, 4}: 1.0, {1, 4}: -1.2, {2, 4}: 0.7, {3, 4}: -0.4,
		},
		0,
	)
	require.NoError(t, err)

	// Leaves first: the hub cluster ends up with four children.
	tree, err := elimtree.Build(m, []int{0, 1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Len(t, tree.Clusters[4].Children, 4)

	full, err := infer.Solve(m, tree, 1<<5)
	require.NoError(t, err)
	require.Len(t, full, 1<<5)

	want := bruteEnergies(t, m)
	for i, sol := range full {
		assert.InDelta(t, want[i], sol.Energy, 1e-9, "rank %d", i)

		e, err := m.Energy(sol.Assignment)
		require.NoError(t, err)
		assert.InDelta(t, sol.Energy, e, 1e-9, "rank %d assignment must produce its energy", i)
	}
}

// TestSolve_DisconnectedComponents verifies forest models combine root
// tables correctly.
func TestSolve_DisconnectedComponents(t *testing.T) {
	m, err := qubo.NewFromTerms(4,
		map[int]float64{0: -1, 2: -0.5},
		map[[2]int]float64{{0, 1}: 2, {2, 3}: 2},
		0,
	)
	require.NoError(t, err)

	tree, err := elimtree.Build(m, []int{0, 1, 2, 3}, 2)
	require.NoError(t, err)

	top, err := infer.Solve(m, tree, 16)
	require.NoError(t, err)
	require.Len(t, top, 16)

	want := bruteEnergies(t, m)
	for i, sol := range top {
		assert.InDelta(t, want[i], sol.Energy, 1e-9, "rank %d", i)
	}
	assert.Equal(t, []int8{1, 0, 1, 0}, top[0].Assignment, "independent minima combine")
}
