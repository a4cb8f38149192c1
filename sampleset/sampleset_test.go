package sampleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlqubo/sampleset"
)

// TestFromReads_Positional verifies shape checks and read order.
func TestFromReads_Positional(t *testing.T) {
	_, err := sampleset.FromReads([][]int8{{0}}, []float64{1, 2})
	assert.ErrorIs(t, err, sampleset.ErrShapeMismatch)

	set, err := sampleset.FromReads([][]int8{{1, 0}, {0, 1}}, []float64{2, -1})
	require.NoError(t, err)
	require.Len(t, set.Records, 2)
	assert.Equal(t, []int8{1, 0}, set.Records[0].Assignment, "read order preserved")
	assert.Equal(t, 1, set.Records[0].NumOccurrences)
}

// TestAggregate_MergesAndSorts verifies duplicate merging and the
// ascending-energy, lexicographic-tie order.
func TestAggregate_MergesAndSorts(t *testing.T) {
	set, err := sampleset.FromReads(
		[][]int8{{1, 1}, {0, 0}, {1, 1}, {1, 0}},
		[]float64{-2, 0, -2, 0},
	)
	require.NoError(t, err)

	agg := set.Aggregate()
	require.Len(t, agg.Records, 3)

	assert.Equal(t, []int8{1, 1}, agg.Records[0].Assignment)
	assert.Equal(t, 2, agg.Records[0].NumOccurrences, "duplicates merge")
	// Energy tie between {0,0} and {1,0}: lexicographically smaller first.
	assert.Equal(t, []int8{0, 0}, agg.Records[1].Assignment)
	assert.Equal(t, []int8{1, 0}, agg.Records[2].Assignment)
}

// TestFirst returns the lowest-energy record and guards empty sets.
func TestFirst(t *testing.T) {
	set := &sampleset.SampleSet{}
	_, err := set.First()
	assert.ErrorIs(t, err, sampleset.ErrEmptySet)

	set, err = sampleset.FromReads([][]int8{{0}, {1}}, []float64{3, -1})
	require.NoError(t, err)

	best, err := set.First()
	require.NoError(t, err)
	assert.Equal(t, -1.0, best.Energy)
}

// TestTile_Deterministic verifies occurrence counts sum to the read
// budget with the excess on the lowest-index records.
func TestTile_Deterministic(t *testing.T) {
	records := []sampleset.Record{
		{Assignment: []int8{1, 1}, Energy: -2},
		{Assignment: []int8{0, 1}, Energy: -1},
		{Assignment: []int8{0, 0}, Energy: 0},
	}

	tiled, err := sampleset.Tile(records, 10)
	require.NoError(t, err)
	require.Len(t, tiled.Records, 3)

	assert.Equal(t, 4, tiled.Records[0].NumOccurrences, "remainder lands lowest-energy-first")
	assert.Equal(t, 3, tiled.Records[1].NumOccurrences)
	assert.Equal(t, 3, tiled.Records[2].NumOccurrences)

	total := 0
	for _, rec := range tiled.Records {
		total += rec.NumOccurrences
	}
	assert.Equal(t, 10, total, "occurrences must sum to num reads exactly")
}

// TestTile_FewerReadsThanRecords verifies undersized budgets keep only
// the lowest-energy records; zero-occurrence rows are never emitted.
func TestTile_FewerReadsThanRecords(t *testing.T) {
	records := []sampleset.Record{
		{Assignment: []int8{1, 1}, Energy: -2},
		{Assignment: []int8{0, 1}, Energy: -1},
		{Assignment: []int8{0, 0}, Energy: 0},
	}

	tiled, err := sampleset.Tile(records, 2)
	require.NoError(t, err)
	require.Len(t, tiled.Records, 2)

	assert.Equal(t, []int8{1, 1}, tiled.Records[0].Assignment)
	assert.Equal(t, 1, tiled.Records[0].NumOccurrences)
	assert.Equal(t, []int8{0, 1}, tiled.Records[1].Assignment)
	assert.Equal(t, 1, tiled.Records[1].NumOccurrences)
}

// TestTile_Guards covers the error sentinels.
func TestTile_Guards(t *testing.T) {
	_, err := sampleset.Tile(nil, 5)
	assert.ErrorIs(t, err, sampleset.ErrEmptySet)

	_, err = sampleset.Tile([]sampleset.Record{{Energy: 0}}, 0)
	assert.ErrorIs(t, err, sampleset.ErrBadReads)
}
