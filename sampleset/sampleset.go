// Package sampleset - record containers shared by the tabu and tree engines.
package sampleset

import (
	"errors"
	"sort"
)

// Sentinel errors for result packaging.
var (
	// ErrShapeMismatch indicates assignments and energies differ in length.
	ErrShapeMismatch = errors.New("sampleset: assignments and energies differ in length")
	// ErrEmptySet indicates an operation that needs at least one record.
	ErrEmptySet = errors.New("sampleset: empty sample set")
	// ErrBadReads indicates a non-positive read budget.
	ErrBadReads = errors.New("sampleset: num reads must be positive")
)

// Record is one assignment with its energy and occurrence count.
type Record struct {
	Assignment     []int8
	Energy         float64
	NumOccurrences int
}

// SampleSet is an ordered list of records. Construction functions document
// whether the order is positional (per read) or ascending by energy.
type SampleSet struct {
	Records []Record
}

// FromReads packages per-read results positionally: Records[i] belongs to
// read i with NumOccurrences == 1.
//
// Errors: ErrShapeMismatch.
func FromReads(assignments [][]int8, energies []float64) (*SampleSet, error) {
	if len(assignments) != len(energies) {
		return nil, ErrShapeMismatch
	}

	s := &SampleSet{Records: make([]Record, len(assignments))}

	var i int
	for i = 0; i < len(assignments); i++ {
		s.Records[i] = Record{
			Assignment:     assignments[i],
			Energy:         energies[i],
			NumOccurrences: 1,
		}
	}

	return s, nil
}

// Aggregate merges records with identical assignments (summing occurrences)
// and returns a new set sorted ascending by energy, ties broken by
// lexicographically smaller assignment.
//
// Complexity: O(r·n + r log r) with r records of n variables.
func (s *SampleSet) Aggregate() *SampleSet {
	merged := make([]Record, 0, len(s.Records))
	index := make(map[string]int, len(s.Records))

	var (
		i   int
		key string
		at  int
		ok  bool
	)
	for i = 0; i < len(s.Records); i++ {
		key = string(assignmentBytes(s.Records[i].Assignment))
		if at, ok = index[key]; ok {
			merged[at].NumOccurrences += s.Records[i].NumOccurrences

			continue
		}
		index[key] = len(merged)
		merged = append(merged, Record{
			Assignment:     s.Records[i].Assignment,
			Energy:         s.Records[i].Energy,
			NumOccurrences: s.Records[i].NumOccurrences,
		})
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].Energy != merged[b].Energy {
			return merged[a].Energy < merged[b].Energy
		}

		return lessAssignment(merged[a].Assignment, merged[b].Assignment)
	})

	return &SampleSet{Records: merged}
}

// First returns the lowest-energy record of an aggregated or positional set.
//
// Errors: ErrEmptySet.
func (s *SampleSet) First() (Record, error) {
	if len(s.Records) == 0 {
		return Record{}, ErrEmptySet
	}

	best := 0

	var i int
	for i = 1; i < len(s.Records); i++ {
		if s.Records[i].Energy < s.Records[best].Energy {
			best = i
		}
	}

	return s.Records[best], nil
}

// Tile distributes numReads occurrences over the given records: every
// record gets ⌊numReads/len⌋ and the first numReads%len records get one
// extra. Records are assumed already sorted ascending by energy, so the
// excess lands on the lowest-energy entries first. When numReads is
// smaller than len(records) only the first numReads records survive;
// zero-occurrence records are never emitted.
//
// Errors: ErrEmptySet, ErrBadReads.
func Tile(records []Record, numReads int) (*SampleSet, error) {
	if len(records) == 0 {
		return nil, ErrEmptySet
	}
	if numReads < 1 {
		return nil, ErrBadReads
	}

	var (
		q = numReads / len(records)
		r = numReads % len(records)
		n = len(records)
	)
	if q == 0 {
		n = r
	}

	out := &SampleSet{Records: make([]Record, n)}

	var i int
	for i = 0; i < n; i++ {
		out.Records[i] = Record{
			Assignment:     records[i].Assignment,
			Energy:         records[i].Energy,
			NumOccurrences: q,
		}
		if i < r {
			out.Records[i].NumOccurrences++
		}
	}

	return out, nil
}

// assignmentBytes views an assignment as a byte key for map aggregation.
func assignmentBytes(x []int8) []byte {
	b := make([]byte, len(x))

	var i int
	for i = 0; i < len(x); i++ {
		b[i] = byte(x[i])
	}

	return b
}

// lessAssignment is a lexicographic comparison over equal-length assignments.
func lessAssignment(a, b []int8) bool {
	var i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
