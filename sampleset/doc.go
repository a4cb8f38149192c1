// Package sampleset packages solver and sampler outputs as energy-tagged
// assignment records with occurrence counts.
//
// A SampleSet is either positional (one record per read, in read order) or
// aggregated (distinct assignments merged, ascending energy). Tile spreads
// a read budget deterministically over a fixed record list: every record
// receives ⌊reads/len⌋ occurrences and the first reads%len records (lowest
// energy first) receive one extra, so the counts always sum to reads.
// Records that would receive zero occurrences are dropped.
package sampleset
