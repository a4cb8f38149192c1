// Package infer - probabilistic mode: Boltzmann sampling ("sample").
//
// Forward pass (leaf to root): every cluster's table holds log potentials
// over its full 2^|bag| configs — the cluster-owned energy scaled by −beta
// plus the children's upward messages. Eliminating the cluster's unique
// variable is a log-sum-exp, so the message is a sum-product one and no
// truncation ever happens. Root reductions accumulate the log partition
// function.
//
// Backward pass (root to leaf), once per read: walking clusters in reverse
// elimination order guarantees every separator variable is already fixed,
// so each step draws one variable from its exact conditional. Reads are
// independent given the shared read-only forward tables and run in
// parallel, one RNG substream each.
package infer

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// forward holds the finalized forward-pass state shared by all reads.
type forward struct {
	shapes []clusterShape
	logPot [][]float64 // per cluster: log potentials over 2^|bag|
	msgUp  [][]float64 // per cluster: upward message over 2^|sep|
	logZ   float64
}

// Sample draws opts.NumReads independent assignments from the Boltzmann
// distribution P(x) ∝ exp(−beta·E(x)) and reports the log partition
// function, plus exact marginals when requested.
//
// Contracts:
//   - opts.Beta > 0 and finite; opts.NumReads ≥ 1; t built from m.
//   - Fixed non-negative seeds reproduce the draws bit-for-bit.
//
// Errors: ErrBadBeta, ErrBadNumReads, ErrTreeMismatch.
//
// Complexity: O(Σ 2^|bag|) forward pass, O(n) per draw, draws parallel.
func Sample(m *qubo.Model, t *elimtree.Tree, opts SampleOptions) (*SampleResult, error) {
	if !(opts.Beta > 0) || math.IsInf(opts.Beta, 0) {
		return nil, ErrBadBeta
	}
	if opts.NumReads < 1 {
		return nil, ErrBadNumReads
	}

	var n = m.NumVariables()
	if len(t.Position) != n {
		return nil, ErrTreeMismatch
	}

	res := &SampleResult{
		Assignments: make([][]int8, opts.NumReads),
		Energies:    make([]float64, opts.NumReads),
	}

	// Degenerate model: empty draws, logZ = −beta·offset, empty marginals.
	if n == 0 {
		res.LogPartitionFunction = -opts.Beta * m.Offset()
		for i := 0; i < opts.NumReads; i++ {
			res.Assignments[i] = []int8{}
			res.Energies[i] = m.Offset()
		}
		if opts.Marginals {
			res.VariableMarginals = []float64{}
			res.InteractionMarginals = map[[2]int]PairProbs{}
		}

		return res, nil
	}

	fw := forwardPass(m, t, opts.Beta)
	res.LogPartitionFunction = fw.logZ

	if opts.Marginals {
		res.VariableMarginals, res.InteractionMarginals = calibrate(m, t, fw)
	}

	// Derive all read substreams up front so parallel scheduling cannot
	// change which stream serves which read.
	var (
		parent = sampleSeed(opts.Seed)
		rngs   = make([]*rand.Rand, opts.NumReads)
		g      errgroup.Group
		read   int
	)
	for read = 0; read < opts.NumReads; read++ {
		rngs[read] = rand.New(rand.NewSource(mixSeed(parent, uint64(read))))
	}
	g.SetLimit(runtime.GOMAXPROCS(0))

	for read = 0; read < opts.NumReads; read++ {
		read := read
		g.Go(func() error {
			x := drawAssignment(t, fw, rngs[read])
			e, err := m.Energy(x)
			if err != nil {
				return err
			}
			res.Assignments[read] = x
			res.Energies[read] = e

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// forwardPass builds the log-potential tables and upward messages.
func forwardPass(m *qubo.Model, t *elimtree.Tree, beta float64) *forward {
	var (
		n  = len(t.Clusters)
		fw = &forward{
			shapes: shapeTree(m, t),
			logPot: make([][]float64, n),
			msgUp:  make([][]float64, n),
			logZ:   -beta * m.Offset(),
		}

		c, cfg, ci int
		sh         *clusterShape
		children   []int
		pot        []float64
	)
	for c = 0; c < n; c++ {
		sh = &fw.shapes[c]
		children = t.Clusters[c].Children

		pot = make([]float64, len(sh.local))
		for cfg = 0; cfg < len(pot); cfg++ {
			pot[cfg] = -beta * sh.local[cfg]
			for ci = 0; ci < len(children); ci++ {
				pot[cfg] += fw.msgUp[children[ci]][sh.childCfgOf(cfg, ci)]
			}
		}
		fw.logPot[c] = pot

		// Eliminate the unique variable: log-sum-exp onto the separator.
		msg := make([]float64, 1<<uint(len(sh.sepBits)))
		for s := range msg {
			msg[s] = logAddExp(pot[sh.composeCfg(s, 0)], pot[sh.composeCfg(s, 1)])
		}
		fw.msgUp[c] = msg

		if t.Clusters[c].Parent < 0 {
			fw.logZ += msg[0]
		}
	}

	return fw
}

// drawAssignment performs one top-down conditional draw. Reverse
// elimination order visits parents before children, so every cluster sees
// its separator already fixed and draws its unique variable from
// P(v | separator) read straight off the forward table.
func drawAssignment(t *elimtree.Tree, fw *forward, rng *rand.Rand) []int8 {
	var (
		x      = make([]int8, len(t.Clusters))
		c      int
		sh     *clusterShape
		sepCfg int
		l0, l1 float64
		p1     float64
	)
	for c = len(t.Clusters) - 1; c >= 0; c-- {
		sh = &fw.shapes[c]

		sepCfg = 0
		for tpos := 0; tpos < len(sh.sepBits); tpos++ {
			sepCfg |= int(x[t.Clusters[c].Separator[tpos]]) << uint(tpos)
		}

		l0 = fw.logPot[c][sh.composeCfg(sepCfg, 0)]
		l1 = fw.logPot[c][sh.composeCfg(sepCfg, 1)]
		// P(v=1 | sep) = 1 / (1 + exp(l0 − l1)), computed stably.
		p1 = 1 / (1 + math.Exp(l0-l1))

		if rng.Float64() < p1 {
			x[t.Clusters[c].Eliminated] = 1
		}
	}

	return x
}

// sampleSeed resolves the seed policy: negative ⇒ time-derived.
func sampleSeed(seed int64) int64 {
	if seed < 0 {
		return time.Now().UnixNano()
	}

	return seed
}

// mixSeed is a SplitMix64-style finalizer decorrelating read substreams.
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
