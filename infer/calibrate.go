// Package infer - belief calibration for exact marginals.
//
// After the forward pass, a single root-to-leaf sweep turns each cluster's
// table into a calibrated belief: forward potential plus the downward
// message from its parent. Normalizing a belief over its bag yields the
// exact joint distribution of the bag's variables, which is where both the
// single-variable and the pairwise interaction marginals are read off —
// exact quantities for the given beta, never sample estimates.
//
// The downward message to child c is the parent's belief marginalized onto
// c's separator with c's own upward message divided out (subtracted in the
// log domain), the standard two-pass junction-tree calibration.
package infer

import (
	"math"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// calibrate computes P(x_i = 1) for every variable and the four joint
// configuration probabilities for every nonzero interaction of m.
func calibrate(m *qubo.Model, t *elimtree.Tree, fw *forward) ([]float64, map[[2]int]PairProbs) {
	var (
		n = len(t.Clusters)

		// msgDown[c] is over cluster c's separator; roots get the empty
		// message. Filled by the parent before c is visited (reverse order).
		msgDown = make([][]float64, n)

		// beliefs[c] holds the normalized probabilities over c's bag.
		beliefs = make([][]float64, n)

		c, cfg, ci int
		sh         *clusterShape
		children   []int
		belief     []float64
		norm       float64
	)
	for c = 0; c < n; c++ {
		if t.Clusters[c].Parent < 0 {
			msgDown[c] = []float64{0}
		}
	}

	for c = n - 1; c >= 0; c-- {
		sh = &fw.shapes[c]
		children = t.Clusters[c].Children

		// Log belief = forward potential + downward message (by sep cfg).
		belief = make([]float64, len(fw.logPot[c]))
		for cfg = 0; cfg < len(belief); cfg++ {
			belief[cfg] = fw.logPot[c][cfg] + msgDown[c][sh.sepCfgOf(cfg)]
		}

		// Downward messages to children: marginalize the belief onto each
		// child's separator and divide out that child's upward message.
		for ci = 0; ci < len(children); ci++ {
			down := make([]float64, 1<<uint(len(sh.childBits[ci])))
			for s := range down {
				down[s] = math.Inf(-1)
			}
			for cfg = 0; cfg < len(belief); cfg++ {
				s := sh.childCfgOf(cfg, ci)
				down[s] = logAddExp(down[s], belief[cfg])
			}
			for s := range down {
				down[s] -= fw.msgUp[children[ci]][s]
			}
			msgDown[children[ci]] = down
		}

		// Normalize into probabilities over the bag.
		norm = math.Inf(-1)
		for cfg = 0; cfg < len(belief); cfg++ {
			norm = logAddExp(norm, belief[cfg])
		}
		for cfg = 0; cfg < len(belief); cfg++ {
			belief[cfg] = math.Exp(belief[cfg] - norm)
		}
		beliefs[c] = belief
	}

	// Variable marginals from the cluster that eliminates each variable.
	varMarg := make([]float64, n)

	var v int
	for c = 0; c < n; c++ {
		sh = &fw.shapes[c]
		v = t.Clusters[c].Eliminated
		for cfg = 0; cfg < len(beliefs[c]); cfg++ {
			if (cfg>>uint(sh.elimBit))&1 == 1 {
				varMarg[v] += beliefs[c][cfg]
			}
		}
	}

	// Interaction marginals from the cluster eliminating the earlier
	// endpoint: its bag contains both endpoints of an original edge.
	pairMarg := make(map[[2]int]PairProbs, len(m.Interactions()))

	var (
		pair   [2]int
		host   int
		iB, jB int
		pp     PairProbs
		a, b   int
	)
	for _, pair = range m.Interactions() {
		host = t.Position[pair[0]]
		if t.Position[pair[1]] < host {
			host = t.Position[pair[1]]
		}
		iB = bitOf(t.Clusters[host].Bag, pair[0])
		jB = bitOf(t.Clusters[host].Bag, pair[1])

		pp = PairProbs{}
		for cfg = 0; cfg < len(beliefs[host]); cfg++ {
			a = (cfg >> uint(iB)) & 1
			b = (cfg >> uint(jB)) & 1
			pp[a][b] += beliefs[host][cfg]
		}
		pairMarg[pair] = pp
	}

	return varMarg, pairMarg
}
