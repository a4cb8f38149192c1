// Package infer - shared cluster-table plumbing for both modes.
//
// Bag configurations are flat indexes: bit t of a config is the value of
// the t-th (ascending) bag variable, so a cluster's table is a plain
// []float64 of length 2^|bag|, one linearized buffer per cluster.
//
// Term ownership is exact-cover by construction: every linear term h[v]
// and every pairwise term J[v][u] belongs to the single cluster that
// eliminates the earlier of its endpoints; that bag contains both
// endpoints, so each term is counted exactly once across the tree.
package infer

import (
	"math"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// clusterShape precomputes the bit bookkeeping of one cluster: where the
// eliminated variable and the separator sit inside the bag, how bag
// configs project onto each child's separator, and the bag-local energy
// of every configuration.
type clusterShape struct {
	elimBit int   // position of the eliminated variable within bag
	sepBits []int // bag-bit position of each separator variable, sep order

	// childBits[ci][t] is the bag-bit position of child ci's t-th
	// separator variable; projecting a bag config through it yields the
	// child's separator config.
	childBits [][]int

	// local[cfg] is the energy owned by this cluster under bag config cfg:
	// x_v·(h[v] + Σ_{u ∈ bag} J[v][u]·x_u) for eliminated variable v.
	local []float64
}

// shapeTree derives the per-cluster shapes for a (model, tree) pair.
//
// Complexity: O(Σ 2^|bag|·|bag|) time.
func shapeTree(m *qubo.Model, t *elimtree.Tree) []clusterShape {
	shapes := make([]clusterShape, len(t.Clusters))

	var (
		k, i, ci int
		c        *elimtree.Cluster
		sh       *clusterShape
	)
	for k = 0; k < len(t.Clusters); k++ {
		c = &t.Clusters[k]
		sh = &shapes[k]
		sh.elimBit = bitOf(c.Bag, c.Eliminated)

		sh.sepBits = make([]int, len(c.Separator))
		for i = 0; i < len(c.Separator); i++ {
			sh.sepBits[i] = bitOf(c.Bag, c.Separator[i])
		}

		sh.childBits = make([][]int, len(c.Children))
		for ci = 0; ci < len(c.Children); ci++ {
			chSep := t.Clusters[c.Children[ci]].Separator
			sh.childBits[ci] = make([]int, len(chSep))
			for i = 0; i < len(chSep); i++ {
				sh.childBits[ci][i] = bitOf(c.Bag, chSep[i])
			}
		}

		sh.local = localEnergies(m, c)
	}

	return shapes
}

// localEnergies tabulates the cluster-owned energy for all 2^|bag| configs.
func localEnergies(m *qubo.Model, c *elimtree.Cluster) []float64 {
	var (
		b     = len(c.Bag)
		v     = c.Eliminated
		vBit  = bitOf(c.Bag, v)
		out   = make([]float64, 1<<uint(b))
		cfg   int
		i     int
		e     float64
		w     float64
		hv, _ = m.Linear(v)
	)
	for cfg = 0; cfg < len(out); cfg++ {
		if (cfg>>uint(vBit))&1 == 0 {
			continue // terms owned here all carry the factor x_v
		}
		e = hv
		for i = 0; i < b; i++ {
			if i == vBit || (cfg>>uint(i))&1 == 0 {
				continue
			}
			w, _ = m.Quadratic(v, c.Bag[i])
			e += w
		}
		out[cfg] = e
	}

	return out
}

// bitOf locates x inside the sorted bag; construction guarantees presence.
func bitOf(bag []int, x int) int {
	var i int
	for i = 0; i < len(bag); i++ {
		if bag[i] == x {
			return i
		}
	}

	return -1
}

// composeCfg rebuilds a bag config from a separator config plus the
// eliminated variable's value: separator bits spread to their bag
// positions, v lands on elimBit.
func (sh *clusterShape) composeCfg(sepCfg int, v int8) int {
	var (
		cfg = int(v) << uint(sh.elimBit)
		t   int
	)
	for t = 0; t < len(sh.sepBits); t++ {
		cfg |= ((sepCfg >> uint(t)) & 1) << uint(sh.sepBits[t])
	}

	return cfg
}

// sepCfgOf extracts the separator config out of a bag config.
func (sh *clusterShape) sepCfgOf(cfg int) int {
	var (
		s int
		t int
	)
	for t = 0; t < len(sh.sepBits); t++ {
		s |= ((cfg >> uint(sh.sepBits[t])) & 1) << uint(t)
	}

	return s
}

// childCfgOf projects a bag config onto child ci's separator config.
func (sh *clusterShape) childCfgOf(cfg, ci int) int {
	var (
		s    int
		t    int
		bits = sh.childBits[ci]
	)
	for t = 0; t < len(bits); t++ {
		s |= ((cfg >> uint(bits[t])) & 1) << uint(t)
	}

	return s
}

// logAddExp returns log(exp(a) + exp(b)) without overflow.
func logAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}

// capSolutions bounds k by the 2^n distinct assignments, overflow-safe.
func capSolutions(k, n int) int {
	if n >= 62 {
		return k
	}
	if total := 1 << uint(n); k > total {
		return total
	}

	return k
}
