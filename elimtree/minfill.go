// Package elimtree - deterministic min-fill elimination order heuristic.
//
// MinFillOrder is a convenience for callers without a precomputed order; it
// is a greedy heuristic, not an optimal-width solver. The produced order is
// always a valid permutation, so Build accepts it directly.
package elimtree

import "github.com/katalvlaran/lvlqubo/qubo"

// MinFillOrder produces an elimination order by repeatedly eliminating the
// variable whose elimination adds the fewest fill edges, breaking ties by
// lowest variable index for determinism.
//
// Complexity: O(n²·w²) worst case with w the running neighborhood size.
func MinFillOrder(m *qubo.Model) []int {
	var n = m.NumVariables()
	order := make([]int, 0, n)

	// Mutable adjacency copy; elimination adds fill edges as it proceeds.
	adj := make([]map[int]struct{}, n)
	alive := make([]bool, n)

	var v, u, w int
	for v = 0; v < n; v++ {
		alive[v] = true
		adj[v] = make(map[int]struct{}, len(m.Adjacency()[v]))
		for _, u = range m.Adjacency()[v] {
			adj[v][u] = struct{}{}
		}
	}

	var (
		step     int
		best     int // candidate with minimal fill this step
		bestFill int
		fill     int
		nbrs     []int // scratch: live neighbors of the candidate
		i, j     int
	)
	for step = 0; step < n; step++ {
		best = -1
		bestFill = 0

		for v = 0; v < n; v++ {
			if !alive[v] {
				continue
			}
			fill = fillCount(adj, alive, v)
			// Strict < keeps the lowest index on ties.
			if best < 0 || fill < bestFill {
				best = v
				bestFill = fill
			}
		}

		// Eliminate best: clique its live neighborhood, then retire it.
		nbrs = nbrs[:0]
		for u = range adj[best] {
			if alive[u] {
				nbrs = append(nbrs, u)
			}
		}
		for i = 0; i < len(nbrs); i++ {
			for j = i + 1; j < len(nbrs); j++ {
				u, w = nbrs[i], nbrs[j]
				adj[u][w] = struct{}{}
				adj[w][u] = struct{}{}
			}
		}
		alive[best] = false
		order = append(order, best)
	}

	return order
}

// fillCount reports how many missing edges eliminating v would add among
// its live neighbors.
func fillCount(adj []map[int]struct{}, alive []bool, v int) int {
	nbrs := make([]int, 0, len(adj[v]))

	var u int
	for u = range adj[v] {
		if alive[u] {
			nbrs = append(nbrs, u)
		}
	}

	var (
		count int
		i, j  int
		ok    bool
	)
	for i = 0; i < len(nbrs); i++ {
		for j = i + 1; j < len(nbrs); j++ {
			if _, ok = adj[nbrs[i]][nbrs[j]]; !ok {
				count++
			}
		}
	}

	return count
}
