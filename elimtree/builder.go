// Package elimtree - junction tree construction from an elimination order.
//
// Design principles:
//   - Deterministic: sorted bags, positional parenting, no map-order leaks.
//   - Strict sentinels: only errors from types.go; the width diagnostic wraps
//     ErrTreewidthExceeded and stays errors.Is-testable.
//   - Fail before work: order and bound are validated before any allocation
//     proportional to 2^width happens downstream.
package elimtree

import (
	"sort"

	"github.com/katalvlaran/lvlqubo/qubo"
)

// Build constructs the junction tree for m under the given elimination
// order and enforces the structural width bound.
//
// Contracts:
//   - order must be a permutation of 0..n−1 (ErrBadOrder otherwise).
//   - maxComplexity ≥ 1 is the largest admissible bag size, i.e.
//     treewidth bound + 1 (ErrBadComplexity / ErrTreewidthExceeded).
//   - n == 0 yields a valid empty tree of width −1.
//
// Complexity: O(n·w²) time with w the induced width, O(n·w) space.
func Build(m *qubo.Model, order []int, maxComplexity int) (*Tree, error) {
	if maxComplexity < 1 {
		return nil, ErrBadComplexity
	}

	var n = m.NumVariables()
	if err := validateOrder(order, n); err != nil {
		return nil, err
	}

	t := &Tree{
		Clusters: make([]Cluster, n),
		Position: make([]int, n),
		width:    -1,
	}

	var k, v int
	for k = 0; k < n; k++ {
		t.Position[order[k]] = k
	}

	// Working adjacency sets; fill-in mutates them, so copy from the model.
	adj := make([]map[int]struct{}, n)
	for v = 0; v < n; v++ {
		adj[v] = make(map[int]struct{}, len(m.Adjacency()[v]))
		for _, u := range m.Adjacency()[v] {
			adj[v][u] = struct{}{}
		}
	}

	var (
		bag    []int // scratch: current bag under construction
		u, w   int
		i, j   int
		parent int
	)
	for k = 0; k < n; k++ {
		v = order[k]

		// Bag = {v} ∪ remaining neighbors of v (those eliminated later).
		bag = bag[:0]
		bag = append(bag, v)
		for u = range adj[v] {
			if t.Position[u] > k {
				bag = append(bag, u)
			}
		}
		sort.Ints(bag)

		if len(bag) > maxComplexity {
			return nil, widthError(len(bag)-1, maxComplexity-1)
		}
		if len(bag)-1 > t.width {
			t.width = len(bag) - 1
		}

		// Separator and parent: earliest-eliminated remaining neighbor.
		sep := make([]int, 0, len(bag)-1)
		parent = -1
		for i = 0; i < len(bag); i++ {
			if bag[i] == v {
				continue
			}
			sep = append(sep, bag[i])
			if parent < 0 || t.Position[bag[i]] < parent {
				parent = t.Position[bag[i]]
			}
		}

		// Fill-in: the remaining neighbors become a clique.
		for i = 0; i < len(sep); i++ {
			for j = i + 1; j < len(sep); j++ {
				u, w = sep[i], sep[j]
				adj[u][w] = struct{}{}
				adj[w][u] = struct{}{}
			}
		}

		t.Clusters[k] = Cluster{
			Eliminated: v,
			Bag:        append([]int(nil), bag...),
			Separator:  sep,
			Parent:     parent,
		}
	}

	// Children links in a second pass: a parent cluster is created after all
	// of its children (parents sit later in the elimination order).
	for k = 0; k < n; k++ {
		if p := t.Clusters[k].Parent; p >= 0 {
			t.Clusters[p].Children = append(t.Clusters[p].Children, k)
		}
	}

	return t, nil
}

// validateOrder enforces that order is a permutation of 0..n−1.
//
// Complexity: O(n) time, O(n) space.
func validateOrder(order []int, n int) error {
	if len(order) != n {
		return ErrBadOrder
	}
	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n || seen[v] {
			return ErrBadOrder
		}
		seen[v] = true
	}

	return nil
}
