// Package elimtree - core types and sentinel errors for tree decomposition.
package elimtree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction.
var (
	// ErrBadOrder indicates the elimination order is not a permutation of
	// the model's variables.
	ErrBadOrder = errors.New("elimtree: order is not a permutation of the model variables")
	// ErrBadComplexity indicates a non-positive max-complexity bound.
	ErrBadComplexity = errors.New("elimtree: max complexity must be positive")
	// ErrTreewidthExceeded indicates the induced width violates the bound.
	// Build wraps it with the offending width and bound; test with errors.Is.
	ErrTreewidthExceeded = errors.New("elimtree: induced treewidth exceeds bound")
)

// Cluster is one bag of the junction tree: the variable eliminated at this
// step plus its not-yet-eliminated (fill-in induced) neighbors.
//
// Invariants:
//   - Bag is sorted ascending and contains Eliminated.
//   - Separator == Bag \ {Eliminated}, sorted ascending.
//   - Parent is the cluster index of the earliest-eliminated separator
//     variable, or -1 for a component root (empty separator).
type Cluster struct {
	Eliminated int
	Bag        []int
	Separator  []int
	Parent     int
	Children   []int
}

// Tree is a junction tree over all model variables, clusters stored in
// elimination order (children always precede their parent). Read-only once
// built; safe for concurrent use.
type Tree struct {
	Clusters []Cluster

	// Position[v] is the elimination step of variable v, i.e. the index of
	// the cluster that eliminates v.
	Position []int

	width int // max bag size − 1, derived at build time
}

// Width reports the induced treewidth: max(|bag|) − 1, or −1 for an empty
// tree (zero variables).
func (t *Tree) Width() int { return t.width }

// Roots returns the indices of all component roots (Parent == -1) in
// elimination order. The slice is freshly allocated.
func (t *Tree) Roots() []int {
	out := make([]int, 0, 1)

	var i int
	for i = 0; i < len(t.Clusters); i++ {
		if t.Clusters[i].Parent < 0 {
			out = append(out, i)
		}
	}

	return out
}

// widthError attaches the offending width and bound to ErrTreewidthExceeded
// while remaining errors.Is-compatible with the sentinel.
func widthError(width, bound int) error {
	return fmt.Errorf("%w: induced treewidth %d > bound %d; supply a better order or raise the bound",
		ErrTreewidthExceeded, width, bound)
}
