// Package elimtree builds junction trees from a QUBO interaction graph and
// an elimination order, and reports the induced treewidth.
//
// 🚀 What is an elimination tree?
//
//	Processing the order left to right, eliminating variable v forms the
//	bag {v} ∪ N(v) over the not-yet-eliminated neighbors of v, connects
//	those neighbors pairwise (fill-in), and parents the bag to the bag of
//	the earliest-eliminated remaining neighbor. The resulting cluster tree
//	satisfies the running-intersection property and organizes exact
//	dynamic-programming elimination (see package infer).
//
// ✨ Key features:
//   - strict order validation: the order must be a permutation of 0..n−1
//   - structural guard: max bag size must not exceed the caller's
//     max-complexity bound (treewidth + 1), rejected with a diagnostic
//   - deterministic min-fill heuristic for callers without an order
//   - a built Tree is read-only and safe to share across goroutines
//
// ⚙️ Usage:
//
//	order := elimtree.MinFillOrder(m)
//	t, err := elimtree.Build(m, order, 8) // treewidth bound 7
//	if err != nil {
//	  // errors.Is(err, elimtree.ErrTreewidthExceeded) ⇒ try a better order
//	}
//	w := t.Width()
//
// Performance:
//
//   - Build:        O(n·w²) with w = induced width (fill-in dominates)
//   - MinFillOrder: O(n²·w²) worst case; heuristic quality, not optimality
//
// See example_test.go for runnable scenarios.
package elimtree
