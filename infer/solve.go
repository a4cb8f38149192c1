// Package infer - optimize mode: bounded top-k elimination ("solve").
//
// Design principles:
//   - Bounded tables: per cluster and separator config, at most k sorted
//     (energy, record) entries survive — a k-best merge, never a full
//     enumeration of the subtree's states.
//   - Parent-pointer reconstruction: each retained entry remembers the
//     eliminated variable's value and, per child, which of the child's
//     entries it consumed; full assignments are rebuilt top-down, the same
//     mechanism as the Held–Karp parent-table backtrace.
//   - Deterministic output: ascending energy, energy ties broken by the
//     lexicographically smaller assignment.
package infer

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// solveEntry is one retained partial record: the energy of the best
// completion of the cluster's subtree under a fixed separator config.
type solveEntry struct {
	energy float64
	value  int8    // eliminated variable's value
	picks  []int32 // per child (cluster child order): chosen entry index
}

// Solve returns up to maxSolutions lowest-energy assignments of m,
// ascending by energy, using the junction tree t.
//
// Contracts:
//   - maxSolutions ≥ 1; t was built from m (same variable count).
//   - Exact (global optimum first, full spectrum when maxSolutions ≥ 2^n)
//     whenever no intermediate table truncates; otherwise a
//     lower-energy-biased top-k approximation.
//
// Errors: ErrBadMaxSolutions, ErrTreeMismatch.
//
// Complexity: O(Σ_clusters 2^|sep|·k log k) time.
func Solve(m *qubo.Model, t *elimtree.Tree, maxSolutions int) ([]Solution, error) {
	if maxSolutions < 1 {
		return nil, ErrBadMaxSolutions
	}

	var n = m.NumVariables()
	if len(t.Position) != n {
		return nil, ErrTreeMismatch
	}

	k := capSolutions(maxSolutions, n)

	// Degenerate model: the single empty assignment at the offset energy.
	if n == 0 {
		return []Solution{{Assignment: []int8{}, Energy: m.Offset()}}, nil
	}

	var (
		shapes = shapeTree(m, t)
		// tables[c][sepCfg] is the sorted bounded entry list of cluster c.
		tables = make([][][]solveEntry, n)
		c      int
	)
	for c = 0; c < n; c++ {
		tables[c] = solveCluster(t, shapes, tables, c, k)
	}

	// Combine the forest roots: a k-best cross over their root entries.
	roots := t.Roots()
	global := []solveEntry{{energy: m.Offset(), picks: make([]int32, 0, len(roots))}}

	var ri int
	for ri = 0; ri < len(roots); ri++ {
		global = crossKBest(global, tables[roots[ri]][0], k)
	}

	// Reconstruct full assignments, then fix the deterministic order.
	out := make([]Solution, len(global))

	var gi int
	for gi = 0; gi < len(global); gi++ {
		x := make([]int8, n)
		for ri = 0; ri < len(roots); ri++ {
			backtrack(t, shapes, tables, roots[ri], int(global[gi].picks[ri]), x)
		}
		out[gi] = Solution{Assignment: x, Energy: global[gi].energy}
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Energy != out[b].Energy {
			return out[a].Energy < out[b].Energy
		}

		return lessAssignment(out[a].Assignment, out[b].Assignment)
	})

	return out, nil
}

// solveCluster builds cluster c's bounded tables from its children's.
func solveCluster(t *elimtree.Tree, shapes []clusterShape, tables [][][]solveEntry, c, k int) [][]solveEntry {
	var (
		sh       = &shapes[c]
		children = t.Clusters[c].Children
		nSep     = 1 << uint(len(sh.sepBits))
		lists    = make([][]solveEntry, nSep)

		sepCfg, bagCfg int
		v              int8
		ci             int
		cur, merged    []solveEntry
	)
	for sepCfg = 0; sepCfg < nSep; sepCfg++ {
		merged = merged[:0]

		for v = 0; v <= 1; v++ {
			bagCfg = sh.composeCfg(sepCfg, v)

			// Seed with the cluster-owned energy, then cross in each
			// child's alternatives for the induced child separator config.
			cur = []solveEntry{{
				energy: sh.local[bagCfg],
				value:  v,
				picks:  make([]int32, 0, len(children)),
			}}
			for ci = 0; ci < len(children); ci++ {
				cur = crossKBest(cur, tables[children[ci]][sh.childCfgOf(bagCfg, ci)], k)
			}

			merged = append(merged, cur...)
		}

		sort.SliceStable(merged, func(a, b int) bool { return merged[a].energy < merged[b].energy })
		if len(merged) > k {
			merged = merged[:k]
		}
		lists[sepCfg] = append([]solveEntry(nil), merged...)
	}

	return lists
}

// sumHeap drives the classic k-smallest-pairwise-sums merge of two sorted
// entry lists without materializing the full cross product.
type sumHeap struct {
	items []sumItem
}

type sumItem struct {
	energy float64
	ai, bi int // indexes into the two source lists
}

func (h *sumHeap) Len() int            { return len(h.items) }
func (h *sumHeap) Less(i, j int) bool  { return h.items[i].energy < h.items[j].energy }
func (h *sumHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *sumHeap) Push(x interface{})  { h.items = append(h.items, x.(sumItem)) }
func (h *sumHeap) Pop() interface{} {
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]

	return last
}

// crossKBest merges two ascending entry lists into the ≤ k best combined
// entries: energies add, the left entry's value carries over, and the
// right entry's index is appended to the picks.
//
// Complexity: O(k log k) time via the frontier heap.
func crossKBest(a, b []solveEntry, k int) []solveEntry {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	var (
		h       = &sumHeap{}
		visited = make(map[[2]int]struct{}, k*2)
		out     = make([]solveEntry, 0, k)
		it      sumItem
	)
	heap.Push(h, sumItem{energy: a[0].energy + b[0].energy})
	visited[[2]int{0, 0}] = struct{}{}

	for len(out) < k && h.Len() > 0 {
		it = heap.Pop(h).(sumItem)

		picks := make([]int32, 0, len(a[it.ai].picks)+1)
		picks = append(picks, a[it.ai].picks...)
		picks = append(picks, int32(it.bi))
		out = append(out, solveEntry{
			energy: it.energy,
			value:  a[it.ai].value,
			picks:  picks,
		})

		if it.ai+1 < len(a) {
			if _, ok := visited[[2]int{it.ai + 1, it.bi}]; !ok {
				visited[[2]int{it.ai + 1, it.bi}] = struct{}{}
				heap.Push(h, sumItem{energy: a[it.ai+1].energy + b[it.bi].energy, ai: it.ai + 1, bi: it.bi})
			}
		}
		if it.bi+1 < len(b) {
			if _, ok := visited[[2]int{it.ai, it.bi + 1}]; !ok {
				visited[[2]int{it.ai, it.bi + 1}] = struct{}{}
				heap.Push(h, sumItem{energy: a[it.ai].energy + b[it.bi+1].energy, ai: it.ai, bi: it.bi + 1})
			}
		}
	}

	return out
}

// backtrack resolves cluster c's eliminated variable for the chosen entry
// and recurses into its children; x accumulates the full assignment. The
// cluster's separator variables are always assigned before c is visited
// (they are resolved by ancestors), so the entry lookup is well defined.
func backtrack(t *elimtree.Tree, shapes []clusterShape, tables [][][]solveEntry, c, entryIdx int, x []int8) {
	var (
		sh     = &shapes[c]
		sepCfg int
		tpos   int
	)
	for tpos = 0; tpos < len(sh.sepBits); tpos++ {
		sepCfg |= int(x[t.Clusters[c].Separator[tpos]]) << uint(tpos)
	}

	e := tables[c][sepCfg][entryIdx]
	x[t.Clusters[c].Eliminated] = e.value

	var (
		children = t.Clusters[c].Children
		ci       int
	)
	for ci = 0; ci < len(children); ci++ {
		backtrack(t, shapes, tables, children[ci], int(e.picks[ci]), x)
	}
}

// lessAssignment is the lexicographic tie-break over equal energies.
func lessAssignment(a, b []int8) bool {
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
