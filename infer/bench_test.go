package infer_test

import (
	"testing"

	"github.com/katalvlaran/lvlqubo/elimtree"
	"github.com/katalvlaran/lvlqubo/infer"
	"github.com/katalvlaran/lvlqubo/qubo"
)

// benchChain builds a deterministic n-variable chain and its width-1 tree.
func benchChain(b *testing.B, n int) (*qubo.Model, *elimtree.Tree) {
	b.Helper()

	lin := make(map[int]float64, n)
	quad := make(map[[2]int]float64, n-1)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		lin[i] = float64(i%3-1) * 0.5
		order[i] = i
	}
	for i := 0; i+1 < n; i++ {
		j := 1.0
		if i%2 == 1 {
			j = -1.0
		}
		quad[[2]int{i, i + 1}] = j
	}

	m, err := qubo.NewFromTerms(n, lin, quad, 0)
	if err != nil {
		b.Fatalf("NewFromTerms failed: %v", err)
	}

	t, err := elimtree.Build(m, order, 2)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	return m, t
}

// benchmarkSolve runs the exact k-best pass over an n-variable chain.
func benchmarkSolve(b *testing.B, n, k int) {
	m, t := benchChain(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := infer.Solve(m, t, k); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Top1 benchmarks the ground-state pass on a 64-variable chain.
func BenchmarkSolve_Top1(b *testing.B) {
	benchmarkSolve(b, 64, 1)
}

// BenchmarkSolve_Top10 benchmarks a 10-best pass on a 64-variable chain.
func BenchmarkSolve_Top10(b *testing.B) {
	benchmarkSolve(b, 64, 10)
}

// BenchmarkSolve_Wide benchmarks the ground-state pass on a 512-variable chain.
func BenchmarkSolve_Wide(b *testing.B) {
	benchmarkSolve(b, 512, 1)
}

// BenchmarkSample_Marginals benchmarks the full probabilistic pass, forward
// elimination plus calibration plus one draw, on a 64-variable chain.
func BenchmarkSample_Marginals(b *testing.B) {
	m, t := benchChain(b, 64)

	opts := infer.DefaultSampleOptions()
	opts.Beta = 1
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := infer.Sample(m, t, opts); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// BenchmarkSample_DrawsOnly benchmarks repeated draws without marginals.
func BenchmarkSample_DrawsOnly(b *testing.B) {
	m, t := benchChain(b, 64)

	opts := infer.DefaultSampleOptions()
	opts.Beta = 1
	opts.NumReads = 16
	opts.Marginals = false
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := infer.Sample(m, t, opts); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}
