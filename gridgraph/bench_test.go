package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lattice/gridgraph"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(h×v)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.New(n, n,
		func(int, int) int { return rng.Intn(5) },
		func(int, int, gridgraph.Axis) struct{} { return struct{}{} },
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(land)
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 300×300 grid with two
// 1-cell islands at opposite corners.
// Complexity: O(h×v)
func BenchmarkExpandIsland(b *testing.B) {
	const n = 300
	g, err := gridgraph.New(n, n,
		func(h, v int) int {
			if (h == 0 && v == 0) || (h == n-1 && v == n-1) {
				return 1
			}
			return 0
		},
		func(int, int, gridgraph.Axis) struct{} { return struct{}{} },
	)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.ExpandIsland(land, 0, 1)
	}
}

// BenchmarkEdgeReferences measures a full sweep of the physical edges.
func BenchmarkEdgeReferences(b *testing.B) {
	g, err := gridgraph.NewDefault[int, float64](512, 512, gridgraph.WithHorizontalLoop())
	if err != nil {
		b.Fatalf("setup NewDefault failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := g.EdgeReferences()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
