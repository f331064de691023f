package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lattice/gridgraph"
)

// BenchmarkBFS_Grid measures BFS over a 256×256 grid from a corner.
func BenchmarkBFS_Grid(b *testing.B) {
	g := grid(b, 256, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = run(g, gridgraph.Node(0, 0))
	}
}

// BenchmarkBFS_Torus measures BFS over a 256×256 torus.
func BenchmarkBFS_Torus(b *testing.B) {
	g := grid(b, 256, 256, gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = run(g, gridgraph.Node(128, 128))
	}
}
