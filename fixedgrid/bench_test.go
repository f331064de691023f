package fixedgrid_test

import (
	"testing"

	"github.com/katalvlaran/lattice/fixedgrid"
)

// BenchmarkNew measures construction of a 1000×1000 grid.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = fixedgrid.New(1000, 1000, func(r, c int) int { return r ^ c })
	}
}

// BenchmarkRowAccess sums a 1000×1000 grid through row views.
func BenchmarkRowAccess(b *testing.B) {
	g, err := fixedgrid.New(1000, 1000, func(r, c int) int { return r ^ c })
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, row := range g.Rows() {
			for _, x := range row {
				sum += x
			}
		}
		_ = sum
	}
}
