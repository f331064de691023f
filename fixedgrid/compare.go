package fixedgrid

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Equal reports whether a and b have the same row count and the same
// flattened contents. Two nil grids are equal.
func Equal[T comparable](a, b *Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Grid[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.h != b.h {
		return false
	}

	return slices.EqualFunc(a.data, b.data, eq)
}

// Compare orders grids by row count, then lexicographically by flattened
// contents. It returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Grid[T]) int {
	if c := cmp.Compare(a.h, b.h); c != 0 {
		return c
	}

	return slices.Compare(a.data, b.data)
}

// Hash returns a structural hash of g over its row count and flattened
// contents. Grids that are Equal hash equally under the same seed.
// Complexity: O(h×v).
func Hash[T comparable](g *Grid[T], seed maphash.Seed) uint64 {
	var mh maphash.Hash
	mh.SetSeed(seed)
	maphash.WriteComparable(&mh, g.h)
	for _, x := range g.data {
		maphash.WriteComparable(&mh, x)
	}

	return mh.Sum64()
}
