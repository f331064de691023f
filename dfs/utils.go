package dfs

import (
	"cmp"
	"slices"
)

// Reverse returns a new slice containing the elements of s in reverse order.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// MinimalRotation returns the lexicographically minimal rotation of s
// using Booth's algorithm in O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := append(slices.Clone(s), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}

// canonical returns the minimal rotation of cycle or of its reverse,
// whichever is smaller. cycle is open (no repeated endpoint).
func canonical[T cmp.Ordered](cycle []T) []T {
	fwd := MinimalRotation(cycle)
	bwd := MinimalRotation(Reverse(cycle))
	if slices.Compare(bwd, fwd) < 0 {
		return bwd
	}

	return fwd
}
