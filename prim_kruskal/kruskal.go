package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/lattice/visit"
)

// Kruskal computes a minimum spanning tree of g.
//
// Edges are sorted stably by cost, so equal-cost edges keep the order of
// g.EdgeRefs. Self-loops are skipped.
//
// Returns the tree edges (empty for a single node), their total cost, and
// ErrInvalidGraph or ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[NID, EID comparable, N, E any](
	g visit.Graph[NID, EID, N, E],
	cost func(E) int64,
) ([]visit.Edge[NID, EID, E], int64, error) {
	if g == nil || cost == nil {
		return nil, 0, ErrInvalidGraph
	}

	n := g.NodeCount()
	switch n {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []visit.Edge[NID, EID, E]{}, 0, nil
	}

	var edges []candidate[NID, EID, E]
	for e := range g.EdgeRefs() {
		u, okU := g.NodeIndex(e.Source)
		v, okV := g.NodeIndex(e.Target)
		if !okU || !okV || u == v {
			continue
		}
		edges = append(edges, candidate[NID, EID, E]{e: e, u: u, v: v, w: cost(e.Weight)})
	}
	slices.SortStableFunc(edges, func(a, b candidate[NID, EID, E]) int {
		switch {
		case a.w < b.w:
			return -1
		case a.w > b.w:
			return 1
		}
		return 0
	})

	ds := newDisjointSet(n)
	mst := make([]visit.Edge[NID, EID, E], 0, n-1)
	var total int64
	for _, c := range edges {
		if !ds.union(c.u, c.v) {
			continue
		}
		mst = append(mst, c.e)
		total += c.w
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is a physical edge with its endpoints' dense indices and cost.
type candidate[NID, EID comparable, E any] struct {
	e    visit.Edge[NID, EID, E]
	u, v int
	w    int64
}

// disjointSet is a union-find forest over dense indices with path halving
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
	return true
}
