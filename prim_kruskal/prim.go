package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lattice/visit"
)

// Prim computes a minimum spanning tree of g by growing it from root.
// Equal-cost candidates are taken in the order they were discovered.
//
// Returns ErrInvalidGraph, ErrRootNotFound or ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[NID, EID comparable, N, E any](
	g visit.Graph[NID, EID, N, E],
	root NID,
	cost func(E) int64,
) ([]visit.Edge[NID, EID, E], int64, error) {
	if g == nil || cost == nil {
		return nil, 0, ErrInvalidGraph
	}
	if _, ok := g.NodeIndex(root); !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}

	n := g.NodeCount()
	visited := g.NewVisitMap()
	mst := make([]visit.Edge[NID, EID, E], 0, n-1)
	var total int64

	pq := &edgePQ[NID, EID, E]{}
	push := func(u NID) {
		for e := range g.Edges(u) {
			if !visited.IsVisited(e.Target) {
				heap.Push(pq, &edgeItem[NID, EID, E]{e: e, w: cost(e.Weight), seq: pq.next})
				pq.next++
			}
		}
	}

	visited.Visit(root)
	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(*edgeItem[NID, EID, E])
		if !visited.Visit(it.e.Target) {
			continue
		}
		mst = append(mst, it.e)
		total += it.w
		push(it.e.Target)
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

type edgeItem[NID, EID comparable, E any] struct {
	e   visit.Edge[NID, EID, E]
	w   int64
	seq int
}

// edgePQ is a min-heap of candidate traversals ordered by cost, then by
// discovery order.
type edgePQ[NID, EID comparable, E any] struct {
	items []*edgeItem[NID, EID, E]
	next  int
}

func (pq *edgePQ[NID, EID, E]) Len() int { return len(pq.items) }

func (pq *edgePQ[NID, EID, E]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.w != b.w {
		return a.w < b.w
	}
	return a.seq < b.seq
}

func (pq *edgePQ[NID, EID, E]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ[NID, EID, E]) Push(x any) { pq.items = append(pq.items, x.(*edgeItem[NID, EID, E])) }

func (pq *edgePQ[NID, EID, E]) Pop() any {
	old := pq.items
	it := old[len(old)-1]
	pq.items = old[:len(old)-1]
	return it
}
