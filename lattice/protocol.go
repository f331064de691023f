package lattice

import (
	"iter"

	"github.com/katalvlaran/lattice/visit"
)

var _ visit.Graph[Offset, EdgeID[Offset, RectAxis], int, int] = (*Graph[int, int, Offset, RectAxis])(nil)

// NodeIndex implements visit.Graph.
func (g *Graph[N, E, C, A]) NodeIndex(c C) (int, bool) { return g.ToIndex(c) }

// NodeAt implements visit.Graph. It panics when i is outside
// [0, NodeCount()).
func (g *Graph[N, E, C, A]) NodeAt(i int) C {
	c, ok := g.FromIndex(i)
	if !ok {
		panic(ErrOutOfBounds)
	}

	return c
}

// Neighbors implements visit.Graph.
func (g *Graph[N, E, C, A]) Neighbors(c C) iter.Seq[C] {
	return func(yield func(C) bool) {
		it := g.NeighborsOf(c)
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges implements visit.Graph.
func (g *Graph[N, E, C, A]) Edges(c C) iter.Seq[visit.Edge[C, EdgeID[C, A], E]] {
	return toVisit(g.EdgesFrom(c).Next)
}

// Nodes implements visit.Graph.
func (g *Graph[N, E, C, A]) Nodes() iter.Seq[C] {
	return func(yield func(C) bool) {
		it := g.NodeIndices()
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// EdgeRefs implements visit.Graph.
func (g *Graph[N, E, C, A]) EdgeRefs() iter.Seq[visit.Edge[C, EdgeID[C, A], E]] {
	return toVisit(g.EdgeReferences().Next)
}

// NewVisitMap implements visit.Graph.
func (g *Graph[N, E, C, A]) NewVisitMap() visit.VisitMap[C] { return g.VisitMap() }

func toVisit[E any, C comparable, A Axis[A]](next func() (EdgeRef[E, C, A], bool)) iter.Seq[visit.Edge[C, EdgeID[C, A], E]] {
	return func(yield func(visit.Edge[C, EdgeID[C, A], E]) bool) {
		for r, ok := next(); ok; r, ok = next() {
			e := visit.Edge[C, EdgeID[C, A], E]{ID: r.ID(), Source: r.Source, Target: r.Target, Weight: *r.Weight}
			if !yield(e) {
				return
			}
		}
	}
}
