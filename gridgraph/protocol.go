package gridgraph

import (
	"iter"

	"github.com/katalvlaran/lattice/visit"
)

var _ visit.Graph[NodeIndex, EdgeIndex, int, int] = (*Graph[int, int])(nil)

// NodeIndex implements visit.Graph.
func (g *Graph[N, E]) NodeIndex(n NodeIndex) (int, bool) { return g.ToIndex(n) }

// NodeAt implements visit.Graph. It panics when i is outside
// [0, NodeCount()).
func (g *Graph[N, E]) NodeAt(i int) NodeIndex {
	n, ok := g.FromIndex(i)
	if !ok {
		panic(ErrOutOfBounds)
	}

	return n
}

// Neighbors implements visit.Graph.
func (g *Graph[N, E]) Neighbors(n NodeIndex) iter.Seq[NodeIndex] {
	return seq(g.NeighborsOf(n).Next)
}

// Edges implements visit.Graph.
func (g *Graph[N, E]) Edges(n NodeIndex) iter.Seq[visit.Edge[NodeIndex, EdgeIndex, E]] {
	return toVisit(g.EdgesFrom(n).Next)
}

// Nodes implements visit.Graph.
func (g *Graph[N, E]) Nodes() iter.Seq[NodeIndex] { return seq(g.NodeIndices().Next) }

// EdgeRefs implements visit.Graph.
func (g *Graph[N, E]) EdgeRefs() iter.Seq[visit.Edge[NodeIndex, EdgeIndex, E]] {
	return toVisit(g.EdgeReferences().Next)
}

// NewVisitMap implements visit.Graph.
func (g *Graph[N, E]) NewVisitMap() visit.VisitMap[NodeIndex] { return g.VisitMap() }

func toVisit[E any](next func() (EdgeRef[E], bool)) iter.Seq[visit.Edge[NodeIndex, EdgeIndex, E]] {
	return func(yield func(visit.Edge[NodeIndex, EdgeIndex, E]) bool) {
		for r, ok := next(); ok; r, ok = next() {
			if !yield(visit.Edge[NodeIndex, EdgeIndex, E]{ID: r.ID, Source: r.Source, Target: r.Target, Weight: *r.Weight}) {
				return
			}
		}
	}
}
