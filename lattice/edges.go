package lattice

import "iter"

// EdgeRef is one traversal of a physical edge: from Source to Target in
// direction Dir, with Weight pointing into the graph's edge storage.
type EdgeRef[E any, C comparable, A Axis[A]] struct {
	Source C
	Target C
	Dir    Direction[A]
	Weight *E
}

// ID returns the canonical address of the traversed edge.
func (r EdgeRef[E, C, A]) ID() EdgeID[C, A] {
	if r.Dir.IsForward() {
		return EdgeID[C, A]{Coord: r.Source, Axis: r.Dir.Axis()}
	}

	return EdgeID[C, A]{Coord: r.Target, Axis: r.Dir.Axis()}
}

// EdgeIter yields the edges leaving one node, probing directions in index
// order. An out-of-bounds source yields nothing.
type EdgeIter[N, E any, C comparable, A Axis[A]] struct {
	g     *Graph[N, E, C, A]
	src   C
	state int
	n     int
}

// EdgesFrom returns an iterator over the edges leaving c.
//
// Complexity: O(DirectedCount) for the whole walk.
func (g *Graph[N, E, C, A]) EdgesFrom(c C) *EdgeIter[N, E, C, A] {
	it := &EdgeIter[N, E, C, A]{g: g, src: c, n: DirectedCount[A]()}
	if _, err := g.s.ToOffset(c); err != nil {
		it.state = it.n
	}

	return it
}

// Next returns the next edge, or false when the walk is exhausted.
func (it *EdgeIter[N, E, C, A]) Next() (EdgeRef[E, C, A], bool) {
	for it.state < it.n {
		d, ok := DirectionFromIndex[A](it.state)
		it.state++
		if !ok {
			continue
		}
		id, target, ok := it.g.EdgeAddress(it.src, d)
		if !ok {
			continue
		}
		w := it.g.EdgeWeightPtr(id)
		if w == nil {
			continue
		}

		return EdgeRef[E, C, A]{Source: it.src, Target: target, Dir: d, Weight: w}, true
	}

	return EdgeRef[E, C, A]{}, false
}

// EdgeReferences walks every physical edge exactly once, in canonical
// node order and, per node, in axis order. Each edge is reported as its
// forward traversal.
type EdgeReferences[N, E any, C comparable, A Axis[A]] struct {
	g    *Graph[N, E, C, A]
	node int
	axis int
	n    int
	cnt  int
}

// EdgeReferences returns an iterator over all physical edges.
//
// Complexity: O(NodeCount · COUNT).
func (g *Graph[N, E, C, A]) EdgeReferences() *EdgeReferences[N, E, C, A] {
	return &EdgeReferences[N, E, C, A]{g: g, n: g.NodeCount(), cnt: axisCount[A]()}
}

// Next returns the next physical edge, or false when exhausted.
func (it *EdgeReferences[N, E, C, A]) Next() (EdgeRef[E, C, A], bool) {
	for it.node < it.n {
		c, _ := it.g.FromIndex(it.node)
		for it.axis < it.cnt {
			a, ok := axisAt[A](it.axis)
			it.axis++
			if !ok {
				continue
			}
			d := Forward(a)
			id, target, ok := it.g.EdgeAddress(c, d)
			if !ok {
				continue
			}
			if w := it.g.EdgeWeightPtr(id); w != nil {
				return EdgeRef[E, C, A]{Source: c, Target: target, Dir: d, Weight: w}, true
			}
		}
		it.axis = 0
		it.node++
	}

	return EdgeRef[E, C, A]{}, false
}

// seqEdges adapts a Next-style edge walk to an iter.Seq.
func seqEdges[E any, C comparable, A Axis[A]](next func() (EdgeRef[E, C, A], bool)) iter.Seq[EdgeRef[E, C, A]] {
	return func(yield func(EdgeRef[E, C, A]) bool) {
		for r, ok := next(); ok; r, ok = next() {
			if !yield(r) {
				return
			}
		}
	}
}

// AllEdges returns the edges leaving c as an iter.Seq.
func (g *Graph[N, E, C, A]) AllEdges(c C) iter.Seq[EdgeRef[E, C, A]] {
	return seqEdges(g.EdgesFrom(c).Next)
}

// AllEdgeReferences returns every physical edge as an iter.Seq.
func (g *Graph[N, E, C, A]) AllEdgeReferences() iter.Seq[EdgeRef[E, C, A]] {
	return seqEdges(g.EdgeReferences().Next)
}
