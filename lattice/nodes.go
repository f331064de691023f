package lattice

// NodeIndices yields every coordinate in canonical index order.
type NodeIndices[C comparable, A Axis[A]] struct {
	s    Shape[C, A]
	next int
	n    int
}

// NodeIndices returns an iterator over all coordinates.
func (g *Graph[N, E, C, A]) NodeIndices() *NodeIndices[C, A] {
	return &NodeIndices[C, A]{s: g.s, n: g.NodeCount()}
}

// Next returns the next coordinate, or false when exhausted.
func (it *NodeIndices[C, A]) Next() (C, bool) {
	if it.next >= it.n {
		var zero C
		return zero, false
	}
	c, ok := FromIndex(it.s, it.next)
	it.next++

	return c, ok
}

// NodeRef pairs a coordinate with a pointer to its payload.
type NodeRef[N any, C comparable] struct {
	Coord  C
	Weight *N
}

// NodeReferences yields every node with its payload in canonical order.
type NodeReferences[N, E any, C comparable, A Axis[A]] struct {
	g   *Graph[N, E, C, A]
	ids *NodeIndices[C, A]
}

// NodeReferences returns an iterator over all nodes and payloads.
func (g *Graph[N, E, C, A]) NodeReferences() *NodeReferences[N, E, C, A] {
	return &NodeReferences[N, E, C, A]{g: g, ids: g.NodeIndices()}
}

// Next returns the next node, or false when exhausted.
func (it *NodeReferences[N, E, C, A]) Next() (NodeRef[N, C], bool) {
	c, ok := it.ids.Next()
	if !ok {
		return NodeRef[N, C]{}, false
	}

	return NodeRef[N, C]{Coord: c, Weight: it.g.NodeWeightPtr(c)}, true
}
