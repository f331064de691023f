package gridgraph

// NeighborIter yields the nodes adjacent to one node, in the same order as
// EdgeIter: left, right, down, up.
type NeighborIter[N, E any] struct {
	edges EdgeIter[N, E]
}

// NeighborsOf returns an iterator over the neighbours of n.
func (g *Graph[N, E]) NeighborsOf(n NodeIndex) *NeighborIter[N, E] {
	return &NeighborIter[N, E]{edges: EdgeIter[N, E]{g: g, node: n}}
}

// Next returns the next neighbour, or false when exhausted.
func (it *NeighborIter[N, E]) Next() (NodeIndex, bool) {
	r, ok := it.edges.Next()
	return r.Target, ok
}
