package lattice

// NeighborIter yields the coordinates one legal move away from a node,
// in direction index order. It follows the same walk as EdgeIter, so the
// number of neighbours equals the number of edges leaving the node.
type NeighborIter[N, E any, C comparable, A Axis[A]] struct {
	edges *EdgeIter[N, E, C, A]
}

// NeighborsOf returns an iterator over the neighbours of c.
func (g *Graph[N, E, C, A]) NeighborsOf(c C) *NeighborIter[N, E, C, A] {
	return &NeighborIter[N, E, C, A]{edges: g.EdgesFrom(c)}
}

// Next returns the next neighbour, or false when exhausted.
func (it *NeighborIter[N, E, C, A]) Next() (C, bool) {
	r, ok := it.edges.Next()
	return r.Target, ok
}
