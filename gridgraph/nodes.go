package gridgraph

// NodeIndices yields every node in row-major order.
type NodeIndices struct {
	h, v int
	next NodeIndex
}

// NodeIndices returns an iterator over all nodes.
func (g *Graph[N, E]) NodeIndices() *NodeIndices {
	return &NodeIndices{h: g.nodes.HSize(), v: g.nodes.VSize()}
}

// Next returns the next node, or false when exhausted.
func (it *NodeIndices) Next() (NodeIndex, bool) {
	if it.v == 0 || it.next.H >= it.h {
		return NodeIndex{}, false
	}
	n := it.next
	it.next.V++
	if it.next.V == it.v {
		it.next.V = 0
		it.next.H++
	}

	return n, true
}

// NodeRef pairs a node with a pointer to its payload.
type NodeRef[N any] struct {
	Index  NodeIndex
	Weight *N
}

// NodeReferences yields every node with its payload in row-major order.
type NodeReferences[N, E any] struct {
	g   *Graph[N, E]
	ids *NodeIndices
}

// NodeReferences returns an iterator over all nodes and payloads.
func (g *Graph[N, E]) NodeReferences() *NodeReferences[N, E] {
	return &NodeReferences[N, E]{g: g, ids: g.NodeIndices()}
}

// Next returns the next node, or false when exhausted.
func (it *NodeReferences[N, E]) Next() (NodeRef[N], bool) {
	n, ok := it.ids.Next()
	if !ok {
		return NodeRef[N]{}, false
	}

	return NodeRef[N]{Index: n, Weight: it.g.nodes.PtrUnchecked(n.H, n.V)}, true
}
