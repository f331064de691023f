package gridgraph

import "iter"

// edgeOrder is the probe order of EdgeIter: left, right, down, up.
var edgeOrder = [4]Direction{
	{Axis: Horizontal, Forward: false},
	{Axis: Horizontal, Forward: true},
	{Axis: Vertical, Forward: false},
	{Axis: Vertical, Forward: true},
}

// EdgeIter yields the edges leaving one node. It is a four-state walk
// probing left, right, down and up; each state yields at most one edge.
type EdgeIter[N, E any] struct {
	g     *Graph[N, E]
	node  NodeIndex
	state int
}

// EdgesFrom returns an iterator over the edges leaving n. A node outside
// the grid yields nothing.
// Complexity: O(1) per call to Next.
func (g *Graph[N, E]) EdgesFrom(n NodeIndex) *EdgeIter[N, E] {
	return &EdgeIter[N, E]{g: g, node: n}
}

// Next returns the next edge, or false when all four states are spent.
func (it *EdgeIter[N, E]) Next() (EdgeRef[E], bool) {
	for it.state < len(edgeOrder) {
		d := edgeOrder[it.state]
		it.state++
		if r, ok := it.g.EdgeReference(it.node, d); ok {
			return r, true
		}
	}

	return EdgeRef[E]{}, false
}

// EdgeReferences walks the two edge containers through the node-index
// sequence. For each node it reports the horizontal edge stored there,
// then the vertical one, so every physical edge appears exactly once and
// always as a forward traversal.
type EdgeReferences[N, E any] struct {
	g     *Graph[N, E]
	nodes *NodeIndices
	cur   NodeIndex
	state int // 0: fetch node, 1: horizontal, 2: vertical
}

// EdgeReferences returns an iterator over every physical edge.
// Complexity: O(h×v) for the whole walk.
func (g *Graph[N, E]) EdgeReferences() *EdgeReferences[N, E] {
	return &EdgeReferences[N, E]{g: g, nodes: g.NodeIndices()}
}

// Next returns the next physical edge, or false when exhausted.
func (it *EdgeReferences[N, E]) Next() (EdgeRef[E], bool) {
	for {
		switch it.state {
		case 0:
			n, ok := it.nodes.Next()
			if !ok {
				return EdgeRef[E]{}, false
			}
			it.cur = n
			it.state = 1
		case 1:
			it.state = 2
			if it.g.horizontal == nil {
				continue
			}
			if w := it.g.horizontal.Ptr(it.cur.H, it.cur.V); w != nil {
				return it.forward(Horizontal, w), true
			}
		default:
			it.state = 0
			if w := it.g.vertical.Ptr(it.cur.H, it.cur.V); w != nil {
				return it.forward(Vertical, w), true
			}
		}
	}
}

func (it *EdgeReferences[N, E]) forward(a Axis, w *E) EdgeRef[E] {
	target, _ := it.g.Move(it.cur, Forward(a))
	return EdgeRef[E]{ID: EdgeIndex{Node: it.cur, Axis: a}, Source: it.cur, Target: target, Forward: true, Weight: w}
}

// AllEdges returns the edges leaving n as an iter.Seq.
func (g *Graph[N, E]) AllEdges(n NodeIndex) iter.Seq[EdgeRef[E]] {
	return seq(g.EdgesFrom(n).Next)
}

// AllEdgeReferences returns every physical edge as an iter.Seq.
func (g *Graph[N, E]) AllEdgeReferences() iter.Seq[EdgeRef[E]] {
	return seq(g.EdgeReferences().Next)
}

// seq adapts a Next-style walk to an iter.Seq.
func seq[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, ok := next(); ok; x, ok = next() {
			if !yield(x) {
				return
			}
		}
	}
}
