package visit

import "iter"

// Edge is one directed traversal of an edge: from Source to Target over the
// physical edge ID carrying Weight. An undirected edge is reported once from
// each endpoint by Graph.Edges and once in total by Graph.EdgeRefs.
type Edge[NID, EID comparable, E any] struct {
	ID     EID // canonical id of the physical edge
	Source NID // endpoint the traversal starts from
	Target NID // endpoint the traversal ends at
	Weight E   // edge payload
}

// VisitMap is a visited set keyed by node id.
type VisitMap[NID comparable] interface {
	// Visit marks id and reports whether this was its first visit.
	// Ids outside the graph are never recorded and report false.
	Visit(id NID) bool

	// IsVisited reports whether id has been marked.
	IsVisited(id NID) bool

	// Reset clears every mark.
	Reset()
}

// Graph is the read-only traversal protocol.
//
// NodeIndex and NodeAt form a bijection between [0, NodeCount()) and the
// valid node ids. Lookups of ids outside the graph report false rather than
// panicking.
type Graph[NID, EID comparable, N, E any] interface {
	// NodeCount returns the number of nodes.
	NodeCount() int

	// NodeIndex returns the dense index of id, or false if id is not a node.
	NodeIndex(id NID) (int, bool)

	// NodeAt returns the node with dense index i, 0 <= i < NodeCount().
	NodeAt(i int) NID

	// NodeWeight returns the payload of id.
	NodeWeight(id NID) (N, bool)

	// EdgeWeight returns the payload of the physical edge id.
	EdgeWeight(id EID) (E, bool)

	// Neighbors yields the nodes adjacent to id.
	Neighbors(id NID) iter.Seq[NID]

	// Edges yields every traversal leaving id.
	Edges(id NID) iter.Seq[Edge[NID, EID, E]]

	// Nodes yields every node in dense-index order.
	Nodes() iter.Seq[NID]

	// EdgeRefs yields every physical edge exactly once.
	EdgeRefs() iter.Seq[Edge[NID, EID, E]]

	// NewVisitMap returns an empty visited set sized for this graph.
	NewVisitMap() VisitMap[NID]
}
