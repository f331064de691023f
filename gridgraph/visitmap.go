package gridgraph

import "github.com/katalvlaran/lattice/visit"

// VisitMap is a visited set over the nodes of one Graph, one bitset per
// row.
type VisitMap struct {
	bits *visit.RowBits
}

// VisitMap returns an empty visited set sized for g.
func (g *Graph[N, E]) VisitMap() *VisitMap {
	return &VisitMap{bits: visit.NewRowBits(g.nodes.HSize(), g.nodes.VSize())}
}

// Visit marks n and reports whether this was its first visit.
func (m *VisitMap) Visit(n NodeIndex) bool { return m.bits.Mark(n.H, n.V) }

// IsVisited reports whether n has been marked.
func (m *VisitMap) IsVisited(n NodeIndex) bool { return m.bits.Test(n.H, n.V) }

// Len returns the number of marked nodes.
func (m *VisitMap) Len() int { return m.bits.Count() }

// Reset clears every mark.
func (m *VisitMap) Reset() { m.bits.Reset() }
