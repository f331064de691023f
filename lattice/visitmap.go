package lattice

import "github.com/katalvlaran/lattice/visit"

// VisitMap is a visited set over the coordinates of one shape, stored as
// one bitset per node row.
type VisitMap[C comparable, A Axis[A]] struct {
	s    Shape[C, A]
	bits *visit.RowBits
}

// VisitMap returns an empty visited set sized for g.
func (g *Graph[N, E, C, A]) VisitMap() *VisitMap[C, A] {
	return &VisitMap[C, A]{s: g.s, bits: visit.NewRowBits(g.s.Horizontal(), g.s.Vertical())}
}

// Visit marks c and reports whether this was its first visit.
// Out-of-bounds coordinates report false.
func (m *VisitMap[C, A]) Visit(c C) bool {
	o, err := m.s.ToOffset(c)
	if err != nil {
		return false
	}

	return m.bits.Mark(o.H, o.V)
}

// IsVisited reports whether c has been marked.
func (m *VisitMap[C, A]) IsVisited(c C) bool {
	o, err := m.s.ToOffset(c)
	if err != nil {
		return false
	}

	return m.bits.Test(o.H, o.V)
}

// Len returns the number of marked coordinates.
func (m *VisitMap[C, A]) Len() int { return m.bits.Count() }

// Reset clears every mark.
func (m *VisitMap[C, A]) Reset() { m.bits.Reset() }
