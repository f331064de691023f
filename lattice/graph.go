package lattice

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lattice/fixedgrid"
)

// EdgeID is the canonical address of a physical edge: the coordinate from
// which the edge is reached by a forward move, and the axis it lies on.
type EdgeID[C comparable, A Axis[A]] struct {
	Coord C
	Axis  A
}

// String implements fmt.Stringer.
func (id EdgeID[C, A]) String() string { return fmt.Sprintf("%v/%v", id.Coord, id.Axis) }

// Graph is a lattice graph over a Shape: node payloads N at every
// coordinate and edge payloads E on every legal forward move.
//
// Graph is not safe for concurrent mutation. Concurrent readers are fine.
type Graph[N, E any, C comparable, A Axis[A]] struct {
	nodes *fixedgrid.Grid[N]
	edges []*fixedgrid.Grid[E] // indexed by A.Index(); nil when the axis owns no storage
	s     Shape[C, A]
}

// New builds a graph over s. fnode is called once per node and fedge once
// per physical edge, in canonical row-major order.
//
// Returns ErrBadExtents if s cannot be stored.
//
// Complexity: O(NodeCount · COUNT).
func New[N, E any, C comparable, A Axis[A]](
	s Shape[C, A],
	fnode func(c C) N,
	fedge func(c C, a A) E,
) (*Graph[N, E, C, A], error) {
	if err := validateShape(s); err != nil {
		return nil, fmt.Errorf("lattice.New: %w", err)
	}
	nodes, err := fixedgrid.New(s.Horizontal(), s.Vertical(), func(h, v int) N {
		return fnode(s.FromOffset(Offset{H: h, V: v}))
	})
	if err != nil {
		return nil, fmt.Errorf("lattice.New: %w: %w", ErrBadExtents, err)
	}

	n := axisCount[A]()
	edges := make([]*fixedgrid.Grid[E], n)
	for i := 0; i < n; i++ {
		a, _ := axisAt[A](i)
		hs, vs := s.HorizontalEdgeSize(a), s.VerticalEdgeSize(a)
		if hs <= 0 {
			continue
		}
		uninit, err := fixedgrid.NewUninit[E](hs, vs)
		if err != nil {
			return nil, fmt.Errorf("lattice.New: axis %v: %w: %w", a, ErrShapeMismatch, err)
		}
		for h := 0; h < hs; h++ {
			for v := 0; v < vs; v++ {
				c := s.FromOffset(Offset{H: h, V: v})
				var e E
				if _, err := s.MoveCoord(c, Forward(a)); err == nil {
					e = fedge(c, a)
				}
				if err := uninit.Set(h, v, e); err != nil {
					return nil, fmt.Errorf("lattice.New: axis %v: %w", a, err)
				}
			}
		}
		if edges[i], err = uninit.Commit(); err != nil {
			return nil, fmt.Errorf("lattice.New: axis %v: %w", a, err)
		}
	}

	return &Graph[N, E, C, A]{nodes: nodes, edges: edges, s: s}, nil
}

// NewDefault builds a graph over s with zero-valued payloads.
func NewDefault[N, E any, C comparable, A Axis[A]](s Shape[C, A]) (*Graph[N, E, C, A], error) {
	return New(s,
		func(C) N { var n N; return n },
		func(C, A) E { var e E; return e },
	)
}

// NewRaw assembles a graph from prebuilt containers. nodes must be
// Horizontal()×Vertical(); edges must hold one grid per axis matching
// HorizontalEdgeSize×VerticalEdgeSize, with nil for axes of zero rows.
//
// Returns ErrBadExtents or ErrShapeMismatch.
func NewRaw[N, E any, C comparable, A Axis[A]](
	s Shape[C, A],
	nodes *fixedgrid.Grid[N],
	edges []*fixedgrid.Grid[E],
) (*Graph[N, E, C, A], error) {
	if err := validateShape(s); err != nil {
		return nil, fmt.Errorf("lattice.NewRaw: %w", err)
	}
	if nodes == nil || nodes.HSize() != s.Horizontal() || nodes.VSize() != s.Vertical() {
		return nil, fmt.Errorf("lattice.NewRaw: nodes: %w", ErrShapeMismatch)
	}
	n := axisCount[A]()
	if len(edges) != n {
		return nil, fmt.Errorf("lattice.NewRaw: %w: got %d edge grids, want %d", ErrShapeMismatch, len(edges), n)
	}
	edges = slices.Clone(edges)
	for i := 0; i < n; i++ {
		a, _ := axisAt[A](i)
		hs, vs := s.HorizontalEdgeSize(a), s.VerticalEdgeSize(a)
		g := edges[i]
		if hs <= 0 {
			if g != nil && g.Size() != 0 {
				return nil, fmt.Errorf("lattice.NewRaw: axis %v: %w", a, ErrShapeMismatch)
			}
			edges[i] = nil
			continue
		}
		if g == nil || g.HSize() != hs || g.VSize() != vs {
			return nil, fmt.Errorf("lattice.NewRaw: axis %v: %w", a, ErrShapeMismatch)
		}
	}

	return &Graph[N, E, C, A]{nodes: nodes, edges: edges, s: s}, nil
}

// Shape returns the shape the graph was built on.
func (g *Graph[N, E, C, A]) Shape() Shape[C, A] { return g.s }

// Horizontal returns the number of node rows.
func (g *Graph[N, E, C, A]) Horizontal() int { return g.s.Horizontal() }

// Vertical returns the number of node columns.
func (g *Graph[N, E, C, A]) Vertical() int { return g.s.Vertical() }

// NodeCount returns the number of nodes.
func (g *Graph[N, E, C, A]) NodeCount() int { return NodeCount(g.s) }

// NodeGrid exposes the node container.
func (g *Graph[N, E, C, A]) NodeGrid() *fixedgrid.Grid[N] { return g.nodes }

// EdgeGrid exposes the edge container of a, or nil if a owns no storage.
func (g *Graph[N, E, C, A]) EdgeGrid(a A) *fixedgrid.Grid[E] { return g.edges[a.Index()] }

// ToIndex returns the canonical index of c.
func (g *Graph[N, E, C, A]) ToIndex(c C) (int, bool) { return ToIndex(g.s, c) }

// FromIndex returns the coordinate with canonical index i.
func (g *Graph[N, E, C, A]) FromIndex(i int) (C, bool) { return FromIndex(g.s, i) }

// NodeWeight returns the payload at c, or false if c is out of bounds.
func (g *Graph[N, E, C, A]) NodeWeight(c C) (N, bool) {
	o, err := g.s.ToOffset(c)
	if err != nil {
		var zero N
		return zero, false
	}

	return g.nodes.At(o.H, o.V)
}

// NodeWeightPtr returns a pointer to the payload at c, or nil.
func (g *Graph[N, E, C, A]) NodeWeightPtr(c C) *N {
	o, err := g.s.ToOffset(c)
	if err != nil {
		return nil
	}

	return g.nodes.Ptr(o.H, o.V)
}

// NodeWeightUnchecked returns the payload at c. It panics or returns an
// unrelated payload if c is out of bounds.
func (g *Graph[N, E, C, A]) NodeWeightUnchecked(c C) N {
	o := g.s.ToOffsetUnchecked(c)
	return g.nodes.AtUnchecked(o.H, o.V)
}

// EdgeWeight returns the payload of edge id. It reports false unless the
// forward move from id.Coord along id.Axis succeeds.
func (g *Graph[N, E, C, A]) EdgeWeight(id EdgeID[C, A]) (E, bool) {
	if p := g.EdgeWeightPtr(id); p != nil {
		return *p, true
	}
	var zero E

	return zero, false
}

// EdgeWeightPtr returns a pointer to the payload of edge id, or nil.
func (g *Graph[N, E, C, A]) EdgeWeightPtr(id EdgeID[C, A]) *E {
	i := id.Axis.Index()
	if i < 0 || i >= len(g.edges) || g.edges[i] == nil {
		return nil
	}
	if _, err := g.s.MoveCoord(id.Coord, Forward(id.Axis)); err != nil {
		return nil
	}
	o, err := g.s.ToOffset(id.Coord)
	if err != nil {
		return nil
	}

	return g.edges[i].Ptr(o.H, o.V)
}

// EdgeWeightUnchecked returns the payload of edge id without checking the
// move.
func (g *Graph[N, E, C, A]) EdgeWeightUnchecked(id EdgeID[C, A]) E {
	o := g.s.ToOffsetUnchecked(id.Coord)
	return g.edges[id.Axis.Index()].AtUnchecked(o.H, o.V)
}

// EdgeAddress returns the physical edge traversed when moving from c in
// direction d, and the move target. Forward moves address c itself;
// backward moves address the target, from which the same edge is a
// forward move.
func (g *Graph[N, E, C, A]) EdgeAddress(c C, d Direction[A]) (EdgeID[C, A], C, bool) {
	target, err := g.s.MoveCoord(c, d)
	if err != nil {
		return EdgeID[C, A]{}, target, false
	}
	if d.IsForward() {
		return EdgeID[C, A]{Coord: c, Axis: d.Axis()}, target, true
	}

	return EdgeID[C, A]{Coord: target, Axis: d.Axis()}, target, true
}

// EdgeWeightAt returns the payload of the edge leaving c in direction d.
func (g *Graph[N, E, C, A]) EdgeWeightAt(c C, d Direction[A]) (E, bool) {
	id, _, ok := g.EdgeAddress(c, d)
	if !ok {
		var zero E
		return zero, false
	}

	return g.EdgeWeight(id)
}

// IsNeighbor reports whether b is one move away from a.
func (g *Graph[N, E, C, A]) IsNeighbor(a, b C) bool { return IsNeighbor(g.s, a, b) }

// DirectionTo returns the direction leading from a to b in one move.
func (g *Graph[N, E, C, A]) DirectionTo(a, b C) (Direction[A], bool) {
	return GetDirection(g.s, a, b)
}
