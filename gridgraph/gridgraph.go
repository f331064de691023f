// Package gridgraph provides a rectangular lattice graph with node payloads
// on an h×v grid and edge payloads on the links between 4-neighbours.
// It supports:
//
//   - Optional wrapping of either axis (WithHorizontalLoop, WithVerticalLoop)
//   - Per-node edge and neighbour iteration in a fixed order
//   - Whole-graph edge enumeration reporting each physical edge once
//   - Connected components and island expansion over passable nodes
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lattice/fixedgrid"
)

// Graph is a rectangular lattice graph. Node (h, v) stores an N. The
// horizontal edge between (h, v) and (h+1, v) is stored at (h, v) of the
// horizontal container; the vertical edge between (h, v) and (h, v+1) is
// stored at (h, v) of the vertical container. On a looping axis the seam
// edge is stored at the last index.
type Graph[N, E any] struct {
	nodes      *fixedgrid.Grid[N]
	horizontal *fixedgrid.Grid[E] // nil when the horizontal family is empty
	vertical   *fixedgrid.Grid[E]
	opts       Options
}

// edgeExtents returns the extents of the horizontal and vertical edge
// containers for an h×v node grid.
func edgeExtents(h, v int, o Options) (mh, mv int) {
	mh, mv = h-1, v-1
	if o.HorizontalLoop {
		mh = h
	}
	if o.VerticalLoop {
		mv = v
	}
	if mv < 0 {
		mv = 0
	}

	return mh, mv
}

// New constructs an h×v Graph. fnode is called once per node and fedge
// once per physical edge, row by row.
// Returns ErrBadExtents if h <= 0 or v < 0.
// Complexity: O(h×v) time and memory.
func New[N, E any](h, v int, fnode func(h, v int) N, fedge func(h, v int, a Axis) E, opts ...Option) (*Graph[N, E], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h <= 0 || v < 0 {
		return nil, fmt.Errorf("gridgraph.New(%d,%d): %w", h, v, ErrBadExtents)
	}

	nodes, err := fixedgrid.New(h, v, fnode)
	if err != nil {
		return nil, fmt.Errorf("gridgraph.New: %w", err)
	}
	mh, mv := edgeExtents(h, v, cfg)
	var horizontal *fixedgrid.Grid[E]
	if mh > 0 {
		horizontal, err = fixedgrid.New(mh, v, func(i, j int) E { return fedge(i, j, Horizontal) })
		if err != nil {
			return nil, fmt.Errorf("gridgraph.New: horizontal: %w", err)
		}
	}
	vertical, err := fixedgrid.New(h, mv, func(i, j int) E { return fedge(i, j, Vertical) })
	if err != nil {
		return nil, fmt.Errorf("gridgraph.New: vertical: %w", err)
	}

	return &Graph[N, E]{nodes: nodes, horizontal: horizontal, vertical: vertical, opts: cfg}, nil
}

// NewDefault constructs an h×v Graph with zero-valued payloads.
func NewDefault[N, E any](h, v int, opts ...Option) (*Graph[N, E], error) {
	return New(h, v,
		func(int, int) N { var n N; return n },
		func(int, int, Axis) E { var e E; return e },
		opts...)
}

// NewEdgeGraph constructs an h×v Graph that carries payloads on edges only.
func NewEdgeGraph[E any](h, v int, fedge func(h, v int, a Axis) E, opts ...Option) (*Graph[struct{}, E], error) {
	return New(h, v, func(int, int) struct{} { return struct{}{} }, fedge, opts...)
}

// NewRaw assembles a Graph from prebuilt containers. horizontal may be nil
// only when the horizontal family is empty.
// Returns ErrShapeMismatch when the extents disagree with opts.
func NewRaw[N, E any](nodes *fixedgrid.Grid[N], horizontal, vertical *fixedgrid.Grid[E], opts ...Option) (*Graph[N, E], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if nodes == nil || nodes.HSize() <= 0 {
		return nil, fmt.Errorf("gridgraph.NewRaw: %w", ErrBadExtents)
	}
	h, v := nodes.HSize(), nodes.VSize()
	mh, mv := edgeExtents(h, v, cfg)
	if mh > 0 && (horizontal == nil || horizontal.HSize() != mh || horizontal.VSize() != v) {
		return nil, fmt.Errorf("gridgraph.NewRaw: horizontal: %w", ErrShapeMismatch)
	}
	if mh == 0 {
		horizontal = nil
	}
	if vertical == nil || vertical.HSize() != h || vertical.VSize() != mv {
		return nil, fmt.Errorf("gridgraph.NewRaw: vertical: %w", ErrShapeMismatch)
	}

	return &Graph[N, E]{nodes: nodes, horizontal: horizontal, vertical: vertical, opts: cfg}, nil
}

// HorizontalNodeCount returns h.
func (g *Graph[N, E]) HorizontalNodeCount() int { return g.nodes.HSize() }

// VerticalNodeCount returns v.
func (g *Graph[N, E]) VerticalNodeCount() int { return g.nodes.VSize() }

// NodeCount returns h×v.
func (g *Graph[N, E]) NodeCount() int { return g.nodes.Size() }

// Options returns the construction options.
func (g *Graph[N, E]) Options() Options { return g.opts }

// NodeGrid exposes the node container.
func (g *Graph[N, E]) NodeGrid() *fixedgrid.Grid[N] { return g.nodes }

// HorizontalEdges exposes the horizontal edge container, nil when empty.
func (g *Graph[N, E]) HorizontalEdges() *fixedgrid.Grid[E] { return g.horizontal }

// VerticalEdges exposes the vertical edge container.
func (g *Graph[N, E]) VerticalEdges() *fixedgrid.Grid[E] { return g.vertical }

// Contains reports whether n lies within the grid.
// Complexity: O(1).
func (g *Graph[N, E]) Contains(n NodeIndex) bool {
	return n.H >= 0 && n.H < g.nodes.HSize() && n.V >= 0 && n.V < g.nodes.VSize()
}

// ToIndex maps n to its row-major index H*v + V.
func (g *Graph[N, E]) ToIndex(n NodeIndex) (int, bool) {
	if !g.Contains(n) {
		return 0, false
	}

	return n.H*g.nodes.VSize() + n.V, true
}

// FromIndex converts a row-major index back to a NodeIndex.
func (g *Graph[N, E]) FromIndex(i int) (NodeIndex, bool) {
	if i < 0 || i >= g.NodeCount() {
		return NodeIndex{}, false
	}
	v := g.nodes.VSize()

	return NodeIndex{H: i / v, V: i % v}, true
}

// NodeWeight returns the payload of n.
func (g *Graph[N, E]) NodeWeight(n NodeIndex) (N, bool) { return g.nodes.At(n.H, n.V) }

// NodeWeightPtr returns a pointer to the payload of n, or nil.
func (g *Graph[N, E]) NodeWeightPtr(n NodeIndex) *N { return g.nodes.Ptr(n.H, n.V) }

// edgeGrid returns the container of a.
func (g *Graph[N, E]) edgeGrid(a Axis) *fixedgrid.Grid[E] {
	if a == Horizontal {
		return g.horizontal
	}

	return g.vertical
}

// EdgeWeightPtr returns a pointer to the payload of e, or nil if e does
// not address a physical edge.
func (g *Graph[N, E]) EdgeWeightPtr(e EdgeIndex) *E {
	c := g.edgeGrid(e.Axis)
	if c == nil {
		return nil
	}

	return c.Ptr(e.Node.H, e.Node.V)
}

// EdgeWeight returns the payload of e.
func (g *Graph[N, E]) EdgeWeight(e EdgeIndex) (E, bool) {
	if p := g.EdgeWeightPtr(e); p != nil {
		return *p, true
	}
	var zero E

	return zero, false
}

// Move returns the node reached from n in direction d, honouring loops.
func (g *Graph[N, E]) Move(n NodeIndex, d Direction) (NodeIndex, bool) {
	if !g.Contains(n) {
		return n, false
	}
	h, v := g.nodes.HSize(), g.nodes.VSize()
	switch {
	case d.Axis == Horizontal && d.Forward:
		if n.H+1 < h {
			return n.Right(), true
		}
		if g.opts.HorizontalLoop {
			return NodeIndex{H: 0, V: n.V}, true
		}
	case d.Axis == Horizontal:
		if n.H > 0 {
			return n.Left(), true
		}
		if g.opts.HorizontalLoop {
			return NodeIndex{H: h - 1, V: n.V}, true
		}
	case d.Forward:
		if n.V+1 < v {
			return n.Up(), true
		}
		if g.opts.VerticalLoop {
			return NodeIndex{H: n.H, V: 0}, true
		}
	default:
		if n.V > 0 {
			return n.Down(), true
		}
		if g.opts.VerticalLoop {
			return NodeIndex{H: n.H, V: v - 1}, true
		}
	}

	return n, false
}

// EdgeID returns the physical edge traversed when leaving n in direction
// d. forward reports whether n is the storage endpoint of that edge.
// ok is false at a non-looping boundary or when n is outside the grid.
func (g *Graph[N, E]) EdgeID(n NodeIndex, d Direction) (id EdgeIndex, forward, ok bool) {
	target, ok := g.Move(n, d)
	if !ok {
		return EdgeIndex{}, false, false
	}
	if d.Forward {
		return EdgeIndex{Node: n, Axis: d.Axis}, true, true
	}

	return EdgeIndex{Node: target, Axis: d.Axis}, false, true
}

// EdgeReference returns the traversal of the edge leaving n in direction d.
func (g *Graph[N, E]) EdgeReference(n NodeIndex, d Direction) (EdgeRef[E], bool) {
	target, ok := g.Move(n, d)
	if !ok {
		return EdgeRef[E]{}, false
	}
	id := EdgeIndex{Node: n, Axis: d.Axis}
	if !d.Forward {
		id.Node = target
	}
	w := g.EdgeWeightPtr(id)
	if w == nil {
		return EdgeRef[E]{}, false
	}

	return EdgeRef[E]{ID: id, Source: n, Target: target, Forward: d.Forward, Weight: w}, true
}
