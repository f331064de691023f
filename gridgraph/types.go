// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lattice.
package gridgraph

import "fmt"

// Axis selects the horizontal or vertical edge family.
type Axis uint8

const (
	// Horizontal edges join (h, v) and (h+1, v).
	Horizontal Axis = iota
	// Vertical edges join (h, v) and (h, v+1).
	Vertical
)

// IsHorizontal reports whether a is Horizontal.
func (a Axis) IsHorizontal() bool { return a == Horizontal }

// IsVertical reports whether a is Vertical.
func (a Axis) IsVertical() bool { return a == Vertical }

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == Horizontal {
		return "H"
	}

	return "V"
}

// Direction is a traversal along an Axis. Forward moves towards larger
// indices.
type Direction struct {
	Axis    Axis
	Forward bool
}

// Forward returns the forward traversal of a.
func Forward(a Axis) Direction { return Direction{Axis: a, Forward: true} }

// Backward returns the backward traversal of a.
func Backward(a Axis) Direction { return Direction{Axis: a} }

// Up is Forward(Vertical).
func Up() Direction { return Forward(Vertical) }

// Down is Backward(Vertical).
func Down() Direction { return Backward(Vertical) }

// Right is Forward(Horizontal).
func Right() Direction { return Forward(Horizontal) }

// Left is Backward(Horizontal).
func Left() Direction { return Backward(Horizontal) }

// Reverse returns the opposite traversal.
func (d Direction) Reverse() Direction { return Direction{Axis: d.Axis, Forward: !d.Forward} }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up():
		return "up"
	case Down():
		return "down"
	case Right():
		return "right"
	default:
		return "left"
	}
}

// NodeIndex addresses a node by its horizontal (row) and vertical (column)
// index. Moves are unchecked; use Graph.Contains to validate.
type NodeIndex struct {
	H, V int
}

// Node returns NodeIndex{H: h, V: v}.
func Node(h, v int) NodeIndex { return NodeIndex{H: h, V: v} }

// Up returns the node at V+1.
func (n NodeIndex) Up() NodeIndex { return NodeIndex{H: n.H, V: n.V + 1} }

// Down returns the node at V-1.
func (n NodeIndex) Down() NodeIndex { return NodeIndex{H: n.H, V: n.V - 1} }

// Right returns the node at H+1.
func (n NodeIndex) Right() NodeIndex { return NodeIndex{H: n.H + 1, V: n.V} }

// Left returns the node at H-1.
func (n NodeIndex) Left() NodeIndex { return NodeIndex{H: n.H - 1, V: n.V} }

// Distance returns the Manhattan distance between n and o.
func (n NodeIndex) Distance(o NodeIndex) int {
	dh, dv := n.H-o.H, n.V-o.V
	if dh < 0 {
		dh = -dh
	}
	if dv < 0 {
		dv = -dv
	}

	return dh + dv
}

// String implements fmt.Stringer as "(h,v)".
func (n NodeIndex) String() string { return fmt.Sprintf("(%d,%d)", n.H, n.V) }

// EdgeIndex addresses a physical edge by the node it leaves in the forward
// direction and its axis.
type EdgeIndex struct {
	Node NodeIndex
	Axis Axis
}

// String implements fmt.Stringer.
func (e EdgeIndex) String() string { return fmt.Sprintf("%v/%v", e.Node, e.Axis) }

// EdgeRef is one traversal of a physical edge. Weight points into the
// graph's edge storage.
type EdgeRef[E any] struct {
	ID      EdgeIndex
	Source  NodeIndex
	Target  NodeIndex
	Forward bool
	Weight  *E
}

// Direction returns the traversal direction of r.
func (r EdgeRef[E]) Direction() Direction { return Direction{Axis: r.ID.Axis, Forward: r.Forward} }

// Options configures graph construction.
type Options struct {
	// HorizontalLoop joins row h-1 back to row 0.
	HorizontalLoop bool
	// VerticalLoop joins column v-1 back to column 0.
	VerticalLoop bool
}

// Option represents a functional option for configuring a Graph.
type Option func(*Options)

// WithHorizontalLoop wraps the horizontal axis into a ring.
func WithHorizontalLoop() Option {
	return func(o *Options) {
		o.HorizontalLoop = true
	}
}

// WithVerticalLoop wraps the vertical axis into a ring.
func WithVerticalLoop() Option {
	return func(o *Options) {
		o.VerticalLoop = true
	}
}

// DefaultOptions returns Options with both loops disabled.
func DefaultOptions() Options { return Options{} }
