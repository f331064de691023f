package lattice

import "fmt"

// RectAxis enumerates the undirected axes of a rectangular lattice.
type RectAxis uint8

const (
	// AxisX moves along the horizontal index: (h, v) -> (h+1, v).
	AxisX RectAxis = iota
	// AxisY moves along the vertical index: (h, v) -> (h, v+1).
	AxisY
)

// Index implements Axis.
func (a RectAxis) Index() int { return int(a) }

// Count implements Axis.
func (RectAxis) Count() int { return 2 }

// Directed implements Axis.
func (RectAxis) Directed() bool { return false }

// FromIndex implements Axis.
func (RectAxis) FromIndex(i int) (RectAxis, bool) {
	if i < 0 || i > int(AxisY) {
		return AxisX, false
	}

	return RectAxis(i), true
}

// String implements fmt.Stringer.
func (a RectAxis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return fmt.Sprintf("RectAxis(%d)", uint8(a))
	}
}

// RectShape is the reference h×v rectangle with Offset coordinates and
// undirected four-neighbour moves.
type RectShape struct {
	h, v int
}

// NewRectShape returns an h×v rectangle or ErrBadExtents.
func NewRectShape(h, v int) (RectShape, error) {
	s := RectShape{h: h, v: v}
	if err := validateShape(s); err != nil {
		return RectShape{}, fmt.Errorf("NewRectShape(%d,%d): %w", h, v, err)
	}

	return s, nil
}

// Horizontal implements Shape.
func (s RectShape) Horizontal() int { return s.h }

// Vertical implements Shape.
func (s RectShape) Vertical() int { return s.v }

// ToOffset implements Shape.
func (s RectShape) ToOffset(c Offset) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return c, nil
}

// ToOffsetUnchecked implements Shape.
func (RectShape) ToOffsetUnchecked(c Offset) Offset { return c }

// FromOffset implements Shape.
func (RectShape) FromOffset(o Offset) Offset { return o }

// HorizontalEdgeSize implements Shape: (h-1) rows for X, h rows for Y.
func (s RectShape) HorizontalEdgeSize(a RectAxis) int {
	if a == AxisX {
		return edgeRows(s.h - 1)
	}

	return s.h
}

// VerticalEdgeSize implements Shape: v columns for X, (v-1) columns for Y.
func (s RectShape) VerticalEdgeSize(a RectAxis) int {
	if a == AxisY {
		return edgeRows(s.v - 1)
	}

	return s.v
}

// MoveCoord implements Shape.
func (s RectShape) MoveCoord(c Offset, d Direction[RectAxis]) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}
	next := step(c, d.Axis() == AxisX, d.IsForward())
	if !next.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return next, nil
}

// IsNeighbor implements NeighborTester.
func (s RectShape) IsNeighbor(a, b Offset) bool {
	return a.In(s.h, s.v) && b.In(s.h, s.v) && a.Manhattan(b) == 1
}

// step moves c by one along H (alongH) or V, forward or backward.
func step(c Offset, alongH, forward bool) Offset {
	d := 1
	if !forward {
		d = -1
	}
	if alongH {
		return c.AddH(d)
	}

	return c.AddV(d)
}

// DirAxis enumerates the directed axes of DirectedRectShape.
type DirAxis uint8

const (
	// AxisRight moves (h, v) -> (h+1, v).
	AxisRight DirAxis = iota
	// AxisUp moves (h, v) -> (h, v+1).
	AxisUp
)

// Index implements Axis.
func (a DirAxis) Index() int { return int(a) }

// Count implements Axis.
func (DirAxis) Count() int { return 2 }

// Directed implements Axis.
func (DirAxis) Directed() bool { return true }

// FromIndex implements Axis.
func (DirAxis) FromIndex(i int) (DirAxis, bool) {
	if i < 0 || i > int(AxisUp) {
		return AxisRight, false
	}

	return DirAxis(i), true
}

// String implements fmt.Stringer.
func (a DirAxis) String() string {
	switch a {
	case AxisRight:
		return "Right"
	case AxisUp:
		return "Up"
	default:
		return fmt.Sprintf("DirAxis(%d)", uint8(a))
	}
}

// DirectedRectShape is an h×v rectangle whose edges run one way only:
// towards larger H and towards larger V.
type DirectedRectShape struct {
	h, v int
}

// NewDirectedRectShape returns an h×v directed rectangle or ErrBadExtents.
func NewDirectedRectShape(h, v int) (DirectedRectShape, error) {
	s := DirectedRectShape{h: h, v: v}
	if err := validateShape(s); err != nil {
		return DirectedRectShape{}, fmt.Errorf("NewDirectedRectShape(%d,%d): %w", h, v, err)
	}

	return s, nil
}

// Horizontal implements Shape.
func (s DirectedRectShape) Horizontal() int { return s.h }

// Vertical implements Shape.
func (s DirectedRectShape) Vertical() int { return s.v }

// ToOffset implements Shape.
func (s DirectedRectShape) ToOffset(c Offset) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return c, nil
}

// ToOffsetUnchecked implements Shape.
func (DirectedRectShape) ToOffsetUnchecked(c Offset) Offset { return c }

// FromOffset implements Shape.
func (DirectedRectShape) FromOffset(o Offset) Offset { return o }

// HorizontalEdgeSize implements Shape.
func (s DirectedRectShape) HorizontalEdgeSize(a DirAxis) int {
	if a == AxisRight {
		return edgeRows(s.h - 1)
	}

	return s.h
}

// VerticalEdgeSize implements Shape.
func (s DirectedRectShape) VerticalEdgeSize(a DirAxis) int {
	if a == AxisUp {
		return edgeRows(s.v - 1)
	}

	return s.v
}

// MoveCoord implements Shape. Every direction of a directed axis is
// forward, so only moves towards larger indices exist.
func (s DirectedRectShape) MoveCoord(c Offset, d Direction[DirAxis]) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}
	next := step(c, d.Axis() == AxisRight, true)
	if !next.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return next, nil
}
