package lattice

import "fmt"

// WrapShape is an h×v rectangle whose X and/or Y axis wraps around.
// Coordinates are bounds-checked as in RectShape; only a move across the
// seam of a wrapping axis is folded back into range, so stepping forward
// from (h-1, 0) lands on (0, 0).
type WrapShape struct {
	h, v         int
	wrapX, wrapY bool
}

// NewWrapShape returns an h×v rectangle wrapping along X when wrapX is set
// and along Y when wrapY is set.
func NewWrapShape(h, v int, wrapX, wrapY bool) (WrapShape, error) {
	s := WrapShape{h: h, v: v, wrapX: wrapX, wrapY: wrapY}
	if err := validateShape(s); err != nil {
		return WrapShape{}, fmt.Errorf("NewWrapShape(%d,%d): %w", h, v, err)
	}

	return s, nil
}

// WrapsX reports whether the X axis wraps.
func (s WrapShape) WrapsX() bool { return s.wrapX }

// WrapsY reports whether the Y axis wraps.
func (s WrapShape) WrapsY() bool { return s.wrapY }

// Horizontal implements Shape.
func (s WrapShape) Horizontal() int { return s.h }

// Vertical implements Shape.
func (s WrapShape) Vertical() int { return s.v }

// ToOffset implements Shape.
func (s WrapShape) ToOffset(c Offset) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return c, nil
}

// ToOffsetUnchecked implements Shape.
func (WrapShape) ToOffsetUnchecked(c Offset) Offset { return c }

// FromOffset implements Shape.
func (WrapShape) FromOffset(o Offset) Offset { return o }

// HorizontalEdgeSize implements Shape. A wrapping X axis stores one edge
// per row, including the seam from h-1 back to 0.
func (s WrapShape) HorizontalEdgeSize(a RectAxis) int {
	if a == AxisX && !s.wrapX {
		return edgeRows(s.h - 1)
	}

	return s.h
}

// VerticalEdgeSize implements Shape.
func (s WrapShape) VerticalEdgeSize(a RectAxis) int {
	if a == AxisY && !s.wrapY {
		return edgeRows(s.v - 1)
	}

	return s.v
}

// MoveCoord implements Shape. The source must be in range; only the
// component being stepped is wrapped, and only when its axis wraps.
func (s WrapShape) MoveCoord(c Offset, d Direction[RectAxis]) (Offset, error) {
	if !c.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}
	alongH := d.Axis() == AxisX
	next := step(c, alongH, d.IsForward())
	switch {
	case alongH && s.wrapX:
		next.H = wrap(next.H, s.h)
	case !alongH && s.wrapY:
		next.V = wrap(next.V, s.v)
	}
	if !next.In(s.h, s.v) {
		return c, ErrOutOfBounds
	}

	return next, nil
}

// wrap maps x into [0, n) with a single signed modulo.
func wrap(x, n int) int {
	if n <= 0 {
		return 0
	}

	return ((x % n) + n) % n
}
