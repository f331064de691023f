package lattice

import "math"

// Extents is the part of a Shape that fixes the storage rectangle.
type Extents interface {
	// Horizontal returns the number of rows of node storage.
	Horizontal() int

	// Vertical returns the number of columns of node storage.
	Vertical() int
}

// Shape maps coordinates of type C onto Offsets and defines which moves
// along axes A are legal. It is the only extension point of the package:
// a new coordinate system is a new Shape.
//
// Implementations must satisfy, for every Offset o inside the extents,
// ToOffset(FromOffset(o)) == o, and MoveCoord must fail with
// ErrOutOfBounds whenever the source or the destination has no Offset.
type Shape[C comparable, A Axis[A]] interface {
	Extents

	// ToOffset returns the storage address of c, or ErrOutOfBounds.
	ToOffset(c C) (Offset, error)

	// ToOffsetUnchecked returns the storage address of c without a bounds
	// check. The result is only meaningful when c is in bounds.
	ToOffsetUnchecked(c C) Offset

	// FromOffset returns the coordinate stored at o.
	FromOffset(o Offset) C

	// HorizontalEdgeSize returns the number of rows of edge storage for a.
	HorizontalEdgeSize(a A) int

	// VerticalEdgeSize returns the number of columns of edge storage for a.
	VerticalEdgeSize(a A) int

	// MoveCoord returns the coordinate reached from c by d.
	MoveCoord(c C, d Direction[A]) (C, error)
}

// NeighborTester is an optional Shape extension. Shapes that can answer
// adjacency directly implement it and IsNeighbor uses it in place of the
// direction scan.
type NeighborTester[C comparable] interface {
	IsNeighbor(a, b C) bool
}

// NodeCount returns Horizontal()·Vertical().
func NodeCount(e Extents) int { return e.Horizontal() * e.Vertical() }

// IndexToOffset returns the Offset with canonical index i:
// H = i / Vertical(), V = i % Vertical().
// Vertical() must be non-zero.
func IndexToOffset(e Extents, i int) Offset {
	v := e.Vertical()
	return Offset{H: i / v, V: i % v}
}

// OffsetToIndex returns the canonical index o.H·Vertical() + o.V.
func OffsetToIndex(e Extents, o Offset) int { return o.H*e.Vertical() + o.V }

// FromIndex returns the coordinate with canonical index i, or false for i
// outside [0, NodeCount(s)).
func FromIndex[C comparable, A Axis[A]](s Shape[C, A], i int) (C, bool) {
	if i < 0 || i >= NodeCount(s) {
		var zero C
		return zero, false
	}

	return s.FromOffset(IndexToOffset(s, i)), true
}

// ToIndex returns the canonical index of c, or false if c is out of bounds.
func ToIndex[C comparable, A Axis[A]](s Shape[C, A], c C) (int, bool) {
	o, err := s.ToOffset(c)
	if err != nil {
		return 0, false
	}

	return OffsetToIndex(s, o), true
}

// GetDirection returns the direction leading from a to b in one move.
// Directions are probed in index order; the first match wins.
//
// Complexity: O(DirectedCount).
func GetDirection[C comparable, A Axis[A]](s Shape[C, A], a, b C) (Direction[A], bool) {
	n := DirectedCount[A]()
	for i := 0; i < n; i++ {
		d, ok := DirectionFromIndex[A](i)
		if !ok {
			continue
		}
		if c, err := s.MoveCoord(a, d); err == nil && c == b {
			return d, true
		}
	}

	return Direction[A]{}, false
}

// IsNeighbor reports whether b is reachable from a in one move.
// Shapes implementing NeighborTester answer directly.
func IsNeighbor[C comparable, A Axis[A]](s Shape[C, A], a, b C) bool {
	if nt, ok := s.(NeighborTester[C]); ok {
		return nt.IsNeighbor(a, b)
	}
	_, ok := GetDirection(s, a, b)

	return ok
}

// validateShape rejects extents fixedgrid cannot store.
func validateShape(e Extents) error {
	h, v := e.Horizontal(), e.Vertical()
	if h <= 0 || v < 0 || (v != 0 && h > math.MaxInt/v) {
		return ErrBadExtents
	}

	return nil
}

// edgeRows clamps a signed edge extent to zero.
func edgeRows(n int) int {
	if n < 0 {
		return 0
	}

	return n
}
