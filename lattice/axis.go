package lattice

import "fmt"

// Axis is the constraint satisfied by an axis enumeration A.
// Count, Directed and FromIndex describe the whole enumeration and must
// return the same answer for every value of A, including the zero value.
type Axis[A any] interface {
	comparable

	// Index returns the position of this axis in [0, Count()).
	Index() int

	// Count returns the number of axes (COUNT).
	Count() int

	// Directed reports whether edges along these axes are one-way.
	Directed() bool

	// FromIndex returns the axis at position i, or false outside [0, Count()).
	FromIndex(i int) (A, bool)
}

// DirectedCount returns the number of distinct directions of A:
// Count() if A is directed, 2·Count() otherwise.
func DirectedCount[A Axis[A]]() int {
	var a A
	if a.Directed() {
		return a.Count()
	}

	return 2 * a.Count()
}

// Direction is a traversal of an axis, forward or backward.
// The zero value is the forward direction of the zero axis.
type Direction[A Axis[A]] struct {
	axis     A
	backward bool
}

// Forward returns the forward direction of a.
func Forward[A Axis[A]](a A) Direction[A] { return Direction[A]{axis: a} }

// Backward returns the backward direction of a. For directed axes there is
// no backward traversal and Backward(a) == Forward(a).
func Backward[A Axis[A]](a A) Direction[A] {
	if a.Directed() {
		return Direction[A]{axis: a}
	}

	return Direction[A]{axis: a, backward: true}
}

// Axis returns the axis d traverses.
func (d Direction[A]) Axis() A { return d.axis }

// IsForward reports whether d is a forward traversal.
func (d Direction[A]) IsForward() bool { return !d.backward }

// Reverse returns the opposite traversal of the same axis.
// Directed directions are returned unchanged.
func (d Direction[A]) Reverse() Direction[A] {
	if d.axis.Directed() {
		return d
	}

	return Direction[A]{axis: d.axis, backward: !d.backward}
}

// Index returns the direction index: forward directions occupy
// [0, COUNT) and backward directions [COUNT, 2·COUNT).
func (d Direction[A]) Index() int {
	if d.backward {
		return d.axis.Index() + d.axis.Count()
	}

	return d.axis.Index()
}

// String implements fmt.Stringer.
func (d Direction[A]) String() string {
	if d.backward {
		return fmt.Sprintf("Backward(%v)", d.axis)
	}

	return fmt.Sprintf("Forward(%v)", d.axis)
}

// DirectionFromIndex decodes a direction index produced by Direction.Index.
// It reports false for i outside [0, DirectedCount[A]()).
func DirectionFromIndex[A Axis[A]](i int) (Direction[A], bool) {
	var zero A
	n := zero.Count()
	if i < 0 {
		return Direction[A]{}, false
	}
	if i < n {
		a, ok := zero.FromIndex(i)
		return Direction[A]{axis: a}, ok
	}
	if zero.Directed() || i >= 2*n {
		return Direction[A]{}, false
	}
	a, ok := zero.FromIndex(i - n)

	return Direction[A]{axis: a, backward: true}, ok
}

// axisAt is FromIndex on the zero value.
func axisAt[A Axis[A]](i int) (A, bool) {
	var zero A
	return zero.FromIndex(i)
}

// axisCount is Count on the zero value.
func axisCount[A Axis[A]]() int {
	var zero A
	return zero.Count()
}
