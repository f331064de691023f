package lattice

import "fmt"

// Offset is the canonical storage address of a node: H selects the row
// (horizontal index) and V the column within it (vertical index).
// An Offset is only meaningful once checked against a Shape's extents.
type Offset struct {
	H, V int
}

// NewOffset returns Offset{H: h, V: v}.
func NewOffset(h, v int) Offset { return Offset{H: h, V: v} }

// String implements fmt.Stringer as "(h,v)".
func (o Offset) String() string { return fmt.Sprintf("(%d,%d)", o.H, o.V) }

// AddH returns o moved by d along the horizontal index.
func (o Offset) AddH(d int) Offset { return Offset{H: o.H + d, V: o.V} }

// AddV returns o moved by d along the vertical index.
func (o Offset) AddV(d int) Offset { return Offset{H: o.H, V: o.V + d} }

// SubH returns o moved back by d along the horizontal index, or false if
// the result would be negative.
func (o Offset) SubH(d int) (Offset, bool) {
	if o.H < d {
		return o, false
	}

	return Offset{H: o.H - d, V: o.V}, true
}

// SubV returns o moved back by d along the vertical index, or false if the
// result would be negative.
func (o Offset) SubV(d int) (Offset, bool) {
	if o.V < d {
		return o, false
	}

	return Offset{H: o.H, V: o.V - d}, true
}

// CheckH reports whether 0 <= o.H < hmax.
func (o Offset) CheckH(hmax int) bool { return o.H >= 0 && o.H < hmax }

// CheckV reports whether 0 <= o.V < vmax.
func (o Offset) CheckV(vmax int) bool { return o.V >= 0 && o.V < vmax }

// In reports whether o lies in [0,h)×[0,v).
func (o Offset) In(h, v int) bool { return o.CheckH(h) && o.CheckV(v) }

// Manhattan returns |o.H-p.H| + |o.V-p.V|.
func (o Offset) Manhattan(p Offset) int {
	return abs(o.H-p.H) + abs(o.V-p.V)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
