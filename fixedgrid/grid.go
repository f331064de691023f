package fixedgrid

import (
	"fmt"
	"strings"
)

// Grid is a fixed h×v two-dimensional container over one flat slice.
// Element (row, col) lives at data[row*v+col].
//
// A Grid is not safe for concurrent mutation. Any number of readers may
// share it while no writer is active.
type Grid[T any] struct {
	h, v int // rows (horizontal size) and row length (vertical size)
	data []T // flat backing storage, len == h*v
}

// New creates an h×v Grid and fills every slot with f(row, col),
// visiting rows in order and columns within a row in order.
// f is called exactly once per slot.
// Returns ErrZeroRows if h <= 0, ErrNegativeCols if v < 0 and ErrTooLarge
// if h*v overflows int.
// Complexity: O(h×v) time and memory.
func New[T any](h, v int, f func(row, col int) T) (*Grid[T], error) {
	if err := validateExtents(h, v); err != nil {
		return nil, err
	}
	data := make([]T, h*v)
	var i, j int
	for i = 0; i < h; i++ {
		base := i * v
		for j = 0; j < v; j++ {
			data[base+j] = f(i, j)
		}
	}

	return &Grid[T]{h: h, v: v, data: data}, nil
}

// NewZero creates an h×v Grid holding the zero value of T in every slot.
// Complexity: O(h×v).
func NewZero[T any](h, v int) (*Grid[T], error) {
	if err := validateExtents(h, v); err != nil {
		return nil, err
	}

	return &Grid[T]{h: h, v: v, data: make([]T, h*v)}, nil
}

// FromRaw adopts flat as the row-major storage of an h×v Grid.
// The Grid takes ownership of flat; the caller must not keep using it.
// Returns ErrShapeMismatch if len(flat) != h*v.
// Complexity: O(1).
func FromRaw[T any](h, v int, flat []T) (*Grid[T], error) {
	if err := validateExtents(h, v); err != nil {
		return nil, err
	}
	if len(flat) != h*v {
		return nil, fmt.Errorf("%w: got %d, want %d×%d=%d", ErrShapeMismatch, len(flat), h, v, h*v)
	}

	return &Grid[T]{h: h, v: v, data: flat[:len(flat):len(flat)]}, nil
}

// HSize returns the number of rows.
func (g *Grid[T]) HSize() int { return g.h }

// VSize returns the length of every row.
func (g *Grid[T]) VSize() int { return g.v }

// Size returns HSize()*VSize().
func (g *Grid[T]) Size() int { return len(g.data) }

// Flat returns the whole buffer in row-major order.
// Writes through the returned slice modify the Grid.
func (g *Grid[T]) Flat() []T { return g.data }

// Row returns the view of row i, or nil if i is out of range.
// The view's capacity equals its length, so appending to it reallocates
// instead of overwriting row i+1.
func (g *Grid[T]) Row(i int) []T {
	if i < 0 || i >= g.h {
		return nil
	}
	lo := i * g.v

	return g.data[lo : lo+g.v : lo+g.v]
}

// Rows returns h row views supporting rows[row][col].
// The outer slice is freshly allocated; the views alias the Grid.
// Complexity: O(h).
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.h)
	for i := range rows {
		lo := i * g.v
		rows[i] = g.data[lo : lo+g.v : lo+g.v]
	}

	return rows
}

// inRange reports whether (row, col) addresses a slot.
func (g *Grid[T]) inRange(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.v
}

// At returns the element at (row, col) and true, or the zero value and
// false if the position is outside the grid.
func (g *Grid[T]) At(row, col int) (T, bool) {
	if !g.inRange(row, col) {
		var zero T
		return zero, false
	}

	return g.data[row*g.v+col], true
}

// Ptr returns a pointer to the element at (row, col), or nil when the
// position is outside the grid.
func (g *Grid[T]) Ptr(row, col int) *T {
	if !g.inRange(row, col) {
		return nil
	}

	return &g.data[row*g.v+col]
}

// Set stores x at (row, col).
// Returns ErrOutOfRange (wrapped with the position) outside the grid.
func (g *Grid[T]) Set(row, col int, x T) error {
	if !g.inRange(row, col) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	g.data[row*g.v+col] = x

	return nil
}

// AtUnchecked returns the element at (row, col) without a bounds check of
// the individual components. The caller guarantees 0 <= row < h and
// 0 <= col < v; violating that returns an unrelated element or panics.
func (g *Grid[T]) AtUnchecked(row, col int) T { return g.data[row*g.v+col] }

// PtrUnchecked is the pointer form of AtUnchecked, with the same contract.
func (g *Grid[T]) PtrUnchecked(row, col int) *T { return &g.data[row*g.v+col] }

// IntoRaw hands the backing slice to the caller and leaves g empty
// (0×0). Later accesses through g report out-of-range.
func (g *Grid[T]) IntoRaw() []T {
	data := g.data
	g.h, g.v, g.data = 0, 0, nil

	return data
}

// Clone returns an independent copy. Elements are copied by assignment;
// use CloneFunc when T holds references that must not be shared.
// Complexity: O(h×v).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{h: g.h, v: g.v, data: data}
}

// CloneFunc returns a copy whose elements are produced by dup.
func (g *Grid[T]) CloneFunc(dup func(T) T) *Grid[T] {
	data := make([]T, len(g.data))
	for i, x := range g.data {
		data[i] = dup(x)
	}

	return &Grid[T]{h: g.h, v: g.v, data: data}
}

// String implements fmt.Stringer, one bracketed line per row.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.h; i++ {
		sb.WriteByte('[')
		for j = 0; j < g.v; j++ {
			fmt.Fprint(&sb, g.data[i*g.v+j])
			if j < g.v-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Must returns g or panics if err is non-nil. It is intended for grids
// whose extents are known to be valid, e.g. package-level tables and tests.
func Must[T any](g *Grid[T], err error) *Grid[T] {
	if err != nil {
		panic(err)
	}

	return g
}
