package fixedgrid

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Uninit is the initialize-then-commit form of a Grid. Every slot must be
// written with Set before Commit turns the builder into a Grid. After a
// successful Commit the builder is spent and rejects further use.
type Uninit[T any] struct {
	h, v      int
	data      []T
	written   *bitset.BitSet // bit row*v+col is set once that slot was written
	committed bool
}

// NewUninit reserves h×v slots that are not yet considered initialized.
// Returns the same extent errors as New.
// Complexity: O(h×v) memory.
func NewUninit[T any](h, v int) (*Uninit[T], error) {
	if err := validateExtents(h, v); err != nil {
		return nil, err
	}

	return &Uninit[T]{
		h:       h,
		v:       v,
		data:    make([]T, h*v),
		written: bitset.New(uint(h * v)),
	}, nil
}

// HSize returns the number of rows being built.
func (u *Uninit[T]) HSize() int { return u.h }

// VSize returns the row length being built.
func (u *Uninit[T]) VSize() int { return u.v }

// Set writes x into (row, col) and marks the slot initialized.
// Writing the same slot twice keeps the last value.
func (u *Uninit[T]) Set(row, col int, x T) error {
	if u.committed {
		return ErrCommitted
	}
	if row < 0 || row >= u.h || col < 0 || col >= u.v {
		return fmt.Errorf("Uninit.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	i := row*u.v + col
	u.data[i] = x
	u.written.Set(uint(i))

	return nil
}

// Written returns how many distinct slots have been written so far.
func (u *Uninit[T]) Written() int { return int(u.written.Count()) }

// Commit returns the finished Grid once every slot has been written.
// Returns ErrUninitialized (with the missing count) otherwise, leaving the
// builder usable, or ErrCommitted if Commit already succeeded.
func (u *Uninit[T]) Commit() (*Grid[T], error) {
	if u.committed {
		return nil, ErrCommitted
	}
	if n := u.Written(); n != len(u.data) {
		return nil, fmt.Errorf("%w: %d of %d slots missing", ErrUninitialized, len(u.data)-n, len(u.data))
	}
	u.committed = true
	g := &Grid[T]{h: u.h, v: u.v, data: u.data}
	u.data = nil

	return g, nil
}
