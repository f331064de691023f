package fixedgrid

import (
	"errors"
	"math"
)

// Sentinel errors for fixedgrid operations.
var (
	// ErrZeroRows indicates a grid was requested with no rows.
	ErrZeroRows = errors.New("fixedgrid: horizontal size must be > 0")

	// ErrNegativeCols indicates a negative vertical size.
	ErrNegativeCols = errors.New("fixedgrid: vertical size must be >= 0")

	// ErrTooLarge indicates extents whose product h*v does not fit in an int.
	ErrTooLarge = errors.New("fixedgrid: h*v overflows int")

	// ErrShapeMismatch indicates raw data whose length is not h*v.
	ErrShapeMismatch = errors.New("fixedgrid: data length does not match h*v")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("fixedgrid: index out of range")

	// ErrUninitialized indicates Commit was called before every slot was written.
	ErrUninitialized = errors.New("fixedgrid: not every slot has been written")

	// ErrCommitted indicates an Uninit builder was used after Commit.
	ErrCommitted = errors.New("fixedgrid: builder already committed")
)

// validateExtents checks h > 0, v >= 0 and that h*v fits in an int.
func validateExtents(h, v int) error {
	if h <= 0 {
		return ErrZeroRows
	}
	if v < 0 {
		return ErrNegativeCols
	}
	if v != 0 && h > math.MaxInt/v {
		return ErrTooLarge
	}

	return nil
}
