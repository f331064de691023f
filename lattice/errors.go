package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrOutOfBounds indicates a coordinate that does not map into the grid,
	// or a move whose destination leaves it.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")

	// ErrBadExtents indicates a shape with no rows, a negative column count,
	// or a node count that overflows int.
	ErrBadExtents = errors.New("lattice: shape extents must be horizontal > 0, vertical >= 0")

	// ErrShapeMismatch indicates storage whose extents disagree with the shape.
	ErrShapeMismatch = errors.New("lattice: storage extents do not match shape")

	// ErrBadAxis indicates an axis index outside [0, COUNT).
	ErrBadAxis = errors.New("lattice: axis index out of range")
)
