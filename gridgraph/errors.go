package gridgraph

import "errors"

var (
	// ErrBadExtents indicates a grid with no rows or a negative column count.
	ErrBadExtents = errors.New("gridgraph: grid must have at least one row and a non-negative column count")
	// ErrShapeMismatch indicates raw containers whose extents disagree.
	ErrShapeMismatch = errors.New("gridgraph: node and edge containers do not agree")
	// ErrOutOfBounds indicates a node index outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: node index out of bounds")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
