// Package lattice turns a fixed two-dimensional store into a graph whose
// geometry is supplied by a pluggable Shape.
//
// What:
//
//   - Offset is the canonical (row, col) storage address.
//   - Axis is a closed set of undirected movement classes; Direction is a
//     forward or backward traversal of one Axis.
//   - Shape maps opaque coordinates to Offsets and defines legal moves.
//     RectShape, WrapShape and DirectedRectShape are provided; other
//     coordinate systems (hexagonal, offset, doubled) plug in by
//     implementing Shape.
//   - Graph stores node payloads in one fixedgrid.Grid and edge payloads in
//     one Grid per Axis, and exposes node/edge/neighbor iterators and the
//     visit.Graph protocol.
//
// Edge storage:
//
// Every undirected edge owns exactly one storage cell, addressed at the
// endpoint from which the edge is reached by a forward move. EdgeAddress
// is the one place that rule is applied: forward directions address the
// current node, backward directions address the move target.
//
// Direction indexing:
//
// Forward directions occupy [0, COUNT) and backward directions occupy
// [COUNT, 2·COUNT). Directed axes have forward directions only, so
// DirectedCount is COUNT for directed axes and 2·COUNT otherwise.
//
// Complexity:
//
//   - NodeWeight / EdgeWeight: O(1) plus one Shape conversion.
//   - Edges / Neighbors per node: O(DirectedCount) regardless of degree.
//   - Nodes / EdgeReferences: O(NodeCount · COUNT).
//
// Errors:
//
//   - ErrOutOfBounds:   a coordinate or move leaves the grid.
//   - ErrBadExtents:    a Shape with no rows or negative columns.
//   - ErrShapeMismatch: raw containers disagree with the Shape's extents.
//   - ErrBadAxis:       an axis index outside [0, COUNT).
package lattice
