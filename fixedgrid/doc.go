// Package fixedgrid provides Grid, a fixed-extent two-dimensional container
// backed by a single contiguous slice.
//
// What:
//
//   - Grid[T] stores h×v elements in row-major order in one []T.
//   - Row views are sub-slices of that buffer, derived on demand; they never
//     overlap and their capacity is clipped to the row length.
//   - Extents are fixed at construction. There is no resize.
//
// Why:
//
//   - Node and edge payloads of lattice graphs live here, so every lookup is
//     one multiply-add and a slice index.
//   - One allocation per grid keeps iteration cache friendly.
//
// Construction:
//
//   - New(h, v, f)        fills every slot via f(row, col), row-major, exactly once.
//   - NewUninit(h, v)     returns an Uninit builder; Set every slot, then Commit.
//   - FromRaw(h, v, flat) adopts an existing slice of length h*v.
//
// h must be positive; v may be zero (h empty rows).
//
// Complexity:
//
//   - At / Ptr / Set / Row: O(1).
//   - New / Clone / Rows:   O(h×v) and O(h) respectively.
//
// Errors:
//
//   - ErrZeroRows:      h <= 0.
//   - ErrNegativeCols:  v < 0.
//   - ErrShapeMismatch: FromRaw slice length differs from h*v.
//   - ErrOutOfRange:    Set outside the grid.
//   - ErrUninitialized: Commit before every slot was written.
//   - ErrCommitted:     use of an Uninit builder after Commit.
package fixedgrid
