// Package prim_kruskal computes minimum spanning trees of undirected
// lattices with Prim's and Kruskal's algorithms.
//
// Any visit.Graph can be spanned; edge payloads are turned into int64
// costs by a caller-supplied function, exactly as in package dijkstra.
// Every physical edge is considered once in each of its directions, so
// directed lattices should not be passed to Prim.
//
// Algorithms
//
//   - Kruskal(g, cost): sort all physical edges by cost (stable, so ties
//     keep the g.EdgeRefs order) and join components with a disjoint-set
//     forest over dense node indices.
//     Time O(E log E), Space O(V + E).
//
//   - Prim(g, root, cost): grow one tree from root with a min-heap of
//     candidate traversals. Ties are broken by insertion order.
//     Time O(E log V), Space O(V + E).
//
// Lattice use
//
// Assigning random costs to every edge of a rectangular lattice and
// spanning it yields a perfect maze: exactly one path joins any two cells.
//
// Errors
//
//   - ErrInvalidGraph  graph or cost function is nil
//   - ErrRootNotFound  Prim root is not a node
//   - ErrDisconnected  no spanning tree exists
//   - ErrUnknownMethod Compute was given an unknown method
package prim_kruskal
