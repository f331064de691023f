// Package dijkstra provides Dijkstra's shortest-path algorithm over any
// graph implementing visit.Graph, such as lattice.Graph and gridgraph.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Edge payloads are converted to costs by a caller-supplied func(E) int64.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor map; PathTo rebuilds a route.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with cost ≥ threshold as impassable.
//   - The visited set comes from the graph itself (one bit per node).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilCost: missing inputs.
//   - ErrVertexNotFound: the source is not a node of the graph.
//   - ErrNegativeWeight: any edge has a negative cost (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic from the option constructors.
//   - ErrNoPath: PathTo could not reach the target.
//
// Thread safety:
//
//   - Dijkstra only reads the graph. Concurrent mutation must be synchronised externally.
package dijkstra
