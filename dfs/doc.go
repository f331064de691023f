// Package dfs implements depth-first search, topological sort and cycle
// detection over any visit.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbour filtering and forest
//     traversal of every component.
//   - TopologicalSort: linear ordering of a directed lattice (a DAG) such
//     that every traversal u→v places u before v. Every traversal reported by
//     Graph.Edges is treated as an arc, so an undirected lattice always
//     reports ErrCycleDetected.
//   - DetectCycles: one simple cycle per back edge, i.e. a cycle basis of
//     the graph, in canonical rotation. A traversal never returns along the
//     physical edge it arrived on, so an undirected edge is not a 2-cycle,
//     while two distinct edges joining the same pair of nodes are.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V + L_max)
//     (C = #cycles, L = average cycle length)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start node is not in the graph
//   - ErrCycleDetected        TopologicalSort found a cycle
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
