// Package visit defines the traversal protocol that lattice graphs expose
// to search algorithms.
//
// The protocol is the only surface a search routine needs: a node-id type,
// an edge-id type, weight lookup by id, neighbor and incident-edge
// enumeration, whole-graph node and edge enumeration, a dense
// node-index ↔ node-id bijection, and a visited set keyed by node id.
//
// Implementations in this module:
//
//	lattice.Graph   – generic lattice over any Shape (node id = shape coordinate).
//	gridgraph.Graph – specialized rectangular lattice (node id = gridgraph.NodeIndex).
//
// Consumers in this module:
//
//	dijkstra – weighted single-source shortest paths.
//	bfs      – breadth-first traversal using the graph's own VisitMap.
package visit
