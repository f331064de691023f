// Package gridgraph implements a rectangular lattice graph with payloads on
// nodes and on the links between 4-neighbours.
//
// What:
//
//   - Graph stores an h×v node grid, an (h-1)×v horizontal edge grid and an
//     h×(v-1) vertical edge grid (h×v and h×v on looping axes).
//   - Each physical edge lives at its lower endpoint: EdgeID maps a node
//     and a Direction onto that address, whichever endpoint you start from.
//   - EdgesFrom probes left, right, down, up; NeighborsOf yields the same
//     walk's targets; EdgeReferences reports every physical edge once.
//   - Graph implements visit.Graph, so bfs and dijkstra run on it directly.
//   - ConnectedComponents and ExpandIsland analyse passable regions.
//
// Why:
//
//   - Game maps and cellular grids: cost fields on cells and on moves.
//   - Torus worlds: WithHorizontalLoop / WithVerticalLoop close the seams.
//   - Region analysis: count islands, find the cheapest bridge between two.
//
// Complexity:
//
//   - NodeWeight, EdgeWeight, EdgeID: O(1).
//   - EdgesFrom / NeighborsOf: O(1) per node (at most 4 edges).
//   - EdgeReferences, ConnectedComponents, ExpandIsland: O(h×v).
//
// Options:
//
//   - WithHorizontalLoop(): join row h-1 to row 0.
//   - WithVerticalLoop():   join column v-1 to column 0.
//
// Errors:
//
//   - ErrBadExtents:     h <= 0 or v < 0.
//   - ErrShapeMismatch:  raw containers disagree with the node grid.
//   - ErrOutOfBounds:    NodeAt outside [0, NodeCount()).
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath:         no conversion path exists between two components.
package gridgraph
