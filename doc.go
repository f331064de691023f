// Package lattice is the umbrella for a family of lattice graph packages:
// graphs whose nodes sit on a fixed 2D grid and whose edges are implied by
// the grid's shape, so that adjacency is computed instead of stored.
//
// Packages:
//
//	fixedgrid/     dense fixed-size 2D container backing every graph
//	lattice/       generic lattice graph over a pluggable Shape and Axis set
//	gridgraph/     specialised rectangular grid with optional looping axes
//	visit/         read-only traversal protocol shared by the algorithms
//	bfs/           breadth-first search over any visit.Graph
//	dfs/           depth-first search, topological sort, cycle detection
//	dijkstra/      single-source shortest paths with pluggable edge costs
//	prim_kruskal/  minimum spanning trees (maze carving)
//
// The latticepath command (cmd/latticepath) routes TOML grid scenarios,
// prints their structure and carves mazes.
//
// Quick start:
//
//	s, _ := lattice.NewRectShape(3, 4)
//	g, _ := lattice.New[int, int, lattice.Offset, lattice.RectAxis](s,
//		func(c lattice.Offset) int { return 0 },
//		func(c lattice.Offset, a lattice.RectAxis) int { return c.H + 2*c.V },
//	)
//	dist, prev, _ := dijkstra.Dijkstra[lattice.Offset, lattice.EdgeID[lattice.Offset, lattice.RectAxis], int, int](
//		g, lattice.NewOffset(0, 0), func(w int) int64 { return int64(w) }, dijkstra.WithReturnPath())
package lattice
