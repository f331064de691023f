// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/dijkstra"
	"github.com/katalvlaran/lattice/gridgraph"
)

// ExampleDijkstra_grid demonstrates path reconstruction on a 3×4 gridgraph
// whose horizontal edge at (h,v) costs h+2v and vertical edge 3(h+2v).
// Complexity: O((V+E) log V).
func ExampleDijkstra_grid() {
	// 1) Build the graph; node payloads are unused.
	g, _ := gridgraph.NewEdgeGraph(3, 4, func(h, v int, a gridgraph.Axis) int64 {
		if a == gridgraph.Vertical {
			return int64(3 * (h + 2*v))
		}
		return int64(h + 2*v)
	})

	// 2) Search from (0,0) with the payload as cost and keep predecessors.
	src, dst := gridgraph.Node(0, 0), gridgraph.Node(2, 1)
	dist, prev, err := dijkstra.Dijkstra[gridgraph.NodeIndex, gridgraph.EdgeIndex, struct{}, int64](
		g, src, func(w int64) int64 { return w }, dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Rebuild the route.
	path, _ := dijkstra.PathTo(prev, src, dst)
	fmt.Println("cost:", dist[dst])
	fmt.Println("path:", path)

	// Output:
	// cost: 5
	// path: [(0,0) (0,1) (1,1) (2,1)]
}
