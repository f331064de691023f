package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/bfs"
	"github.com/katalvlaran/lattice/gridgraph"
)

// ExampleBFS shows depth-limited exploration of a 4×4 torus.
func ExampleBFS() {
	g, _ := gridgraph.NewDefault[int, int](4, 4, gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop())
	res, _ := bfs.BFS[gridgraph.NodeIndex, gridgraph.EdgeIndex, int, int](g, gridgraph.Node(0, 0),
		bfs.WithMaxDepth[gridgraph.NodeIndex](1))
	fmt.Println(res.Order)

	// Output:
	// [(0,0) (3,0) (1,0) (0,3) (0,1)]
}
