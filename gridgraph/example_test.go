package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: edges around a node
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_EdgesFrom walks the edges of the centre node of a 3×3 grid.
// Backward traversals address the edge stored at the neighbour.
func ExampleGraph_EdgesFrom() {
	g, _ := gridgraph.NewEdgeGraph(3, 3, func(h, v int, a gridgraph.Axis) string {
		return fmt.Sprintf("%v@%d,%d", a, h, v)
	})

	it := g.EdgesFrom(gridgraph.Node(1, 1))
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		fmt.Printf("%-5v -> %v  %s\n", e.Direction(), e.Target, *e.Weight)
	}

	// Output:
	// left  -> (0,1)  H@0,1
	// right -> (2,1)  H@1,1
	// down  -> (1,0)  V@1,0
	// up    -> (1,2)  V@1,1
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_ConnectedComponents identifies contiguous islands of
// non-zero cells.
//
// Complexity: O(h·v), Memory: O(h·v)
func ExampleGraph_ConnectedComponents() {
	rows := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	g, _ := gridgraph.New(3, 5,
		func(h, v int) int { return rows[h][v] },
		func(int, int, gridgraph.Axis) struct{} { return struct{}{} },
	)

	comps := g.ConnectedComponents(func(x int) bool { return x > 0 })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [(0,1) (1,1) (0,2) (1,0) (2,0)]
	// component 1: [(0,4) (1,4) (1,3) (2,3) (2,2)]
}
