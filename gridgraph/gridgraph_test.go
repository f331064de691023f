package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/fixedgrid"
	"github.com/katalvlaran/lattice/gridgraph"
)

// weighted builds an h×v graph whose horizontal edge at (h,v) weighs h+2v
// and whose vertical edge weighs 3(h+2v).
func weighted(t *testing.T, h, v int, opts ...gridgraph.Option) *gridgraph.Graph[int, int] {
	t.Helper()
	g, err := gridgraph.New(h, v,
		func(i, j int) int { return 10*i + j },
		func(i, j int, a gridgraph.Axis) int {
			if a == gridgraph.Vertical {
				return 3 * (i + 2*j)
			}
			return i + 2*j
		}, opts...)
	require.NoError(t, err)

	return g
}

func collect[T any](next func() (T, bool)) []T {
	var out []T
	for x, ok := next(); ok; x, ok = next() {
		out = append(out, x)
	}

	return out
}

// TestNew_Errors verifies that New and NewRaw reject impossible extents.
func TestNew_Errors(t *testing.T) {
	_, err := gridgraph.NewDefault[int, int](0, 3)
	require.ErrorIs(t, err, gridgraph.ErrBadExtents)
	_, err = gridgraph.NewDefault[int, int](2, -1)
	require.ErrorIs(t, err, gridgraph.ErrBadExtents)
	_, err = gridgraph.NewRaw[int, int](nil, nil, nil)
	require.ErrorIs(t, err, gridgraph.ErrBadExtents)
}

// TestContainerExtents checks the node and edge container sizes with and
// without loops.
func TestContainerExtents(t *testing.T) {
	g := weighted(t, 3, 4)
	assert.Equal(t, 3, g.HorizontalNodeCount())
	assert.Equal(t, 4, g.VerticalNodeCount())
	assert.Equal(t, 12, g.NodeCount())
	assert.Equal(t, [2]int{2, 4}, [2]int{g.HorizontalEdges().HSize(), g.HorizontalEdges().VSize()})
	assert.Equal(t, [2]int{3, 3}, [2]int{g.VerticalEdges().HSize(), g.VerticalEdges().VSize()})

	g = weighted(t, 3, 4, gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop())
	assert.Equal(t, [2]int{3, 4}, [2]int{g.HorizontalEdges().HSize(), g.HorizontalEdges().VSize()})
	assert.Equal(t, [2]int{3, 4}, [2]int{g.VerticalEdges().HSize(), g.VerticalEdges().VSize()})

	g = weighted(t, 1, 3)
	assert.Nil(t, g.HorizontalEdges())
	assert.Len(t, collect(g.EdgeReferences().Next), 2)
}

// TestIndexBijection checks ToIndex / FromIndex round trips.
func TestIndexBijection(t *testing.T) {
	g := weighted(t, 3, 5)
	for i := 0; i < g.NodeCount(); i++ {
		n, ok := g.FromIndex(i)
		require.True(t, ok)
		assert.Equal(t, gridgraph.Node(i/5, i%5), n)
		j, ok := g.ToIndex(n)
		require.True(t, ok)
		assert.Equal(t, i, j)
	}
	_, ok := g.FromIndex(15)
	assert.False(t, ok)
	_, ok = g.ToIndex(gridgraph.Node(0, 5))
	assert.False(t, ok)
	assert.Panics(t, func() { g.NodeAt(-1) })
}

// TestNodeWeightBounds checks that NodeWeight reports absent payloads
// outside [0,H)×[0,V), with or without loops.
func TestNodeWeightBounds(t *testing.T) {
	for _, g := range []*gridgraph.Graph[int, int]{
		weighted(t, 3, 4),
		weighted(t, 3, 4, gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop()),
	} {
		w, ok := g.NodeWeight(gridgraph.Node(2, 3))
		require.True(t, ok)
		assert.Equal(t, 23, w)
		for _, n := range []gridgraph.NodeIndex{
			gridgraph.Node(0, 4), gridgraph.Node(3, 0), gridgraph.Node(-1, 0), gridgraph.Node(0, -1),
		} {
			_, ok = g.NodeWeight(n)
			assert.False(t, ok, "%v", n)
		}
	}
}

// TestEdgeID checks the lower-endpoint storage convention.
func TestEdgeID(t *testing.T) {
	g := weighted(t, 3, 4)
	n := gridgraph.Node(1, 2)

	id, fwd, ok := g.EdgeID(n, gridgraph.Right())
	require.True(t, ok)
	assert.True(t, fwd)
	assert.Equal(t, gridgraph.EdgeIndex{Node: n, Axis: gridgraph.Horizontal}, id)

	back, fwd, ok := g.EdgeID(n.Right(), gridgraph.Left())
	require.True(t, ok)
	assert.False(t, fwd)
	assert.Equal(t, id, back)

	id, _, ok = g.EdgeID(n, gridgraph.Down())
	require.True(t, ok)
	assert.Equal(t, gridgraph.EdgeIndex{Node: n.Down(), Axis: gridgraph.Vertical}, id)

	for _, tc := range []struct {
		n gridgraph.NodeIndex
		d gridgraph.Direction
	}{
		{gridgraph.Node(0, 0), gridgraph.Left()},
		{gridgraph.Node(0, 0), gridgraph.Down()},
		{gridgraph.Node(2, 3), gridgraph.Right()},
		{gridgraph.Node(2, 3), gridgraph.Up()},
		{gridgraph.Node(3, 0), gridgraph.Left()},
	} {
		_, _, ok := g.EdgeID(tc.n, tc.d)
		assert.False(t, ok, "%v %v", tc.n, tc.d)
	}

	w, ok := g.EdgeWeight(gridgraph.EdgeIndex{Node: gridgraph.Node(1, 2), Axis: gridgraph.Vertical})
	require.True(t, ok)
	assert.Equal(t, 15, w)
	_, ok = g.EdgeWeight(gridgraph.EdgeIndex{Node: gridgraph.Node(2, 0), Axis: gridgraph.Horizontal})
	assert.False(t, ok)
}

// TestLoopSeam checks that looping axes store the seam edge at the last
// index and that both endpoints address it.
func TestLoopSeam(t *testing.T) {
	g := weighted(t, 3, 4, gridgraph.WithHorizontalLoop())
	last := gridgraph.Node(2, 1)

	r, ok := g.EdgeReference(last, gridgraph.Right())
	require.True(t, ok)
	assert.Equal(t, gridgraph.Node(0, 1), r.Target)
	assert.Equal(t, gridgraph.EdgeIndex{Node: last, Axis: gridgraph.Horizontal}, r.ID)
	assert.Equal(t, 4, *r.Weight)

	back, ok := g.EdgeReference(gridgraph.Node(0, 1), gridgraph.Left())
	require.True(t, ok)
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, last, back.Target)
	assert.False(t, back.Forward)

	// The vertical axis does not loop.
	_, ok = g.EdgeReference(gridgraph.Node(0, 3), gridgraph.Up())
	assert.False(t, ok)
}

// TestEdgesOrder checks the left, right, down, up probe order.
func TestEdgesOrder(t *testing.T) {
	g := weighted(t, 3, 3)
	edges := collect(g.EdgesFrom(gridgraph.Node(1, 1)).Next)
	require.Len(t, edges, 4)
	want := []gridgraph.Direction{gridgraph.Left(), gridgraph.Right(), gridgraph.Down(), gridgraph.Up()}
	for i, e := range edges {
		assert.Equal(t, want[i], e.Direction())
		assert.Equal(t, gridgraph.Node(1, 1), e.Source)
	}
	assert.Equal(t,
		[]gridgraph.NodeIndex{gridgraph.Node(0, 1), gridgraph.Node(2, 1), gridgraph.Node(1, 0), gridgraph.Node(1, 2)},
		collect(g.NeighborsOf(gridgraph.Node(1, 1)).Next))

	assert.Empty(t, collect(g.EdgesFrom(gridgraph.Node(-1, 0)).Next))
}

// TestDegreeAndSymmetry checks degrees and that every traversal has its
// reverse with the same edge id.
func TestDegreeAndSymmetry(t *testing.T) {
	for _, opts := range [][]gridgraph.Option{nil, {gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop()}} {
		g := weighted(t, 3, 5, opts...)
		looped := len(opts) > 0
		for n := range g.Nodes() {
			edges := collect(g.EdgesFrom(n).Next)
			assert.Len(t, collect(g.NeighborsOf(n).Next), len(edges))

			want := 4
			if !looped {
				if n.H == 0 || n.H == 2 {
					want--
				}
				if n.V == 0 || n.V == 4 {
					want--
				}
			}
			assert.Len(t, edges, want, "node %v", n)

			for _, e := range edges {
				r, ok := g.EdgeReference(e.Target, e.Direction().Reverse())
				require.True(t, ok)
				assert.Equal(t, n, r.Target)
				assert.Equal(t, e.ID, r.ID)
				assert.Same(t, e.Weight, r.Weight)
			}
		}
	}
}

// TestEdgeReferencesOncePerEdge checks whole-graph enumeration counts.
func TestEdgeReferencesOncePerEdge(t *testing.T) {
	cases := []struct {
		name   string
		opts   []gridgraph.Option
		nh, nv int
	}{
		{"Plain", nil, 10, 12},
		{"HLoop", []gridgraph.Option{gridgraph.WithHorizontalLoop()}, 15, 12},
		{"HVLoop", []gridgraph.Option{gridgraph.WithHorizontalLoop(), gridgraph.WithVerticalLoop()}, 15, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := weighted(t, 3, 5, tc.opts...)
			seen := map[gridgraph.EdgeIndex]bool{}
			var nh, nv int
			for e := range g.EdgeRefs() {
				require.False(t, seen[e.ID], "duplicate %v", e.ID)
				seen[e.ID] = true
				if e.ID.Axis == gridgraph.Horizontal {
					nh++
				} else {
					nv++
				}
			}
			assert.Equal(t, tc.nh, nh)
			assert.Equal(t, tc.nv, nv)

			for n := range g.Nodes() {
				for e := range g.Edges(n) {
					assert.True(t, seen[e.ID])
				}
			}
		})
	}
}

// TestNewRaw checks container validation.
func TestNewRaw(t *testing.T) {
	nodes := fixedgrid.Must(fixedgrid.NewZero[int](2, 3))
	h := fixedgrid.Must(fixedgrid.NewZero[int](1, 3))
	v := fixedgrid.Must(fixedgrid.NewZero[int](2, 2))

	g, err := gridgraph.NewRaw(nodes, h, v)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())

	_, err = gridgraph.NewRaw(nodes, v, h)
	assert.ErrorIs(t, err, gridgraph.ErrShapeMismatch)
	_, err = gridgraph.NewRaw(nodes, h, v, gridgraph.WithVerticalLoop())
	assert.ErrorIs(t, err, gridgraph.ErrShapeMismatch)
}

// TestNodesAndVisitMap checks node enumeration and the visited set.
func TestNodesAndVisitMap(t *testing.T) {
	g := weighted(t, 2, 3)
	refs := collect(g.NodeReferences().Next)
	require.Len(t, refs, 6)
	assert.Equal(t, gridgraph.Node(1, 2), refs[5].Index)
	assert.Equal(t, 12, *refs[5].Weight)

	m := g.VisitMap()
	assert.True(t, m.Visit(gridgraph.Node(1, 1)))
	assert.False(t, m.Visit(gridgraph.Node(1, 1)))
	assert.False(t, m.Visit(gridgraph.Node(2, 0)))
	assert.True(t, m.IsVisited(gridgraph.Node(1, 1)))
	assert.Equal(t, 1, m.Len())
	m.Reset()
	assert.False(t, m.IsVisited(gridgraph.Node(1, 1)))
}

// TestNodeIndexMoves checks the unchecked moves and Manhattan distance.
func TestNodeIndexMoves(t *testing.T) {
	n := gridgraph.Node(2, 2)
	assert.Equal(t, gridgraph.Node(2, 3), n.Up())
	assert.Equal(t, gridgraph.Node(2, 1), n.Down())
	assert.Equal(t, gridgraph.Node(1, 2), n.Left())
	assert.Equal(t, gridgraph.Node(3, 2), n.Right())
	assert.Equal(t, 5, n.Distance(gridgraph.Node(0, 5)))
	assert.Equal(t, "(2,2)", n.String())
}
