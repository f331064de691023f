package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/dfs"
	"github.com/katalvlaran/lattice/gridgraph"
	"github.com/katalvlaran/lattice/lattice"
)

type dag = lattice.Graph[struct{}, struct{}, lattice.Offset, lattice.DirAxis]

func directed(t testing.TB, h, v int) *dag {
	t.Helper()
	s, err := lattice.NewDirectedRectShape(h, v)
	require.NoError(t, err)
	g, err := lattice.NewDefault[struct{}, struct{}, lattice.Offset, lattice.DirAxis](s)
	require.NoError(t, err)

	return g
}

func topo(g *dag, opts ...dfs.TopoOption) ([]lattice.Offset, error) {
	return dfs.TopologicalSort[lattice.Offset, lattice.EdgeID[lattice.Offset, lattice.DirAxis], struct{}, struct{}](g, opts...)
}

// TestTopologicalSort_DirectedLattice: every arc of a directed 2×3 lattice
// points forward in the ordering.
func TestTopologicalSort_DirectedLattice(t *testing.T) {
	g := directed(t, 2, 3)
	order, err := topo(g)
	require.NoError(t, err)
	require.Len(t, order, 6)

	assert.Equal(t, lattice.NewOffset(0, 0), order[0], "source first")
	assert.Equal(t, lattice.NewOffset(1, 2), order[5], "sink last")

	pos := make(map[lattice.Offset]int, len(order))
	for i, c := range order {
		pos[c] = i
	}
	arcs := 0
	for e := range g.EdgeRefs() {
		arcs++
		assert.Less(t, pos[e.Source], pos[e.Target], "arc %v → %v", e.Source, e.Target)
	}
	assert.Equal(t, 7, arcs)
}

// TestTopologicalSort_Undirected: any undirected edge is a 2-cycle for
// topological purposes.
func TestTopologicalSort_Undirected(t *testing.T) {
	g := grid(t, 2, 2)
	_, err := dfs.TopologicalSort[node, gridgraph.EdgeIndex, int, int](g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort[node, gridgraph.EdgeIndex, int, int](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := topo(directed(t, 3, 3), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
