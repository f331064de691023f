package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/dfs"
	"github.com/katalvlaran/lattice/gridgraph"
)

type node = gridgraph.NodeIndex

func grid(t testing.TB, h, v int, opts ...gridgraph.Option) *gridgraph.Graph[int, int] {
	t.Helper()
	g, err := gridgraph.NewDefault[int, int](h, v, opts...)
	require.NoError(t, err)

	return g
}

func run(g *gridgraph.Graph[int, int], start node, opts ...dfs.Option[node]) (*dfs.DFSResult[node], error) {
	return dfs.DFS[node, gridgraph.EdgeIndex, int, int](g, start, opts...)
}

var (
	n00 = gridgraph.Node(0, 0)
	n01 = gridgraph.Node(0, 1)
	n10 = gridgraph.Node(1, 0)
	n11 = gridgraph.Node(1, 1)
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[node, gridgraph.EdgeIndex, int, int](nil, n00)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = run(grid(t, 2, 2), gridgraph.Node(5, 5))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFS_Order walks a 2×2 grid. Neighbours are probed left, right, down,
// up, so the walk snakes (0,0) → (1,0) → (1,1) → (0,1).
func TestDFS_Order(t *testing.T) {
	res, err := run(grid(t, 2, 2), n00)
	require.NoError(t, err)

	assert.Equal(t, []node{n01, n11, n10, n00}, res.Order)
	assert.Equal(t, map[node]int{n00: 0, n10: 1, n11: 2, n01: 3}, res.Depth)
	assert.Equal(t, map[node]node{n10: n00, n11: n10, n01: n11}, res.Parent)
	for _, n := range []node{n00, n01, n10, n11} {
		assert.True(t, res.Visited.IsVisited(n), "%v visited", n)
	}
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := run(grid(t, 2, 2), n00, dfs.WithMaxDepth[node](1))
	require.NoError(t, err)

	assert.Equal(t, []node{n10, n01, n00}, res.Order)
	assert.False(t, res.Visited.IsVisited(n11))
	assert.NotContains(t, res.Parent, n11)
}

func TestDFS_Filter(t *testing.T) {
	res, err := run(grid(t, 2, 2), n00,
		dfs.WithFilterNeighbor[node](func(n node) bool { return n != n10 }))
	require.NoError(t, err)

	assert.Equal(t, []node{n11, n01, n00}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := run(grid(t, 2, 2), gridgraph.Node(-1, -1),
		dfs.WithFullTraversal[node](),
		dfs.WithFilterNeighbor[node](func(node) bool { return false }))
	require.NoError(t, err)

	assert.Equal(t, []node{n00, n01, n10, n11}, res.Order, "every node is its own tree")
	assert.Empty(t, res.Parent)
}

func TestDFS_Hooks(t *testing.T) {
	var pre, post []node
	_, err := run(grid(t, 2, 2), n00,
		dfs.WithOnVisit[node](func(n node) error { pre = append(pre, n); return nil }),
		dfs.WithOnExit[node](func(n node) error { post = append(post, n); return nil }))
	require.NoError(t, err)
	assert.Equal(t, []node{n00, n10, n11, n01}, pre)
	assert.Equal(t, []node{n01, n11, n10, n00}, post)

	boom := errors.New("boom")
	res, err := run(grid(t, 2, 2), n00,
		dfs.WithOnVisit[node](func(n node) error {
			if n == n11 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)

	res, err = run(grid(t, 2, 2), n00,
		dfs.WithOnExit[node](func(node) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(grid(t, 3, 3), n00, dfs.WithContext[node](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
