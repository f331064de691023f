package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum-conversion path of impassable nodes that
// connects any node of component srcComp to any node of component dstComp,
// as identified by ConnectedComponents(passable). Each impassable node on
// the path costs 1.
// Returns the path (including the start and end passable nodes) and the
// total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp nodes:
//     • Moving into a passable node   → cost 0
//     • Moving into an impassable node → cost 1
//  3. Stop when any dstComp node is reached.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(h·v) time, Memory: O(h·v).
func (g *Graph[N, E]) ExpandIsland(passable func(N) bool, srcComp, dstComp int) (path []NodeIndex, cost int, err error) {
	comps := g.ConnectedComponents(passable)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	total := g.NodeCount()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	isDst := make([]bool, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	for _, n := range comps[dstComp] {
		i, _ := g.ToIndex(n)
		isDst[i] = true
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, n := range comps[srcComp] {
		i, _ := g.ToIndex(n)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if isDst[u] {
			target = u
			break
		}
		un, _ := g.FromIndex(u)
		nb := g.NeighborsOf(un)
		for vn, ok := nb.Next(); ok; vn, ok = nb.Next() {
			v, _ := g.ToIndex(vn)
			step := 0
			if passable != nil && !passable(g.nodes.AtUnchecked(vn.H, vn.V)) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		n, _ := g.FromIndex(at)
		path = append([]NodeIndex{n}, path...)
	}

	return path, dist[target], nil
}
