package gridgraph

// ConnectedComponents finds all contiguous regions of passable nodes, using
// the graph's own adjacency (so looping axes join regions across the seam).
// A nil passable treats every node as passable.
// Returns a slice of components; each component lists its nodes in BFS
// order starting from the lowest row-major index.
//
// Time:   O(h·v).
// Memory: O(h·v) for visited bits and output.
func (g *Graph[N, E]) ConnectedComponents(passable func(N) bool) [][]NodeIndex {
	ok := func(n NodeIndex) bool {
		return passable == nil || passable(g.nodes.AtUnchecked(n.H, n.V))
	}
	seen := g.VisitMap()
	var comps [][]NodeIndex

	for ids := g.NodeIndices(); ; {
		start, more := ids.Next()
		if !more {
			break
		}
		if !ok(start) || !seen.Visit(start) {
			continue
		}
		// BFS to collect component
		comp := []NodeIndex{start}
		for qi := 0; qi < len(comp); qi++ {
			nb := g.NeighborsOf(comp[qi])
			for n, has := nb.Next(); has; n, has = nb.Next() {
				if ok(n) && seen.Visit(n) {
					comp = append(comp, n)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
