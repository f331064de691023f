package dfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lattice/visit"
)

// DetectCycles reports one simple cycle per back edge of a depth-first
// forest over g, rooted in dense-index order. Each cycle is closed
// ([v0, v1, …, v0]) and rotated so that its dense-index sequence is
// lexicographically minimal over rotations and reversal. Cycles are sorted
// by that sequence.
//
// A traversal never returns along the physical edge it arrived on. On an
// undirected graph the number of cycles equals E − V + components.
//
// Returns (false, nil, nil) for an acyclic or nil graph.
func DetectCycles[NID, EID comparable, N, E any](g visit.Graph[NID, EID, N, E]) (bool, [][]NID, error) {
	if g == nil {
		return false, nil, nil
	}

	n := g.NodeCount()
	d := &cycleDetector[NID, EID, N, E]{
		graph: g,
		state: make([]uint8, n),
		path:  make([]int, 0, n),
		seen:  make(map[string]struct{}),
	}
	for i := 0; i < n; i++ {
		if d.state[i] == White {
			d.visit(i, nil)
		}
	}
	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	slices.SortFunc(d.cycles, slices.Compare[[]int, int])
	out := make([][]NID, len(d.cycles))
	for k, c := range d.cycles {
		ids := make([]NID, len(c)+1)
		for j, i := range c {
			ids[j] = g.NodeAt(i)
		}
		ids[len(c)] = ids[0]
		out[k] = ids
	}

	return true, out, nil
}

type cycleDetector[NID, EID comparable, N, E any] struct {
	graph  visit.Graph[NID, EID, N, E]
	state  []uint8
	path   []int // dense indices on the recursion stack
	seen   map[string]struct{}
	cycles [][]int // open canonical cycles
}

// visit explores dense index i, entered over edge via (nil for roots).
func (d *cycleDetector[NID, EID, N, E]) visit(i int, via *EID) {
	d.state[i] = Gray
	d.path = append(d.path, i)

	for e := range d.graph.Edges(d.graph.NodeAt(i)) {
		if via != nil && e.ID == *via {
			continue
		}
		j, ok := d.graph.NodeIndex(e.Target)
		if !ok {
			continue
		}
		switch d.state[j] {
		case White:
			id := e.ID
			d.visit(j, &id)
		case Gray:
			d.record(j)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[i] = Black
}

// record stores the cycle from start to the top of the path stack.
func (d *cycleDetector[NID, EID, N, E]) record(start int) {
	at := slices.Index(d.path, start)
	c := canonical(d.path[at:])
	sig := signature(c)
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, c)
}

func signature(c []int) string {
	var b strings.Builder
	for k, i := range c {
		if k > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, i)
	}
	return b.String()
}
