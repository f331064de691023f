package dfs

import (
	"fmt"

	"github.com/katalvlaran/lattice/visit"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[NID, EID comparable, N, E any] struct {
	graph visit.Graph[NID, EID, N, E]
	opts  DFSOptions[NID]
	res   *DFSResult[NID]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component in dense-index order and start is ignored; otherwise it
// starts from start only. Neighbours are explored in the order g.Neighbors
// yields them.
//
// The partial result is returned alongside any context or hook error.
func DFS[NID, EID comparable, N, E any](g visit.Graph[NID, EID, N, E], start NID, opts ...Option[NID]) (*DFSResult[NID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[NID]()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal {
		if _, ok := g.NodeIndex(start); !ok {
			return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
		}
	}

	n := g.NodeCount()
	res := &DFSResult[NID]{
		Order:   make([]NID, 0, n),
		Depth:   make(map[NID]int, n),
		Parent:  make(map[NID]NID, n),
		Visited: g.NewVisitMap(),
	}
	w := &dfsWalker[NID, EID, N, E]{graph: g, opts: o, res: res}

	if o.FullTraversal {
		for v := range g.Nodes() {
			if res.Visited.IsVisited(v) {
				continue
			}
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits id at depth, recursing into unvisited neighbours.
func (w *dfsWalker[NID, EID, N, E]) traverse(id NID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited.Visit(id)
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	atLimit := w.opts.MaxDepth >= 0 && depth == w.opts.MaxDepth
	for nid := range w.graph.Neighbors(id) {
		if atLimit {
			break
		}
		if nid == id {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited.IsVisited(nid) {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}
