// Package bfs provides breadth-first search over any visit.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lattice/visit"
)

// queueItem pairs a node with its BFS depth.
type queueItem[NID comparable] struct {
	id    NID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[NID, EID comparable, N, E any] struct {
	graph   visit.Graph[NID, EID, N, E]
	opts    BFSOptions[NID]
	ctx     context.Context
	queue   []queueItem[NID]
	visited visit.VisitMap[NID]
	res     *BFSResult[NID]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[NID, EID comparable, N, E any](g visit.Graph[NID, EID, N, E], start NID, opts ...Option[NID]) (*BFSResult[NID], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[NID]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if _, ok := g.NodeIndex(start); !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[NID, EID, N, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[NID], 0, n),
		visited: g.NewVisitMap(),
		res: &BFSResult[NID]{
			Order:  make([]NID, 0, n),
			Depth:  make(map[NID]int, n),
			Parent: make(map[NID]NID, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[NID, EID, N, E]) enqueue(id NID, d int) {
	w.visited.Visit(id)
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[NID]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[NID, EID, N, E]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker[NID, EID, N, E]) enqueueNeighbors(item queueItem[NID]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.id) {
		if w.visited.IsVisited(nbr) || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}
}
