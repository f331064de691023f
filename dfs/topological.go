package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lattice/visit"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil ctx has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[NID, EID comparable, N, E any] struct {
	graph visit.Graph[NID, EID, N, E]
	opts  topoOptions
	state []uint8 // by dense index: White, Gray or Black
	order []NID   // post-order
}

// TopologicalSort orders every node of g so that each traversal u→v
// reported by g.Edges places u before v. Roots are tried in dense-index
// order, which makes the result deterministic.
//
// Returns ErrGraphNil, ErrCycleDetected, or the context error.
func TopologicalSort[NID, EID comparable, N, E any](g visit.Graph[NID, EID, N, E], options ...TopoOption) ([]NID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.NodeCount()
	t := &topoSorter[NID, EID, N, E]{
		graph: g,
		opts:  opts,
		state: make([]uint8, n),
		order: make([]NID, 0, n),
	}
	for i := 0; i < n; i++ {
		if t.state[i] == White {
			if err := t.visit(g.NodeAt(i), i); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit runs DFS from id (dense index i), colouring nodes and detecting
// back edges.
func (t *topoSorter[NID, EID, N, E]) visit(id NID, i int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	switch t.state[i] {
	case Gray:
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[i] = Gray

	for e := range t.graph.Edges(id) {
		j, ok := t.graph.NodeIndex(e.Target)
		if !ok {
			continue
		}
		if err := t.visit(e.Target, j); err != nil {
			return err
		}
	}

	t.state[i] = Black
	t.order = append(t.order, id)

	return nil
}
