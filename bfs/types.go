// Package bfs provides tunable options and error definitions
// for breadth‐first search over a visit.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path to destination")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[NID comparable] func(*BFSOptions[NID])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[NID comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node and its depth from the start.
	OnEnqueue func(id NID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id NID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each move curr→neighbor.
	FilterNeighbor func(curr, neighbor NID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions[NID comparable]() BFSOptions[NID] {
	return BFSOptions[NID]{
		Ctx:            context.Background(),
		OnEnqueue:      func(NID, int) {},
		OnVisit:        func(NID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ NID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[NID comparable](ctx context.Context) Option[NID] {
	return func(o *BFSOptions[NID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[NID comparable](fn func(id NID, depth int)) Option[NID] {
	return func(o *BFSOptions[NID]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[NID comparable](fn func(id NID, depth int) error) Option[NID] {
	return func(o *BFSOptions[NID]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[NID comparable](d int) Option[NID] {
	return func(o *BFSOptions[NID]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[NID comparable](fn func(curr, neighbor NID) bool) Option[NID] {
	return func(o *BFSOptions[NID]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
type BFSResult[NID comparable] struct {
	Order  []NID
	Depth  map[NID]int
	Parent map[NID]NID
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult[NID]) PathTo(dest NID) ([]NID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []NID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
