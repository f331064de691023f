package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lattice/visit"
)

// Vertex states used by TopologicalSort and DetectCycles.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start node does not exist
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort found a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option[NID comparable] func(*DFSOptions[NID])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions[NID comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id NID) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Order.
	OnExit func(id NID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before
	// recursing. Return false to skip it.
	FilterNeighbor func(id NID) bool

	// FullTraversal restarts DFS from every unvisited node in dense-index
	// order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns options with a background context, no hooks, no
// depth limit, no filter and single-source traversal.
func DefaultOptions[NID comparable]() DFSOptions[NID] {
	return DFSOptions[NID]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext[NID comparable](ctx context.Context) Option[NID] {
	return func(o *DFSOptions[NID]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[NID comparable](fn func(id NID) error) Option[NID] {
	return func(o *DFSOptions[NID]) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[NID comparable](fn func(id NID) error) Option[NID] {
	return func(o *DFSOptions[NID]) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. 0 visits only the start node.
func WithMaxDepth[NID comparable](limit int) Option[NID] {
	return func(o *DFSOptions[NID]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor[NID comparable](fn func(id NID) bool) Option[NID] {
	return func(o *DFSOptions[NID]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal[NID comparable]() Option[NID] {
	return func(o *DFSOptions[NID]) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[NID comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []NID

	// Depth maps each reached node to its tree depth from its root.
	Depth map[NID]int

	// Parent maps each node to the node it was discovered from.
	// Tree roots are absent.
	Parent map[NID]NID

	// Visited holds every node reached during the traversal.
	Visited visit.VisitMap[NID]

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}
