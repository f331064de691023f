package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lattice/visit"
)

var (
	// ErrInvalidGraph indicates a nil graph or cost function.
	ErrInvalidGraph = errors.New("prim_kruskal: graph and cost function are required")

	// ErrRootNotFound indicates that Prim's root is not a node of the graph.
	ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

	// ErrDisconnected indicates that no spanning tree covers every node.
	// An empty graph is reported as disconnected.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which algorithm Compute runs and, for Prim, from
// which node. Without a root Prim starts from dense index 0.
type MSTOptions[NID comparable] struct {
	Method  string
	Root    NID
	HasRoot bool
}

// Option configures MSTOptions.
type Option[NID comparable] func(*MSTOptions[NID])

// WithMethod sets the algorithm: MethodPrim or MethodKruskal.
func WithMethod[NID comparable](m string) Option[NID] {
	return func(o *MSTOptions[NID]) {
		o.Method = m
	}
}

// WithRoot sets Prim's start node. Ignored by Kruskal.
func WithRoot[NID comparable](root NID) Option[NID] {
	return func(o *MSTOptions[NID]) {
		o.Root = root
		o.HasRoot = true
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions[NID comparable]() MSTOptions[NID] {
	return MSTOptions[NID]{Method: MethodKruskal}
}

// Compute runs the algorithm selected by opts.
func Compute[NID, EID comparable, N, E any](
	g visit.Graph[NID, EID, N, E],
	cost func(E) int64,
	opts ...Option[NID],
) ([]visit.Edge[NID, EID, E], int64, error) {
	o := DefaultOptions[NID]()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, cost)
	case MethodPrim:
		if g == nil {
			return nil, 0, ErrInvalidGraph
		}
		root := o.Root
		if !o.HasRoot {
			if g.NodeCount() == 0 {
				return nil, 0, ErrDisconnected
			}
			root = g.NodeAt(0)
		}
		return Prim(g, root, cost)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
