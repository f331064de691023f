// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on lattice graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of any visit.Graph whose edge costs are
// non-negative. Edge payloads are turned into costs by a caller-supplied
// function, so the same graph can be searched under different metrics.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrVertexNotFound indicates that the source node is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested target was not reached.
	ErrNoPath = errors.New("dijkstra: target not reachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	ReturnPath       bool  // Whether to return the predecessor map
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Cost threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which edges are
// considered non-traversable. Edges with cost ≥ threshold are skipped.
// Must pass a positive value; zero or negative cause ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
