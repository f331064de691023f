package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/visit"
)

// Dijkstra computes shortest distances from source to every node of g.
// cost maps an edge payload to a non-negative int64 cost.
//
// Returns:
//
//   - dist: map from node to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source and unreachable nodes have no entry.
//   - err:  error if inputs are invalid or if a negative cost is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. cost must be non-nil (ErrNilCost).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g can have negative cost (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[NID, EID comparable, N, E any](
	g visit.Graph[NID, EID, N, E],
	source NID,
	cost func(E) int64,
	opts ...Option,
) (map[NID]int64, map[NID]NID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cost == nil {
		return nil, nil, ErrNilCost
	}
	if _, ok := g.NodeIndex(source); !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// Pre-scan all edges to detect negative costs. Fail fast.
	for e := range g.EdgeRefs() {
		if w := cost(e.Weight); w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.Source, e.Target, w)
		}
	}

	n := g.NodeCount()
	r := &runner[NID, EID, N, E]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    make(map[NID]int64, n),
		visited: g.NewVisitMap(),
		pq:      make(nodePQ[NID], 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[NID]NID, n)
	}

	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path from source to target out of a predecessor map
// returned with WithReturnPath. Returns ErrNoPath if target was not reached.
func PathTo[NID comparable](prev map[NID]NID, source, target NID) ([]NID, error) {
	path := []NID{target}
	for at := target; at != source; {
		p, ok := prev[at]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, target)
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[NID, EID comparable, N, E any] struct {
	g       visit.Graph[NID, EID, N, E]
	cost    func(E) int64
	options Options
	dist    map[NID]int64
	prev    map[NID]NID
	visited visit.VisitMap[NID]
	pq      nodePQ[NID]
}

// init sets dist[v] = +∞ for every node, dist[source] = 0, and seeds the heap.
func (r *runner[NID, EID, N, E]) init(source NID) {
	for v := range r.g.Nodes() {
		r.dist[v] = math.MaxInt64
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[NID]{id: source, dist: 0})
}

// process repeatedly extracts the closest unfinished node and relaxes its
// edges, stopping when the heap is empty or MaxDistance is exceeded.
func (r *runner[NID, EID, N, E]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[NID])
		if r.visited.IsVisited(item.id) {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited.Visit(item.id)
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbour of u.
func (r *runner[NID, EID, N, E]) relax(u NID) {
	du := r.dist[u]
	for e := range r.g.Edges(u) {
		w := r.cost(e.Weight)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[e.Target] {
			continue
		}
		r.dist[e.Target] = nd
		if r.prev != nil {
			r.prev[e.Target] = u
		}
		heap.Push(&r.pq, &nodeItem[NID]{id: e.Target, dist: nd})
	}
}

// nodeItem represents a node and its current distance from the source.
type nodeItem[NID comparable] struct {
	id   NID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, used with the
// lazy decrease-key strategy.
type nodePQ[NID comparable] []*nodeItem[NID]

func (pq nodePQ[NID]) Len() int           { return len(pq) }
func (pq nodePQ[NID]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[NID]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[NID]) Push(x any) { *pq = append(*pq, x.(*nodeItem[NID])) }

func (pq *nodePQ[NID]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
