package cli

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lattice/bfs"
	"github.com/katalvlaran/lattice/dijkstra"
	"github.com/katalvlaran/lattice/gridgraph"
	"github.com/katalvlaran/lattice/lattice"
)

// network is a scenario compiled into one of the graph engines.
type network interface {
	// route returns the cheapest path and its cost.
	route(from, to Point) (int64, []Point, error)
	// stats summarises the graph structure.
	stats() Stats
}

// Stats is the structural summary printed by the stats command.
type Stats struct {
	Nodes      int
	Edges      int
	Walls      int
	Degrees    map[int]int // degree -> number of nodes
	Components []int       // open component sizes, largest first
}

// buildNetwork compiles sc with the engine it names.
func buildNetwork(sc *Scenario) (network, error) {
	switch sc.Engine {
	case EngineLattice:
		return newLatticeNetwork(sc)
	default:
		return newGridNetwork(sc)
	}
}

// gridNetwork runs a scenario on the rectangular gridgraph engine.
type gridNetwork struct {
	sc *Scenario
	g  *gridgraph.Graph[int64, int64]
}

func newGridNetwork(sc *Scenario) (*gridNetwork, error) {
	h, v := sc.Extents()
	var opts []gridgraph.Option
	if sc.WrapH {
		opts = append(opts, gridgraph.WithHorizontalLoop())
	}
	if sc.WrapV {
		opts = append(opts, gridgraph.WithVerticalLoop())
	}
	g, err := gridgraph.New(h, v,
		func(h, v int) int64 {
			c, _ := sc.CellCost(h, v)
			return c
		},
		func(eh, ev int, a gridgraph.Axis) int64 {
			to := Point{H: eh, V: ev}
			if a.IsHorizontal() {
				to.H = (eh + 1) % h
			} else {
				to.V = (ev + 1) % v
			}
			return sc.MoveCost(Point{H: eh, V: ev}, to)
		},
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}

	return &gridNetwork{sc: sc, g: g}, nil
}

func (n *gridNetwork) route(from, to Point) (int64, []Point, error) {
	src, dst := gridgraph.Node(from.H, from.V), gridgraph.Node(to.H, to.V)
	dist, prev, err := dijkstra.Dijkstra[gridgraph.NodeIndex, gridgraph.EdgeIndex, int64, int64](
		n.g, src, identity, dijkstra.WithReturnPath(), dijkstra.WithInfEdgeThreshold(wall),
	)
	if err != nil {
		return 0, nil, err
	}
	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		return 0, nil, err
	}
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = Point{H: p.H, V: p.V}
	}

	return dist[dst], out, nil
}

func (n *gridNetwork) stats() Stats {
	st := Stats{Nodes: n.g.NodeCount(), Degrees: map[int]int{}}
	for range n.g.AllEdgeReferences() {
		st.Edges++
	}
	for ids := n.g.NodeIndices(); ; {
		id, ok := ids.Next()
		if !ok {
			break
		}
		if _, open := n.sc.CellCost(id.H, id.V); !open {
			st.Walls++
		}
		deg := 0
		for range n.g.AllEdges(id) {
			deg++
		}
		st.Degrees[deg]++
	}
	for _, comp := range n.g.ConnectedComponents(func(c int64) bool { return c >= 0 }) {
		st.Components = append(st.Components, len(comp))
	}
	sortComponents(st.Components)

	return st
}

// rectGraph is the lattice instantiation used for scenarios.
type rectGraph = lattice.Graph[int64, int64, lattice.Offset, lattice.RectAxis]

// latticeNetwork runs a scenario on the generic lattice engine over a
// WrapShape.
type latticeNetwork struct {
	sc *Scenario
	g  *rectGraph
}

func newLatticeNetwork(sc *Scenario) (*latticeNetwork, error) {
	h, v := sc.Extents()
	s, err := lattice.NewWrapShape(h, v, sc.WrapH, sc.WrapV)
	if err != nil {
		return nil, fmt.Errorf("build lattice: %w", err)
	}
	g, err := lattice.New[int64, int64, lattice.Offset, lattice.RectAxis](s,
		func(c lattice.Offset) int64 {
			cost, _ := sc.CellCost(c.H, c.V)
			return cost
		},
		func(c lattice.Offset, a lattice.RectAxis) int64 {
			to, err := s.MoveCoord(c, lattice.Forward(a))
			if err != nil {
				return wall
			}
			return sc.MoveCost(Point{H: c.H, V: c.V}, Point{H: to.H, V: to.V})
		},
	)
	if err != nil {
		return nil, fmt.Errorf("build lattice: %w", err)
	}

	return &latticeNetwork{sc: sc, g: g}, nil
}

func (n *latticeNetwork) route(from, to Point) (int64, []Point, error) {
	src, dst := lattice.NewOffset(from.H, from.V), lattice.NewOffset(to.H, to.V)
	dist, prev, err := dijkstra.Dijkstra[lattice.Offset, lattice.EdgeID[lattice.Offset, lattice.RectAxis], int64, int64](
		n.g, src, identity, dijkstra.WithReturnPath(), dijkstra.WithInfEdgeThreshold(wall),
	)
	if err != nil {
		return 0, nil, err
	}
	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		return 0, nil, err
	}
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = Point{H: p.H, V: p.V}
	}

	return dist[dst], out, nil
}

func (n *latticeNetwork) stats() Stats {
	st := Stats{Nodes: n.g.NodeCount(), Degrees: map[int]int{}}
	for range n.g.AllEdgeReferences() {
		st.Edges++
	}
	open := func(c lattice.Offset) bool {
		_, ok := n.sc.CellCost(c.H, c.V)
		return ok
	}
	seen := n.g.VisitMap()
	for c := range n.g.Nodes() {
		if !open(c) {
			st.Walls++
		}
		deg := 0
		for range n.g.AllEdges(c) {
			deg++
		}
		st.Degrees[deg]++

		if !open(c) || seen.IsVisited(c) {
			continue
		}
		res, err := bfs.BFS[lattice.Offset, lattice.EdgeID[lattice.Offset, lattice.RectAxis], int64, int64](
			n.g, c,
			bfs.WithFilterNeighbor[lattice.Offset](func(_, nb lattice.Offset) bool { return open(nb) }),
		)
		if err != nil {
			continue
		}
		for _, id := range res.Order {
			seen.Visit(id)
		}
		st.Components = append(st.Components, len(res.Order))
	}
	sortComponents(st.Components)

	return st
}

func identity(w int64) int64 { return w }

func sortComponents(sizes []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
}
