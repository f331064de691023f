package cli

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Scenario errors.
var (
	ErrEmptyGrid    = errors.New("scenario: grid must have at least one row and one column")
	ErrRaggedGrid   = errors.New("scenario: all rows must have the same length")
	ErrUnknownCell  = errors.New("scenario: cell has no cost entry")
	ErrBadEndpoint  = errors.New("scenario: endpoint must be [h, v] inside the grid")
	ErrBlockedPoint = errors.New("scenario: endpoint is a wall")
	ErrUnknownMode  = errors.New("scenario: unknown engine")
	ErrCostRange    = errors.New("scenario: cell cost exceeds maximum")
)

// wall is the edge cost of a move touching an impassable cell.
const wall = math.MaxInt64

// maxCellCost bounds open cell costs so move costs and route totals stay
// far below wall.
const maxCellCost = math.MaxInt32

// Engine names.
const (
	EngineGrid    = "gridgraph"
	EngineLattice = "lattice"
)

// Scenario is a grid routing problem read from TOML:
//
//	engine = "gridgraph"
//	wrap_h = false
//	wrap_v = false
//	rows   = ["..#", "...", "#.."]
//	from   = [0, 0]
//	to     = [2, 2]
//
//	[costs]
//	"." = 1
//	"#" = -1
//
// Row r of rows is node row h = r; character c of a row is column v = c.
// A negative cost marks a wall. Open cells cost at most maxCellCost.
// Moving between two open cells costs the sum of their cell costs.
type Scenario struct {
	Engine string           `toml:"engine"`
	WrapH  bool             `toml:"wrap_h"`
	WrapV  bool             `toml:"wrap_v"`
	Rows   []string         `toml:"rows"`
	From   []int            `toml:"from"`
	To     []int            `toml:"to"`
	Costs  map[string]int64 `toml:"costs"`

	cells [][]int64 // resolved cell costs, -1 for walls
}

// Point is a (h, v) cell position.
type Point struct {
	H, V int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.H, p.V) }

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and validates a TOML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if _, err := toml.Decode(string(data), &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if sc.Engine == "" {
		sc.Engine = EngineGrid
	}
	if err := sc.resolve(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// resolve validates the grid and endpoints and caches cell costs.
func (sc *Scenario) resolve() error {
	switch sc.Engine {
	case EngineGrid, EngineLattice:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, sc.Engine)
	}
	if len(sc.Rows) == 0 || len(sc.Rows[0]) == 0 {
		return ErrEmptyGrid
	}
	v := len(sc.Rows[0])
	sc.cells = make([][]int64, len(sc.Rows))
	for h, row := range sc.Rows {
		if len(row) != v {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, h, len(row), v)
		}
		sc.cells[h] = make([]int64, v)
		for c := 0; c < v; c++ {
			cost, ok := sc.Costs[row[c:c+1]]
			if !ok {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, row[c:c+1], h, c)
			}
			if cost < 0 {
				cost = -1
			}
			if cost > maxCellCost {
				return fmt.Errorf("%w: %q costs %d, limit %d", ErrCostRange, row[c:c+1], cost, maxCellCost)
			}
			sc.cells[h][c] = cost
		}
	}
	for _, p := range [][]int{sc.From, sc.To} {
		if len(p) == 0 {
			continue
		}
		if len(p) != 2 || p[0] < 0 || p[0] >= len(sc.Rows) || p[1] < 0 || p[1] >= v {
			return fmt.Errorf("%w: got %v", ErrBadEndpoint, p)
		}
		if sc.cells[p[0]][p[1]] < 0 {
			return fmt.Errorf("%w: %v", ErrBlockedPoint, p)
		}
	}
	return nil
}

// Extents returns the number of rows and columns.
func (sc *Scenario) Extents() (h, v int) { return len(sc.cells), len(sc.cells[0]) }

// CellCost returns the cost of entering cell (h, v) and whether it is open.
func (sc *Scenario) CellCost(h, v int) (int64, bool) {
	c := sc.cells[h][v]
	return c, c >= 0
}

// MoveCost returns the cost of the move between two cells, or wall.
func (sc *Scenario) MoveCost(a, b Point) int64 {
	ca, oka := sc.CellCost(a.H, a.V)
	cb, okb := sc.CellCost(b.H, b.V)
	if !oka || !okb {
		return wall
	}
	return ca + cb
}

// Endpoints returns the route endpoints; ok is false when either is unset.
func (sc *Scenario) Endpoints() (from, to Point, ok bool) {
	if len(sc.From) != 2 || len(sc.To) != 2 {
		return Point{}, Point{}, false
	}
	return Point{H: sc.From[0], V: sc.From[1]}, Point{H: sc.To[0], V: sc.To[1]}, true
}
