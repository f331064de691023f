package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/lattice"
	pk "github.com/katalvlaran/lattice/prim_kruskal"
)

type mazeEdge = lattice.EdgeID[lattice.Offset, lattice.RectAxis]

func (c *CLI) mazeCommand() *cobra.Command {
	var (
		rows, cols int
		seed       uint64
		method     string
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Carve a random perfect maze from a spanning tree",
		Long: `Carve a random perfect maze from a spanning tree.

Every edge of a rows×cols lattice gets a random cost from --seed; the
minimum spanning tree of the lattice (Kruskal or Prim) becomes the set of
open passages, so exactly one path joins any two cells.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMaze(cmd.Context(), cmd.OutOrStdout(), rows, cols, seed, method)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 5, "maze rows")
	cmd.Flags().IntVarP(&cols, "cols", "c", 8, "maze columns")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&method, "method", "m", pk.MethodKruskal, "spanning tree algorithm: kruskal, prim")

	return cmd
}

func (c *CLI) runMaze(ctx context.Context, w io.Writer, rows, cols int, seed uint64, method string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := lattice.NewRectShape(rows, cols)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	g, err := lattice.New[struct{}, int64, lattice.Offset, lattice.RectAxis](s,
		func(lattice.Offset) struct{} { return struct{}{} },
		func(lattice.Offset, lattice.RectAxis) int64 { return rng.Int64N(1 << 30) },
	)
	if err != nil {
		return err
	}

	tree, _, err := pk.Compute[lattice.Offset, mazeEdge, struct{}, int64](g, identity, pk.WithMethod[lattice.Offset](method))
	if err != nil {
		return fmt.Errorf("maze: %w", err)
	}
	passages := make([]mazeEdge, len(tree))
	for i, e := range tree {
		passages[i] = e.ID
	}
	logger.Debug("Spanning tree", "method", method, "edges", len(passages))
	prog.done(fmt.Sprintf("Carved %d×%d maze", rows, cols), "seed", seed)

	fmt.Fprint(w, renderMaze(rows, cols, passages))
	return nil
}

// renderMaze draws cells at odd coordinates of a (2h+1)×(2v+1) wall grid
// and opens the wall between the endpoints of every passage.
func renderMaze(h, v int, passages []mazeEdge) string {
	grid := make([][]byte, 2*h+1)
	for i := range grid {
		grid[i] = make([]byte, 2*v+1)
		for j := range grid[i] {
			grid[i][j] = '#'
		}
	}
	for r := 0; r < h; r++ {
		for c := 0; c < v; c++ {
			grid[2*r+1][2*c+1] = ' '
		}
	}
	for _, p := range passages {
		r, c := 2*p.Coord.H+1, 2*p.Coord.V+1
		if p.Axis == lattice.AxisX {
			r++
		} else {
			c++
		}
		grid[r][c] = ' '
	}

	out := make([]byte, 0, (2*h+1)*(2*v+2))
	for _, line := range grid {
		out = append(out, line...)
		out = append(out, '\n')
	}
	return string(out)
}
