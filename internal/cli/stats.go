package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) statsCommand() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "stats [scenario.toml]",
		Short: "Print structural statistics of a scenario graph",
		Long: `Print structural statistics of a scenario graph.

Reports node, edge and wall counts, the degree histogram of the lattice
and the sizes of the connected regions of open cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) runStats(ctx context.Context, w io.Writer, path string, flags engineFlags) error {
	logger := loggerFromContext(ctx)

	sc, err := flags.load(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	net, err := buildNetwork(sc)
	if err != nil {
		return err
	}
	st := net.stats()
	prog.done("Collected statistics", "engine", sc.Engine, "components", len(st.Components))

	writeStats(w, st)
	return nil
}

func writeStats(w io.Writer, st Stats) {
	fmt.Fprintf(w, "nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "edges: %d\n", st.Edges)
	fmt.Fprintf(w, "walls: %d\n", st.Walls)

	degs := make([]int, 0, len(st.Degrees))
	for d := range st.Degrees {
		degs = append(degs, d)
	}
	slices.Sort(degs)
	for _, d := range degs {
		fmt.Fprintf(w, "degree %d: %d\n", d, st.Degrees[d])
	}

	fmt.Fprintf(w, "components: %d\n", len(st.Components))
	if len(st.Components) > 0 {
		fmt.Fprintf(w, "largest: %d\n", st.Components[0])
	}
}
