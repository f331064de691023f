package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ErrNoEndpoints is returned by route when the scenario has no from/to pair.
var ErrNoEndpoints = errors.New("route: scenario must set from and to")

// engineFlags are the scenario overrides shared by route and stats.
type engineFlags struct {
	engine string
	wrapH  bool
	wrapV  bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "graph engine: gridgraph, lattice (default: scenario value)")
	cmd.Flags().BoolVar(&f.wrapH, "wrap-h", false, "connect the last row back to the first")
	cmd.Flags().BoolVar(&f.wrapV, "wrap-v", false, "connect the last column back to the first")
}

// load reads the scenario at path and applies the flag overrides.
func (f *engineFlags) load(path string) (*Scenario, error) {
	sc, err := LoadScenario(path)
	if err != nil {
		return nil, err
	}
	if f.engine != "" {
		sc.Engine = f.engine
	}
	sc.WrapH = sc.WrapH || f.wrapH
	sc.WrapV = sc.WrapV || f.wrapV
	if err := sc.resolve(); err != nil {
		return nil, err
	}

	return sc, nil
}

func (c *CLI) routeCommand() *cobra.Command {
	var (
		flags    engineFlags
		noRender bool
	)

	cmd := &cobra.Command{
		Use:   "route [scenario.toml]",
		Short: "Find the cheapest route between the scenario endpoints",
		Long: `Find the cheapest route between the scenario endpoints.

Every open cell is a node; moving between two adjacent open cells costs the
sum of their cell costs. Walls (negative costs) cannot be entered. With
--wrap-h or --wrap-v the grid closes into a cylinder or torus.

The route, its cost and an ASCII rendering with the path marked '*' are
written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd.Context(), cmd.OutOrStdout(), args[0], flags, !noRender)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noRender, "no-render", false, "omit the ASCII rendering")

	return cmd
}

func (c *CLI) runRoute(ctx context.Context, w io.Writer, path string, flags engineFlags, render bool) error {
	logger := loggerFromContext(ctx)

	sc, err := flags.load(path)
	if err != nil {
		return err
	}
	from, to, ok := sc.Endpoints()
	if !ok {
		return ErrNoEndpoints
	}
	h, v := sc.Extents()
	logger.Debug("Loaded scenario", "path", path, "rows", h, "cols", v, "engine", sc.Engine)

	prog := newProgress(logger)
	net, err := buildNetwork(sc)
	if err != nil {
		return err
	}
	cost, route, err := net.route(from, to)
	if err != nil {
		return fmt.Errorf("route %v -> %v: %w", from, to, err)
	}
	prog.done(fmt.Sprintf("Routed %d×%d scenario", h, v), "cost", cost, "steps", len(route)-1)

	fmt.Fprintf(w, "cost: %d\n", cost)
	fmt.Fprintf(w, "path: %s\n", formatPath(route))
	if render {
		fmt.Fprint(w, renderRoute(sc, route))
	}

	return nil
}

func formatPath(route []Point) string {
	parts := make([]string, len(route))
	for i, p := range route {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// renderRoute draws the scenario rows with route cells replaced by '*'.
func renderRoute(sc *Scenario, route []Point) string {
	rows := make([][]byte, len(sc.Rows))
	for i, r := range sc.Rows {
		rows[i] = []byte(r)
	}
	for _, p := range route {
		rows[p.H][p.V] = '*'
	}

	var b strings.Builder
	for _, r := range rows {
		b.Write(r)
		b.WriteByte('\n')
	}
	return b.String()
}
