// Package cli implements the latticepath command-line interface.
//
// latticepath loads a grid scenario from a TOML file, builds a lattice graph
// from it and answers routing and structure questions.
//
// # Commands
//
//   - route: cheapest path between two cells (Dijkstra)
//   - stats: node, edge, degree and component counts
//   - maze: random perfect maze carved from a minimum spanning tree
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context so solvers can report progress.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "latticepath"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Route and inspect grid scenarios as lattice graphs",
		Long:         `latticepath builds a lattice graph from a TOML grid scenario and computes shortest routes and structural statistics on it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.mazeCommand())

	return root
}
