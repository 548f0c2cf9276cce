// Package cli implements the vizset command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizset/pkg/buildinfo"
	"github.com/matzehuels/vizset/pkg/dataset"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "vizset"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
	quiet   bool
}

// New creates a new CLI instance with a default logger.
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
		Use:   appName,
		Short: "vizset turns edge tables and graphs into visualization datasets",
		Long: `vizset converts an edge table (CSV or JSON records), an optional node table
and a set of column bindings into a dataset payload for a remote graph
visualization service, either as a JSON edge list or as a compact vgraph
message.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case c.verbose:
				c.SetLogLevel(LogDebug)
			case c.quiet:
				c.SetLogLevel(log.ErrorLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "only log errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newBuilder creates a dataset builder that logs through the command logger.
func newBuilder(logger *log.Logger, prefix string) *dataset.Builder {
	return dataset.NewBuilder(dataset.Options{
		Logger: logger,
		Prefix: prefix,
	})
}
