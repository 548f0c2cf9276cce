package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	inputOpts
	output   string // .svg or .dot file
	detailed bool   // list every node column in node labels
	maxNodes int    // refuse larger graphs
}

// previewCommand creates the preview command, which draws a prepared
// dataset locally with Graphviz.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [edges]",
		Short: "Draw the prepared graph as SVG or DOT",
		Long: `Draw the prepared graph as SVG or DOT.

preview runs the same dispatch, binding checks and sanitization as build and
draws the surviving nodes and edges with Graphviz. It is meant for checking
bindings on small graphs before building a payload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				opts.output = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".svg"
			}
			return c.runPreview(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg or .dot)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show every node column")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", preview.DefaultMaxNodes, "largest graph to draw (-1 for no limit)")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, edgesPath string, opts *previewOpts) error {
	logger := loggerFromContext(cmd.Context())

	b, err := opts.binding()
	if err != nil {
		return err
	}
	edges, nodes, err := opts.load(edgesPath)
	if err != nil {
		return err
	}
	p, err := newBuilder(logger, "").Prepare(b, edges, nodes)
	if err != nil {
		return err
	}
	dot, err := preview.ToDOT(p, preview.Options{Detailed: opts.detailed, MaxNodes: opts.maxNodes})
	if err != nil {
		return err
	}

	data := []byte(dot)
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".dot", ".gv":
	case ".svg":
		spin := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering preview...")
		spin.Start()
		data, err = preview.RenderSVG(cmd.Context(), dot)
		if err != nil {
			spin.StopWithError("Rendering failed")
			return err
		}
		spin.Stop()
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unsupported preview file %q (want .svg or .dot)", opts.output)
	}

	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	w := cmd.ErrOrStderr()
	printSuccess(w, "Preview %s", StyleHighlight.Render(fmt.Sprintf("(%s)", p.Variant)))
	printStats(w, p.Edges.Len(), p.Nodes.Len())
	printFile(w, opts.output)
	return nil
}
