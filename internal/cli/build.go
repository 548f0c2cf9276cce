package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizset/pkg/dataset"
	"github.com/matzehuels/vizset/pkg/errors"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	inputOpts
	format string // wire format: "json" or "vgraph"
	output string // output file, or base path for vgraph
	prefix string // dataset name prefix
}

// buildCommand creates the build command, which turns an edge table into a
// dataset payload.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{format: string(dataset.FormatJSON)}

	cmd := &cobra.Command{
		Use:   "build [edges]",
		Short: "Build a dataset payload from an edge table",
		Long: `Build a dataset payload from an edge table.

The edge table is read from a CSV file with a header row or a JSON array of
objects. Columns are bound to graph and visual roles with flags or a config
file; flags win over the file.

With --format json (default) the payload is written to stdout, or to the
file named by --output. With --format vgraph the command writes
<base>.vgraph and <base>.encodings.json, where <base> is --output or the
edge file name without its extension.`,
		Example: `  vizset build edges.csv -s src -d dst
  vizset build edges.csv --nodes nodes.csv -n id --point-title name -f vgraph -o out/graph
  vizset build edges.json -c bindings.toml -o dataset.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := dataset.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			return c.runBuild(cmd, args[0], format, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "payload format: json (default), vgraph")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (json) or base path (vgraph)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", dataset.DefaultPrefix, "dataset name prefix")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, edgesPath string, format dataset.Format, opts *buildOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	b, err := opts.binding()
	if err != nil {
		return err
	}
	edges, nodes, err := opts.load(edgesPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded tables", "edges", edges.Len(), "binding", b)

	ds, err := newBuilder(logger, opts.prefix).Build(b, edges, nodes, format)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %s", ds.DatasetName()))

	switch d := ds.(type) {
	case *dataset.JSONDataset:
		return writeJSONDataset(cmd, d, opts.output)
	case *dataset.VGraphDataset:
		base := opts.output
		if base == "" {
			base = strings.TrimSuffix(filepath.Base(edgesPath), filepath.Ext(edgesPath))
		}
		return writeVGraphDataset(cmd, d, base)
	}
	return errors.New(errors.ErrCodeInternal, "unexpected dataset %T", ds)
}

func writeJSONDataset(cmd *cobra.Command, ds *dataset.JSONDataset, output string) error {
	data, err := json.Marshal(ds)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", ds.Name)
	}
	if output == "" || output == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := writeFile(output, data); err != nil {
		return err
	}
	w := cmd.ErrOrStderr()
	printSuccess(w, "Dataset %s", StyleHighlight.Render(ds.Name))
	printStats(w, len(ds.Graph), len(ds.Labels))
	printFile(w, output)
	return nil
}

// vgraphManifest is the JSON sidecar written next to a .vgraph file.
type vgraphManifest struct {
	Name      string            `json:"name"`
	Encodings dataset.Encodings `json:"encodings"`
}

func writeVGraphDataset(cmd *cobra.Command, ds *dataset.VGraphDataset, base string) error {
	data, err := ds.Graph.Marshal()
	if err != nil {
		return err
	}
	manifest, err := json.MarshalIndent(vgraphManifest{Name: ds.Graph.Name, Encodings: ds.Encodings}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode encodings")
	}

	graphPath, encPath := base+".vgraph", base+".encodings.json"
	if err := writeFile(graphPath, data); err != nil {
		return err
	}
	if err := writeFile(encPath, append(manifest, '\n')); err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	printSuccess(w, "Dataset %s", StyleHighlight.Render(ds.Graph.Name))
	printStats(w, int(ds.Graph.NEdges), int(ds.Graph.NVertices))
	printFile(w, graphPath)
	printFile(w, encPath)
	return nil
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
