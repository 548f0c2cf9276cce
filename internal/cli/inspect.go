package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/vgraph"
)

// inspectCommand creates the inspect command, which summarizes a .vgraph file.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file.vgraph]",
		Short: "Summarize a vgraph payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	g, err := vgraph.Unmarshal(data)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("decoded vgraph", "bytes", len(data))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, StyleTitle.Render(g.Name))
	printKeyValue(w, "version", fmt.Sprint(g.Version))
	printKeyValue(w, "type", g.Type.String())
	printKeyValue(w, "vertices", fmt.Sprint(g.NVertices))
	printKeyValue(w, "edges", fmt.Sprint(g.NEdges))
	if int(g.NEdges) != len(g.Edges) {
		fmt.Fprintln(w, StyleWarning.Render(fmt.Sprintf("! header declares %d edges, found %d", g.NEdges, len(g.Edges))))
	}

	if g.VectorCount() == 0 {
		return nil
	}
	fmt.Fprintln(w)
	for _, v := range g.StringVectors {
		printVector(w, v.Name, v.Target, "string", len(v.Values))
	}
	for _, v := range g.Int32Vectors {
		printVector(w, v.Name, v.Target, "int32", len(v.Values))
	}
	for _, v := range g.DoubleVectors {
		printVector(w, v.Name, v.Target, "double", len(v.Values))
	}
	return nil
}

func printVector(w io.Writer, name string, target vgraph.Target, kind string, n int) {
	printKeyValue(w, name, fmt.Sprintf("%s %s × %d", target, kind, n))
}
