package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
)

// inputOpts holds the flags shared by every command that reads an edge
// table: the node table and the column bindings.
type inputOpts struct {
	nodes  string         // node table path (CSV or JSON)
	config string         // binding config file (TOML or YAML)
	fields binding.Fields // per-role flags, applied over the config file
}

// register adds the input flags to cmd.
func (o *inputOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.nodes, "nodes", "", "node table (.csv or .json)")
	f.StringVarP(&o.config, "config", "c", "", "binding config file (.toml, .yaml)")

	f.StringVarP(&o.fields.Source, "source", "s", "", "column holding edge sources")
	f.StringVarP(&o.fields.Destination, "destination", "d", "", "column holding edge destinations")
	f.StringVarP(&o.fields.Node, "node", "n", "", "node table column holding node ids")

	f.StringVar(&o.fields.EdgeTitle, "edge-title", "", "column bound to edge titles")
	f.StringVar(&o.fields.EdgeLabel, "edge-label", "", "column bound to edge labels")
	f.StringVar(&o.fields.EdgeColor, "edge-color", "", "column bound to edge colors")
	f.StringVar(&o.fields.EdgeWeight, "edge-weight", "", "column bound to edge weights")

	f.StringVar(&o.fields.PointTitle, "point-title", "", "column bound to node titles")
	f.StringVar(&o.fields.PointLabel, "point-label", "", "column bound to node labels")
	f.StringVar(&o.fields.PointColor, "point-color", "", "column bound to node colors")
	f.StringVar(&o.fields.PointSize, "point-size", "", "column bound to node sizes")

	cmd.MarkFlagFilename("nodes", "csv", "json")
	cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
}

// binding returns the config file bindings with the flag bindings applied
// on top.
func (o *inputOpts) binding() (binding.Binding, error) {
	var b binding.Binding
	if o.config != "" {
		f, err := binding.LoadFile(o.config)
		if err != nil {
			return b, err
		}
		b = binding.New(f)
	}
	if err := o.fields.Validate(); err != nil {
		return b, err
	}
	return b.Bind(o.fields), nil
}

// load reads the edge table and, if given, the node table.
func (o *inputOpts) load(edgesPath string) (*table.Table, *table.Table, error) {
	edges, err := table.ReadFile(edgesPath)
	if err != nil {
		return nil, nil, err
	}
	if o.nodes == "" {
		return edges, nil, nil
	}
	nodes, err := table.ReadFile(o.nodes)
	if err != nil {
		return nil, nil, err
	}
	return edges, nodes, nil
}
