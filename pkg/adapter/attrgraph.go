package adapter

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/graph"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

func init() {
	Register(AttrGraph{})
}

// AttrGraph adapts a *graph.AttrGraph.
//
// Vertex ids come from the vertex attribute named by the node role. When the
// node role is unbound, vertex i gets id i under binding.DefaultNodeID.
type AttrGraph struct{}

// Name implements Adapter.
func (AttrGraph) Name() string { return "attribute-graph" }

// Accepts implements Adapter.
func (AttrGraph) Accepts(g any) bool {
	ag, ok := g.(*graph.AttrGraph)
	return ok && ag != nil
}

// Convert implements Adapter.
func (a AttrGraph) Convert(g any, b binding.Binding, logger *log.Logger) (Result, error) {
	ag, ok := g.(*graph.AttrGraph)
	if !ok || ag == nil {
		return Result{}, errors.New(errors.ErrCodeUnsupportedGraph, "%s: unexpected graph %T", a.Name(), g)
	}
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)

	vattrs := ag.VertexAttributes()
	nodeID := b.Get(binding.Node)
	ids := make([]any, ag.VertexCount())
	switch {
	case nodeID == "":
		nodeID = binding.DefaultNodeID
		observability.Warn(logger, observability.WarnNodeUnbound,
			`"node" is unbound, automatically binding it to "%s".`, nodeID)
		for i := range ids {
			ids[i] = i
		}
		// an existing attribute of that name is replaced by the indices
		if !slices.Contains(vattrs, nodeID) {
			vattrs = append(vattrs, nodeID)
		}
	case !ag.HasVertexAttribute(nodeID):
		return Result{}, errors.New(errors.ErrCodeBinding, `Vertex attribute "%s" bound to "node" does not exist.`, nodeID)
	default:
		for i := range ids {
			ids[i] = ag.VertexAttr(i, nodeID)
		}
	}

	nodeCols := make([]table.Column, len(vattrs))
	for j, name := range vattrs {
		values := make([]any, ag.VertexCount())
		for i := range values {
			if name == nodeID {
				values[i] = ids[i]
			} else {
				values[i] = ag.VertexAttr(i, name)
			}
		}
		nodeCols[j] = table.Column{Name: name, Values: values}
	}
	nodes, err := table.New(nodeCols...)
	if err != nil {
		return Result{}, err
	}

	eattrs := endpointSafe(ag.EdgeAttributes(), src, dst, logger)
	list := ag.Edges()
	edgeCols := make([]table.Column, 2+len(eattrs))
	edgeCols[0] = table.Column{Name: src, Values: make([]any, len(list))}
	edgeCols[1] = table.Column{Name: dst, Values: make([]any, len(list))}
	for j, name := range eattrs {
		edgeCols[2+j] = table.Column{Name: name, Values: make([]any, len(list))}
	}
	for i, e := range list {
		edgeCols[0].Values[i] = ids[e.Src]
		edgeCols[1].Values[i] = ids[e.Dst]
		for j, name := range eattrs {
			edgeCols[2+j].Values[i] = e.Attrs[name]
		}
	}
	edges, err := table.New(edgeCols...)
	if err != nil {
		return Result{}, err
	}

	return Result{Edges: edges, Nodes: nodes, Binding: b.With(binding.Node, nodeID)}, nil
}

// endpointSafe drops edge attributes that would overwrite the source or
// destination column.
func endpointSafe(attrs []string, src, dst string, logger *log.Logger) []string {
	out := attrs[:0:0]
	for _, name := range attrs {
		if name == src || name == dst {
			observability.Warn(logger, observability.WarnShadowedColumn,
				`Edge attribute "%s" collides with an endpoint column and is ignored.`, name)
			continue
		}
		out = append(out, name)
	}
	return out
}
