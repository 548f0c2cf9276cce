//go:build !nogonum

package adapter

import (
	"slices"
	"sort"

	"github.com/charmbracelet/log"
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

func init() {
	Register(TupleList{})
}

// TupleList adapts gonum graphs, read as lists of nodes-with-data and
// edges-with-data.
//
// Node ids are the gonum int64 ids. Node and edge data come from
// encoding.Attributer, so attribute values are strings. Weighted edges and
// lines also carry their float64 weight under "weight", unless their
// attributes already name one. Nodes are listed in
// ascending id order and edges in ascending (from, to) order, because gonum
// graphs iterate in map order. Undirected graphs list each edge once, from
// its lower-id end; multigraphs list every line.
type TupleList struct{}

// Name implements Adapter.
func (TupleList) Name() string { return "tuple-list-graph" }

// Accepts implements Adapter.
func (TupleList) Accepts(g any) bool {
	_, ok := g.(gograph.Graph)
	return ok
}

// Convert implements Adapter.
func (t TupleList) Convert(g any, b binding.Binding, logger *log.Logger) (Result, error) {
	gr, ok := g.(gograph.Graph)
	if !ok {
		return Result{}, errors.New(errors.ErrCodeUnsupportedGraph, "%s: unexpected graph %T", t.Name(), g)
	}
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)

	nodes := sortedNodes(gr.Nodes())
	vattrs := newSchema()
	nodeData := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		nodeData[i] = vattrs.add(n)
	}

	nodeID := b.Get(binding.Node)
	if nodeID == "" {
		nodeID = binding.DefaultNodeID
		observability.Warn(logger, observability.WarnNodeUnbound,
			`"node" is unbound, automatically binding it to "%s".`, nodeID)
	}
	if slices.Contains(vattrs.names, nodeID) {
		return Result{}, errors.New(errors.ErrCodeBinding, `Vertex attribute "%s" already exists.`, nodeID)
	}

	nodeCols := []table.Column{{Name: nodeID, Values: make([]any, len(nodes))}}
	for _, name := range vattrs.names {
		nodeCols = append(nodeCols, table.Column{Name: name, Values: make([]any, len(nodes))})
	}
	for i, n := range nodes {
		nodeCols[0].Values[i] = n.ID()
		for j, name := range vattrs.names {
			nodeCols[1+j].Values[i] = nodeData[i][name]
		}
	}
	nodeTable, err := table.New(nodeCols...)
	if err != nil {
		return Result{}, err
	}

	type edgeRow struct {
		from, to int64
		data     map[string]any
	}
	var rows []edgeRow
	eattrs := newSchema()
	_, undirected := gr.(gograph.Undirected)
	multi, isMulti := gr.(gograph.Multigraph)
	for _, u := range nodes {
		for _, v := range sortedNodes(gr.From(u.ID())) {
			if undirected && v.ID() < u.ID() {
				continue
			}
			if isMulti {
				lines := gograph.LinesOf(multi.Lines(u.ID(), v.ID()))
				sort.SliceStable(lines, func(i, j int) bool { return lines[i].ID() < lines[j].ID() })
				for _, l := range lines {
					rows = append(rows, edgeRow{u.ID(), v.ID(), eattrs.add(l)})
				}
				continue
			}
			rows = append(rows, edgeRow{u.ID(), v.ID(), eattrs.add(gr.Edge(u.ID(), v.ID()))})
		}
	}

	names := endpointSafe(eattrs.names, src, dst, logger)
	edgeCols := []table.Column{
		{Name: src, Values: make([]any, len(rows))},
		{Name: dst, Values: make([]any, len(rows))},
	}
	for _, name := range names {
		edgeCols = append(edgeCols, table.Column{Name: name, Values: make([]any, len(rows))})
	}
	for i, r := range rows {
		edgeCols[0].Values[i] = r.from
		edgeCols[1].Values[i] = r.to
		for j, name := range names {
			edgeCols[2+j].Values[i] = r.data[name]
		}
	}
	edgeTable, err := table.New(edgeCols...)
	if err != nil {
		return Result{}, err
	}

	return Result{Edges: edgeTable, Nodes: nodeTable, Binding: b.With(binding.Node, nodeID)}, nil
}

func sortedNodes(it gograph.Nodes) []gograph.Node {
	nodes := gograph.NodesOf(it)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return nodes
}

// schema collects attribute names in first-seen order.
type schema struct {
	names []string
	seen  map[string]bool
}

func newSchema() *schema {
	return &schema{seen: make(map[string]bool)}
}

// add records the attributes of v, if it has any, and returns them as a map.
func (s *schema) add(v any) map[string]any {
	var data map[string]any
	if a, ok := v.(encoding.Attributer); ok {
		attrs := a.Attributes()
		data = make(map[string]any, len(attrs)+1)
		for _, attr := range attrs {
			s.record(attr.Key)
			data[attr.Key] = attr.Value
		}
	}
	if w, ok := v.(weighted); ok {
		if _, ok := data[weightAttr]; !ok {
			if data == nil {
				data = make(map[string]any, 1)
			}
			s.record(weightAttr)
			data[weightAttr] = w.Weight()
		}
	}
	return data
}

func (s *schema) record(name string) {
	if !s.seen[name] {
		s.seen[name] = true
		s.names = append(s.names, name)
	}
}

const weightAttr = "weight"

// weighted is satisfied by gonum's WeightedEdge and WeightedLine.
type weighted interface {
	Weight() float64
}
