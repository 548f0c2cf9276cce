package graph

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

// FromTable builds an attribute graph from an edge table.
//
// Rows with a null endpoint are skipped. Every other column of the edge
// table becomes an edge attribute; the endpoint ids are stored on the
// vertices under b.NodeID(). When the node role is unbound a warning is
// logged and the sentinel field is used.
func FromTable(edges *table.Table, b binding.Binding, logger *log.Logger) (*AttrGraph, error) {
	if err := b.Require(false); err != nil {
		return nil, err
	}
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)
	for _, col := range []struct{ role, name string }{{"source", src}, {"destination", dst}} {
		if !edges.Has(col.name) {
			return nil, errors.New(errors.ErrCodeBinding,
				`Edge attribute "%s" bound to "%s" does not exist.`, col.role, col.name)
		}
	}
	if b.Get(binding.Node) == "" {
		observability.Warn(logger, observability.WarnNodeUnbound,
			`"node" is unbound, automatically binding it to "%s".`, binding.DefaultNodeID)
	}
	nodeID := b.NodeID()

	var eattrs []string
	for _, name := range edges.Columns() {
		if name != src && name != dst {
			eattrs = append(eattrs, name)
		}
	}

	g := New()
	index := make(map[any]int)
	vertex := func(id any) int {
		key := table.Key(id)
		if i, ok := index[key]; ok {
			return i
		}
		i := g.AddVertex(Attrs{nodeID: id})
		index[key] = i
		return i
	}

	rows := edges.DropNulls(src, dst)
	for i := 0; i < rows.Len(); i++ {
		s := vertex(rows.At(src, i))
		d := vertex(rows.At(dst, i))
		attrs := make(Attrs, len(eattrs))
		for _, name := range eattrs {
			attrs[name] = rows.At(name, i)
		}
		if err := g.AddEdge(s, d, attrs); err != nil {
			return nil, err
		}
	}
	return g, nil
}
