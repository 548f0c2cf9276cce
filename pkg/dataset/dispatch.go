package dataset

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/adapter"
	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

// VariantTabular names the input variant for graphs given as an edge table.
const VariantTabular = "tabular-edges"

// Dispatch routes g to the stage that turns it into tables.
//
// The binding is checked first: source and destination must be bound, and
// node must be bound whenever nodes is non-nil, for graph input too.
// An edge table (*table.Table) is used directly, together with nodes. Any
// other value is offered to each adapter in order; the first one whose
// Accepts returns true converts it, and nodes is ignored. Dispatch returns
// the tables, the binding to use from here on and the name of the variant.
func Dispatch(adapters []adapter.Adapter, b binding.Binding, g any, nodes *table.Table, logger *log.Logger) (adapter.Result, string, error) {
	if err := b.Require(nodes != nil); err != nil {
		return adapter.Result{}, "", err
	}
	if t, ok := g.(*table.Table); ok && t != nil {
		observability.Dataset().OnDispatch(VariantTabular)
		return adapter.Result{Edges: t, Nodes: nodes, Binding: b}, VariantTabular, nil
	}

	a, ok := adapter.Find(adapters, g)
	if !ok {
		return adapter.Result{}, "", errors.New(errors.ErrCodeUnsupportedGraph,
			"Expected an edge table or an attribute/tuple-list graph, got %T.", g)
	}
	if nodes != nil && logger != nil {
		logger.Debug("node table ignored for graph input", "variant", a.Name())
	}
	observability.Dataset().OnDispatch(a.Name())

	res, err := a.Convert(g, b, logger)
	if err != nil {
		return adapter.Result{}, "", err
	}
	return res, a.Name(), nil
}
