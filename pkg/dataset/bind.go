package dataset

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

// Canonical visual-role keys.
const (
	keyEdgeColor  = "edgeColor"
	keyEdgeLabel  = "edgeLabel"
	keyEdgeTitle  = "edgeTitle"
	keyEdgeWeight = "edgeWeight"
	keyPointColor = "pointColor"
	keyPointLabel = "pointLabel"
	keyPointTitle = "pointTitle"
	keyPointSize  = "pointSize"
)

type encoding struct {
	key  string
	role binding.Role
}

var (
	edgeEncodings = []encoding{
		{keyEdgeColor, binding.EdgeColor},
		{keyEdgeLabel, binding.EdgeLabel},
		{keyEdgeTitle, binding.EdgeTitle},
		{keyEdgeWeight, binding.EdgeWeight},
	}
	pointEncodings = []encoding{
		{keyPointColor, binding.PointColor},
		{keyPointLabel, binding.PointLabel},
		{keyPointTitle, binding.PointTitle},
		{keyPointSize, binding.PointSize},
	}
)

// resolved is a visual key whose column exists.
type resolved struct {
	key    string
	column string
}

// resolve matches each encoding to a column of t. A bound column that does
// not exist is skipped with a warning. An unbound point title falls back to
// the node-id column.
func resolve(t *table.Table, encs []encoding, b binding.Binding, logger *log.Logger) []resolved {
	var out []resolved
	for _, enc := range encs {
		bound := b.Get(enc.role)
		if bound == "" {
			if enc.role == binding.PointTitle && t.Has(b.NodeID()) {
				out = append(out, resolved{enc.key, b.NodeID()})
			}
			continue
		}
		if !t.Has(bound) {
			observability.Warn(logger, observability.WarnMissingAttribute,
				`Attribute "%s" bound to %s does not exist.`, bound, enc.role)
			continue
		}
		out = append(out, resolved{enc.key, bound})
	}
	return out
}

// BindInline copies each resolved column into a new column named after its
// visual key (edgeColor, pointSize, ...) and returns the derived tables.
func BindInline(edges, nodes *table.Table, b binding.Binding, logger *log.Logger) (*table.Table, *table.Table, error) {
	elist, err := copyColumns(edges, resolve(edges, edgeEncodings, b, logger))
	if err != nil {
		return nil, nil, err
	}
	nlist, err := copyColumns(nodes, resolve(nodes, pointEncodings, b, logger))
	if err != nil {
		return nil, nil, err
	}
	return elist, nlist, nil
}

func copyColumns(t *table.Table, cols []resolved) (*table.Table, error) {
	for _, c := range cols {
		var err error
		t, err = t.WithColumn(c.key, t.Values(c.column))
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// BindReference records the column behind each resolved visual key without
// touching the tables.
func BindReference(edges, nodes *table.Table, b binding.Binding, logger *log.Logger) Encodings {
	enc := Encodings{
		Source:      b.Get(binding.Source),
		Destination: b.Get(binding.Destination),
		NodeID:      b.NodeID(),
	}
	for _, r := range resolve(edges, edgeEncodings, b, logger) {
		enc.set(r.key, r.column)
	}
	for _, r := range resolve(nodes, pointEncodings, b, logger) {
		enc.set(r.key, r.column)
	}
	return enc
}
