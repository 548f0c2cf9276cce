package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
	"github.com/matzehuels/vizset/pkg/vgraph"
)

const (
	nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	nameLength   = 10
)

// RandomName returns a random 10-character name of upper-case letters and
// digits.
func RandomName() string {
	b := make([]byte, nameLength)
	for i := range b {
		b[i] = nameAlphabet[rand.IntN(len(nameAlphabet))]
	}
	return string(b)
}

// =============================================================================
// JSON
// =============================================================================

// EncodeJSON builds the row-oriented payload from bound tables. nodes may be
// nil, in which case the payload has no labels.
func EncodeJSON(name string, edges, nodes *table.Table, b binding.Binding) *JSONDataset {
	ds := &JSONDataset{
		Name: name,
		Bindings: JSONBindings{
			IDField:          b.NodeID(),
			DestinationField: b.Get(binding.Destination),
			SourceField:      b.Get(binding.Source),
		},
		Type:  "edgelist",
		Graph: edges.Records(),
	}
	if nodes != nil {
		ds.Labels = nodes.Records()
	}
	return ds
}

// =============================================================================
// VGraph
// =============================================================================

// EncodeVGraph builds the VectorGraph message from sanitized tables.
//
// Vertex indices follow the first appearance of each id across all sources
// and then all destinations; nodes that no edge references are left out.
// Node rows are joined onto that order, so a vertex without a node row gets
// null attributes. Every column except the endpoints and the node id becomes
// one typed vector.
func EncodeVGraph(name string, edges, nodes *table.Table, b binding.Binding) (*vgraph.VectorGraph, error) {
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)
	nodeID := b.NodeID()

	ids := uniqueValues(edges.Values(src), edges.Values(dst))
	index := make(map[any]uint32, len(ids))
	for i, id := range ids {
		index[table.Key(id)] = uint32(i)
	}

	g := &vgraph.VectorGraph{
		Version:   vgraph.Version,
		Name:      name,
		Type:      vgraph.Directed,
		NVertices: uint32(len(ids)),
		NEdges:    uint32(edges.Len()),
		Edges:     make([]vgraph.EdgePair, edges.Len()),
	}
	for i := range g.Edges {
		g.Edges[i] = vgraph.EdgePair{
			Src: index[table.Key(edges.At(src, i))],
			Dst: index[table.Key(edges.At(dst, i))],
		}
	}

	for _, col := range edges.Columns() {
		if col == src || col == dst {
			continue
		}
		appendVector(g, col, vgraph.Edge, edges.Values(col), edges.Kind(col))
	}

	joined, err := leftJoin(ids, nodes, nodeID)
	if err != nil {
		return nil, err
	}
	for _, col := range joined.Columns() {
		if col == nodeID {
			continue
		}
		appendVector(g, col, vgraph.Vertex, joined.Values(col), joined.Kind(col))
	}
	return g, nil
}

// leftJoin returns one row per id, in order, carrying the columns of the
// first node row with that id.
func leftJoin(ids []any, nodes *table.Table, nodeID string) (*table.Table, error) {
	cols := []table.Column{{Name: nodeID, Values: ids}}
	if nodes == nil {
		return table.New(cols...)
	}

	rowOf := make(map[any]int, nodes.Len())
	if nodes.Has(nodeID) {
		for i := 0; i < nodes.Len(); i++ {
			key := table.Key(nodes.At(nodeID, i))
			if _, ok := rowOf[key]; !ok {
				rowOf[key] = i
			}
		}
	}
	for _, name := range nodes.Columns() {
		if name == nodeID {
			continue
		}
		values := make([]any, len(ids))
		for i, id := range ids {
			if row, ok := rowOf[table.Key(id)]; ok {
				values[i] = nodes.At(name, row)
			}
		}
		cols = append(cols, table.Column{Name: name, Values: values})
	}
	return table.New(cols...)
}

// appendVector adds one column to g as a string, int32 or double vector.
//
//   - strings: string vector, null as ""
//   - integers: int32 vector (wider values are truncated); a column with
//     nulls becomes a double vector with NaN
//   - floats: double vector, null as NaN
//   - booleans: int32 vector of 0 and 1, null as 0
//   - anything else: string vector of the printed values
func appendVector(g *vgraph.VectorGraph, name string, target vgraph.Target, values []any, kind table.Kind) {
	switch kind {
	case table.KindInt:
		if !hasNull(values) {
			out := make([]int32, len(values))
			for i, v := range values {
				x, _ := table.AsInt64(v)
				out[i] = int32(x)
			}
			g.Int32Vectors = append(g.Int32Vectors, vgraph.Int32Vector{Name: name, Target: target, Values: out})
			return
		}
		fallthrough
	case table.KindFloat:
		out := make([]float64, len(values))
		for i, v := range values {
			x, ok := table.AsFloat64(v)
			if !ok {
				x = math.NaN()
			}
			out[i] = x
		}
		g.DoubleVectors = append(g.DoubleVectors, vgraph.DoubleVector{Name: name, Target: target, Values: out})
	case table.KindBool:
		out := make([]int32, len(values))
		for i, v := range values {
			if v == true {
				out[i] = 1
			}
		}
		g.Int32Vectors = append(g.Int32Vectors, vgraph.Int32Vector{Name: name, Target: target, Values: out})
	default:
		out := make([]string, len(values))
		for i, v := range values {
			switch {
			case table.IsNull(v):
			case kind == table.KindString:
				out[i] = v.(string)
			default:
				out[i] = fmt.Sprint(v)
			}
		}
		g.StringVectors = append(g.StringVectors, vgraph.StringVector{Name: name, Target: target, Values: out})
	}
}

func hasNull(values []any) bool {
	for _, v := range values {
		if table.IsNull(v) {
			return true
		}
	}
	return false
}
