package dataset

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
	"github.com/matzehuels/vizset/pkg/vgraph"
)

func TestRandomName(t *testing.T) {
	for range 50 {
		name := RandomName()
		require.Len(t, name, 10)
		for _, r := range name {
			assert.Contains(t, nameAlphabet, string(r))
		}
	}
}

func TestEncodeVGraphTriangle(t *testing.T) {
	edges, nodes, err := Sanitize(triangleEdges(), nil, srcDst(), nil)
	require.NoError(t, err)

	g, err := EncodeVGraph("PyGraphistry/X", edges, nodes, srcDst())
	require.NoError(t, err)

	assert.Equal(t, uint32(vgraph.Version), g.Version)
	assert.Equal(t, vgraph.Directed, g.Type)
	assert.Equal(t, uint32(3), g.NVertices)
	assert.Equal(t, uint32(3), g.NEdges)
	assert.Equal(t, []vgraph.EdgePair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 0}}, g.Edges)
	assert.Zero(t, g.VectorCount())
}

func TestEncodeVGraphFirstAppearanceOrder(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "src", Values: []any{"c", "a", "c"}},
		table.Column{Name: "dst", Values: []any{"b", "c", "d"}},
	)

	g, err := EncodeVGraph("n", edges, nil, srcDst())
	require.NoError(t, err)

	// c=0, a=1 from sources; b=2, d=3 from destinations
	assert.Equal(t, uint32(4), g.NVertices)
	assert.Equal(t, []vgraph.EdgePair{{Src: 0, Dst: 2}, {Src: 1, Dst: 0}, {Src: 0, Dst: 3}}, g.Edges)
}

func TestEncodeVGraphMixedNumericIDs(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "src", Values: []any{int64(1), int64(2)}},
		table.Column{Name: "dst", Values: []any{2.0, 3.5}},
	)
	nodes := table.MustNew(
		table.Column{Name: "id", Values: []any{1.0, int64(2), 3.5}},
		table.Column{Name: "size", Values: []any{int64(10), int64(20), int64(35)}},
	)
	b := srcDst().With(binding.Node, "id")

	g, err := EncodeVGraph("n", edges, nodes, b)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), g.NVertices)
	assert.Equal(t, []vgraph.EdgePair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}}, g.Edges)
	require.Len(t, g.Int32Vectors, 1)
	assert.Equal(t, []int32{10, 20, 35}, g.Int32Vectors[0].Values)
}

func TestEncodeVGraphVectors(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "src", Values: []any{"a", "b"}},
		table.Column{Name: "dst", Values: []any{"b", "c"}},
		table.Column{Name: "label", Values: []any{"ab", nil}},
		table.Column{Name: "count", Values: []any{int64(1) << 33, int32(-2)}},
		table.Column{Name: "weight", Values: []any{float32(0.5), nil}},
		table.Column{Name: "seen", Values: []any{true, false}},
		table.Column{Name: "misc", Values: []any{"x", 1}},
	)
	nodes := table.MustNew(
		table.Column{Name: "id", Values: []any{"c", "a", "z"}},
		table.Column{Name: "size", Values: []any{3, 1, 9}},
		table.Column{Name: "title", Values: []any{"C", "A", "Z"}},
	)
	b := srcDst().With(binding.Node, "id")

	g, err := EncodeVGraph("n", edges, nodes, b)
	require.NoError(t, err)

	assert.Equal(t, []vgraph.StringVector{
		{Name: "label", Target: vgraph.Edge, Values: []string{"ab", ""}},
		{Name: "misc", Target: vgraph.Edge, Values: []string{"x", "1"}},
		{Name: "title", Target: vgraph.Vertex, Values: []string{"A", "", "C"}},
	}, g.StringVectors)

	assert.Equal(t, []vgraph.Int32Vector{
		{Name: "count", Target: vgraph.Edge, Values: []int32{0, -2}},
		{Name: "seen", Target: vgraph.Edge, Values: []int32{1, 0}},
	}, g.Int32Vectors)

	require.Len(t, g.DoubleVectors, 2)
	assert.Equal(t, "weight", g.DoubleVectors[0].Name)
	assert.Equal(t, 0.5, g.DoubleVectors[0].Values[0])
	assert.True(t, math.IsNaN(g.DoubleVectors[0].Values[1]))

	// size had no row for vertex b, so the int column picks up a null
	size := g.DoubleVectors[1]
	assert.Equal(t, "size", size.Name)
	assert.Equal(t, vgraph.Vertex, size.Target)
	require.Len(t, size.Values, 3)
	assert.Equal(t, 1.0, size.Values[0])
	assert.True(t, math.IsNaN(size.Values[1]))
	assert.Equal(t, 3.0, size.Values[2])
}

func TestEncodeVGraphIsIdempotent(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "src", Values: []any{4, 2, 4, 9}},
		table.Column{Name: "dst", Values: []any{2, 9, 7, 4}},
		table.Column{Name: "w", Values: []any{1.0, 2.0, 3.0, 4.0}},
	)

	first, err := EncodeVGraph("n", edges, nil, srcDst())
	require.NoError(t, err)
	second, err := EncodeVGraph("n", edges, nil, srcDst())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncodeJSONTriangle(t *testing.T) {
	edges, nodes, err := Sanitize(triangleEdges(), nil, srcDst(), nil)
	require.NoError(t, err)
	edges, nodes, err = BindInline(edges, nodes, srcDst(), nil)
	require.NoError(t, err)

	ds := EncodeJSON("PyGraphistry/X", edges, nodes, srcDst())

	assert.Equal(t, JSONBindings{IDField: binding.DefaultNodeID, DestinationField: "dst", SourceField: "src"}, ds.Bindings)
	assert.Equal(t, "edgelist", ds.Type)
	require.Len(t, ds.Graph, 3)
	for i, rec := range ds.Graph {
		s, _ := rec.Get("src")
		d, _ := rec.Get("dst")
		assert.Equal(t, triangleEdges().At("src", i), s)
		assert.Equal(t, triangleEdges().At("dst", i), d)
	}
	require.Len(t, ds.Labels, 3)
	for i, rec := range ds.Labels {
		id, _ := rec.Get(binding.DefaultNodeID)
		assert.Equal(t, i, id)
	}
}

func TestJSONDatasetLabelsKey(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "src", Values: []any{}},
		table.Column{Name: "dst", Values: []any{}},
	)
	empty := table.MustNew(table.Column{Name: binding.DefaultNodeID, Values: []any{}})

	withNodes, err := json.Marshal(EncodeJSON("n", edges, empty, srcDst()))
	require.NoError(t, err)
	assert.Contains(t, string(withNodes), `"labels":[]`)
	assert.Contains(t, string(withNodes), `"graph":[]`)

	withoutNodes, err := json.Marshal(EncodeJSON("n", edges, nil, srcDst()))
	require.NoError(t, err)
	assert.NotContains(t, string(withoutNodes), "labels")
}
