package adapter

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/graph"
	"github.com/matzehuels/vizset/pkg/table"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
}

func triangle() *graph.AttrGraph {
	g := graph.New()
	a := g.AddVertex(graph.Attrs{"name": "a", "color": 1})
	b := g.AddVertex(graph.Attrs{"name": "b"})
	c := g.AddVertex(graph.Attrs{"name": "c", "color": 3})
	_ = g.AddEdge(a, b, graph.Attrs{"weight": 0.5})
	_ = g.AddEdge(b, c, nil)
	_ = g.AddEdge(c, a, graph.Attrs{"weight": 2.0})
	return g
}

func TestAttrGraphBoundNode(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst", Node: "name"})

	res, err := AttrGraph{}.Convert(triangle(), b, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"color", "name"}, res.Nodes.Columns())
	assert.Equal(t, []any{"a", "b", "c"}, res.Nodes.Values("name"))
	assert.Equal(t, []any{1, nil, 3}, res.Nodes.Values("color"))

	assert.Equal(t, []string{"src", "dst", "weight"}, res.Edges.Columns())
	assert.Equal(t, []any{"a", "b", "c"}, res.Edges.Values("src"))
	assert.Equal(t, []any{"b", "c", "a"}, res.Edges.Values("dst"))
	assert.Equal(t, []any{0.5, nil, 2.0}, res.Edges.Values("weight"))

	assert.Equal(t, "name", res.Binding.Get(binding.Node))
}

func TestAttrGraphUnboundNode(t *testing.T) {
	var buf bytes.Buffer
	g := triangle()
	b := binding.New(binding.Fields{Source: "src", Destination: "dst"})

	res, err := AttrGraph{}.Convert(g, b, testLogger(&buf))
	require.NoError(t, err)

	assert.Equal(t, []string{"color", "name", binding.DefaultNodeID}, res.Nodes.Columns())
	assert.Equal(t, []any{0, 1, 2}, res.Nodes.Values(binding.DefaultNodeID))
	assert.Equal(t, []any{0, 1, 2}, res.Edges.Values("src"))
	assert.Equal(t, []any{1, 2, 0}, res.Edges.Values("dst"))
	assert.Equal(t, binding.DefaultNodeID, res.Binding.Get(binding.Node))
	assert.Contains(t, buf.String(), `"node" is unbound`)

	// the caller's graph and binding are untouched
	assert.False(t, g.HasVertexAttribute(binding.DefaultNodeID))
	assert.Equal(t, "", b.Get(binding.Node))
}

func TestAttrGraphUnboundNodeReplacesExistingID(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(graph.Attrs{binding.DefaultNodeID: "stale", "name": "a"})
	b := g.AddVertex(graph.Attrs{binding.DefaultNodeID: "stale", "name": "b"})
	require.NoError(t, g.AddEdge(a, b, nil))

	res, err := AttrGraph{}.Convert(g, binding.New(binding.Fields{Source: "src", Destination: "dst"}), nil)
	require.NoError(t, err)

	assert.Equal(t, []any{0, 1}, res.Nodes.Values(binding.DefaultNodeID))
	assert.Equal(t, []any{"a", "b"}, res.Nodes.Values("name"))
	assert.Equal(t, []any{0}, res.Edges.Values("src"))
	assert.Equal(t, []any{1}, res.Edges.Values("dst"))
	assert.Equal(t, "stale", g.VertexAttr(0, binding.DefaultNodeID), "input graph is not modified")
}

func TestAttrGraphMissingNodeAttribute(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst", Node: "id"})

	_, err := AttrGraph{}.Convert(triangle(), b, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeBinding))
	assert.Contains(t, err.Error(), `Vertex attribute "id" bound to "node" does not exist.`)
}

func TestAttrGraphEmpty(t *testing.T) {
	b := binding.New(binding.Fields{Source: "src", Destination: "dst", Node: "id"})

	_, err := AttrGraph{}.Convert(graph.New(), b, nil)
	require.Error(t, err, "an empty graph has no id attribute to bind")

	unbound := binding.New(binding.Fields{Source: "src", Destination: "dst"})
	res, err := AttrGraph{}.Convert(graph.New(), unbound, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Nodes.Len())
	assert.Equal(t, 0, res.Edges.Len())
	assert.Equal(t, []string{binding.DefaultNodeID}, res.Nodes.Columns())
}

func TestAttrGraphShadowedEdgeAttribute(t *testing.T) {
	var buf bytes.Buffer
	g := graph.New()
	a := g.AddVertex(graph.Attrs{"id": "a"})
	b := g.AddVertex(graph.Attrs{"id": "b"})
	require.NoError(t, g.AddEdge(a, b, graph.Attrs{"src": "bogus", "kind": "x"}))

	res, err := AttrGraph{}.Convert(g, binding.New(binding.Fields{Source: "src", Destination: "dst", Node: "id"}), testLogger(&buf))
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "dst", "kind"}, res.Edges.Columns())
	assert.Equal(t, []any{"a"}, res.Edges.Values("src"))
	assert.Contains(t, buf.String(), "collides with an endpoint column")
}

func TestAccepts(t *testing.T) {
	assert.True(t, AttrGraph{}.Accepts(graph.New()))
	assert.False(t, AttrGraph{}.Accepts((*graph.AttrGraph)(nil)))
	assert.False(t, AttrGraph{}.Accepts(table.MustNew()))
	assert.False(t, AttrGraph{}.Accepts("graph"))
}

func TestFind(t *testing.T) {
	a, ok := Find(Default(), graph.New())
	require.True(t, ok)
	assert.Equal(t, "attribute-graph", a.Name())

	_, ok = Find(Default(), 42)
	assert.False(t, ok)

	_, ok = Find(nil, graph.New())
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register(AttrGraph{}) })
}
