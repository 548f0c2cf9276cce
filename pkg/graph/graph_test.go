package graph

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/table"
)

func TestAddVertexSchema(t *testing.T) {
	g := New()
	g.AddVertex(Attrs{"name": "a", "color": 1})
	g.AddVertex(Attrs{"size": 2.0})
	g.AddVertex(nil)

	assert.Equal(t, []string{"color", "name", "size"}, g.VertexAttributes())
	assert.Equal(t, 3, g.VertexCount())
	assert.Nil(t, g.VertexAttr(1, "name"))
	assert.True(t, g.HasVertexAttribute("size"))
	assert.False(t, g.HasVertexAttribute("missing"))
}

func TestAddEdge(t *testing.T) {
	g := New()
	a := g.AddVertex(nil)
	b := g.AddVertex(nil)

	require.NoError(t, g.AddEdge(a, b, Attrs{"w": 1}))
	err := g.AddEdge(a, 5, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
	assert.Equal(t, 1, g.EdgeCount())

	edges := g.Edges()
	edges[0].Attrs["w"] = 99
	assert.Equal(t, 1, g.Edges()[0].Attrs["w"], "Edges returns a copy")
}

func TestAddVertexCopiesAttrs(t *testing.T) {
	g := New()
	attrs := Attrs{"name": "a"}
	g.AddVertex(attrs)
	attrs["name"] = "b"

	assert.Equal(t, "a", g.VertexAttr(0, "name"))
}

func TestFromTable(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "s", Values: []any{"x", "y", nil, "z"}},
		table.Column{Name: "d", Values: []any{"y", "x", "x", "x"}},
		table.Column{Name: "w", Values: []any{1, 2, 3, 4}},
	)
	b := binding.New(binding.Fields{Source: "s", Destination: "d", Node: "name"})

	g, err := FromTable(edges, b, nil)
	require.NoError(t, err)

	require.Equal(t, 3, g.VertexCount())
	for i, want := range []string{"x", "y", "z"} {
		assert.Equal(t, want, g.VertexAttr(i, "name"), "vertex %d", i)
	}

	type row struct {
		src, dst int
		w        any
	}
	var got []row
	for _, e := range g.Edges() {
		got = append(got, row{e.Src, e.Dst, e.Attrs["w"]})
	}
	assert.Equal(t, []row{{0, 1, 1}, {1, 0, 2}, {2, 0, 4}}, got)
}

func TestFromTableUnboundNode(t *testing.T) {
	edges := table.MustNew(
		table.Column{Name: "s", Values: []any{0}},
		table.Column{Name: "d", Values: []any{1}},
	)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	g, err := FromTable(edges, binding.New(binding.Fields{Source: "s", Destination: "d"}), logger)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexAttr(1, binding.DefaultNodeID))
	assert.Contains(t, buf.String(), `"node" is unbound`)
}

func TestFromTableMissingColumn(t *testing.T) {
	edges := table.MustNew(table.Column{Name: "s", Values: []any{0}})

	_, err := FromTable(edges, binding.New(binding.Fields{Source: "s", Destination: "d"}), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeBinding), "err = %v", err)

	_, err = FromTable(edges, binding.Binding{}, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeBinding), "unbound err = %v", err)
}
