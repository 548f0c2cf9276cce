package graph

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/matzehuels/vizset/pkg/errors"
)

// ErrUnknownVertex is returned by [AttrGraph.AddEdge] when an endpoint index
// is out of range.
var ErrUnknownVertex = errors.New(errors.ErrCodeInvalidInput, "unknown vertex")

// Attrs holds the attributes attached to one vertex or edge.
type Attrs map[string]any

// Edge connects two vertices by index.
type Edge struct {
	Src, Dst int
	Attrs    Attrs
}

// AttrGraph is a directed graph whose vertices are addressed by dense index
// and whose vertices and edges carry attribute maps.
//
// Attribute names form a graph-wide schema: every vertex answers every vertex
// attribute, with nil for attributes it never set. Schema order is the order
// in which attribute names were first added; names introduced by one call are
// added in sorted order.
type AttrGraph struct {
	vertices []Attrs
	edges    []Edge
	vattrs   []string
	eattrs   []string
}

// New returns an empty graph.
func New() *AttrGraph {
	return &AttrGraph{}
}

// AddVertex appends a vertex and returns its index.
func (g *AttrGraph) AddVertex(attrs Attrs) int {
	g.vattrs = extendSchema(g.vattrs, attrs)
	g.vertices = append(g.vertices, maps.Clone(attrs))
	return len(g.vertices) - 1
}

// AddEdge appends an edge between two existing vertices.
func (g *AttrGraph) AddEdge(src, dst int, attrs Attrs) error {
	for _, v := range []int{src, dst} {
		if v < 0 || v >= len(g.vertices) {
			return fmt.Errorf("%w: %d", ErrUnknownVertex, v)
		}
	}
	g.eattrs = extendSchema(g.eattrs, attrs)
	g.edges = append(g.edges, Edge{Src: src, Dst: dst, Attrs: maps.Clone(attrs)})
	return nil
}

// VertexCount returns the number of vertices.
func (g *AttrGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *AttrGraph) EdgeCount() int { return len(g.edges) }

// VertexAttributes returns the vertex attribute schema.
func (g *AttrGraph) VertexAttributes() []string { return slices.Clone(g.vattrs) }

// EdgeAttributes returns the edge attribute schema.
func (g *AttrGraph) EdgeAttributes() []string { return slices.Clone(g.eattrs) }

// HasVertexAttribute reports whether any vertex defines name.
func (g *AttrGraph) HasVertexAttribute(name string) bool {
	return slices.Contains(g.vattrs, name)
}

// VertexAttr returns attribute name of vertex i, or nil.
func (g *AttrGraph) VertexAttr(i int, name string) any {
	return g.vertices[i][name]
}

// Edges returns a copy of the edge list.
func (g *AttrGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{Src: e.Src, Dst: e.Dst, Attrs: maps.Clone(e.Attrs)}
	}
	return out
}

func extendSchema(schema []string, attrs Attrs) []string {
	var added []string
	for name := range attrs {
		if !slices.Contains(schema, name) {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	return append(schema, added...)
}
