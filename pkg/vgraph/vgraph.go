// Package vgraph implements the VectorGraph wire message: a typed, columnar
// encoding of a directed graph.
//
// Vertices are dense indices 0..NVertices-1. Edges are (src, dst) index
// pairs. Attribute values travel as one vector per column, grouped by value
// type (string, int32, double) and tagged with the scope they belong to.
//
// The message is protobuf (proto3) on the wire; see vector_graph.proto.
package vgraph

// Version is the format version written by this package.
const Version = 0

// GraphType tags a graph as directed or undirected.
type GraphType int32

const (
	Undirected GraphType = 0
	Directed   GraphType = 1
)

func (t GraphType) String() string {
	if t == Directed {
		return "DIRECTED"
	}
	return "UNDIRECTED"
}

// Target is the scope of an attribute vector.
type Target int32

const (
	Vertex Target = 0
	Edge   Target = 1
)

func (t Target) String() string {
	if t == Edge {
		return "EDGE"
	}
	return "VERTEX"
}

// EdgePair is one edge as vertex indices.
type EdgePair struct {
	Src uint32
	Dst uint32
}

// StringVector holds the values of one string column.
type StringVector struct {
	Name   string
	Target Target
	Values []string
}

// Int32Vector holds the values of one integer column.
type Int32Vector struct {
	Name   string
	Target Target
	Values []int32
}

// DoubleVector holds the values of one floating column.
type DoubleVector struct {
	Name   string
	Target Target
	Values []float64
}

// VectorGraph is the decoded wire message.
type VectorGraph struct {
	Version   uint32
	Name      string
	Type      GraphType
	NVertices uint32
	NEdges    uint32
	Edges     []EdgePair

	StringVectors []StringVector
	Int32Vectors  []Int32Vector
	DoubleVectors []DoubleVector
}

// VectorCount returns the number of attribute vectors of every type.
func (g *VectorGraph) VectorCount() int {
	return len(g.StringVectors) + len(g.Int32Vectors) + len(g.DoubleVectors)
}
