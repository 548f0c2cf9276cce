package vgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/matzehuels/vizset/pkg/errors"
)

func TestMarshalKnownBytes(t *testing.T) {
	g := &VectorGraph{
		Version:   Version,
		Name:      "n",
		Type:      Directed,
		NVertices: 2,
		NEdges:    1,
		Edges:     []EdgePair{{Src: 0, Dst: 1}},
	}

	b, err := g.Marshal()
	require.NoError(t, err)

	want := []byte{
		0x12, 0x01, 'n', // name
		0x18, 0x01, // type = DIRECTED
		0x20, 0x02, // nvertices
		0x28, 0x01, // nedges
		0x32, 0x02, 0x10, 0x01, // edges { dst: 1 }
	}
	assert.Equal(t, want, b)
}

func TestMarshalPackedVectors(t *testing.T) {
	g := &VectorGraph{
		Int32Vectors:  []Int32Vector{{Name: "i", Target: Edge, Values: []int32{1, -1}}},
		DoubleVectors: []DoubleVector{{Name: "d", Values: []float64{0.5}}},
	}

	b, err := g.Marshal()
	require.NoError(t, err)

	var i32 []byte
	i32 = append(i32, 0x0a, 0x01, 'i', 0x10, 0x01)           // name, target EDGE
	i32 = append(i32, 0x1a, 0x0b, 0x01)                      // packed values: 1
	i32 = protowire.AppendVarint(i32, uint64(math.MaxUint64)) // -1, sign-extended

	var dbl []byte
	dbl = append(dbl, 0x0a, 0x01, 'd', 0x1a, 0x08)
	dbl = protowire.AppendFixed64(dbl, math.Float64bits(0.5))

	var want []byte
	want = append(want, 0x42, byte(len(i32)))
	want = append(want, i32...)
	want = append(want, 0x4a, byte(len(dbl)))
	want = append(want, dbl...)
	assert.Equal(t, want, b)
}

func TestRoundTrip(t *testing.T) {
	g := &VectorGraph{
		Name:      "PyGraphistry/ABCDE12345",
		Type:      Directed,
		NVertices: 3,
		NEdges:    3,
		Edges:     []EdgePair{{0, 1}, {1, 2}, {2, 0}},
		StringVectors: []StringVector{
			{Name: "label", Target: Vertex, Values: []string{"a", "", "c"}},
		},
		Int32Vectors: []Int32Vector{
			{Name: "count", Target: Edge, Values: []int32{7, -3, 0}},
		},
		DoubleVectors: []DoubleVector{
			{Name: "weight", Target: Edge, Values: []float64{0.5, math.Inf(1), -2}},
		},
	}

	b, err := g.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, g, got)
	assert.Equal(t, 3, got.VectorCount())
}

func TestUnmarshalUnpackedAndUnknownFields(t *testing.T) {
	var vec []byte
	vec = protowire.AppendTag(vec, 1, protowire.BytesType)
	vec = protowire.AppendString(vec, "x")
	vec = protowire.AppendTag(vec, 3, protowire.VarintType)
	vec = protowire.AppendVarint(vec, 4)
	vec = protowire.AppendTag(vec, 3, protowire.VarintType)
	vec = protowire.AppendVarint(vec, 5)

	var b []byte
	b = protowire.AppendTag(b, 99, protowire.VarintType) // unknown
	b = protowire.AppendVarint(b, 1)
	b = protowire.AppendTag(b, 8, protowire.BytesType)
	b = protowire.AppendBytes(b, vec)

	g, err := Unmarshal(b)
	require.NoError(t, err)
	require.Len(t, g.Int32Vectors, 1)
	assert.Equal(t, Int32Vector{Name: "x", Target: Vertex, Values: []int32{4, 5}}, g.Int32Vectors[0])
}

func TestUnmarshalTruncated(t *testing.T) {
	_, err := Unmarshal([]byte{0x12, 0x05, 'a'})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestMarshalRejectsInvalidUTF8(t *testing.T) {
	g := &VectorGraph{StringVectors: []StringVector{{Name: "s", Values: []string{"\xff"}}}}
	_, err := g.Marshal()
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "DIRECTED", Directed.String())
	assert.Equal(t, "UNDIRECTED", Undirected.String())
	assert.Equal(t, "EDGE", Edge.String())
	assert.Equal(t, "VERTEX", Vertex.String())
}
