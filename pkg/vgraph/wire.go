package vgraph

import (
	"fmt"
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/matzehuels/vizset/pkg/errors"
)

// Field numbers of VectorGraph.
const (
	fieldVersion       protowire.Number = 1
	fieldName          protowire.Number = 2
	fieldType          protowire.Number = 3
	fieldNVertices     protowire.Number = 4
	fieldNEdges        protowire.Number = 5
	fieldEdges         protowire.Number = 6
	fieldStringVectors protowire.Number = 7
	fieldInt32Vectors  protowire.Number = 8
	fieldDoubleVectors protowire.Number = 9
)

// Field numbers shared by Edge and the attribute vectors.
const (
	fieldSrc          protowire.Number = 1
	fieldDst          protowire.Number = 2
	fieldVectorName   protowire.Number = 1
	fieldVectorTarget protowire.Number = 2
	fieldVectorValues protowire.Number = 3
)

// =============================================================================
// Encoding
// =============================================================================

// Marshal encodes g in proto3 wire format. Scalar fields holding their zero
// value are omitted; repeated numeric values are packed.
func (g *VectorGraph) Marshal() ([]byte, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	var b []byte
	b = appendVarint(b, fieldVersion, uint64(g.Version))
	b = appendString(b, fieldName, g.Name)
	b = appendVarint(b, fieldType, uint64(g.Type))
	b = appendVarint(b, fieldNVertices, uint64(g.NVertices))
	b = appendVarint(b, fieldNEdges, uint64(g.NEdges))

	for _, e := range g.Edges {
		var m []byte
		m = appendVarint(m, fieldSrc, uint64(e.Src))
		m = appendVarint(m, fieldDst, uint64(e.Dst))
		b = appendMessage(b, fieldEdges, m)
	}
	for _, v := range g.StringVectors {
		m := appendVectorHeader(nil, v.Name, v.Target)
		for _, s := range v.Values {
			m = protowire.AppendTag(m, fieldVectorValues, protowire.BytesType)
			m = protowire.AppendString(m, s)
		}
		b = appendMessage(b, fieldStringVectors, m)
	}
	for _, v := range g.Int32Vectors {
		m := appendVectorHeader(nil, v.Name, v.Target)
		if len(v.Values) > 0 {
			var packed []byte
			for _, x := range v.Values {
				packed = protowire.AppendVarint(packed, uint64(int64(x)))
			}
			m = appendMessage(m, fieldVectorValues, packed)
		}
		b = appendMessage(b, fieldInt32Vectors, m)
	}
	for _, v := range g.DoubleVectors {
		m := appendVectorHeader(nil, v.Name, v.Target)
		if len(v.Values) > 0 {
			packed := make([]byte, 0, 8*len(v.Values))
			for _, x := range v.Values {
				packed = protowire.AppendFixed64(packed, math.Float64bits(x))
			}
			m = appendMessage(m, fieldVectorValues, packed)
		}
		b = appendMessage(b, fieldDoubleVectors, m)
	}
	return b, nil
}

// validate rejects strings that proto3 cannot carry.
func (g *VectorGraph) validate() error {
	check := func(where, s string) error {
		if !utf8.ValidString(s) {
			return errors.New(errors.ErrCodeInvalidInput, "vgraph: %s is not valid UTF-8", where)
		}
		return nil
	}
	if err := check("name", g.Name); err != nil {
		return err
	}
	for _, v := range g.StringVectors {
		if err := check("vector name", v.Name); err != nil {
			return err
		}
		for i, s := range v.Values {
			if err := check(fmt.Sprintf("%s[%d]", v.Name, i), s); err != nil {
				return err
			}
		}
	}
	for _, v := range g.Int32Vectors {
		if err := check("vector name", v.Name); err != nil {
			return err
		}
	}
	for _, v := range g.DoubleVectors {
		if err := check("vector name", v.Name); err != nil {
			return err
		}
	}
	return nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendMessage(b []byte, num protowire.Number, m []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

func appendVectorHeader(b []byte, name string, target Target) []byte {
	b = appendString(b, fieldVectorName, name)
	return appendVarint(b, fieldVectorTarget, uint64(target))
}

// =============================================================================
// Decoding
// =============================================================================

// Unmarshal decodes a VectorGraph. Unknown fields are skipped; repeated
// numeric values are accepted packed or unpacked.
func Unmarshal(b []byte) (*VectorGraph, error) {
	g := &VectorGraph{}
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.Version = uint32(v)
			return n, nil
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			g.Name = v
			return n, nil
		case num == fieldType && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.Type = GraphType(v)
			return n, nil
		case num == fieldNVertices && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.NVertices = uint32(v)
			return n, nil
		case num == fieldNEdges && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			g.NEdges = uint32(v)
			return n, nil
		case num == fieldEdges && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			e, err := unmarshalEdge(m)
			g.Edges = append(g.Edges, e)
			return n, err
		case num == fieldStringVectors && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			v, err := unmarshalStringVector(m)
			g.StringVectors = append(g.StringVectors, v)
			return n, err
		case num == fieldInt32Vectors && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			v, err := unmarshalInt32Vector(m)
			g.Int32Vectors = append(g.Int32Vectors, v)
			return n, err
		case num == fieldDoubleVectors && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			v, err := unmarshalDoubleVector(m)
			g.DoubleVectors = append(g.DoubleVectors, v)
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// walk calls fn for every field of the message in b. fn consumes the field
// value and returns the number of bytes it used, or a negative protowire
// error code.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return wireError(n)
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return wireError(n)
		}
		b = b[n:]
	}
	return nil
}

func wireError(n int) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, protowire.ParseError(n), "vgraph: malformed message")
}

func unmarshalEdge(b []byte) (EdgePair, error) {
	var e EdgePair
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ == protowire.VarintType && (num == fieldSrc || num == fieldDst) {
			v, n := protowire.ConsumeVarint(b)
			if num == fieldSrc {
				e.Src = uint32(v)
			} else {
				e.Dst = uint32(v)
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return e, err
}

// vectorHeader consumes the name and target fields shared by all vectors.
func vectorHeader(name *string, target *Target, num protowire.Number, typ protowire.Type, b []byte) (int, bool) {
	switch {
	case num == fieldVectorName && typ == protowire.BytesType:
		v, n := protowire.ConsumeString(b)
		*name = v
		return n, true
	case num == fieldVectorTarget && typ == protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		*target = Target(v)
		return n, true
	}
	return 0, false
}

func unmarshalStringVector(b []byte) (StringVector, error) {
	var v StringVector
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, ok := vectorHeader(&v.Name, &v.Target, num, typ, b); ok {
			return n, nil
		}
		if num == fieldVectorValues && typ == protowire.BytesType {
			s, n := protowire.ConsumeString(b)
			if n >= 0 {
				v.Values = append(v.Values, s)
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return v, err
}

func unmarshalInt32Vector(b []byte) (Int32Vector, error) {
	var v Int32Vector
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, ok := vectorHeader(&v.Name, &v.Target, num, typ, b); ok {
			return n, nil
		}
		if num != fieldVectorValues {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		switch typ {
		case protowire.VarintType:
			x, n := protowire.ConsumeVarint(b)
			if n >= 0 {
				v.Values = append(v.Values, int32(x))
			}
			return n, nil
		case protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			for len(packed) > 0 && n >= 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return m, nil
				}
				v.Values = append(v.Values, int32(x))
				packed = packed[m:]
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return v, err
}

func unmarshalDoubleVector(b []byte) (DoubleVector, error) {
	var v DoubleVector
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, ok := vectorHeader(&v.Name, &v.Target, num, typ, b); ok {
			return n, nil
		}
		if num != fieldVectorValues {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		switch typ {
		case protowire.Fixed64Type:
			x, n := protowire.ConsumeFixed64(b)
			if n >= 0 {
				v.Values = append(v.Values, math.Float64frombits(x))
			}
			return n, nil
		case protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			for len(packed) > 0 && n >= 0 {
				x, m := protowire.ConsumeFixed64(packed)
				if m < 0 {
					return m, nil
				}
				v.Values = append(v.Values, math.Float64frombits(x))
				packed = packed[m:]
			}
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	return v, err
}
