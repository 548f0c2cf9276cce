package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is one table row with its fields in column order.
//
// Records marshal to JSON objects that keep the column order and write every
// null (nil or NaN) as an explicit JSON null.
type Record []Field

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if IsNull(f.Value) {
			buf.WriteString("null")
			continue
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func repr(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}
