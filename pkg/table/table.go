package table

import (
	"math"

	"github.com/matzehuels/vizset/pkg/errors"
)

// Kind is the value type of a column, decided from its non-null values.
type Kind int

const (
	KindNull   Kind = iota // no non-null values
	KindString             // all strings
	KindInt                // all integers
	KindFloat              // floats, or a mix of floats and integers
	KindBool               // all booleans
	KindMixed              // anything else
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "mixed"
	}
}

// Column is a named sequence of values. A nil value (or a floating NaN) is null.
type Column struct {
	Name   string
	Values []any
}

// Table is an immutable, ordered collection of equally long columns.
//
// Column slices are shared between a table and the tables derived from it,
// so nothing in this package writes to a slice after construction. Callers
// receive copies from [Table.Values].
type Table struct {
	names []string
	cols  map[string][]any
	kinds map[string]Kind
	n     int
}

// New builds a table from columns. All columns must have the same length and
// distinct names.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make(map[string][]any, len(cols)),
		kinds: make(map[string]Kind, len(cols)),
	}
	for i, c := range cols {
		if _, dup := t.cols[c.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", c.Name)
		}
		if i == 0 {
			t.n = len(c.Values)
		} else if len(c.Values) != t.n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has %d values, want %d", c.Name, len(c.Values), t.n)
		}
		values := append([]any(nil), c.Values...)
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = values
		t.kinds[c.Name] = inferKind(values)
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRecords builds a table from row records. Columns appear in first-seen
// order; a record lacking a column contributes a null.
func FromRecords(rows []Record) *Table {
	t := &Table{
		cols:  make(map[string][]any),
		kinds: make(map[string]Kind),
		n:     len(rows),
	}
	for _, r := range rows {
		for _, f := range r {
			if _, ok := t.cols[f.Name]; !ok {
				t.names = append(t.names, f.Name)
				t.cols[f.Name] = make([]any, len(rows))
			}
		}
	}
	for i, r := range rows {
		for _, f := range r {
			t.cols[f.Name][i] = f.Value
		}
	}
	for _, name := range t.names {
		t.kinds[name] = inferKind(t.cols[name])
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Values returns a copy of the named column, or nil if it does not exist.
func (t *Table) Values(name string) []any {
	col, ok := t.cols[name]
	if !ok {
		return nil
	}
	return append([]any(nil), col...)
}

// At returns the value of column name at row i.
func (t *Table) At(name string, i int) any {
	return t.cols[name][i]
}

// Kind returns the inferred value kind of the named column.
func (t *Table) Kind(name string) Kind {
	return t.kinds[name]
}

// WithColumn returns a new table with the column added, or replaced in place
// if a column with that name already exists. The receiver is unchanged.
func (t *Table) WithColumn(name string, values []any) (*Table, error) {
	if len(values) != t.n && len(t.names) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"column %q has %d values, want %d", name, len(values), t.n)
	}
	out := t.shallowCopy()
	if !t.Has(name) {
		out.names = append(out.names, name)
	}
	if len(t.names) == 0 {
		out.n = len(values)
	}
	values = append([]any(nil), values...)
	out.cols[name] = values
	out.kinds[name] = inferKind(values)
	return out, nil
}

// Filter returns a new table holding the rows for which keep returns true,
// renumbered densely from zero.
func (t *Table) Filter(keep func(i int) bool) *Table {
	var rows []int
	for i := 0; i < t.n; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	if len(rows) == t.n {
		return t
	}
	out := &Table{
		names: append([]string(nil), t.names...),
		cols:  make(map[string][]any, len(t.cols)),
		kinds: make(map[string]Kind, len(t.kinds)),
		n:     len(rows),
	}
	for _, name := range t.names {
		src := t.cols[name]
		dst := make([]any, len(rows))
		for j, i := range rows {
			dst[j] = src[i]
		}
		out.cols[name] = dst
		out.kinds[name] = inferKind(dst)
	}
	return out
}

// DropNulls returns the rows where none of the given columns is null.
func (t *Table) DropNulls(subset ...string) *Table {
	return t.Filter(func(i int) bool {
		for _, name := range subset {
			if IsNull(t.cols[name][i]) {
				return false
			}
		}
		return true
	})
}

// Row returns row i as an ordered record.
func (t *Table) Row(i int) Record {
	r := make(Record, len(t.names))
	for j, name := range t.names {
		r[j] = Field{Name: name, Value: t.cols[name][i]}
	}
	return r
}

// Records returns every row in order.
func (t *Table) Records() []Record {
	out := make([]Record, t.n)
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

func (t *Table) shallowCopy() *Table {
	out := &Table{
		names: append([]string(nil), t.names...),
		cols:  make(map[string][]any, len(t.cols)+1),
		kinds: make(map[string]Kind, len(t.kinds)+1),
		n:     t.n,
	}
	for k, v := range t.cols {
		out.cols[k] = v
	}
	for k, v := range t.kinds {
		out.kinds[k] = v
	}
	return out
}

// =============================================================================
// Values
// =============================================================================

// IsNull reports whether v is a missing value: nil or a floating NaN.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// KindOf returns the kind of a single non-null value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	default:
		return KindMixed
	}
}

func inferKind(values []any) Kind {
	k := KindNull
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		vk := KindOf(v)
		switch {
		case k == KindNull, k == vk:
			k = vk
		case k == KindInt && vk == KindFloat, k == KindFloat && vk == KindInt:
			k = KindFloat
		default:
			return KindMixed
		}
	}
	return k
}

// AsInt64 converts an integer value of any width.
func AsInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	return 0, false
}

// AsFloat64 converts any integer or floating value.
func AsFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	if i, ok := AsInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// Key normalizes a value for use as a map key, so that ids compare by value
// regardless of numeric kind: integers of any width and integral floats in
// int64 range share one key. Non-comparable values are keyed by their
// printed form.
func Key(v any) any {
	if i, ok := AsInt64(v); ok {
		return i
	}
	switch x := v.(type) {
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	case string, bool:
		return x
	}
	return printedKey{repr(v)}
}

func floatKey(x float64) any {
	if x == math.Trunc(x) && x >= -(1<<63) && x < 1<<63 {
		return int64(x)
	}
	return x
}

type printedKey struct{ s string }
