// Package table provides the immutable columnar tables that carry edges and
// nodes through the dataset pipeline.
//
// A [Table] is a snapshot: every operation that would change it ([Table.WithColumn],
// [Table.Filter], [Table.DropNulls]) returns a derived table and leaves the
// receiver untouched, so one table can feed several independent builds.
//
// # Nulls
//
// A nil value is null. Floating NaN is treated as null as well, which matches
// how missing numbers arrive from CSV and JSON sources.
//
// # Kinds
//
// Each column has a [Kind] inferred from its non-null values. Integers and
// floats mixed in one column make a [KindFloat] column; any other mixture is
// [KindMixed].
package table
