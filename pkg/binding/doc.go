// Package binding maps logical graph roles to the physical columns of an
// edge or node table.
//
// A [Binding] is an immutable value. Configuration calls derive new values:
//
//	base := binding.New(binding.Fields{Source: "src", Destination: "dst"})
//	colored := base.With(binding.PointColor, "community")
//	sized := base.With(binding.PointSize, "degree")
//
// base, colored and sized are independent; building a dataset with one never
// affects the others. An empty column name never unbinds a role, it keeps
// whatever the parent value had.
//
// When the node role is unbound, node ids live in the [DefaultNodeID] column.
package binding
