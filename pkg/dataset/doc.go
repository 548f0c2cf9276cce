// Package dataset turns a graph into the payload a visualization service
// accepts.
//
// # Pipeline
//
// Every build runs the same stages:
//
//  1. Dispatch: an edge [table.Table] is used as is; graph objects go
//     through the first adapter (pkg/adapter) that accepts them
//  2. Sanitize: drop edges with a null endpoint; derive the node table
//     from the endpoints when none was given; drop null and duplicate ids
//  3. Check size: at most 8,000,000 edges and 8,000,000 nodes; a warning
//     above 1,000,000 combined
//  4. Bind: resolve the visual encodings of the binding against the columns
//  5. Encode: [FormatJSON] rows or the typed columnar [FormatVGraph]
//
// # Usage
//
//	b := dataset.NewBuilder(dataset.Options{Logger: logger})
//	bnd := binding.New(binding.Fields{Source: "src", Destination: "dst"})
//	ds, err := b.Build(bnd, edges, nil, dataset.FormatVGraph)
//
// Builders hold no per-build state. One Builder, one Binding and one pair of
// tables can be reused for any number of builds; nothing they hold is
// modified.
//
// # Warnings
//
// Problems that leave a usable default (a bound column that does not exist,
// an unbound node role, a large graph) are logged as warnings on
// [Options.Logger] and reported to observability.Warning. They never fail a
// build.
package dataset
