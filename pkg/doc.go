// Package pkg holds the vizset libraries.
//
// # Overview
//
// vizset turns a graph into a dataset payload for a remote visualization
// service. A graph is an edge table (optionally with a node table) or an
// in-memory graph object; a [binding.Binding] says which columns play which
// role. The packages are layered:
//
//  1. [table], [graph] - input data: columnar tables and attribute graphs
//  2. [binding] - role to column mapping, plus TOML/YAML binding files
//  3. [adapter] - turn graph objects into edge and node tables
//  4. [dataset] - dispatch, sanitize, bind and encode
//  5. [vgraph] - the VectorGraph wire message
//  6. [preview] - local Graphviz drawing of a prepared dataset
//
// [errors] and [observability] are shared by all of them.
//
// # Data Flow
//
//	edge table / AttrGraph / gonum graph
//	         ↓
//	    [dataset.Dispatch] (adapter lookup)
//	         ↓
//	    [dataset.Sanitize] + [dataset.CheckSize]
//	         ↓
//	    [dataset.BindInline] or [dataset.BindReference]
//	         ↓
//	    JSON edge list or VectorGraph
//
// # Quick Start
//
//	edges, _ := table.ReadFile("edges.csv")
//	b := binding.New(binding.Fields{Source: "src", Destination: "dst"})
//	ds, err := dataset.NewBuilder(dataset.Options{}).Build(b, edges, nil, dataset.FormatJSON)
//
// [table]: github.com/matzehuels/vizset/pkg/table
// [graph]: github.com/matzehuels/vizset/pkg/graph
// [binding]: github.com/matzehuels/vizset/pkg/binding
// [binding.Binding]: github.com/matzehuels/vizset/pkg/binding#Binding
// [adapter]: github.com/matzehuels/vizset/pkg/adapter
// [dataset]: github.com/matzehuels/vizset/pkg/dataset
// [dataset.Dispatch]: github.com/matzehuels/vizset/pkg/dataset#Dispatch
// [dataset.Sanitize]: github.com/matzehuels/vizset/pkg/dataset#Sanitize
// [dataset.CheckSize]: github.com/matzehuels/vizset/pkg/dataset#CheckSize
// [dataset.BindInline]: github.com/matzehuels/vizset/pkg/dataset#BindInline
// [dataset.BindReference]: github.com/matzehuels/vizset/pkg/dataset#BindReference
// [vgraph]: github.com/matzehuels/vizset/pkg/vgraph
// [preview]: github.com/matzehuels/vizset/pkg/preview
// [errors]: github.com/matzehuels/vizset/pkg/errors
// [observability]: github.com/matzehuels/vizset/pkg/observability
package pkg
