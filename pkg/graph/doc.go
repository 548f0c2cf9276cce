// Package graph provides [AttrGraph], an attribute graph in the style of
// igraph: vertices and edges are addressed by dense integer index and carry
// attribute maps that share one graph-wide schema.
//
// An AttrGraph is one of the graph representations a dataset can be built
// from (see pkg/adapter). It can also be built from an edge table:
//
//	g, err := graph.FromTable(edges, b, logger)
//
// FromTable creates one vertex per distinct endpoint, in the order endpoints
// are first seen row by row (source before destination), and stores the id
// under the node-id field of the binding.
package graph
