// Package preview renders a prepared dataset as a node-link diagram.
//
// The preview is a local debugging aid: it shows which edges and nodes
// survived sanitization and which columns the bindings picked, without
// uploading anything.
//
// # Usage
//
//	p, err := builder.Prepare(b, edges, nodes)
//	dot := preview.ToDOT(p, preview.Options{})
//	svg, err := preview.RenderSVG(ctx, dot)
//
// Node labels come from the column bound to point_label, then point_title,
// then the node id. Edge labels come from edge_label, then edge_title.
// With [Options.Detailed] every node column is listed under the label.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package preview
