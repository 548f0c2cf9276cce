package preview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/dataset"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/table"
)

// Options configures DOT generation.
type Options struct {
	// Detailed lists every node column in the node label.
	Detailed bool
	// MaxNodes refuses graphs with more nodes than this. Zero means
	// DefaultMaxNodes; a negative value disables the check.
	MaxNodes int
}

// DefaultMaxNodes bounds the graphs Graphviz is asked to lay out.
const DefaultMaxNodes = 2000

// ToDOT converts a prepared dataset to Graphviz DOT source.
func ToDOT(p *dataset.Prepared, opts Options) (string, error) {
	limit := opts.MaxNodes
	if limit == 0 {
		limit = DefaultMaxNodes
	}
	if limit > 0 && p.Nodes.Len() > limit {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"preview supports at most %d nodes, got %d", limit, p.Nodes.Len())
	}

	b := p.Binding
	nodeID := b.NodeID()
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)
	nodeLabel := firstColumn(p.Nodes, b, binding.PointLabel, binding.PointTitle)
	edgeLabel := firstColumn(p.Edges, b, binding.EdgeLabel, binding.EdgeTitle)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := 0; i < p.Nodes.Len(); i++ {
		id := p.Nodes.At(nodeID, i)
		label := text(id)
		if nodeLabel != "" && !table.IsNull(p.Nodes.At(nodeLabel, i)) {
			label = text(p.Nodes.At(nodeLabel, i))
		}
		if opts.Detailed {
			label += "\n" + details(p.Nodes.Row(i), nodeID)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", text(id), label)
	}

	buf.WriteString("\n")
	for i := 0; i < p.Edges.Len(); i++ {
		from, to := text(p.Edges.At(src, i)), text(p.Edges.At(dst, i))
		if edgeLabel != "" && !table.IsNull(p.Edges.At(edgeLabel, i)) {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from, to, text(p.Edges.At(edgeLabel, i)))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// firstColumn returns the first role bound to a column that t has.
func firstColumn(t *table.Table, b binding.Binding, roles ...binding.Role) string {
	for _, role := range roles {
		if name := b.Get(role); name != "" && t.Has(name) {
			return name
		}
	}
	return ""
}

func details(r table.Record, skip string) string {
	var parts []string
	for _, f := range r {
		if f.Name == skip || table.IsNull(f.Value) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, text(f.Value)))
	}
	return strings.Join(parts, "\n")
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// RenderSVG lays out DOT source with Graphviz and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from the
// origin in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
