package dataset

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/adapter"
	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

// Options configures a Builder. The zero value is usable.
type Options struct {
	// Logger receives warnings and debug output. Defaults to a discarding
	// logger.
	Logger *log.Logger
	// Prefix is prepended to every generated dataset name.
	// Defaults to DefaultPrefix.
	Prefix string
	// NameFunc generates the random part of dataset names.
	// Defaults to RandomName.
	NameFunc func() string
	// Adapters are the graph adapters tried by Dispatch, in order.
	// Defaults to adapter.Default().
	Adapters []adapter.Adapter
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.NameFunc == nil {
		o.NameFunc = RandomName
	}
	if o.Adapters == nil {
		o.Adapters = adapter.Default()
	}
}

// Builder runs the dataset pipeline. A Builder is safe for concurrent use
// as long as its NameFunc is.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder with defaults applied to opts.
func NewBuilder(opts Options) *Builder {
	opts.setDefaults()
	return &Builder{opts: opts}
}

// Logger returns the builder's logger.
func (b *Builder) Logger() *log.Logger { return b.opts.Logger }

// Prepare dispatches g and returns sanitized, size-checked tables.
func (b *Builder) Prepare(bnd binding.Binding, g any, nodes *table.Table) (*Prepared, error) {
	res, variant, err := Dispatch(b.opts.Adapters, bnd, g, nodes, b.opts.Logger)
	if err != nil {
		return nil, err
	}
	edges, nlist, err := Sanitize(res.Edges, res.Nodes, res.Binding, b.opts.Logger)
	if err != nil {
		return nil, err
	}
	if err := CheckSize(edges, nlist, b.opts.Logger); err != nil {
		return nil, err
	}
	return &Prepared{Edges: edges, Nodes: nlist, Binding: res.Binding, Variant: variant}, nil
}

// Build runs the whole pipeline and returns the payload in the requested
// format. On error no payload is returned.
func (b *Builder) Build(bnd binding.Binding, g any, nodes *table.Table, format Format) (ds Dataset, err error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	var edgeCount, nodeCount int
	observability.Dataset().OnBuildStart(string(format))
	defer func() {
		observability.Dataset().OnBuildComplete(string(format), edgeCount, nodeCount, time.Since(start), err)
	}()

	p, err := b.Prepare(bnd, g, nodes)
	if err != nil {
		return nil, err
	}
	edgeCount, nodeCount = p.Edges.Len(), p.Nodes.Len()

	ds, err = b.Encode(p, format)
	if err != nil {
		return nil, err
	}
	b.opts.Logger.Debug("built dataset",
		"name", ds.DatasetName(),
		"format", format,
		"variant", p.Variant,
		"edges", edgeCount,
		"nodes", nodeCount,
		"duration", time.Since(start))
	return ds, nil
}

// Encode binds and encodes a prepared graph.
func (b *Builder) Encode(p *Prepared, format Format) (Dataset, error) {
	name := b.opts.Prefix + b.opts.NameFunc()

	switch format {
	case FormatJSON:
		edges, nodes, err := BindInline(p.Edges, p.Nodes, p.Binding, b.opts.Logger)
		if err != nil {
			return nil, err
		}
		return EncodeJSON(name, edges, nodes, p.Binding), nil
	case FormatVGraph:
		enc := BindReference(p.Edges, p.Nodes, p.Binding, b.opts.Logger)
		g, err := EncodeVGraph(name, p.Edges, p.Nodes, p.Binding)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode vgraph")
		}
		return &VGraphDataset{Graph: g, Encodings: enc}, nil
	}
	return nil, format.Validate()
}
