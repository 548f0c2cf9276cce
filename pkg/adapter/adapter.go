// Package adapter converts graph objects into the canonical pair of edge and
// node tables that the dataset pipeline works on.
//
// Two variants are provided:
//
//   - "attribute-graph" accepts a [graph.AttrGraph]
//   - "tuple-list-graph" accepts any gonum [gonum.org/v1/gonum/graph.Graph]
//
// Each variant registers itself with [Register]. The gonum variant lives in
// a file guarded by the nogonum build tag, so a binary built with
// -tags nogonum simply has one variant fewer; [Default] never lists an
// adapter whose backing library was left out.
package adapter

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
)

// Result is the output of an adapter. Binding is derived from the input
// binding with the node role resolved, so later stages never see an unbound
// node role.
type Result struct {
	Edges   *table.Table
	Nodes   *table.Table
	Binding binding.Binding
}

// Adapter converts one family of graph objects into tables.
type Adapter interface {
	// Name identifies the variant in logs and hooks.
	Name() string
	// Accepts reports whether g is a graph this adapter can convert.
	Accepts(g any) bool
	// Convert produces tables from g. It never modifies g.
	Convert(g any, b binding.Binding, logger *log.Logger) (Result, error)
}

var (
	registry   []Adapter
	registryMu sync.RWMutex
)

// Register adds an adapter to the default set. Adapters are tried in
// registration order. Register panics if the name is already taken.
func Register(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, existing := range registry {
		if existing.Name() == a.Name() {
			panic(fmt.Sprintf("adapter: %q registered twice", a.Name()))
		}
	}
	registry = append(registry, a)
}

// Default returns the registered adapters in order.
func Default() []Adapter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]Adapter(nil), registry...)
}

// Find returns the first adapter that accepts g.
func Find(adapters []Adapter, g any) (Adapter, bool) {
	for _, a := range adapters {
		if a.Accepts(g) {
			return a, true
		}
	}
	return nil, false
}
