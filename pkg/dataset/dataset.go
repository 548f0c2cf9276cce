package dataset

import (
	"encoding/json"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/table"
	"github.com/matzehuels/vizset/pkg/vgraph"
)

// DefaultPrefix namespaces generated dataset names.
const DefaultPrefix = "PyGraphistry/"

// Dataset is a finished payload: a *JSONDataset or a *VGraphDataset.
// It shares no state with the builder or the input tables.
type Dataset interface {
	// DatasetName returns the generated, prefixed dataset name.
	DatasetName() string
	// Format returns the wire format of the payload.
	Format() Format
}

// Prepared is a dispatched, sanitized and size-checked graph, ready to be
// bound and encoded.
type Prepared struct {
	Edges   *table.Table
	Nodes   *table.Table
	Binding binding.Binding
	Variant string // input variant that produced the tables
}

// NodeID returns the node-id field of the prepared tables.
func (p *Prepared) NodeID() string {
	return p.Binding.NodeID()
}

// =============================================================================
// JSON
// =============================================================================

// JSONBindings names the id, source and destination fields of a JSON dataset.
type JSONBindings struct {
	IDField          string `json:"idField"`
	DestinationField string `json:"destinationField"`
	SourceField      string `json:"sourceField"`
}

// JSONDataset is the row-oriented payload.
type JSONDataset struct {
	Name     string
	Bindings JSONBindings
	Type     string // always "edgelist"
	Graph    []table.Record
	// Labels holds the node rows. A nil Labels omits the key entirely; an
	// empty node table encodes as an empty list.
	Labels []table.Record
}

// DatasetName implements Dataset.
func (d *JSONDataset) DatasetName() string { return d.Name }

// Format implements Dataset.
func (d *JSONDataset) Format() Format { return FormatJSON }

// MarshalJSON implements json.Marshaler.
func (d JSONDataset) MarshalJSON() ([]byte, error) {
	type wire struct {
		Name     string          `json:"name"`
		Bindings JSONBindings    `json:"bindings"`
		Type     string          `json:"type"`
		Graph    []table.Record  `json:"graph"`
		Labels   *[]table.Record `json:"labels,omitempty"`
	}
	w := wire{Name: d.Name, Bindings: d.Bindings, Type: d.Type, Graph: d.Graph}
	if w.Graph == nil {
		w.Graph = []table.Record{}
	}
	if d.Labels != nil {
		w.Labels = &d.Labels
	}
	return json.Marshal(w)
}

// =============================================================================
// VGraph
// =============================================================================

// Encodings names the column behind each role of a vgraph dataset. Visual
// roles whose column was not found are left empty and omitted from JSON.
type Encodings struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	NodeID      string `json:"nodeId"`

	EdgeColor  string `json:"edgeColor,omitempty"`
	EdgeLabel  string `json:"edgeLabel,omitempty"`
	EdgeTitle  string `json:"edgeTitle,omitempty"`
	EdgeWeight string `json:"edgeWeight,omitempty"`

	PointColor string `json:"pointColor,omitempty"`
	PointLabel string `json:"pointLabel,omitempty"`
	PointTitle string `json:"pointTitle,omitempty"`
	PointSize  string `json:"pointSize,omitempty"`
}

func (e *Encodings) set(key, column string) {
	switch key {
	case keyEdgeColor:
		e.EdgeColor = column
	case keyEdgeLabel:
		e.EdgeLabel = column
	case keyEdgeTitle:
		e.EdgeTitle = column
	case keyEdgeWeight:
		e.EdgeWeight = column
	case keyPointColor:
		e.PointColor = column
	case keyPointLabel:
		e.PointLabel = column
	case keyPointTitle:
		e.PointTitle = column
	case keyPointSize:
		e.PointSize = column
	}
}

// VGraphDataset is the typed columnar payload.
type VGraphDataset struct {
	Graph     *vgraph.VectorGraph
	Encodings Encodings
}

// DatasetName implements Dataset.
func (d *VGraphDataset) DatasetName() string { return d.Graph.Name }

// Format implements Dataset.
func (d *VGraphDataset) Format() Format { return FormatVGraph }
