package binding

import (
	"fmt"
	"strings"

	"github.com/matzehuels/vizset/pkg/errors"
)

// DefaultNodeID is the node-id field used when no node binding is set.
const DefaultNodeID = "__nodeid__"

// Role is a logical graph or visual concern that a column can be bound to.
type Role string

const (
	Source      Role = "source"
	Destination Role = "destination"
	Node        Role = "node"

	EdgeTitle  Role = "edge_title"
	EdgeLabel  Role = "edge_label"
	EdgeColor  Role = "edge_color"
	EdgeWeight Role = "edge_weight"

	PointTitle Role = "point_title"
	PointLabel Role = "point_label"
	PointColor Role = "point_color"
	PointSize  Role = "point_size"
)

// Roles lists every role in a fixed order.
var Roles = []Role{
	Source, Destination, Node,
	EdgeTitle, EdgeLabel, EdgeColor, EdgeWeight,
	PointTitle, PointLabel, PointColor, PointSize,
}

// Fields names the physical columns for each role. An empty string leaves the
// role as it is when passed to [Binding.Bind].
type Fields struct {
	Source      string `toml:"source" yaml:"source"`
	Destination string `toml:"destination" yaml:"destination"`
	Node        string `toml:"node" yaml:"node"`

	EdgeTitle  string `toml:"edge_title" yaml:"edge_title"`
	EdgeLabel  string `toml:"edge_label" yaml:"edge_label"`
	EdgeColor  string `toml:"edge_color" yaml:"edge_color"`
	EdgeWeight string `toml:"edge_weight" yaml:"edge_weight"`

	PointTitle string `toml:"point_title" yaml:"point_title"`
	PointLabel string `toml:"point_label" yaml:"point_label"`
	PointColor string `toml:"point_color" yaml:"point_color"`
	PointSize  string `toml:"point_size" yaml:"point_size"`
}

// Get returns the column named for role.
func (f Fields) Get(role Role) string {
	switch role {
	case Source:
		return f.Source
	case Destination:
		return f.Destination
	case Node:
		return f.Node
	case EdgeTitle:
		return f.EdgeTitle
	case EdgeLabel:
		return f.EdgeLabel
	case EdgeColor:
		return f.EdgeColor
	case EdgeWeight:
		return f.EdgeWeight
	case PointTitle:
		return f.PointTitle
	case PointLabel:
		return f.PointLabel
	case PointColor:
		return f.PointColor
	case PointSize:
		return f.PointSize
	}
	return ""
}

func (f *Fields) set(role Role, name string) {
	switch role {
	case Source:
		f.Source = name
	case Destination:
		f.Destination = name
	case Node:
		f.Node = name
	case EdgeTitle:
		f.EdgeTitle = name
	case EdgeLabel:
		f.EdgeLabel = name
	case EdgeColor:
		f.EdgeColor = name
	case EdgeWeight:
		f.EdgeWeight = name
	case PointTitle:
		f.PointTitle = name
	case PointLabel:
		f.PointLabel = name
	case PointColor:
		f.PointColor = name
	case PointSize:
		f.PointSize = name
	}
}

// Validate checks every non-empty field name.
func (f Fields) Validate() error {
	for _, role := range Roles {
		if err := errors.ValidateFieldName(string(role), f.Get(role)); err != nil {
			return err
		}
	}
	return nil
}

// Binding maps roles to physical column names. The zero value binds nothing.
//
// Binding is a value: Bind and With return a new Binding and never change
// the receiver, so a Binding can be reused across builds and forked freely.
type Binding struct {
	fields Fields
}

// New returns a Binding with the given fields bound.
func New(f Fields) Binding {
	return Binding{}.Bind(f)
}

// Bind returns a copy of b with every non-empty field of f bound.
// Empty fields keep the value already bound in b.
func (b Binding) Bind(f Fields) Binding {
	for _, role := range Roles {
		if name := f.Get(role); name != "" {
			b.fields.set(role, name)
		}
	}
	return b
}

// With returns a copy of b with role bound to name. An empty name is a no-op.
func (b Binding) With(role Role, name string) Binding {
	if name != "" {
		b.fields.set(role, name)
	}
	return b
}

// Get returns the column bound to role, or "" if unbound.
func (b Binding) Get(role Role) string {
	return b.fields.Get(role)
}

// Fields returns the bound columns.
func (b Binding) Fields() Fields {
	return b.fields
}

// NodeID returns the node-id field, falling back to DefaultNodeID.
func (b Binding) NodeID() string {
	if b.fields.Node != "" {
		return b.fields.Node
	}
	return DefaultNodeID
}

// Require checks the bindings that every build needs. Source and destination
// must always be bound; node must be bound when the caller supplies its own
// node table.
func (b Binding) Require(hasNodes bool) error {
	if b.fields.Source == "" || b.fields.Destination == "" {
		return errors.New(errors.ErrCodeBinding, `Both "source" and "destination" must be bound before plotting.`)
	}
	if hasNodes && b.fields.Node == "" {
		return errors.New(errors.ErrCodeBinding, "Node identifier must be bound when using node table.")
	}
	return nil
}

// String lists the bound roles, e.g. "Binding{source=src destination=dst}".
func (b Binding) String() string {
	var parts []string
	for _, role := range Roles {
		if name := b.Get(role); name != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", role, name))
		}
	}
	return "Binding{" + strings.Join(parts, " ") + "}"
}
