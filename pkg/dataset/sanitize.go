package dataset

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizset/pkg/binding"
	"github.com/matzehuels/vizset/pkg/errors"
	"github.com/matzehuels/vizset/pkg/observability"
	"github.com/matzehuels/vizset/pkg/table"
)

// Size ceilings accepted by the visualization service.
const (
	MaxEdges = 8_000_000
	MaxNodes = 8_000_000

	// LargeGraphThreshold is the combined node and edge count above which
	// a build logs a slow-rendering warning.
	LargeGraphThreshold = 1_000_000
)

// Sanitize validates the endpoint bindings and returns cleaned copies of the
// tables:
//
//   - edges lose every row whose source or destination is null
//   - a nil nodes table is derived from the non-null endpoints of the input
//     edges, half-null rows included, in first-seen order of all sources
//     followed by all destinations, as a single id column
//   - a given nodes table loses rows with a null id and rows repeating an
//     earlier id
//
// The node-id field is b.NodeID(). Neither input table is modified.
func Sanitize(edges, nodes *table.Table, b binding.Binding, logger *log.Logger) (*table.Table, *table.Table, error) {
	if err := b.Require(false); err != nil {
		return nil, nil, err
	}
	if err := checkBound(edges, "Edge", b, binding.Source, binding.Destination); err != nil {
		return nil, nil, err
	}
	src, dst := b.Get(binding.Source), b.Get(binding.Destination)
	nodeID := b.NodeID()

	elist := edges.DropNulls(src, dst)

	if nodes == nil {
		ids := uniqueValues(edges.Values(src), edges.Values(dst))
		nlist, err := table.New(table.Column{Name: nodeID, Values: ids})
		if err != nil {
			return nil, nil, err
		}
		return elist, nlist, nil
	}

	if !nodes.Has(nodeID) {
		return nil, nil, errors.New(errors.ErrCodeBinding,
			`Vertex attribute "node" bound to "%s" does not exist.`, nodeID)
	}
	nlist := nodes.DropNulls(nodeID)
	seen := make(map[any]bool, nlist.Len())
	deduped := nlist.Filter(func(i int) bool {
		key := table.Key(nlist.At(nodeID, i))
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
	if dropped := nlist.Len() - deduped.Len(); dropped > 0 {
		observability.Warn(logger, observability.WarnDuplicateNode,
			`Dropped %d node rows repeating an id in "%s".`, dropped, nodeID)
	}
	return elist, deduped, nil
}

// checkBound fails when a role's column is missing from t.
func checkBound(t *table.Table, kind string, b binding.Binding, roles ...binding.Role) error {
	for _, role := range roles {
		name := b.Get(role)
		if !t.Has(name) {
			return errors.New(errors.ErrCodeBinding,
				`%s attribute "%s" bound to "%s" does not exist.`, kind, role, name)
		}
	}
	return nil
}

// uniqueValues returns the distinct non-null values of the given columns,
// scanning them one after another, in first-seen order.
func uniqueValues(cols ...[]any) []any {
	seen := make(map[any]bool)
	var out []any
	for _, col := range cols {
		for _, v := range col {
			if table.IsNull(v) {
				continue
			}
			key := table.Key(v)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// CheckSize enforces the edge and node ceilings and warns about large graphs.
func CheckSize(edges, nodes *table.Table, logger *log.Logger) error {
	return checkCounts(edges.Len(), nodes.Len(), logger)
}

func checkCounts(edgeCount, nodeCount int, logger *log.Logger) error {
	if edgeCount > MaxEdges {
		return &errors.SizeLimitError{Entity: errors.EntityEdges, Count: edgeCount, Limit: MaxEdges}
	}
	if nodeCount > MaxNodes {
		return &errors.SizeLimitError{Entity: errors.EntityNodes, Count: nodeCount, Limit: MaxNodes}
	}
	if total := edgeCount + nodeCount; total > LargeGraphThreshold {
		observability.Warn(logger, observability.WarnLargeGraph,
			"Large graph: |nodes| + |edges| = %d. Layout/rendering might be slow.", total)
	}
	return nil
}
