// Package observability provides hooks for metrics and tracing of dataset
// builds.
//
// Nothing in vizset depends on a metrics backend. Applications that want
// counters or traces register hooks at startup; until they do, every hook
// is a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDatasetHooks(&myDatasetHooks{})
//	    observability.SetWarningHooks(&myWarningHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Dataset().OnBuildStart(format)
//	// ... dispatch, sanitize, bind, encode ...
//	observability.Dataset().OnBuildComplete(format, edges, nodes, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Dataset Hooks
// =============================================================================

// DatasetHooks receives events from the dataset pipeline.
type DatasetHooks interface {
	// OnDispatch records which input variant handled a graph.
	OnDispatch(variant string)

	// Build events
	OnBuildStart(format string)
	OnBuildComplete(format string, edgeCount, nodeCount int, duration time.Duration, err error)
}

// =============================================================================
// Warning Hooks
// =============================================================================

// WarningHooks receives advisory warnings. Warnings never stop a build.
type WarningHooks interface {
	OnWarning(kind string)
}

// Warning kinds.
const (
	WarnNodeUnbound      = "node_unbound"
	WarnMissingAttribute = "missing_attribute"
	WarnLargeGraph       = "large_graph"
	WarnDuplicateNode    = "duplicate_node"
	WarnShadowedColumn   = "shadowed_column"
)

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDatasetHooks is a no-op implementation of DatasetHooks.
type NoopDatasetHooks struct{}

func (NoopDatasetHooks) OnDispatch(string)                                       {}
func (NoopDatasetHooks) OnBuildStart(string)                                     {}
func (NoopDatasetHooks) OnBuildComplete(string, int, int, time.Duration, error) {}

// NoopWarningHooks is a no-op implementation of WarningHooks.
type NoopWarningHooks struct{}

func (NoopWarningHooks) OnWarning(string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	datasetHooks DatasetHooks = NoopDatasetHooks{}
	warningHooks WarningHooks = NoopWarningHooks{}
	hooksMu      sync.RWMutex
)

// SetDatasetHooks registers custom dataset hooks.
// This should be called once at application startup before any build.
func SetDatasetHooks(h DatasetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		datasetHooks = h
	}
}

// SetWarningHooks registers custom warning hooks.
func SetWarningHooks(h WarningHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		warningHooks = h
	}
}

// Dataset returns the registered dataset hooks.
func Dataset() DatasetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return datasetHooks
}

// Warning returns the registered warning hooks.
func Warning() WarningHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return warningHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	datasetHooks = NoopDatasetHooks{}
	warningHooks = NoopWarningHooks{}
}
