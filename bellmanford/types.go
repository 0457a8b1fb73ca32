// Package bellmanford defines types and options for the Bellman-Ford
// single-source shortest-path algorithm.
//
// Bellman-Ford tolerates negative edge weights and is used by the
// benchmark as the O(V·E) baseline comparator on non-negative graphs.
// A graph containing a negative-weight cycle reachable from the source
// has no finite shortest paths for the affected vertices; that condition
// is reported as ErrNegativeCycle, never silently clamped.
package bellmanford

import "errors"

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex is not in the graph.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrNegativeCycle indicates a relaxable cycle was detected after the
	// V-1 passes: no finite shortest path exists for the affected vertices.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// Options configures the behavior of the algorithm.
type Options struct {
	// ReturnPredecessors controls whether the predecessor slice is built.
	ReturnPredecessors bool
}

// Option is a functional option for configuring BellmanFord.
type Option func(*Options)

// WithPredecessors enables the predecessor slice in the result.
func WithPredecessors() Option {
	return func(o *Options) { o.ReturnPredecessors = true }
}

// NoPredecessor marks the absence of a predecessor in the Pred slice.
const NoPredecessor = -1
