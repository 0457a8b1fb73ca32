// Package dijkstra defines types and configuration options for
// Dijkstra's shortest-path algorithm on non-negative weighted graphs.
//
// Options:
//
//	– WithPredecessors(): also return the predecessor slice for path
//	  reconstruction (-1 marks "no predecessor").
//	– WithMaxDistance(b): cap on distances to explore; vertices whose
//	  tentative distance exceeds b are never finalized. Must be ≥ 0.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrSourceOutOfRange if the source is outside [0, NodeCount).
//	– ErrNegativeWeight   if a negative edge weight is detected.
//	– ErrBadMaxDistance   if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates the source vertex is not in the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	// Negative weights are a precondition violation for Dijkstra; they are
	// reported, never silently handled.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// ReturnPredecessors controls whether the predecessor slice is built.
	ReturnPredecessors bool

	// MaxDistance caps exploration; +Inf means no cap.
	MaxDistance float64
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithPredecessors enables the predecessor slice in the result.
func WithPredecessors() Option {
	return func(o *Options) { o.ReturnPredecessors = true }
}

// WithMaxDistance sets the exploration cap. Vertices whose shortest
// distance exceeds b are not finalized. Negative values cause
// ErrBadMaxDistance at run time.
func WithMaxDistance(b float64) Option {
	return func(o *Options) { o.MaxDistance = b }
}

// DefaultOptions returns Options with no predecessor tracking and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPredecessors: false,
		MaxDistance:        math.Inf(1),
	}
}

// NoPredecessor marks the absence of a predecessor in the Pred slice.
const NoPredecessor = -1
