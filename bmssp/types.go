// Package bmssp types, sentinel errors, and functional options.
package bmssp

import (
	"errors"
	"math"
)

// Sentinel errors returned by the BMSSP implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrNoSources indicates an empty source set.
	ErrNoSources = errors.New("bmssp: no source vertices")

	// ErrSourceOutOfRange indicates a source vertex not in the graph.
	ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight; bounded
	// finalization is only sound with non-negative weights.
	ErrNegativeWeight = errors.New("bmssp: negative edge weight")

	// ErrBadBound indicates a negative distance bound.
	ErrBadBound = errors.New("bmssp: bound must be non-negative")
)

// Options configures the behavior of the algorithm.
type Options struct {
	// Bound is the exactness horizon B: distances strictly below it are
	// exact, everything at or above is reported as +Inf. Defaults to
	// +Inf (solve the whole graph).
	Bound float64

	// PivotRounds overrides the relaxation-round parameter k.
	// Zero means derive it from the graph size.
	PivotRounds int

	// LevelWidth overrides the level-width parameter t that controls
	// pull width and per-level budget. Zero means derive it from the
	// graph size.
	LevelWidth int
}

// Option is a functional option for configuring BMSSP.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: unbounded solve
// with size-derived parameters.
func DefaultOptions() Options {
	return Options{Bound: math.Inf(1)}
}

// WithBound caps exact resolution at b: vertices whose shortest
// distance is ≥ b come back as +Inf.
func WithBound(b float64) Option {
	return func(o *Options) { o.Bound = b }
}

// WithPivotRounds forces the pivot relaxation-round parameter k.
func WithPivotRounds(k int) Option {
	return func(o *Options) { o.PivotRounds = k }
}

// WithLevelWidth forces the level-width parameter t.
func WithLevelWidth(t int) Option {
	return func(o *Options) { o.LevelWidth = t }
}
