// Package graphio loads graphs from external text formats: Matrix
// Market coordinate files (1-based, % comments, dimension header) and
// plain whitespace edge lists (0-based, #/% comments). It also extracts
// the largest weakly-connected component with compact re-indexing,
// which real-world datasets usually need before benchmarking.
package graphio

import "errors"

var (
	// ErrMalformedGraph wraps every parse failure; the message carries
	// the offending line number.
	ErrMalformedGraph = errors.New("graphio: malformed graph input")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrEmptyGraph indicates input that yields no vertices.
	ErrEmptyGraph = errors.New("graphio: no vertices in input")
)
