package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BakdaurenNarbayev/BMSSP/builder"
)

// Sentinel errors returned by the benchmark layer.
var (
	// ErrNoAlgorithms indicates an empty algorithm list; detected before
	// any benchmarking starts.
	ErrNoAlgorithms = errors.New("bench: no algorithms configured")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("bench: trials must be positive")

	// ErrBadSweep indicates an inconsistent sweep configuration.
	ErrBadSweep = errors.New("bench: invalid sweep configuration")
)

// Algorithm identifies one of the benchmarked shortest-path algorithms.
// The set is closed: adding an algorithm means extending the enum, its
// String form, and the dispatch in one place each.
type Algorithm int

const (
	// Dijkstra is the lazy decrease-key binary-heap implementation.
	Dijkstra Algorithm = iota
	// BellmanFord is the edge-list relaxation baseline.
	BellmanFord
	// BMSSP is the bounded multi-source recursive solver.
	BMSSP

	numAlgorithms
)

// String returns the canonical lowercase name used in configuration,
// logs, and reports.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman_ford"
	case BMSSP:
		return "bmssp"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration name onto the enum. Matching is
// case-insensitive and tolerates dashes for underscores.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for a := Algorithm(0); a < numAlgorithms; a++ {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// RunResult is the outcome of a single timed execution.
type RunResult struct {
	Algorithm Algorithm
	Elapsed   time.Duration
	Dist      []float64
}

// BenchmarkResult aggregates the trials of one (algorithm, graph) pair.
type BenchmarkResult struct {
	Algorithm  Algorithm
	TrialTimes []time.Duration
	MedianTime time.Duration
}

// Point is one measured or extrapolated sweep entry.
type Point struct {
	NodeCount   int
	TargetEdges int
	MedianTime  time.Duration
	TrialTimes  []time.Duration
	// Extrapolated marks entries filled in by the linear fit instead of
	// being measured.
	Extrapolated bool
	Stats        builder.GenStats
}

// SeriesKey identifies one curve of the sweep output.
type SeriesKey struct {
	Algorithm Algorithm
	EdgeRatio float64
}

// ResultSet maps each series to its points ordered by node count.
type ResultSet map[SeriesKey][]Point

// ExclusionRule skips an algorithm on graphs with more nodes than
// MaxNodes; the skipped sizes are extrapolated instead.
type ExclusionRule struct {
	Algorithm Algorithm
	MaxNodes  int
}
