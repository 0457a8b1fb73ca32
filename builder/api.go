// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(nodeCount, gopts, bopts, cons...).
//     Creates g, resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters early, return
// sentinel errors (no panics), and preserve determinism for the same
// config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// GenStats records how a generation run went. The generator degrades
// gracefully when degree caps make the target infeasible; Truncated is
// how that fact reaches the benchmark results instead of an error.
type GenStats struct {
	// Requested is the target edge count before feasibility clamping.
	Requested int

	// Placed is the number of edges actually in the graph.
	Placed int

	// Attempts is the number of candidate draws in the rejection phase.
	Attempts int

	// Truncated reports that the target was infeasible under the degree
	// caps or that the attempt budget ran out before reaching it.
	Truncated bool
}

// BuildGraph creates a new core.Graph with nodeCount vertices and the
// given graph options, resolves the builder configuration from bopts,
// and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; no partial
// cleanup is attempted.
func BuildGraph(nodeCount int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(nodeCount, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// DegreeBounded returns a Constructor that samples a degree-bounded
// random graph: spanning structure first, then rejection-sampled edges
// up to targetEdges. Generation statistics are discarded; use
// GenerateRandom when the caller needs them.
func DegreeBounded(targetEdges, maxIn, maxOut int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		var stats GenStats

		return degreeBounded(g, cfg, targetEdges, maxIn, maxOut, &stats)
	}
}

// GenerateRandom is the convenience wrapper the benchmark harness uses:
// one call builds the graph and reports generation statistics.
//
// Identical arguments (including the seed in opts) always yield a
// bit-identical edge set.
func GenerateRandom(nodeCount, targetEdges, maxIn, maxOut int, directed bool, opts ...BuilderOption) (*core.Graph, GenStats, error) {
	g, err := core.NewGraph(nodeCount, core.WithDirected(directed))
	if err != nil {
		return nil, GenStats{}, fmt.Errorf("GenerateRandom: %w", err)
	}

	cfg := newBuilderConfig(opts...)

	var stats GenStats
	if err = degreeBounded(g, cfg, targetEdges, maxIn, maxOut, &stats); err != nil {
		return nil, GenStats{}, fmt.Errorf("GenerateRandom: %w", err)
	}

	return g, stats, nil
}
