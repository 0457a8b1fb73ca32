// Package bellmanford implements the Bellman-Ford shortest-path
// algorithm: up to V-1 relaxation passes over the full edge list, with
// early termination when a pass relaxes nothing, followed by one
// detection pass for negative-weight cycles.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; early exit often terminates sooner on
//     graphs with short shortest-path trees.
//   - Space: O(V) for distance and predecessor slices.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// BellmanFord computes shortest distances from source to every vertex
// of g. Negative edge weights are permitted; a negative-weight cycle
// reachable from the source yields ErrNegativeCycle.
//
// Returns dist (+Inf for unreachable vertices), pred (nil unless
// WithPredecessors), and err.
func BellmanFord(g *core.Graph, source int, opts ...Option) ([]float64, []int, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("source %d of %d vertices: %w", source, n, ErrSourceOutOfRange)
	}

	dist := make([]float64, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	var pred []int
	if cfg.ReturnPredecessors {
		pred = make([]int, n)
		for v := range pred {
			pred[v] = NoPredecessor
		}
	}

	edges := g.Edges()
	directed := g.Directed()

	// relax attempts dist[v] = dist[u] + w; reports improvement.
	relax := func(u, v int, w float64) bool {
		if math.IsInf(dist[u], 1) {
			return false
		}
		if alt := dist[u] + w; alt < dist[v] {
			dist[v] = alt
			if pred != nil {
				pred[v] = u
			}

			return true
		}

		return false
	}

	// Up to n-1 passes over all edges; undirected edges relax both ways.
	for pass := 0; pass < n-1; pass++ {
		relaxed := false
		for _, e := range edges {
			if relax(e.From, e.To, e.Weight) {
				relaxed = true
			}
			if !directed && relax(e.To, e.From, e.Weight) {
				relaxed = true
			}
		}
		// A pass with no relaxation means all distances are final.
		if !relaxed {
			break
		}
	}

	// Detection pass: any residual relaxability indicates a negative
	// cycle reachable from the source.
	for _, e := range edges {
		if canImprove(dist, e.From, e.To, e.Weight) ||
			(!directed && canImprove(dist, e.To, e.From, e.Weight)) {
			return nil, nil, fmt.Errorf("edge %d→%d weight=%g still relaxable: %w",
				e.From, e.To, e.Weight, ErrNegativeCycle)
		}
	}

	return dist, pred, nil
}

// canImprove reports whether edge u→v would still relax.
func canImprove(dist []float64, u, v int, w float64) bool {
	return !math.IsInf(dist[u], 1) && dist[u]+w < dist[v]
}
