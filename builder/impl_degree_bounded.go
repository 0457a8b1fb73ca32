// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_degree_bounded.go - implementation of the DegreeBounded constructor.
//
// Contract:
//   - nodeCount ≥ 1 (else ErrTooFewVertices).
//   - targetEdges ≥ 0 (else ErrBadEdgeTarget); infeasible targets are
//     clamped/exhausted, never an error (GenStats.Truncated records it).
//   - Degree caps positive or Unbounded (else ErrBadDegreeCap).
//   - 0 < weightMin ≤ weightMax (else ErrBadWeightRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - No self-loops; no parallel edges.
//
// Determinism:
//   - Spanning phase consumes RNG draws in vertex order 1..n-1; the
//     rejection phase draws (u, v, weight) in a fixed order. Same seed
//     and parameters ⇒ identical edge sequence.
//
// Complexity:
//   - Time: O(n) spanning + O(attempts · deg-check) rejection sampling.
//   - Space: O(n) degree counters and parent pool.
package builder

import (
	"fmt"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

const (
	methodDegreeBounded      = "DegreeBounded"
	minDegreeBoundedVertices = 1

	// minAttemptBudget keeps tiny targets from starving the rejection
	// phase before it has had a fair number of draws.
	minAttemptBudget = 100
)

// degreeBounded samples the graph in two phases: a random spanning
// structure for best-effort connectivity, then uniform rejection
// sampling up to the (feasibility-clamped) target edge count.
func degreeBounded(g *core.Graph, cfg builderConfig, targetEdges, maxIn, maxOut int, stats *GenStats) error {
	// 1) Validate parameters early (fail fast, zero side effects on invalid input).
	n := g.NodeCount()
	if n < minDegreeBoundedVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w",
			methodDegreeBounded, n, minDegreeBoundedVertices, ErrTooFewVertices)
	}
	if targetEdges < 0 {
		return fmt.Errorf("%s: targetEdges=%d: %w", methodDegreeBounded, targetEdges, ErrBadEdgeTarget)
	}
	if (maxIn != Unbounded && maxIn < 1) || (maxOut != Unbounded && maxOut < 1) {
		return fmt.Errorf("%s: maxIn=%d maxOut=%d: %w", methodDegreeBounded, maxIn, maxOut, ErrBadDegreeCap)
	}
	if cfg.weightMin <= 0 || cfg.weightMax < cfg.weightMin {
		return fmt.Errorf("%s: weight range [%g,%g): %w",
			methodDegreeBounded, cfg.weightMin, cfg.weightMax, ErrBadWeightRange)
	}
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", methodDegreeBounded, ErrNeedRandSource)
	}

	directed := g.Directed()
	stats.Requested = targetEdges

	// 2) Clamp the target to what the topology and caps admit at all.
	target := targetEdges
	if maxPossible := feasibleEdges(n, maxIn, maxOut, directed); target > maxPossible {
		target = maxPossible
		stats.Truncated = true
	}

	outDeg := make([]int, n)
	inDeg := make([]int, n)

	// addEdge places one edge and maintains the degree counters under the
	// directed or bidirectional interpretation of the caps.
	addEdge := func(u, v int) error {
		if err := g.AddEdge(u, v, cfg.weight()); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodDegreeBounded, u, v, err)
		}
		outDeg[u]++
		inDeg[v]++
		if !directed {
			outDeg[v]++
			inDeg[u]++
		}

		return nil
	}

	// spareAsParent reports whether u can take one more edge in the
	// "source" role; spareAsChild for the "destination" role.
	spareAsParent := func(u int) bool {
		if maxOut != Unbounded && outDeg[u] >= maxOut {
			return false
		}
		if !directed && maxIn != Unbounded && inDeg[u] >= maxIn {
			return false
		}

		return true
	}
	spareAsChild := func(v int) bool {
		if maxIn != Unbounded && inDeg[v] >= maxIn {
			return false
		}
		if !directed && maxOut != Unbounded && outDeg[v] >= maxOut {
			return false
		}

		return true
	}

	// 3) Spanning phase: attach each vertex i>0 to a random already-placed
	//    vertex with spare capacity. The pool holds eligible parents; a
	//    parent that fills up is swap-removed in O(1). When the pool is
	//    empty the vertex stays detached - connectivity is best-effort.
	pool := make([]int, 0, n)
	pool = append(pool, 0)
	for i := 1; i < n; i++ {
		if len(pool) > 0 {
			at := cfg.rng.Intn(len(pool))
			parent := pool[at]
			if err := addEdge(parent, i); err != nil {
				return err
			}
			if !spareAsParent(parent) {
				pool[at] = pool[len(pool)-1]
				pool = pool[:len(pool)-1]
			}
		}
		if spareAsParent(i) {
			pool = append(pool, i)
		}
	}

	// 4) Rejection phase: uniform candidate pairs until the target is met
	//    or the attempt budget runs out (termination guarantee for
	//    infeasible targets).
	budget := cfg.attemptFactor * target
	if budget < minAttemptBudget {
		budget = minAttemptBudget
	}

	var u, v int
	for g.EdgeCount() < target && stats.Attempts < budget {
		stats.Attempts++

		u = cfg.rng.Intn(n)
		v = cfg.rng.Intn(n)
		if u == v {
			continue
		}
		if !spareAsParent(u) || !spareAsChild(v) {
			continue
		}
		if g.HasEdge(u, v) {
			continue
		}
		if err := addEdge(u, v); err != nil {
			return err
		}
	}

	stats.Placed = g.EdgeCount()
	if stats.Placed < targetEdges {
		stats.Truncated = true
	}

	return nil
}

// feasibleEdges bounds how many simple edges the caps admit. Undirected
// edges consume capacity at both endpoints, so cap contributions halve.
func feasibleEdges(n, maxIn, maxOut int, directed bool) int {
	var maxPossible int
	if directed {
		maxPossible = n * (n - 1)
	} else {
		maxPossible = n * (n - 1) / 2
	}

	if maxOut != Unbounded {
		byOut := n * maxOut
		if !directed {
			byOut /= 2
		}
		if byOut < maxPossible {
			maxPossible = byOut
		}
	}
	if maxIn != Unbounded {
		byIn := n * maxIn
		if !directed {
			byIn /= 2
		}
		if byIn < maxPossible {
			maxPossible = byIn
		}
	}

	return maxPossible
}
