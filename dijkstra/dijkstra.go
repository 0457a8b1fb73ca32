// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge
// weights. Vertices are processed in order of increasing distance using
// a min-heap priority queue with the "lazy decrease-key" discipline:
// improved distances push duplicate heap entries, and stale entries are
// skipped on extraction via a finalized-marker check.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex extracted at most once, each
//     relaxation may push one heap entry.
//   - Space: O(V + E) — distance/predecessor slices plus worst-case heap.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan detects negative weights and fails fast.
//   - Exploration stops once the minimum distance in the heap exceeds
//     MaxDistance; vertices beyond the cap stay at +Inf.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: distance per vertex ID (+Inf if unreachable or beyond MaxDistance).
//   - pred: predecessor per vertex if WithPredecessors (nil otherwise);
//     NoPredecessor marks the source and unreachable vertices.
//   - err:  validation failure (nil graph, bad source, negative weight,
//     bad MaxDistance).
//
// Preconditions and validation (in order): g non-nil, source in range,
// MaxDistance ≥ 0, no negative edge weights.
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if source < 0 || source >= g.NodeCount() {
		return nil, nil, fmt.Errorf("source %d of %d vertices: %w", source, g.NodeCount(), ErrSourceOutOfRange)
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, fmt.Errorf("MaxDistance %g: %w", cfg.MaxDistance, ErrBadMaxDistance)
	}

	// Pre-scan all edges to detect negative weights and fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, cfg, source)
	r.process()

	return r.dist, r.pred, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	pred    []int
	visited []bool
	pq      nodePQ
}

// newRunner initializes distances, predecessors, the finalized-marker
// slice, and pushes the source at distance 0.
func newRunner(g *core.Graph, cfg Options, source int) *runner {
	n := g.NodeCount()

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	if cfg.ReturnPredecessors {
		r.pred = make([]int, n)
		for v := range r.pred {
			r.pred[v] = NoPredecessor
		}
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process is the core loop: extract the minimum-distance vertex,
// finalize it, relax its outgoing arcs. Stale heap entries (vertex
// already finalized) are skipped rather than removed eagerly.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Skip stale entries for already-finalized vertices.
		if r.visited[item.id] {
			continue
		}

		// Everything still in the heap is at least this far away; once the
		// cap is crossed nothing else can be finalized within it.
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	// Neighbors already exposes undirected edges in both directions.
	arcs, _ := r.g.Neighbors(u)

	var newDist float64
	for _, a := range arcs {
		newDist = r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only: avoids duplicate pushes on ties.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		if r.pred != nil {
			r.pred[a.To] = u
		}
		heap.Push(&r.pq, nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem is one (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: outdated entries remain in the heap and
// are ignored when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
