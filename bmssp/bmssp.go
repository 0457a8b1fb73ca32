package bmssp

import (
	"fmt"
	"math"

	"github.com/BakdaurenNarbayev/BMSSP/core"
)

// solver carries the per-call state shared by every recursion level.
type solver struct {
	g        *core.Graph
	n        int
	k        int // pivot relaxation rounds
	t        int // level width: pull size 2^((l-1)t), budget k·2^(lt)
	dist     []float64
	complete []bool
}

// BMSSP computes shortest distances from the source set to every vertex
// of g. Distances strictly below the bound (see WithBound, default
// +Inf) are exact and equal to Dijkstra's; vertices at or beyond the
// bound, like unreachable ones, come back as +Inf.
//
// Edge weights must be non-negative; violations yield ErrNegativeWeight
// before any traversal.
func BMSSP(g *core.Graph, sources []int, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, src := range sources {
		if src < 0 || src >= n {
			return nil, fmt.Errorf("source %d of %d vertices: %w", src, n, ErrSourceOutOfRange)
		}
	}
	if cfg.Bound < 0 || math.IsNaN(cfg.Bound) {
		return nil, fmt.Errorf("bound %g: %w", cfg.Bound, ErrBadBound)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %d→%d weight=%g: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
		}
	}

	s := &solver{
		g:        g,
		n:        n,
		dist:     make([]float64, n),
		complete: make([]bool, n),
	}
	for v := range s.dist {
		s.dist[v] = math.Inf(1)
	}
	src := dedupe(sources)
	for _, x := range src {
		s.dist[x] = 0
	}

	s.k, s.t = deriveParams(n, cfg)
	depth := topLevel(n, s.t)
	s.solve(depth, cfg.Bound, src)

	out := make([]float64, n)
	for v := range out {
		if s.dist[v] < cfg.Bound {
			out[v] = s.dist[v]
		} else {
			out[v] = math.Inf(1)
		}
	}

	return out, nil
}

// solve resolves exact distances below bound for the frontier src,
// recursing through level-1 sub-frontiers pulled from the partial-order
// queue. It returns the bound actually achieved (== bound unless the
// level budget ran out first) and the vertices finalized here.
func (s *solver) solve(level int, bound float64, src []int) (float64, []int) {
	if level <= 0 {
		return s.baseCase(bound, src)
	}

	pivots, reached := s.findPivots(bound, src)

	q := newDQueue(s.pullWidth(level), bound)
	for _, p := range pivots {
		if !s.complete[p] {
			q.Insert(p, s.dist[p])
		}
	}

	budget := s.budget(level)
	var done []int
	lastSub := bound

	for len(done) < budget && !q.Empty() {
		sub, frontier := q.Pull()

		// The sub-solve finalizes strictly below its bound. Ties between
		// the pulled maximum and the separator would strand the boundary
		// vertices, so nudge the bound one ulp past them.
		subBound := sub
		for _, x := range frontier {
			if s.dist[x] >= subBound {
				subBound = math.Nextafter(s.dist[x], math.Inf(1))
			}
		}
		if subBound > bound {
			subBound = bound
		}

		achieved, settled := s.solve(level-1, subBound, frontier)
		done = append(done, settled...)
		lastSub = achieved

		// Relax out of the freshly settled set. Equal-distance hits are
		// re-queued too: they are frontier vertices the sub-solve
		// discovered but had no budget to finish.
		var batch []pair
		for _, u := range settled {
			du := s.dist[u]
			arcs, _ := s.g.Neighbors(u)
			for _, a := range arcs {
				if s.complete[a.To] {
					continue
				}
				nd := du + a.Weight
				if nd > s.dist[a.To] || nd >= bound {
					continue
				}
				s.dist[a.To] = nd
				if nd < sub {
					batch = append(batch, pair{key: a.To, val: nd})
				} else {
					q.Insert(a.To, nd)
				}
			}
		}
		// Frontier vertices the sub-solve left open go back in front.
		for _, x := range frontier {
			if !s.complete[x] && s.dist[x] < subBound {
				batch = append(batch, pair{key: x, val: s.dist[x]})
			}
		}
		q.BatchPrepend(batch)
	}

	achieved := lastSub
	if q.Empty() {
		achieved = bound
	}

	// Everything reached within k hops whose distance cleared the
	// achieved bound is exact.
	for _, v := range reached {
		if !s.complete[v] && s.dist[v] < achieved {
			s.complete[v] = true
			done = append(done, v)
		}
	}

	return achieved, done
}

// pullWidth returns the queue pull size 2^((level-1)·t), clamped to n.
func (s *solver) pullWidth(level int) int {
	shift := (level - 1) * s.t
	if shift < 0 {
		shift = 0
	}
	if shift > 30 || 1<<shift > s.n {
		return s.n
	}

	return 1 << shift
}

// budget returns the finalization budget k·2^(level·t); anything above
// n is uncapped in effect, so clamp to n+1.
func (s *solver) budget(level int) int {
	shift := level * s.t
	if shift > 30 {
		return s.n + 1
	}
	b := s.k << shift
	if b > s.n || b < 0 {
		return s.n + 1
	}

	return b
}

// deriveParams picks k = ⌊log^{1/3} n⌋ and t = ⌊log^{2/3} n⌋ unless
// overridden, with a floor of 1.
func deriveParams(n int, cfg Options) (k, t int) {
	logn := math.Log2(float64(n))
	if n <= 1 {
		logn = 0
	}

	k = cfg.PivotRounds
	if k <= 0 {
		k = int(math.Cbrt(logn))
	}
	if k < 1 {
		k = 1
	}

	t = cfg.LevelWidth
	if t <= 0 {
		t = int(math.Pow(logn, 2.0/3.0))
	}
	if t < 1 {
		t = 1
	}

	return k, t
}

// topLevel is the recursion depth ⌈log n / t⌉ with a floor of 1, so the
// top-level budget k·2^(depth·t) covers the whole graph.
func topLevel(n, t int) int {
	if n <= 1 {
		return 1
	}
	depth := int(math.Ceil(math.Log2(float64(n)) / float64(t)))
	if depth < 1 {
		depth = 1
	}

	return depth
}

// dedupe drops repeated source ids, keeping first-seen order.
func dedupe(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}

	return out
}
