package bmssp

import "container/heap"

// baseItem is one entry of the base-case frontier heap.
type baseItem struct {
	id   int
	dist float64
}

// basePQ is a min-heap over tentative distance with id tie-break.
type basePQ []baseItem

func (pq basePQ) Len() int { return len(pq) }
func (pq basePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq basePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *basePQ) Push(x any)        { *pq = append(*pq, x.(baseItem)) }
func (pq *basePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// baseCase finalizes vertices below bound by plain heap-ordered
// relaxation from src, stopping after k+|src| finalizations. When the
// cap is hit the largest finalized distance becomes the new sub-bound
// and the vertices sitting on it stay open; the caller re-queues them.
func (s *solver) baseCase(bound float64, src []int) (float64, []int) {
	pq := make(basePQ, 0, len(src))
	for _, x := range src {
		if !s.complete[x] && s.dist[x] < bound {
			pq = append(pq, baseItem{id: x, dist: s.dist[x]})
		}
	}
	heap.Init(&pq)

	limit := s.k + len(src)
	var settled []int
	capped := false

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(baseItem)
		if it.dist > s.dist[it.id] || s.complete[it.id] {
			continue // superseded entry
		}
		if it.dist >= bound {
			break
		}
		settled = append(settled, it.id)
		if len(settled) > limit {
			capped = true
			break
		}

		arcs, _ := s.g.Neighbors(it.id)
		for _, a := range arcs {
			if s.complete[a.To] {
				continue
			}
			nd := it.dist + a.Weight
			if nd >= s.dist[a.To] || nd >= bound {
				continue
			}
			s.dist[a.To] = nd
			heap.Push(&pq, baseItem{id: a.To, dist: nd})
		}
	}

	if !capped {
		for _, v := range settled {
			s.complete[v] = true
		}

		return bound, settled
	}

	// Cap hit: contract the bound to the largest settled distance and
	// keep only strictly smaller vertices finalized.
	sub := s.dist[settled[len(settled)-1]]
	done := settled[:0]
	for _, v := range settled {
		if s.dist[v] < sub {
			s.complete[v] = true
			done = append(done, v)
		}
	}

	return sub, done
}
