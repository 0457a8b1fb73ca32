package bmssp

import "sort"

// tightEdge records the relaxation that last lowered a vertex, used to
// rebuild the tight-edge forest after the rounds finish.
type tightEdge struct {
	parent int
	weight float64
}

// findPivots runs up to k rounds of bounded relaxation from S. It
// returns the pivot set P ⊆ S and the reached set W ⊇ S.
//
// If W outgrows k·|S| the frontier is expanding fast enough that every
// source is kept as a pivot and the rounds stop early. Otherwise pivots
// are the sources whose tight-edge subtree spans at least k vertices:
// any vertex whose shortest path is longer than k hops must descend
// from such a root, while everything else already sits in W with its
// exact distance.
func (s *solver) findPivots(bound float64, src []int) (pivots, reached []int) {
	reached = append(make([]int, 0, len(src)), src...)
	inReached := make(map[int]bool, len(src))
	for _, x := range src {
		inReached[x] = true
	}

	pred := map[int]tightEdge{}
	limit := s.k * len(src)

	for round := 0; round < s.k; round++ {
		improved := false
		// Snapshot: vertices appended during the round join the next one.
		for _, u := range reached {
			du := s.dist[u]
			arcs, _ := s.g.Neighbors(u)
			for _, a := range arcs {
				nd := du + a.Weight
				if nd >= s.dist[a.To] || nd >= bound {
					continue
				}
				s.dist[a.To] = nd
				pred[a.To] = tightEdge{parent: u, weight: a.Weight}
				improved = true
				if !inReached[a.To] {
					inReached[a.To] = true
					reached = append(reached, a.To)
				}
			}
		}
		if len(reached) > limit {
			return append([]int(nil), src...), reached
		}
		if !improved {
			break
		}
	}

	// Count tight-forest descendants per root. Improvements after an
	// edge was recorded can break its tightness; such edges detach.
	size := make(map[int]int, len(src))
	rootOf := make(map[int]int, len(reached))
	for _, v := range reached {
		cur := v
		for steps := 0; steps <= len(reached); steps++ {
			if r, ok := rootOf[cur]; ok {
				cur = r
				break
			}
			pe, ok := pred[cur]
			if !ok || s.dist[pe.parent]+pe.weight != s.dist[cur] {
				break
			}
			cur = pe.parent
		}
		rootOf[v] = cur
		size[cur]++
	}

	inSrc := make(map[int]bool, len(src))
	for _, x := range src {
		inSrc[x] = true
	}
	for root, n := range size {
		if inSrc[root] && n >= s.k {
			pivots = append(pivots, root)
		}
	}
	// Map iteration is unordered; normalize for determinism.
	sort.Ints(pivots)

	return pivots, reached
}
