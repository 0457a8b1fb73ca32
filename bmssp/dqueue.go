package bmssp

import (
	"math"
	"sort"
)

// pair is one frontier entry: a vertex and its tentative distance.
type pair struct {
	key int
	val float64
}

// pairLess orders by value, breaking ties on the vertex id so that
// selection is deterministic for a given insertion history.
func pairLess(a, b pair) bool {
	if a.val != b.val {
		return a.val < b.val
	}

	return a.key < b.key
}

// dblock is one bucket of at most ~m entries. For prepend buckets upper
// is unused; for insert buckets upper is the exclusive value bound that
// routes insertions.
type dblock struct {
	upper float64
	items []pair
}

// dqueue is the partial-order frontier structure. It supports
// decrease-key Insert, BatchPrepend of a batch known to be smaller than
// the current content, and Pull of the m smallest entries together with
// the smallest value left behind (the next sub-bound).
//
// Entries live in two bucket sequences:
//
//   - d0 holds batch-prepended buckets, front first; every bucket's
//     values are no larger than the values of the buckets behind it.
//   - d1 holds inserted entries partitioned by exclusive upper bounds in
//     ascending order; the last bucket's bound is the queue bound.
//
// Superseded entries (decrease-key, removal) are invalidated lazily via
// the best map and dropped when a bucket is next touched.
type dqueue struct {
	m     int
	bound float64
	d0    []*dblock
	d1    []*dblock
	best  map[int]float64
}

func newDQueue(m int, bound float64) *dqueue {
	if m < 1 {
		m = 1
	}

	return &dqueue{
		m:     m,
		bound: bound,
		d1:    []*dblock{{upper: bound}},
		best:  map[int]float64{},
	}
}

// Empty reports whether no live entries remain.
func (d *dqueue) Empty() bool { return len(d.best) == 0 }

// Len returns the number of live entries.
func (d *dqueue) Len() int { return len(d.best) }

// Insert adds (key, val) or lowers the key's value. Values at or above
// the queue bound, and values no better than the existing one, are
// ignored.
func (d *dqueue) Insert(key int, val float64) {
	if val >= d.bound {
		return
	}
	if old, ok := d.best[key]; ok && old <= val {
		return
	}
	d.best[key] = val

	// Route to the first insert bucket whose bound exceeds val; the
	// sentinel bucket with upper == bound always matches.
	at := sort.Search(len(d.d1), func(i int) bool { return d.d1[i].upper > val })
	if at == len(d.d1) {
		at = len(d.d1) - 1
	}
	blk := d.d1[at]
	blk.items = append(blk.items, pair{key, val})

	if len(blk.items) > d.m {
		d.compact(blk)
		if len(blk.items) > d.m {
			d.splitInsertBucket(at)
		}
	}
}

// BatchPrepend adds a batch of entries whose values are smaller than
// everything currently pullable. The batch is carved into value-ordered
// buckets and placed in front.
func (d *dqueue) BatchPrepend(batch []pair) {
	kept := make([]pair, 0, len(batch))
	for _, p := range batch {
		if p.val >= d.bound {
			continue
		}
		if old, ok := d.best[p.key]; ok && old <= p.val {
			continue
		}
		d.best[p.key] = p.val
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return
	}

	d.d0 = append(carveBuckets(kept, d.m), d.d0...)
}

// Pull removes the m smallest live entries (all of them when fewer
// remain) and returns them with the smallest value still queued, or the
// queue bound when the pull drained it.
func (d *dqueue) Pull() (float64, []int) {
	cand := d.gather()
	if len(cand) == 0 {
		return d.bound, nil
	}

	take := len(cand)
	if take > d.m {
		take = d.m
		partialSelect(cand, take)
	}

	keys := make([]int, take)
	for i := 0; i < take; i++ {
		keys[i] = cand[i].key
		delete(d.best, cand[i].key)
	}

	return d.minLive(), keys
}

// gather collects whole front buckets from both sequences until each
// has yielded at least m live entries or ran out. Bucket-level value
// ordering guarantees the union contains the m smallest live entries.
func (d *dqueue) gather() []pair {
	var cand []pair
	seen := map[int]bool{}

	sweep := func(buckets []*dblock) []*dblock {
		kept := buckets[:0]
		got := 0
		for i, blk := range buckets {
			if got >= d.m {
				kept = append(kept, buckets[i:]...)
				break
			}
			live := blk.items[:0]
			for _, p := range blk.items {
				if v, ok := d.best[p.key]; !ok || v != p.val || seen[p.key] {
					continue
				}
				seen[p.key] = true
				live = append(live, p)
			}
			blk.items = live
			if len(live) == 0 {
				continue
			}
			cand = append(cand, live...)
			got += len(live)
			kept = append(kept, blk)
		}

		return kept
	}

	d.d0 = sweep(d.d0)

	// The sentinel insert bucket is never dropped.
	sentinel := d.d1[len(d.d1)-1]
	d.d1 = sweep(d.d1)
	if len(d.d1) == 0 || d.d1[len(d.d1)-1] != sentinel {
		d.d1 = append(d.d1, sentinel)
	}

	return cand
}

// minLive scans the first bucket of each sequence that still holds a
// live entry and returns the smaller minimum, or the bound when drained.
func (d *dqueue) minLive() float64 {
	min := d.bound

	scan := func(buckets []*dblock) {
		for _, blk := range buckets {
			found := false
			for _, p := range blk.items {
				if v, ok := d.best[p.key]; !ok || v != p.val {
					continue
				}
				found = true
				if p.val < min {
					min = p.val
				}
			}
			if found {
				return
			}
		}
	}

	scan(d.d0)
	scan(d.d1)
	if min > d.bound {
		min = d.bound
	}

	return min
}

// compact drops superseded entries from a bucket in place.
func (d *dqueue) compact(blk *dblock) {
	live := blk.items[:0]
	for _, p := range blk.items {
		if v, ok := d.best[p.key]; ok && v == p.val {
			live = append(live, p)
		}
	}
	blk.items = live
}

// splitInsertBucket halves an oversized insert bucket around its median
// value. A bucket of indistinguishable values is left oversized.
func (d *dqueue) splitInsertBucket(at int) {
	blk := d.d1[at]
	half := len(blk.items) / 2
	partialSelect(blk.items, half)

	pivot := blk.items[half].val
	if pivot == blk.items[0].val || pivot >= blk.upper {
		return
	}

	left := &dblock{upper: pivot, items: append([]pair(nil), blk.items[:half]...)}
	// Equal-to-pivot entries from the left half stay with the right
	// bucket so the left bound remains exclusive.
	rest := blk.items[half:]
	for i := 0; i < len(left.items); {
		if left.items[i].val >= pivot {
			rest = append(rest, left.items[i])
			left.items[i] = left.items[len(left.items)-1]
			left.items = left.items[:len(left.items)-1]
			continue
		}
		i++
	}
	blk.items = rest

	d.d1 = append(d.d1, nil)
	copy(d.d1[at+1:], d.d1[at:])
	d.d1[at] = left
}

// carveBuckets splits a batch into value-ordered buckets of at most m
// entries by recursive median partitioning.
func carveBuckets(ps []pair, m int) []*dblock {
	if len(ps) <= m {
		sort.Slice(ps, func(i, j int) bool { return pairLess(ps[i], ps[j]) })

		return []*dblock{{upper: math.Inf(1), items: ps}}
	}

	half := len(ps) / 2
	partialSelect(ps, half)

	return append(carveBuckets(ps[:half], m), carveBuckets(ps[half:], m)...)
}

// partialSelect reorders ps so that ps[:m] holds the m smallest entries
// (unordered) and ps[m] is the (m+1)-th smallest. Deterministic
// middle-element quickselect.
func partialSelect(ps []pair, m int) {
	if m <= 0 || m >= len(ps) {
		return
	}
	lo, hi := 0, len(ps)-1
	for lo < hi {
		p := partition(ps, lo, hi)
		switch {
		case p < m:
			lo = p + 1
		case p > m:
			hi = p - 1
		default:
			return
		}
	}
}

// partition is a Lomuto partition around the middle element.
func partition(ps []pair, lo, hi int) int {
	mid := lo + (hi-lo)/2
	ps[mid], ps[hi] = ps[hi], ps[mid]
	pivot := ps[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if pairLess(ps[j], pivot) {
			ps[i], ps[j] = ps[j], ps[i]
			i++
		}
	}
	ps[i], ps[hi] = ps[hi], ps[i]

	return i
}
