// Package bmssp implements Bounded Multi-Source Shortest Path: shortest
// distances from a set of source vertices, exact for every vertex whose
// true distance is below a bound B, on non-negative weighted graphs.
//
// Instead of extracting one vertex at a time from a fully ordered
// priority queue, BMSSP recursively partitions the active frontier:
//
//   - FindPivots runs k rounds of bounded relaxation from the current
//     source set S and either detects that the frontier is growing fast
//     (early exit: every vertex of S stays a pivot) or selects as pivots
//     the few roots of the tight-edge forest whose subtrees hold at
//     least k vertices. Finalizing distances through pivots first
//     shrinks the unresolved set by whole subtrees per level rather
//     than by one vertex per heap extraction.
//   - A block-based partial-order queue (dqueue) keeps frontier vertices
//     grouped into value-ordered blocks of at most M entries instead of
//     a totally ordered heap. Pull removes the ≤M smallest entries and
//     returns the smallest remaining value as the sub-bound B' ≤ B for
//     the next recursive call; BatchPrepend pushes a batch of smaller
//     values to the front in O(len·log(len/M)).
//   - Each recursive level solves pulled sub-frontiers under shrinking
//     sub-bounds; the base case is a bounded Dijkstra-style relaxation
//     limited to k+|S| finalizations.
//   - Merging is implicit: relaxations only ever lower a tentative
//     distance, so a vertex reached by several partial solves keeps the
//     minimum, and on ties the earlier (shallower) solve's value stands.
//
// Distances of vertices at or beyond B are reported as +Inf ("exceeds
// bound"); callers needing exact unbounded distances pass B = +Inf.
// For every vertex within bound the result is identical to Dijkstra on
// the same graph, which is the correctness oracle the tests enforce.
//
// Parameters k (pivot relaxation rounds) and t (level width) default to
// ⌊log^{1/3} n⌋ and ⌊log^{2/3} n⌋; the recursion depth is ⌈log n / t⌉.
// Correctness does not depend on these values - every relaxation is
// exact and the bounds only split work - so the options exist mainly
// for tests and tuning.
//
// Complexity target: o((V+E)·log V) on sparse graphs; the partial-order
// queue avoids the per-extraction log factor of a binary heap.
package bmssp
