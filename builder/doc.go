// SPDX-License-Identifier: MIT
// Package builder constructs the seeded random graphs the benchmark
// measures on: degree-bounded graphs with a target edge count and
// best-effort connectivity.
//
// Model (DegreeBounded):
//   - A random spanning structure is laid down first: each vertex i>0 is
//     attached to a randomly chosen earlier vertex with spare out-degree.
//     This makes connectivity a best-effort property, not a guarantee -
//     when degree caps leave no eligible parent, the vertex stays
//     detached and generation continues.
//   - Remaining edges up to the target are rejection-sampled: a uniform
//     candidate (u,v) is rejected if u==v, the edge already exists, or
//     either endpoint's degree cap would be exceeded; sampling stops at
//     the target or after a bounded number of attempts, so infeasible
//     targets terminate with fewer edges (recorded in GenStats, never an
//     error).
//   - Edge weights are drawn uniformly from a fixed positive range,
//     default [1,10), via WithWeightRange.
//
// Determinism:
//   - The RNG is threaded explicitly through the builder configuration
//     (WithSeed); there is no global random state. Identical
//     (nodeCount, targetEdges, maxIn, maxOut, directed, seed, range)
//     inputs yield a bit-identical edge sequence, because vertex order,
//     sampling order, and rejection order are all fixed.
//
// Degree caps:
//   - Directed graphs: out-degree of u and in-degree of v are checked per
//     edge u→v. Undirected graphs: an edge u—v is traversable both ways,
//     so it counts against the out-degree and in-degree of both
//     endpoints.
//   - Unbounded (-1) disables a cap.
//
// Errors (sentinel): ErrTooFewVertices, ErrBadEdgeTarget, ErrBadDegreeCap,
// ErrBadWeightRange, ErrNeedRandSource. Constructors never panic.
package builder
