// Package core defines the weighted graph value consumed by every
// shortest-path algorithm and produced by the builder and loaders.
//
// What
//
//   - Graph: a directed or undirected weighted graph over dense integer
//     vertex IDs 0..NodeCount-1, stored as an adjacency list.
//   - Arc: one traversable (target, weight) step out of a vertex.
//   - Edge: one stored edge (From, To, Weight); undirected graphs store
//     each edge once but Neighbors exposes both directions.
//
// Why
//
//   - The benchmark measures algorithm time only, so the graph value must
//     be cheap to traverse: integer IDs index straight into slices, and
//     no locking happens on the read path.
//   - Construct-then-read lifecycle: a Graph is built once by
//     builder/graphio, read by any number of trials, then discarded.
//     Mutating a Graph while algorithms traverse it is a caller bug;
//     the type does not guard against it.
//
// Determinism
//
//	Edges and Neighbors preserve insertion order exactly, so two graphs
//	built from the same seeded sequence of AddEdge calls are
//	bit-identical and every algorithm visits arcs in the same order.
//
// Errors (sentinel)
//
//	ErrBadNodeCount     - negative node count passed to NewGraph.
//	ErrVertexOutOfRange - an edge endpoint is outside [0, NodeCount).
//	ErrLoopNotAllowed   - self-loop when loops are disabled (the default).
package core
