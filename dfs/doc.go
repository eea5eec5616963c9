// Package dfs implements depth-first algorithms over a directed core.Graph.
//
// What
//
//   - TopologicalSort: linear ordering of all vertices such that every edge
//     u→v puts u before v; fails with ErrCycleDetected on any cycle
//     (self-loops included).
//   - Reachable: whether a target vertex can be reached from a source.
//
// Why
//
//   - A chain of named stages must be acyclic and must reach its terminal
//     before it can be resolved without an unbounded loop. Both checks are a
//     single O(V + E) DFS.
//
// Determinism
//
//	Vertices and neighbors are enumerated in sorted order, so the produced
//	topological order is reproducible.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrCycleDetected      if TopologicalSort meets a back-edge.
//   - ErrStartVertexNotFound if Reachable's source is absent.
//   - ErrNeighborFetch      if neighbor iteration fails.
//   - context errors when the WithCancelContext context is done.
package dfs
