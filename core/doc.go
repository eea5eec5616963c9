// Package core provides a small, thread-safe, directed graph whose out-edges
// are addressed by label.
//
// Every vertex owns at most one out-edge per label, so a walk is a sequence
// of (vertex, label) lookups:
//
//	g := core.NewGraph(core.WithLoops())
//	_ = g.AddEdge("AAA", "BBB", "L")
//	_ = g.AddEdge("AAA", "CCC", "R")
//	next, _ := g.Follow("AAA", "R") // "CCC"
//
// The same structure models a left/right node network and a linear chain of
// named stages linked by a "next" label.
//
// Determinism
//
//	Vertices(), OutEdges() and NeighborIDs() return sorted results, so every
//	algorithm built on top of core enumerates in a reproducible order.
//
// Concurrency
//
//	A single sync.RWMutex guards vertices and adjacency. Graphs are usually
//	built once and then only read; concurrent readers never contend.
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrEmptyLabel     - zero-length edge label
//	ErrVertexNotFound - missing vertex
//	ErrEdgeNotFound   - vertex has no out-edge with the requested label
//	ErrLoopNotAllowed - self-loop when loops are disabled
//	ErrLabelTaken     - second out-edge with the same label from one vertex
package core
