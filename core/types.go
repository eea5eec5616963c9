package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyLabel indicates that the provided edge label is empty.
	ErrEmptyLabel = errors.New("core: edge label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the vertex has no out-edge with the given label.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrLabelTaken indicates the source vertex already has an out-edge with that label.
	ErrLabelTaken = errors.New("core: label already used by another out-edge")
)

// Edge is a directed, labelled connection From→To.
type Edge struct {
	From  string
	To    string
	Label string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph with at most one out-edge per (vertex, label).
//
// mu guards vertices, out and edgeCount.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices  map[string]struct{}
	out       map[string]map[string]string // from → label → to
	edgeCount int
}

// NewGraph creates an empty Graph. Loops are rejected unless WithLoops is given.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
