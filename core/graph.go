package core

import (
	"fmt"
	"sort"
)

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]string)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds the edge from→to under label, creating missing endpoints.
// Returns ErrEmptyVertexID, ErrEmptyLabel, ErrLoopNotAllowed, or
// ErrLabelTaken when from already has an out-edge with the same label.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to, label string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if label == "" {
		return ErrEmptyLabel
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.out[from][label]; ok {
		return fmt.Errorf("%w: %q already has %q→%q", ErrLabelTaken, from, label, prev)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from][label] = to
	g.edgeCount++

	return nil
}

// Follow returns the target of the out-edge of id labelled label.
// Returns ErrVertexNotFound if id is unknown and ErrEdgeNotFound if no such edge exists.
// Complexity: O(1)
func (g *Graph) Follow(id, label string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	labels, ok := g.out[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	to, ok := labels[label]
	if !ok {
		return "", fmt.Errorf("%w: %q has no %q edge", ErrEdgeNotFound, id, label)
	}

	return to, nil
}

// OutEdges returns the out-edges of id sorted by label.
// Complexity: O(d·log d)
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	labels, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	edges := make([]Edge, 0, len(labels))
	for label, to := range labels {
		edges = append(edges, Edge{From: id, To: to, Label: label})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Label < edges[j].Label })

	return edges, nil
}

// NeighborIDs returns the unique, sorted targets of id's out-edges.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	labels, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	seen := make(map[string]struct{}, len(labels))
	ids := make([]string, 0, len(labels))
	for _, to := range labels {
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
