package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  options
	state map[string]int
	order []string // post-order
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Returns ErrGraphNil for a nil graph, ErrCycleDetected (wrapped with the
// offending vertex) if a cycle exists, or ErrNeighborFetch on lookup failure.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
