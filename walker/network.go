package walker

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// Network is an immutable left/right node graph. Safe for concurrent use.
type Network struct {
	g *core.Graph
}

// NewNetwork builds a Network from nodes. Ids must be unique and every
// left/right reference must name a declared node.
func NewNetwork(nodes []Node) (*Network, error) {
	declared := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrMalformedNode)
		}
		if _, dup := declared[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		declared[n.ID] = struct{}{}
	}

	g := core.NewGraph(core.WithLoops())
	for _, n := range nodes {
		for _, ref := range [...]string{n.Left, n.Right} {
			if _, ok := declared[ref]; !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrUnknownNode, ref, n.ID)
			}
		}
		if err := g.AddEdge(n.ID, n.Left, Left.Label()); err != nil {
			return nil, fmt.Errorf("walker: add %q: %w", n.ID, err)
		}
		if err := g.AddEdge(n.ID, n.Right, Right.Label()); err != nil {
			return nil, fmt.Errorf("walker: add %q: %w", n.ID, err)
		}
	}

	return &Network{g: g}, nil
}

// Next returns the node reached from id by d.
func (n *Network) Next(id string, d Direction) (string, error) {
	to, err := n.g.Follow(id, d.Label())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownNode, err)
	}

	return to, nil
}

// Has reports whether id is declared.
func (n *Network) Has(id string) bool { return n.g.HasVertex(id) }

// IDs returns all node ids sorted ascending.
func (n *Network) IDs() []string { return n.g.Vertices() }

// Len returns the number of nodes.
func (n *Network) Len() int { return n.g.VertexCount() }

// StartNodes returns the sorted ids matching pred.
func (n *Network) StartNodes(pred Predicate) []string {
	var ids []string
	for _, id := range n.g.Vertices() {
		if pred(id) {
			ids = append(ids, id)
		}
	}

	return ids
}
