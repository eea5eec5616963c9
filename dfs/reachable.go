package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// Reachable reports whether target can be reached from source by following
// out-edges. A vertex always reaches itself. A missing target is simply
// unreachable; a missing source is ErrStartVertexNotFound.
//
// The search is iterative, so long chains do not grow the goroutine stack.
func Reachable(g *core.Graph, source, target string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, source)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visited := map[string]bool{source: true}
	stack := []string{source}
	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return false, o.ctx.Err()
		default:
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true, nil
		}
		neighbors, err := g.NeighborIDs(cur)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				visited[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}

	return false, nil
}
