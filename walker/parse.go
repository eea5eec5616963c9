package walker

import (
	"fmt"
	"regexp"
	"strings"
)

var nodeRx = regexp.MustCompile(`^(\w+)\s*=\s*\(\s*(\w+)\s*,\s*(\w+)\s*\)$`)

// ParseNode reads "AAA = (BBB, CCC)".
func ParseNode(line string) (Node, error) {
	m := nodeRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Node{}, fmt.Errorf("%w: %q", ErrMalformedNode, line)
	}

	return Node{ID: m[1], Left: m[2], Right: m[3]}, nil
}

// Parse reads the instruction line, skips blank lines, and builds the
// Network from the remaining node lines.
func Parse(lines []string) (Instructions, *Network, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyInstructions
	}
	in, err := ParseInstructions(lines[0])
	if err != nil {
		return nil, nil, err
	}
	nodes := make([]Node, 0, len(lines))
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := ParseNode(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		nodes = append(nodes, n)
	}
	net, err := NewNetwork(nodes)
	if err != nil {
		return nil, nil, err
	}

	return in, net, nil
}
