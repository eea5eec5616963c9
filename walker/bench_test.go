package walker_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/aoc2023/walker"
)

// ringNetwork builds n rings of size size; ring r has start "rA" and
// terminal "rZ" at the far end.
func ringNetwork(n, size int) *walker.Network {
	var nodes []walker.Node
	for r := 0; r < n; r++ {
		id := func(i int) string {
			switch i % size {
			case 0:
				return fmt.Sprintf("%02dA", r)
			case size - 1:
				return fmt.Sprintf("%02dZ", r)
			default:
				return fmt.Sprintf("%02d_%d", r, i%size)
			}
		}
		for i := 0; i < size; i++ {
			nodes = append(nodes, walker.Node{ID: id(i), Left: id(i + 1), Right: id(i + 1)})
		}
	}
	net, _ := walker.NewNetwork(nodes)

	return net
}

// BenchmarkSynchronizedSteps measures six walks over 1000-node rings.
func BenchmarkSynchronizedSteps(b *testing.B) {
	net := ringNetwork(6, 1000)
	in, _ := walker.ParseInstructions("LRLRRL")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walker.SynchronizedSteps(net, in, walker.HasSuffix("A"), walker.HasSuffix("Z"))
	}
}
