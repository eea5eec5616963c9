package remap_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/aoc2023/remap"
)

// buildChain creates depth stages of rules rules each, with disjoint windows.
func buildChain(depth, rules int) *remap.StageGraph {
	stages := make([]remap.Stage, depth)
	for d := 0; d < depth; d++ {
		next := fmt.Sprintf("s%d", d+1)
		if d == depth-1 {
			next = remap.DefaultTerminal
		}
		name := fmt.Sprintf("s%d", d)
		if d == 0 {
			name = remap.DefaultStart
		}
		rs := make([]remap.Rule, rules)
		for r := 0; r < rules; r++ {
			rs[r] = remap.Rule{SourceStart: int64(r * 100), DestinationStart: int64(r*100 + 7), Length: 90}
		}
		stages[d] = remap.Stage{Name: name, Next: next, Rules: rs}
	}
	g, _ := remap.NewStageGraph(stages...)

	return g
}

// BenchmarkResolve measures a single value through a 7-stage chain.
func BenchmarkResolve(b *testing.B) {
	g := buildChain(7, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Resolve(int64(i%4000), remap.DefaultStart)
	}
}

// BenchmarkResolveAll measures bounded fan-out over 1000 seeds.
func BenchmarkResolveAll(b *testing.B) {
	g := buildChain(7, 40)
	seeds := make([]int64, 1000)
	for i := range seeds {
		seeds[i] = int64(i * 3)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ResolveAll(seeds, remap.DefaultStart, remap.WithWorkers(4))
	}
}
