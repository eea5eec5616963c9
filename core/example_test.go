package core_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// ExampleGraph builds a tiny left/right network and walks it by label.
func ExampleGraph() {
	g := core.NewGraph(core.WithLoops())
	_ = g.AddEdge("AAA", "BBB", "L")
	_ = g.AddEdge("AAA", "BBB", "R")
	_ = g.AddEdge("BBB", "AAA", "L")
	_ = g.AddEdge("BBB", "ZZZ", "R")
	_ = g.AddEdge("ZZZ", "ZZZ", "L")
	_ = g.AddEdge("ZZZ", "ZZZ", "R")

	cur := "AAA"
	for _, label := range []string{"L", "R"} {
		cur, _ = g.Follow(cur, label)
	}
	fmt.Println(g.Vertices(), cur)
	// Output:
	// [AAA BBB ZZZ] ZZZ
}
