// Package day08 navigates the desert network.
package day08

import (
	"context"

	"github.com/katalvlaran/aoc2023/walker"
)

const (
	Label1 = "Steps to go from AAA to ZZZ"
	Label2 = "Steps until every ..A walk stands on a ..Z node"
)

// Solver is the shared shape of both parts.
type Solver = func(ctx context.Context, lines []string) (int64, error)

func withContext(ctx context.Context, opts []walker.Option) []walker.Option {
	return append([]walker.Option{walker.WithContext(ctx)}, opts...)
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(opts ...walker.Option) Solver {
	return func(ctx context.Context, lines []string) (int64, error) {
		in, net, err := walker.Parse(lines)
		if err != nil {
			return 0, err
		}

		return walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"), withContext(ctx, opts)...)
	}
}

// Part2 walks from every node ending in A at once and returns the first step
// at which all of them stand on nodes ending in Z.
func Part2(opts ...walker.Option) Solver {
	return func(ctx context.Context, lines []string) (int64, error) {
		in, net, err := walker.Parse(lines)
		if err != nil {
			return 0, err
		}

		return walker.SynchronizedSteps(net, in, walker.HasSuffix("A"), walker.HasSuffix("Z"), withContext(ctx, opts)...)
	}
}
