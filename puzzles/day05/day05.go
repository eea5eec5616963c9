// Package day05 finds the lowest location for the almanac's seeds.
package day05

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2023/remap"
)

const (
	Label1 = "The smallest location number among seeds"
	Label2 = "The smallest location number among seed ranges"
)

// Solver is the shared shape of both parts.
type Solver = func(ctx context.Context, lines []string) (int64, error)

// load parses and validates the almanac chain from seed to location.
func load(lines []string) (*remap.Almanac, error) {
	a, err := remap.Parse(lines)
	if err != nil {
		return nil, err
	}
	if err := a.Stages.Validate(remap.DefaultStart, remap.DefaultTerminal); err != nil {
		return nil, err
	}

	return a, nil
}

// Part1 resolves every seed to its location and returns the minimum.
// opts are passed to remap.ResolveAll after the call's context.
func Part1(opts ...remap.Option) Solver {
	return func(ctx context.Context, lines []string) (int64, error) {
		a, err := load(lines)
		if err != nil {
			return 0, err
		}
		if len(a.Seeds) == 0 {
			return 0, fmt.Errorf("%w: no seeds", remap.ErrMalformedSeeds)
		}
		locs, err := a.Stages.ResolveAll(a.Seeds, remap.DefaultStart,
			append([]remap.Option{remap.WithContext(ctx)}, opts...)...)
		if err != nil {
			return 0, err
		}

		return slices.Min(locs), nil
	}
}

// Part2 reads the seeds as (start, length) pairs and pushes the resulting
// intervals through the chain, returning the lowest location reached.
func Part2(opts ...remap.Option) Solver {
	return func(ctx context.Context, lines []string) (int64, error) {
		a, err := load(lines)
		if err != nil {
			return 0, err
		}
		ivs, err := remap.SeedIntervals(a.Seeds)
		if err != nil {
			return 0, err
		}
		out, err := a.Stages.ResolveIntervals(ivs, remap.DefaultStart,
			append([]remap.Option{remap.WithContext(ctx)}, opts...)...)
		if err != nil {
			return 0, err
		}
		lo, ok := remap.MinLo(out)
		if !ok {
			return 0, fmt.Errorf("%w: no seed ranges", remap.ErrMalformedSeeds)
		}

		return lo, nil
	}
}
