package remap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var headerRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

// Almanac is a parsed seed list plus its stage chain.
type Almanac struct {
	Seeds  []int64
	Stages *StageGraph
}

// Parse reads an almanac: a seeds line followed by blank-line separated map
// blocks. Leading and trailing whitespace on every line is ignored.
func Parse(lines []string) (*Almanac, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no input", ErrMalformedSeeds)
	}
	seeds, err := ParseSeeds(lines[0])
	if err != nil {
		return nil, err
	}
	stages, err := ParseStages(lines[1:])
	if err != nil {
		return nil, err
	}

	return &Almanac{Seeds: seeds, Stages: stages}, nil
}

// ParseSeeds reads "seeds: 79 14 55 13". The "seeds:" prefix is optional.
func ParseSeeds(line string) ([]int64, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimPrefix(line, "seeds:"))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no seeds in %q", ErrMalformedSeeds, line)
	}
	seeds := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSeeds, f)
		}
		seeds = append(seeds, n)
	}

	return seeds, nil
}

// SeedIntervals reads seeds as (start, length) pairs. Empty pairs are dropped.
func SeedIntervals(seeds []int64) ([]Interval, error) {
	if len(seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of values (%d) for ranges", ErrMalformedSeeds, len(seeds))
	}
	ivs := make([]Interval, 0, len(seeds)/2)
	for i := 0; i < len(seeds); i += 2 {
		if seeds[i+1] == 0 {
			continue
		}
		ivs = append(ivs, Interval{Lo: seeds[i], Hi: seeds[i] + seeds[i+1] - 1})
	}

	return ivs, nil
}

// ParseStages reads "<src>-to-<dst> map:" blocks followed by
// "destination_start source_start length" lines into a StageGraph.
func ParseStages(lines []string) (*StageGraph, error) {
	var (
		stages []Stage
		cur    *Stage
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.HasSuffix(line, "map:"):
			m := headerRx.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, i+1, line)
			}
			stages = append(stages, Stage{Name: m[1], Next: m[2]})
			cur = &stages[len(stages)-1]
		default:
			if cur == nil {
				return nil, fmt.Errorf("%w: line %d: rule outside a map block", ErrMalformedRule, i+1)
			}
			r, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			cur.Rules = append(cur.Rules, r)
		}
	}

	return NewStageGraph(stages...)
}

func parseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, fmt.Errorf("%w: want 3 fields, got %d in %q", ErrMalformedRule, len(fields), line)
	}
	var nums [3]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil || n < 0 {
			return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, f)
		}
		nums[i] = n
	}

	return Rule{DestinationStart: nums[0], SourceStart: nums[1], Length: nums[2]}, nil
}
