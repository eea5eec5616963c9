// Package day09 extrapolates OASIS sensor histories.
//
// Each history is reduced to successive difference sequences until all zeros.
// The next value is the sum of the last element of every level; the previous
// value alternates the signs of the first elements.
package day09

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Label1 = "The sum of the next values in the histories"
	Label2 = "The sum of the previous values in the histories"
)

// ErrMalformedHistory is returned for an empty or non-numeric history.
var ErrMalformedHistory = errors.New("day09: malformed history")

// ParseHistory reads space separated integers.
func ParseHistory(line string) ([]int64, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedHistory)
	}
	out := make([]int64, len(f))
	for i, x := range f {
		v, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHistory, x)
		}
		out[i] = v
	}

	return out, nil
}

func allZero(xs []int64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}

	return true
}

// Extrapolate returns the value before the first and after the last element.
func Extrapolate(h []int64) (prev, next int64) {
	cur := append([]int64(nil), h...)
	sign := int64(1)
	for len(cur) > 0 && !allZero(cur) {
		next += cur[len(cur)-1]
		prev += sign * cur[0]
		sign = -sign
		for i := 0; i+1 < len(cur); i++ {
			cur[i] = cur[i+1] - cur[i]
		}
		cur = cur[:len(cur)-1]
	}

	return prev, next
}

func sum(ctx context.Context, lines []string, pick func(prev, next int64) int64) (int64, error) {
	var total int64
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseHistory(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += pick(Extrapolate(h))
	}

	return total, nil
}

// Part1 sums the extrapolated next values.
func Part1(ctx context.Context, lines []string) (int64, error) {
	return sum(ctx, lines, func(_, next int64) int64 { return next })
}

// Part2 sums the extrapolated previous values.
func Part2(ctx context.Context, lines []string) (int64, error) {
	return sum(ctx, lines, func(prev, _ int64) int64 { return prev })
}
