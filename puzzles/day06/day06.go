// Package day06 counts the ways to win boat races.
//
// Holding the button for h of a race's T milliseconds travels h·(T-h); a race
// is won by strictly beating its record distance D. The winning holds form a
// contiguous range symmetric around T/2, found from the roots of
// h² - T·h + D = 0 and corrected with exact integer checks.
package day06

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	Label1 = "Product of numbers of ways to win races"
	Label2 = "Number of ways to win the single long race"
)

// ErrMalformedRaces is returned when the Time and Distance lines are
// missing or disagree in length.
var ErrMalformedRaces = errors.New("day06: malformed races")

// Race is one race's duration and record distance.
type Race struct {
	Time, Record int64
}

// Ways returns how many integer holds beat the record.
func (r Race) Ways() int64 {
	t, d := r.Time, r.Record
	disc := t*t - 4*d
	if t < 0 || disc < 0 {
		return 0
	}
	beats := func(h int64) bool { return h*(t-h) > d }

	lo := int64(math.Floor((float64(t) - math.Sqrt(float64(disc))) / 2))
	lo = max(lo, 0)
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= t/2 && !beats(lo) {
		lo++
	}
	if lo > t/2 {
		return 0
	}

	return t - 2*lo + 1
}

func field(line, name string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), name+":")
	if !ok {
		return "", fmt.Errorf("%w: want %q line, got %q", ErrMalformedRaces, name, line)
	}

	return rest, nil
}

func ints(s string) ([]int64, error) {
	f := strings.Fields(s)
	out := make([]int64, len(f))
	for i, x := range f {
		v, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRaces, err)
		}
		out[i] = v
	}

	return out, nil
}

// ParseRaces reads the Time and Distance lines. With kerning, the spaces
// between digits are ignored and a single race results.
func ParseRaces(lines []string, kerning bool) ([]Race, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need Time and Distance lines", ErrMalformedRaces)
	}
	ts, err := field(lines[0], "Time")
	if err != nil {
		return nil, err
	}
	ds, err := field(lines[1], "Distance")
	if err != nil {
		return nil, err
	}
	if kerning {
		ts = strings.Join(strings.Fields(ts), "")
		ds = strings.Join(strings.Fields(ds), "")
	}
	times, err := ints(ts)
	if err != nil {
		return nil, err
	}
	dists, err := ints(ds)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) || len(times) == 0 {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrMalformedRaces, len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}

	return races, nil
}

func product(ctx context.Context, lines []string, kerning bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	races, err := ParseRaces(lines, kerning)
	if err != nil {
		return 0, err
	}
	p := int64(1)
	for _, r := range races {
		p *= r.Ways()
	}

	return p, nil
}

// Part1 multiplies the winning counts of every race.
func Part1(ctx context.Context, lines []string) (int64, error) { return product(ctx, lines, false) }

// Part2 counts the ways to win the one race read with kerning.
func Part2(ctx context.Context, lines []string) (int64, error) { return product(ctx, lines, true) }
