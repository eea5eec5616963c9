// Package day01 recovers calibration values from lines of text.
//
// A calibration value is the first digit times ten plus the last digit of a
// line. Part 2 also accepts digits spelled out as words, which may overlap
// ("eightwo" yields 8 then 2). A line with no digit contributes 0.
package day01

import (
	"context"
	"strings"
)

const (
	Label1 = "The sum of calibration values"
	Label2 = "The sum of calibration values with spelled digits"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i], if any.
func digitAt(line string, i int, spelled bool) (int64, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int64(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return int64(n + 1), true
		}
	}

	return 0, false
}

// Calibration returns the calibration value of line.
func Calibration(line string, spelled bool) int64 {
	var first, last int64
	found := false
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}

	return first*10 + last
}

func sum(ctx context.Context, lines []string, spelled bool) (int64, error) {
	var total int64
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		total += Calibration(line, spelled)
	}

	return total, nil
}

// Part1 sums calibration values using numeric digits only.
func Part1(ctx context.Context, lines []string) (int64, error) { return sum(ctx, lines, false) }

// Part2 sums calibration values counting spelled digits too.
func Part2(ctx context.Context, lines []string) (int64, error) { return sum(ctx, lines, true) }
