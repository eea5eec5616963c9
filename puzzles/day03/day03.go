// Package day03 reads part numbers off an engine schematic.
//
// A part number is a run of digits adjacent, diagonals included, to any
// symbol other than '.'. A gear is a '*' adjacent to exactly two part
// numbers; its ratio is their product.
package day03

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

const (
	Label1 = "The sum of part numbers"
	Label2 = "The sum of gear ratios"
)

// ErrMalformedSchematic is returned for a digit run that does not fit an int64.
var ErrMalformedSchematic = errors.New("day03: malformed schematic")

// Number is a digit run on one row, columns [Start, End].
type Number struct {
	Row, Start, End int
	Value           int64
}

// Schematic is the grid as given; rows may differ in length.
type Schematic []string

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

// at returns the byte at (r, c) or '.' outside the grid.
func (s Schematic) at(r, c int) byte {
	if r < 0 || r >= len(s) || c < 0 || c >= len(s[r]) {
		return '.'
	}

	return s[r][c]
}

// Numbers lists every digit run in reading order.
func (s Schematic) Numbers() ([]Number, error) {
	var out []Number
	for r, row := range s {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			start := c
			for c < len(row) && isDigit(row[c]) {
				c++
			}
			v, err := strconv.ParseInt(row[start:c], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %w", ErrMalformedSchematic, r+1, start+1, err)
			}
			out = append(out, Number{Row: r, Start: start, End: c - 1, Value: v})
		}
	}

	return out, nil
}

// adjacent reports whether (r, c) touches n.
func (n Number) adjacent(r, c int) bool {
	return r >= n.Row-1 && r <= n.Row+1 && c >= n.Start-1 && c <= n.End+1
}

// IsPart reports whether n touches any symbol.
func (s Schematic) IsPart(n Number) bool {
	for r := n.Row - 1; r <= n.Row+1; r++ {
		for c := n.Start - 1; c <= n.End+1; c++ {
			if isSymbol(s.at(r, c)) {
				return true
			}
		}
	}

	return false
}

// Part1 sums every part number once.
func Part1(ctx context.Context, lines []string) (int64, error) {
	s := Schematic(lines)
	nums, err := s.Numbers()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range nums {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if s.IsPart(n) {
			total += n.Value
		}
	}

	return total, nil
}

// Part2 sums the ratios of all gears.
func Part2(ctx context.Context, lines []string) (int64, error) {
	s := Schematic(lines)
	nums, err := s.Numbers()
	if err != nil {
		return 0, err
	}
	var total int64
	for r, row := range s {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for c := 0; c < len(row); c++ {
			if row[c] != '*' {
				continue
			}
			var touching []int64
			for _, n := range nums {
				if n.adjacent(r, c) {
					touching = append(touching, n.Value)
				}
			}
			if len(touching) == 2 {
				total += touching[0] * touching[1]
			}
		}
	}

	return total, nil
}
