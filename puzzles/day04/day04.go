// Package day04 scores scratchcards.
package day04

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Label1 = "The sum of card points"
	Label2 = "The total number of scratchcards"
)

// ErrMalformedCard is returned for a line that is not "Card N: wins | haves".
var ErrMalformedCard = errors.New("day04: malformed card")

// Card holds the winning numbers and the numbers on hand.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts numbers on hand that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = struct{}{}
	}
	m := 0
	for _, n := range c.Have {
		if _, ok := win[n]; ok {
			m++
		}
	}

	return m
}

// Points is 2^(m-1) for m matches, 0 without matches.
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}

	return 1 << (m - 1)
}

func parseInts(s string) ([]int, error) {
	f := strings.Fields(s)
	out := make([]int, len(f))
	for i, x := range f {
		n, err := strconv.Atoi(x)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// ParseCard reads "Card 1: 41 48 | 83 86 6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, line)
	}
	f := strings.Fields(head)
	if len(f) != 2 || f[0] != "Card" {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, head)
	}
	id, err := strconv.Atoi(f[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: id %q", ErrMalformedCard, f[1])
	}
	winStr, haveStr, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' in %q", ErrMalformedCard, line)
	}
	win, err := parseInts(winStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrMalformedCard, err)
	}
	have, err := parseInts(haveStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrMalformedCard, err)
	}

	return Card{ID: id, Winning: win, Have: have}, nil
}

func parseAll(ctx context.Context, lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}

	return cards, nil
}

// Part1 sums card points.
func Part1(ctx context.Context, lines []string) (int64, error) {
	cards, err := parseAll(ctx, lines)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += c.Points()
	}

	return total, nil
}

// Part2 counts cards after each card with m matches wins one copy of each of
// the next m cards. Copies never extend past the last card.
func Part2(ctx context.Context, lines []string) (int64, error) {
	cards, err := parseAll(ctx, lines)
	if err != nil {
		return 0, err
	}
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return total, nil
}
