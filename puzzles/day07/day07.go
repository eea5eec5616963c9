// Package day07 ranks Camel Cards hands and totals their winnings.
//
// Hands order first by category, then card by card from the left. Card
// strength and category order come from the lookup tables below. Under the
// joker rules 'J' is the weakest card and joins the largest other group.
package day07

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	Label1 = "Winnings of all hands"
	Label2 = "Winnings of all hands with jokers"
)

// ErrMalformedHand is returned for a line that is not "CARDS BID" with five
// known cards.
var ErrMalformedHand = errors.New("day07: malformed hand")

// Category is a hand type.
type Category string

const (
	HighCard     Category = "high card"
	OnePair      Category = "one pair"
	TwoPair      Category = "two pair"
	ThreeOfAKind Category = "three of a kind"
	FullHouse    Category = "full house"
	FourOfAKind  Category = "four of a kind"
	FiveOfAKind  Category = "five of a kind"
)

var categoryRank = map[Category]int{
	HighCard:     1,
	OnePair:      2,
	TwoPair:      3,
	ThreeOfAKind: 4,
	FullHouse:    5,
	FourOfAKind:  6,
	FiveOfAKind:  7,
}

// Rules is a card strength table plus whether 'J' is wild.
type Rules struct {
	Strength map[byte]int
	Jokers   bool
}

var (
	// Standard ranks 2 low through A high with J between T and Q.
	Standard = Rules{Strength: map[byte]int{
		'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
		'T': 10, 'J': 11, 'Q': 12, 'K': 13, 'A': 14,
	}}

	// Wild ranks J below 2 and lets it join the largest group.
	Wild = Rules{Strength: map[byte]int{
		'J': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
		'T': 10, 'Q': 12, 'K': 13, 'A': 14,
	}, Jokers: true}
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   int64
}

// Category classifies the hand under rules.
func (rs Rules) Category(cards string) Category {
	counts := make(map[byte]int, len(cards))
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if rs.Jokers && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && second == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && second == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders a before b when it is the weaker hand.
func (rs Rules) Compare(a, b string) int {
	if c := cmp.Compare(categoryRank[rs.Category(a)], categoryRank[rs.Category(b)]); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(rs.Strength[a[i]], rs.Strength[b[i]]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// ParseHand reads "32T3K 765". Cards must all appear in rs.Strength.
func (rs Rules) ParseHand(line string) (Hand, error) {
	f := strings.Fields(line)
	if len(f) != 2 || len(f[0]) != 5 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedHand, line)
	}
	for i := 0; i < len(f[0]); i++ {
		if _, ok := rs.Strength[f[0][i]]; !ok {
			return Hand{}, fmt.Errorf("%w: card %q in %q", ErrMalformedHand, f[0][i], f[0])
		}
	}
	bid, err := strconv.ParseInt(f[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid %q", ErrMalformedHand, f[1])
	}

	return Hand{Cards: f[0], Bid: bid}, nil
}

// Winnings sorts hands weakest first and sums rank·bid.
func (rs Rules) Winnings(ctx context.Context, lines []string) (int64, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := rs.ParseHand(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	slices.SortStableFunc(hands, func(a, b Hand) int { return rs.Compare(a.Cards, b.Cards) })

	var total int64
	for i, h := range hands {
		total += int64(i+1) * h.Bid
	}

	return total, nil
}

// Part1 totals winnings under the standard rules.
func Part1(ctx context.Context, lines []string) (int64, error) { return Standard.Winnings(ctx, lines) }

// Part2 totals winnings with jokers wild.
func Part2(ctx context.Context, lines []string) (int64, error) { return Wild.Winnings(ctx, lines) }
