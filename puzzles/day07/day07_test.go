package day07

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		cards string
		std   Category
		wild  Category
	}{
		{"32T3K", OnePair, OnePair},
		{"T55J5", ThreeOfAKind, FourOfAKind},
		{"KK677", TwoPair, TwoPair},
		{"KTJJT", TwoPair, FourOfAKind},
		{"QQQJA", ThreeOfAKind, FourOfAKind},
		{"JJJJJ", FiveOfAKind, FiveOfAKind},
		{"23332", FullHouse, FullHouse},
		{"2233J", TwoPair, FullHouse},
		{"AAAA2", FourOfAKind, FourOfAKind},
		{"23456", HighCard, HighCard},
		{"2345J", HighCard, OnePair},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.std, Standard.Category(tc.cards), "standard %s", tc.cards)
		assert.Equal(t, tc.wild, Wild.Category(tc.cards), "wild %s", tc.cards)
	}
}

func TestCompare(t *testing.T) {
	assert.Positive(t, Standard.Compare("33332", "2AAAA"), "first card decides a tie")
	assert.Positive(t, Standard.Compare("77888", "77788"))
	assert.Negative(t, Wild.Compare("JKKK2", "QQQQ2"), "J is weakest when wild")
	assert.Positive(t, Standard.Compare("JKKK2", "TKKK2"))
	assert.Zero(t, Standard.Compare("AKQJT", "AKQJT"))
}

func TestParseHand(t *testing.T) {
	h, err := Standard.ParseHand("32T3K 765")
	require.NoError(t, err)
	assert.Equal(t, Hand{Cards: "32T3K", Bid: 765}, h)

	for _, bad := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K x"} {
		_, err := Standard.ParseHand(bad)
		assert.ErrorIs(t, err, ErrMalformedHand, bad)
	}
}

func TestExample(t *testing.T) {
	lines, err := input.ReadLines("testdata/example.txt")
	require.NoError(t, err)

	got, err := Part1(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(6440), got)

	got, err = Part2(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(5905), got)
}
