package day08

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/walker"
)

func TestExample(t *testing.T) {
	lines, err := input.ReadLines("testdata/example1.txt")
	require.NoError(t, err)
	got, err := Part1()(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)

	lines, err = input.ReadLines("testdata/example2.txt")
	require.NoError(t, err)
	var moves atomic.Int64
	got, err = Part2(walker.WithPeriodCheck(), walker.WithOnStep(func(string, int64, string, string) {
		moves.Add(1)
	}))(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
	assert.Equal(t, int64(2+2+3+3), moves.Load(), "first arrivals plus period checks")
}

func TestErrors(t *testing.T) {
	_, err := Part1()(context.Background(), []string{"LR", "", "BBB = (BBB, BBB)"})
	assert.ErrorIs(t, err, walker.ErrUnknownNode, "no AAA node")

	_, err = Part2()(context.Background(), []string{"LR", "", "BBB = (BBB, BBB)"})
	assert.ErrorIs(t, err, walker.ErrNoStartNodes)

	_, err = Part1()(context.Background(), []string{"", "", "AAA = (AAA, AAA)"})
	assert.ErrorIs(t, err, walker.ErrEmptyInstructions)
}
