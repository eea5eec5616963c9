package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/input"
)

func TestCalibration(t *testing.T) {
	cases := []struct {
		line    string
		spelled bool
		want    int64
	}{
		{"abc3edf5xzy", false, 35},
		{"1abc3edf5xzy2", false, 12},
		{"abcdef", false, 0},
		{"abc5def", false, 55},
		{"ncbfctqlsnfive1brqpthree4", false, 14},
		{"ncbfctqlsnfive1brqpthree4", true, 54},
		{"eightwo", true, 82},
		{"oneight", true, 18},
		{"", true, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Calibration(tc.line, tc.spelled), "%q spelled=%v", tc.line, tc.spelled)
	}
}

func TestExamples(t *testing.T) {
	lines, err := input.ReadLines("testdata/example1.txt")
	require.NoError(t, err)
	got, err := Part1(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(142), got)

	lines, err = input.ReadLines("testdata/example2.txt")
	require.NoError(t, err)
	got, err = Part2(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(281), got)
}
