package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/aoc2023/internal/answers"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/metrics"
	"github.com/katalvlaran/aoc2023/puzzles"
)

const day5Example = "../../puzzles/day05/testdata/example.txt"

type RunnerSuite struct {
	suite.Suite
	out    bytes.Buffer
	runner *Runner
}

func (s *RunnerSuite) SetupTest() {
	s.out.Reset()
	s.runner = &Runner{
		Registry: puzzles.Default(puzzles.Settings{Workers: 2}),
		Metrics:  metrics.New(),
		Logger:   logging.NewNop(),
		InputDir: s.T().TempDir(),
		Out:      &s.out,
	}
}

func (s *RunnerSuite) TestRunPrintsAnswerLine() {
	require.NoError(s.T(), s.runner.Run(context.Background(), puzzles.Key{Day: 5, Part: 1}, day5Example))
	s.Equal("Part 1: The smallest location number among seeds in "+day5Example+" ==> 35\n", s.out.String())
}

func (s *RunnerSuite) TestRunDefaultPath() {
	path := filepath.Join(s.runner.InputDir, "day9.txt")
	require.NoError(s.T(), os.WriteFile(path, []byte("0 3 6 9 12 15\n"), 0o600))

	require.NoError(s.T(), s.runner.Run(context.Background(), puzzles.Key{Day: 9, Part: 1}, ""))
	s.Equal(FormatAnswer(1, "The sum of the next values in the histories", path, 18)+"\n", s.out.String())
}

func (s *RunnerSuite) TestRunNotDone() {
	require.NoError(s.T(), s.runner.Run(context.Background(), puzzles.Key{Day: 24, Part: 2}, ""))
	s.Equal(NotDone+"\n", s.out.String())
}

func (s *RunnerSuite) TestRunOutOfRange() {
	err := s.runner.Run(context.Background(), puzzles.Key{Day: 26, Part: 1}, "")
	s.ErrorIs(err, puzzles.ErrDayOutOfRange)
	err = s.runner.Run(context.Background(), puzzles.Key{Day: 1, Part: 3}, "")
	s.ErrorIs(err, puzzles.ErrPartOutOfRange)
	s.Empty(s.out.String())
}

func (s *RunnerSuite) TestRunMissingInput() {
	err := s.runner.Run(context.Background(), puzzles.Key{Day: 1, Part: 1}, "")
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *RunnerSuite) TestMetricsRecorded() {
	require.NoError(s.T(), s.runner.Run(context.Background(), puzzles.Key{Day: 5, Part: 2}, day5Example))

	var buf bytes.Buffer
	require.NoError(s.T(), s.runner.Metrics.WriteText(&buf))
	s.Contains(buf.String(), `aoc_runs_total{day="5",outcome="ok",part="2"} 1`)
	n, err := testutil.GatherAndCount(s.runner.Metrics.Registry(), "aoc_runs_total")
	require.NoError(s.T(), err)
	s.Equal(1, n)
}

func (s *RunnerSuite) TestList() {
	require.NoError(s.T(), s.runner.List())
	lines := strings.Split(strings.TrimSpace(s.out.String()), "\n")
	s.Len(lines, 18)
	s.Equal("day  1 part 1  The sum of calibration values", lines[0])
}

func (s *RunnerSuite) TestVerify() {
	book := answers.Book{Answers: []answers.Entry{
		{Day: 5, Part: 1, Input: day5Example, Want: 35},
		{Day: 5, Part: 2, Input: day5Example, Want: 46},
	}}
	require.NoError(s.T(), s.runner.Verify(context.Background(), book))
	s.Equal("ok   day 5 part 1: 35\nok   day 5 part 2: 46\n", s.out.String())

	s.out.Reset()
	book.Answers[1].Want = 47
	book.Answers = append(book.Answers, answers.Entry{Day: 20, Part: 1, Want: 1})
	err := s.runner.Verify(context.Background(), book)
	s.ErrorIs(err, ErrMismatch)
	out := s.out.String()
	s.Contains(out, "FAIL day 5 part 2: got 46, want 47")
	s.Contains(out, "FAIL day 20 part 1: ")
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "Part 2: Steps in inputs/day8.txt ==> 6", FormatAnswer(2, "Steps", "inputs/day8.txt", 6))
}
