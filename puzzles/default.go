package puzzles

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/aoc2023/puzzles/day01"
	"github.com/katalvlaran/aoc2023/puzzles/day02"
	"github.com/katalvlaran/aoc2023/puzzles/day03"
	"github.com/katalvlaran/aoc2023/puzzles/day04"
	"github.com/katalvlaran/aoc2023/puzzles/day05"
	"github.com/katalvlaran/aoc2023/puzzles/day06"
	"github.com/katalvlaran/aoc2023/puzzles/day07"
	"github.com/katalvlaran/aoc2023/puzzles/day08"
	"github.com/katalvlaran/aoc2023/puzzles/day09"
	"github.com/katalvlaran/aoc2023/remap"
	"github.com/katalvlaran/aoc2023/walker"
)

// Settings tune the solvers that fan out or walk.
type Settings struct {
	// Workers bounds concurrent resolutions and walks; 0 keeps the default.
	Workers int

	// MaxSteps bounds a single walk; 0 derives it from the network.
	MaxSteps int64

	// Logger receives per-stage and per-step traces at debug level.
	Logger *slog.Logger
}

func (s Settings) tracing() bool {
	return s.Logger != nil && s.Logger.Enabled(context.Background(), slog.LevelDebug)
}

func (s Settings) remapOptions() []remap.Option {
	opts := []remap.Option{remap.WithWorkers(s.Workers)}
	if s.tracing() {
		log := s.Logger
		opts = append(opts, remap.WithOnStage(func(stage string, value int64) {
			log.Debug("stage", "stage", stage, "value", value)
		}))
	}

	return opts
}

func (s Settings) walkerOptions() []walker.Option {
	opts := []walker.Option{walker.WithWorkers(s.Workers), walker.WithMaxSteps(s.MaxSteps)}
	if s.tracing() {
		log := s.Logger
		opts = append(opts, walker.WithOnStep(func(start string, step int64, from, to string) {
			log.Debug("step", "start", start, "step", step, "from", from, "to", to)
		}))
	}

	return opts
}

// Default registers every implemented puzzle.
func Default(s Settings) *Registry {
	r := NewRegistry()
	for _, p := range []Puzzle{
		{Key{1, 1}, day01.Label1, day01.Part1},
		{Key{1, 2}, day01.Label2, day01.Part2},
		{Key{2, 1}, day02.Label1, day02.Part1},
		{Key{2, 2}, day02.Label2, day02.Part2},
		{Key{3, 1}, day03.Label1, day03.Part1},
		{Key{3, 2}, day03.Label2, day03.Part2},
		{Key{4, 1}, day04.Label1, day04.Part1},
		{Key{4, 2}, day04.Label2, day04.Part2},
		{Key{5, 1}, day05.Label1, day05.Part1(s.remapOptions()...)},
		{Key{5, 2}, day05.Label2, day05.Part2(s.remapOptions()...)},
		{Key{6, 1}, day06.Label1, day06.Part1},
		{Key{6, 2}, day06.Label2, day06.Part2},
		{Key{7, 1}, day07.Label1, day07.Part1},
		{Key{7, 2}, day07.Label2, day07.Part2},
		{Key{8, 1}, day08.Label1, day08.Part1(s.walkerOptions()...)},
		{Key{8, 2}, day08.Label2, day08.Part2(s.walkerOptions()...)},
		{Key{9, 1}, day09.Label1, day09.Part1},
		{Key{9, 2}, day09.Label2, day09.Part2},
	} {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}

	return r
}
