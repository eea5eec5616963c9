// Package cli runs registered puzzles against input files and prints their
// answers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/aoc2023/internal/answers"
	"github.com/katalvlaran/aoc2023/internal/input"
	"github.com/katalvlaran/aoc2023/internal/metrics"
	"github.com/katalvlaran/aoc2023/puzzles"
)

// NotDone is printed for a valid day and part without a solver.
const NotDone = "Haven't done that one yet 🎅☃️🎄"

// ErrMismatch is returned by Verify when any answer differs or fails.
var ErrMismatch = errors.New("cli: answers do not match")

// Runner ties the registry to inputs, output, logs and metrics.
type Runner struct {
	Registry *puzzles.Registry
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
	InputDir string
	Out      io.Writer
}

// Result is one solved puzzle.
type Result struct {
	Puzzle  puzzles.Puzzle
	Path    string
	Answer  int64
	Elapsed time.Duration
}

// FormatAnswer renders the answer line.
func FormatAnswer(part int, label, path string, answer int64) string {
	return fmt.Sprintf("Part %d: %s in %s ==> %d", part, label, path, answer)
}

// Solve validates k, reads its input (path, or InputDir/dayN.txt when empty)
// and runs the solver. Range errors and puzzles.ErrNotImplemented are
// returned before any input is read.
func (r *Runner) Solve(ctx context.Context, k puzzles.Key, path string) (Result, error) {
	p, err := r.Registry.Lookup(k)
	if err != nil {
		return Result{}, err
	}
	if path == "" {
		path = input.Path(r.InputDir, k.Day)
	}
	lines, err := input.ReadLines(path)
	if err != nil {
		return Result{}, err
	}

	r.Logger.Debug("solving", "day", k.Day, "part", k.Part, "input", path, "lines", len(lines))
	start := time.Now()
	answer, err := p.Solve(ctx, lines)
	elapsed := time.Since(start)
	if r.Metrics != nil {
		r.Metrics.Observe(k.Day, k.Part, elapsed, err)
	}
	if err != nil {
		r.Logger.Error("solve failed", "day", k.Day, "part", k.Part, "error", err)
		return Result{}, fmt.Errorf("%s: %w", k, err)
	}
	r.Logger.Info("solved", "day", k.Day, "part", k.Part, "elapsed", elapsed)

	return Result{Puzzle: p, Path: path, Answer: answer, Elapsed: elapsed}, nil
}

// Run solves k and prints its answer line, or NotDone for an unregistered
// puzzle. Out-of-range keys are errors.
func (r *Runner) Run(ctx context.Context, k puzzles.Key, path string) error {
	res, err := r.Solve(ctx, k, path)
	if errors.Is(err, puzzles.ErrNotImplemented) {
		_, werr := fmt.Fprintln(r.Out, NotDone)
		return werr
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, FormatAnswer(k.Part, res.Puzzle.Label, res.Path, res.Answer))

	return err
}

// List prints every registered puzzle.
func (r *Runner) List() error {
	for _, p := range r.Registry.All() {
		if _, err := fmt.Fprintf(r.Out, "day %2d part %d  %s\n", p.Day, p.Part, p.Label); err != nil {
			return err
		}
	}

	return nil
}

// Verify solves every entry of book and prints one ok or FAIL line each.
// It returns ErrMismatch if any entry failed.
func (r *Runner) Verify(ctx context.Context, book answers.Book) error {
	failed := 0
	for _, e := range book.Answers {
		k := puzzles.Key{Day: e.Day, Part: e.Part}
		res, err := r.Solve(ctx, k, e.Input)
		var line string
		switch {
		case err != nil:
			failed++
			line = fmt.Sprintf("FAIL %s: %v", k, err)
		case res.Answer != e.Want:
			failed++
			line = fmt.Sprintf("FAIL %s: got %d, want %d", k, res.Answer, e.Want)
		default:
			line = fmt.Sprintf("ok   %s: %d", k, res.Answer)
		}
		if _, err := fmt.Fprintln(r.Out, line); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrMismatch, failed, len(book.Answers))
	}

	return nil
}
