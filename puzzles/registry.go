// Package puzzles keys solvers by (day, part).
//
// A Registry is safe for concurrent use. Default returns one with every
// implemented day registered; days 5 and 8 receive the Settings' worker,
// step-limit and trace options.
package puzzles

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

const (
	FirstDay = 1
	LastDay  = 25
)

var (
	// ErrDayOutOfRange is returned for a day outside FirstDay..LastDay.
	ErrDayOutOfRange = errors.New("puzzles: day must be a value 1..25")

	// ErrPartOutOfRange is returned for a part other than 1 or 2.
	ErrPartOutOfRange = errors.New("puzzles: part must be 1 or 2")

	// ErrNotImplemented is returned by Lookup for a valid but unregistered key.
	ErrNotImplemented = errors.New("puzzles: not implemented")

	// ErrNilSolver is returned by Register for a Puzzle without Solve.
	ErrNilSolver = errors.New("puzzles: nil solver")
)

// Solver computes one answer from the input lines.
type Solver func(ctx context.Context, lines []string) (int64, error)

// Key identifies a puzzle.
type Key struct {
	Day, Part int
}

func (k Key) String() string { return fmt.Sprintf("day %d part %d", k.Day, k.Part) }

// Validate checks the day and part ranges.
func (k Key) Validate() error {
	if k.Day < FirstDay || k.Day > LastDay {
		return fmt.Errorf("%w: got %d", ErrDayOutOfRange, k.Day)
	}
	if k.Part != 1 && k.Part != 2 {
		return fmt.Errorf("%w: got %d", ErrPartOutOfRange, k.Part)
	}

	return nil
}

// Puzzle is a registered solver with the label printed next to its answer.
type Puzzle struct {
	Key
	Label string
	Solve Solver
}

// Registry maps keys to puzzles.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[Key]Puzzle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[Key]Puzzle)}
}

// Register adds p, replacing any puzzle with the same key.
func (r *Registry) Register(p Puzzle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Solve == nil {
		return fmt.Errorf("%w: %s", ErrNilSolver, p.Key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.Key] = p

	return nil
}

// Lookup validates k and returns its puzzle, or ErrNotImplemented.
func (r *Registry) Lookup(k Key) (Puzzle, error) {
	if err := k.Validate(); err != nil {
		return Puzzle{}, err
	}
	r.mu.RLock()
	p, ok := r.puzzles[k]
	r.mu.RUnlock()
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrNotImplemented, k)
	}

	return p, nil
}

// Execute looks up k and runs its solver on lines.
func (r *Registry) Execute(ctx context.Context, k Key, lines []string) (int64, error) {
	p, err := r.Lookup(k)
	if err != nil {
		return 0, err
	}

	return p.Solve(ctx, lines)
}

// All returns every puzzle ordered by day, then part.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, func(a, b Puzzle) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Part, b.Part)
	})

	return out
}
