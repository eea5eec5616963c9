package walker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for walker operations.
var (
	// ErrEmptyInstructions is returned for a zero-length instruction sequence.
	ErrEmptyInstructions = errors.New("walker: instruction sequence is empty")

	// ErrBadInstruction is returned for a symbol other than 'L' or 'R'.
	ErrBadInstruction = errors.New("walker: invalid instruction")

	// ErrMalformedNode is returned when a node line cannot be parsed.
	ErrMalformedNode = errors.New("walker: malformed node")

	// ErrDuplicateNode is returned when a node id is declared twice.
	ErrDuplicateNode = errors.New("walker: duplicate node")

	// ErrUnknownNode is returned when an id is referenced but not declared.
	ErrUnknownNode = errors.New("walker: unknown node")

	// ErrNoStartNodes is returned when no node satisfies the start predicate.
	ErrNoStartNodes = errors.New("walker: no start nodes")

	// ErrNoTerminal is returned when a walk exceeds its step limit.
	ErrNoTerminal = errors.New("walker: terminal not reached")

	// ErrNotPeriodic is returned by the period check when a walk does not
	// revisit a terminal after the same number of steps again.
	ErrNotPeriodic = errors.New("walker: walk is not periodic")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walker: invalid option supplied")
)

// Direction is one instruction symbol.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Label returns the core.Graph edge label for d.
func (d Direction) Label() string { return string(rune(d)) }

// Instructions is a non-empty instruction sequence consumed cyclically.
type Instructions []Direction

// ParseInstructions reads a string over {L, R}.
func ParseInstructions(s string) (Instructions, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInstructions
	}
	in := make(Instructions, len(s))
	for i := 0; i < len(s); i++ {
		switch d := Direction(s[i]); d {
		case Left, Right:
			in[i] = d
		default:
			return nil, fmt.Errorf("%w: %q at %d", ErrBadInstruction, s[i], i)
		}
	}

	return in, nil
}

// At returns the n-th applied instruction (0-based), wrapping around.
func (in Instructions) At(n int64) Direction {
	return in[n%int64(len(in))]
}

func (in Instructions) String() string {
	b := make([]byte, len(in))
	for i, d := range in {
		b[i] = byte(d)
	}

	return string(b)
}

// Node is one network entry: id = (left, right).
type Node struct {
	ID    string
	Left  string
	Right string
}

// Predicate selects node ids.
type Predicate func(id string) bool

// Equals matches exactly id.
func Equals(id string) Predicate {
	return func(s string) bool { return s == id }
}

// HasSuffix matches ids ending in suffix.
func HasSuffix(suffix string) Predicate {
	return func(s string) bool { return strings.HasSuffix(s, suffix) }
}

// Option configures walks via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks for StepsToTerminal and SynchronizedSteps.
type Options struct {
	// Ctx allows cancellation; checked every 1024 steps.
	Ctx context.Context

	// MaxSteps bounds a single walk. Zero derives the bound from the state
	// space: len(instructions)·len(nodes).
	MaxSteps int64

	// PeriodCheck verifies the LCM precondition for every walk.
	PeriodCheck bool

	// OnStep is called after each move of the walk that started at start.
	// It may run concurrently for different walks.
	OnStep func(start string, step int64, from, to string)

	// Workers bounds concurrent walks in SynchronizedSteps.
	Workers int

	err error
}

// DefaultOptions returns Options with a background context, a derived step
// limit, no period check, a no-op hook and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnStep:  func(string, int64, string, string) {},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds a single walk.
//
//	n > 0: at most n steps
//	n == 0: derived limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithPeriodCheck enables the per-walk LCM precondition check.
func WithPeriodCheck() Option {
	return func(o *Options) { o.PeriodCheck = true }
}

// WithOnStep registers a hook run after every move.
func WithOnStep(fn func(start string, step int64, from, to string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithWorkers bounds concurrent walks; n < 0 is ErrOptionViolation, 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
