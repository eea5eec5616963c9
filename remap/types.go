package remap

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Well-known stage names of the almanac chain.
const (
	DefaultStart    = "seed"
	DefaultTerminal = "location"
)

// Sentinel errors for remap operations.
var (
	// ErrUnknownStage indicates a stage referenced in the chain is not defined.
	ErrUnknownStage = errors.New("remap: unknown stage")

	// ErrDuplicateStage indicates two stages were declared with the same name.
	ErrDuplicateStage = errors.New("remap: duplicate stage")

	// ErrEmptyStageName indicates a stage or its successor has no name.
	ErrEmptyStageName = errors.New("remap: stage name is empty")

	// ErrCyclicChain indicates the stage chain revisits a stage.
	ErrCyclicChain = errors.New("remap: stage chain is cyclic")

	// ErrNoTerminal indicates the chain cannot reach the terminal stage.
	ErrNoTerminal = errors.New("remap: terminal stage unreachable")

	// ErrMalformedHeader indicates a map header line could not be parsed.
	ErrMalformedHeader = errors.New("remap: malformed map header")

	// ErrMalformedRule indicates a rule line is not three non-negative integers.
	ErrMalformedRule = errors.New("remap: malformed rule")

	// ErrMalformedSeeds indicates the seeds line could not be parsed.
	ErrMalformedSeeds = errors.New("remap: malformed seeds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("remap: invalid option supplied")
)

// Rule maps [SourceStart, SourceStart+Length] onto a range starting at
// DestinationStart by constant offset. Both bounds are inclusive.
type Rule struct {
	SourceStart      int64
	DestinationStart int64
	Length           int64
}

// Covers reports whether v lies inside the rule's inclusive source range.
func (r Rule) Covers(v int64) bool {
	return v >= r.SourceStart && v <= r.SourceStart+r.Length
}

// Map translates v by the rule's offset. v is not checked against Covers.
func (r Rule) Map(v int64) int64 {
	return r.DestinationStart + (v - r.SourceStart)
}

// Stage is a named rule table with a pointer to its successor.
type Stage struct {
	Name  string
	Next  string
	Rules []Rule
}

// Apply maps v through the first covering rule, or returns v unchanged.
func (s Stage) Apply(v int64) int64 {
	for _, r := range s.Rules {
		if r.Covers(v) {
			return r.Map(v)
		}
	}

	return v
}

// Interval is a closed integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int64
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int64 { return iv.Hi - iv.Lo + 1 }

// Option configures resolution via functional arguments.
type Option func(*Options)

// Options holds parameters and hooks for Resolve, ResolveAll and ResolveIntervals.
type Options struct {
	// Ctx allows cancellation of ResolveAll.
	Ctx context.Context

	// Terminal is the stage name at which resolution stops.
	Terminal string

	// OnStage is called after each stage with the entered stage name and
	// the value carried into it.
	OnStage func(stage string, value int64)

	// Workers bounds ResolveAll's concurrency.
	Workers int

	err error
}

// DefaultOptions returns Options with a background context, DefaultTerminal,
// a no-op OnStage hook, and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Terminal: DefaultTerminal,
		OnStage:  func(string, int64) {},
		Workers:  runtime.GOMAXPROCS(0),
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

// WithTerminal overrides the terminal stage name. An empty name is a violation.
func WithTerminal(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: terminal name cannot be empty", ErrOptionViolation)
			return
		}
		o.Terminal = name
	}
}

// WithOnStage registers a hook run after every stage transition.
func WithOnStage(fn func(stage string, value int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// WithWorkers bounds ResolveAll's concurrency.
//
//	n > 0: at most n resolutions in flight
//	n == 0: keep the default (GOMAXPROCS)
//	n < 0: invalid option → ErrOptionViolation
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
