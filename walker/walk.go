package walker

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ctxCheckMask sets how often (in steps) a walk polls its context.
const ctxCheckMask = 1<<10 - 1

// Walk is the outcome of one walk: Steps until the first terminal node End.
type Walk struct {
	Start string
	End   string
	Steps int64
}

// walker encapsulates the immutable inputs shared by all walks.
type walker struct {
	net      *Network
	in       Instructions
	terminal Predicate
	opts     Options
	limit    int64
}

func newWalker(net *Network, in Instructions, terminal Predicate, o Options) (*walker, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", ErrUnknownNode)
	}
	if len(in) == 0 {
		return nil, ErrEmptyInstructions
	}
	if terminal == nil {
		return nil, fmt.Errorf("%w: nil terminal predicate", ErrOptionViolation)
	}
	limit := o.MaxSteps
	if limit == 0 {
		limit = int64(len(in)) * int64(net.Len())
	}

	return &walker{net: net, in: in, terminal: terminal, opts: o, limit: limit}, nil
}

// StepsToTerminal counts the moves from start until terminal(current) holds.
// It returns 0 when start already satisfies terminal.
func StepsToTerminal(net *Network, start string, in Instructions, terminal Predicate, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	w, err := newWalker(net, in, terminal, o)
	if err != nil {
		return 0, err
	}
	res, err := w.walk(start)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}

// walk runs one walk from start and, if enabled, its period check.
func (w *walker) walk(start string) (Walk, error) {
	if !w.net.Has(start) {
		return Walk{}, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	end, steps, err := w.advance(start, start, 0, w.limit, true)
	if err != nil {
		return Walk{}, err
	}
	res := Walk{Start: start, End: end, Steps: steps}
	if w.opts.PeriodCheck && steps > 0 {
		if err := w.checkPeriod(res); err != nil {
			return Walk{}, err
		}
	}

	return res, nil
}

// advance moves from cur with the instruction cursor at offset. With
// untilTerminal it stops at the first terminal node and fails past limit
// steps; otherwise it makes exactly limit moves.
func (w *walker) advance(start, cur string, offset, limit int64, untilTerminal bool) (string, int64, error) {
	var step int64
	for {
		if untilTerminal && w.terminal(cur) {
			return cur, step, nil
		}
		if step >= limit {
			if untilTerminal {
				return "", 0, fmt.Errorf("%w: %q after %d steps", ErrNoTerminal, start, step)
			}
			return cur, step, nil
		}
		if step&ctxCheckMask == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				return "", 0, err
			}
		}
		next, err := w.net.Next(cur, w.in.At(offset+step))
		if err != nil {
			return "", 0, err
		}
		step++
		w.opts.OnStep(start, offset+step, cur, next)
		cur = next
	}
}

// checkPeriod walks res.Steps further from res.End and requires a terminal
// exactly there, so that arrivals recur at every multiple of res.Steps.
func (w *walker) checkPeriod(res Walk) error {
	again, _, err := w.advance(res.Start, res.End, res.Steps, res.Steps, false)
	if err != nil {
		return err
	}
	if !w.terminal(again) {
		return fmt.Errorf("%w: %q reached %q at %d but %q at %d",
			ErrNotPeriodic, res.Start, res.End, res.Steps, again, 2*res.Steps)
	}

	return nil
}

// WalkAll runs an independent walk from every id in starts, at most
// Options.Workers at a time, and returns results in input order.
func WalkAll(net *Network, starts []string, in Instructions, terminal Predicate, opts ...Option) ([]Walk, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w, err := newWalker(net, in, terminal, o)
	if err != nil {
		return nil, err
	}

	out := make([]Walk, len(starts))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	w.opts.Ctx = ctx
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			res, err := w.walk(start)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SynchronizedSteps returns the first step at which every walk started from a
// node matching start stands on a terminal node, computed as the LCM of each
// walk's first-arrival step count. ErrNoStartNodes is returned when nothing
// matches start, rather than the empty fold's 1.
func SynchronizedSteps(net *Network, in Instructions, start, terminal Predicate, opts ...Option) (int64, error) {
	if net == nil {
		return 0, fmt.Errorf("%w: nil network", ErrUnknownNode)
	}
	if start == nil {
		return 0, fmt.Errorf("%w: nil start predicate", ErrOptionViolation)
	}
	starts := net.StartNodes(start)
	if len(starts) == 0 {
		return 0, ErrNoStartNodes
	}
	walks, err := WalkAll(net, starts, in, terminal, opts...)
	if err != nil {
		return 0, err
	}
	counts := make([]int64, len(walks))
	for i, wk := range walks {
		counts[i] = wk.Steps
	}

	return LCMAll(counts...), nil
}
