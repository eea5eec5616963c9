package remap

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Resolve carries value from start through successive stages until the
// terminal name (DefaultTerminal unless WithTerminal) is reached.
//
// Returns ErrUnknownStage when a non-terminal stage is undefined and
// ErrCyclicChain when more hops than stages are needed.
func (g *StageGraph) Resolve(value int64, start string, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	return g.resolve(value, start, o)
}

func (g *StageGraph) resolve(value int64, start string, o Options) (int64, error) {
	cur := start
	for hops := 0; cur != o.Terminal; hops++ {
		if hops > len(g.stages) {
			return 0, fmt.Errorf("%w: no %q after %d hops from %q", ErrCyclicChain, o.Terminal, hops, start)
		}
		s, ok := g.stages[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownStage, cur)
		}
		value = s.Apply(value)
		cur = s.Next
		o.OnStage(cur, value)
	}

	return value, nil
}

// ResolveAll resolves every value independently and returns the results in
// input order. At most Options.Workers resolutions run at once; the first
// error cancels the rest.
func (g *StageGraph) ResolveAll(values []int64, start string, opts ...Option) ([]int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(values))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, v := range values {
		i, v := i, v
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.resolve(v, start, o)
			if err != nil {
				return fmt.Errorf("remap: value %d: %w", v, err)
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
