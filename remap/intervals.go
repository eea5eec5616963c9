package remap

import "fmt"

// ApplyIntervals maps whole intervals through the stage. Rules are taken in
// order; each maps the part of every still-unmatched piece it covers and
// leaves the remainder for later rules, so every member value lands exactly
// where Apply would send it. Unmatched pieces pass through unchanged.
func (s Stage) ApplyIntervals(ivs []Interval) []Interval {
	pending := append([]Interval(nil), ivs...)
	mapped := make([]Interval, 0, len(ivs))
	for _, r := range s.Rules {
		lo, hi := r.SourceStart, r.SourceStart+r.Length
		rest := pending[:0:0]
		for _, p := range pending {
			if p.Hi < lo || p.Lo > hi {
				rest = append(rest, p)
				continue
			}
			a, b := max(p.Lo, lo), min(p.Hi, hi)
			mapped = append(mapped, Interval{Lo: r.Map(a), Hi: r.Map(b)})
			if p.Lo < a {
				rest = append(rest, Interval{Lo: p.Lo, Hi: a - 1})
			}
			if p.Hi > b {
				rest = append(rest, Interval{Lo: b + 1, Hi: p.Hi})
			}
		}
		pending = rest
	}

	return append(mapped, pending...)
}

// ResolveIntervals pushes every interval from start to the terminal stage.
// The result covers exactly the images of all member values, split into
// pieces; it is not merged or sorted.
func (g *StageGraph) ResolveIntervals(ivs []Interval, start string, opts ...Option) ([]Interval, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	cur := append([]Interval(nil), ivs...)
	name := start
	for hops := 0; name != o.Terminal; hops++ {
		if hops > len(g.stages) {
			return nil, fmt.Errorf("%w: no %q after %d hops from %q", ErrCyclicChain, o.Terminal, hops, start)
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		s, ok := g.stages[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
		}
		cur = s.ApplyIntervals(cur)
		name = s.Next
	}

	return cur, nil
}

// MinLo returns the smallest lower bound among ivs and false when ivs is empty.
func MinLo(ivs []Interval) (int64, bool) {
	if len(ivs) == 0 {
		return 0, false
	}
	m := ivs[0].Lo
	for _, iv := range ivs[1:] {
		m = min(m, iv.Lo)
	}

	return m, true
}
