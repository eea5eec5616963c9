package remap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dfs"
)

// nextLabel labels the stage→successor edge in the validation graph.
const nextLabel = "next"

// StageGraph is an immutable mapping from stage name to Stage.
// It is safe for concurrent use.
type StageGraph struct {
	stages map[string]Stage
	names  []string // declaration order
}

// NewStageGraph copies stages into a new StageGraph. Stage names must be
// unique and every stage must name a successor.
func NewStageGraph(stages ...Stage) (*StageGraph, error) {
	g := &StageGraph{
		stages: make(map[string]Stage, len(stages)),
		names:  make([]string, 0, len(stages)),
	}
	for _, s := range stages {
		if s.Name == "" || s.Next == "" {
			return nil, fmt.Errorf("%w: %q-to-%q", ErrEmptyStageName, s.Name, s.Next)
		}
		if _, dup := g.stages[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, s.Name)
		}
		g.stages[s.Name] = Stage{
			Name:  s.Name,
			Next:  s.Next,
			Rules: append([]Rule(nil), s.Rules...),
		}
		g.names = append(g.names, s.Name)
	}

	return g, nil
}

// Stage returns a copy of the named stage.
func (g *StageGraph) Stage(name string) (Stage, bool) {
	s, ok := g.stages[name]
	if !ok {
		return Stage{}, false
	}
	s.Rules = append([]Rule(nil), s.Rules...)

	return s, true
}

// StageCount returns the number of defined stages.
func (g *StageGraph) StageCount() int { return len(g.stages) }

// Names returns stage names in declaration order.
func (g *StageGraph) Names() []string { return append([]string(nil), g.names...) }

// Validate checks that the chain starting at start is acyclic and reaches
// terminal. It returns ErrUnknownStage for an undefined start, ErrCyclicChain
// for any cycle among the stages, and ErrNoTerminal if terminal is unreachable.
// When the chain runs into a successor that is neither defined nor terminal,
// the error matches both ErrUnknownStage and ErrNoTerminal.
func (g *StageGraph) Validate(start, terminal string) error {
	if start == terminal {
		return nil
	}
	if _, ok := g.stages[start]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStage, start)
	}

	cg := core.NewGraph(core.WithLoops())
	for _, name := range g.names {
		s := g.stages[name]
		if err := cg.AddEdge(s.Name, s.Next, nextLabel); err != nil {
			return fmt.Errorf("remap: build chain graph: %w", err)
		}
	}
	if _, err := dfs.TopologicalSort(cg); err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return fmt.Errorf("%w: %v", ErrCyclicChain, err)
		}
		return err
	}
	ok, err := dfs.Reachable(cg, start, terminal)
	if err != nil {
		return err
	}
	if !ok {
		if missing, found := g.firstUndefined(start); found {
			return fmt.Errorf("%w: %q named by the chain from %q (%w: %q)",
				ErrUnknownStage, missing, start, ErrNoTerminal, terminal)
		}
		return fmt.Errorf("%w: %q from %q", ErrNoTerminal, terminal, start)
	}

	return nil
}

// firstUndefined follows Next from start and returns the first successor that
// is not a defined stage. The chain must be acyclic.
func (g *StageGraph) firstUndefined(start string) (string, bool) {
	cur := start
	for hops := 0; hops <= len(g.stages); hops++ {
		s, ok := g.stages[cur]
		if !ok {
			return cur, true
		}
		cur = s.Next
	}

	return "", false
}
