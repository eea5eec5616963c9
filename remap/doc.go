// Package remap resolves integers through a chain of named interval-mapping
// stages, the way an almanac turns a seed number into a location number.
//
// What
//
//   - Rule: `destination_start source_start length`. A value v with
//     SourceStart <= v <= SourceStart+Length maps to
//     DestinationStart + (v - SourceStart). The upper bound is inclusive.
//   - Stage: a named, ordered rule list plus the name of the next stage.
//     The first covering rule wins; a value no rule covers passes through.
//   - StageGraph: immutable set of stages forming a linear chain from a start
//     stage ("seed") to a terminal name ("location"). The terminal is detected
//     by name; it never needs its own stage.
//
// Operations
//
//	g, _ := remap.NewStageGraph(stages...)
//	loc, err := g.Resolve(79, remap.DefaultStart)                 // one value
//	locs, err := g.ResolveAll(seeds, remap.DefaultStart,
//	    remap.WithWorkers(8))                                      // bounded fan-out
//	ivs, err := g.ResolveIntervals(ranges, remap.DefaultStart)    // whole ranges
//	err = g.Validate(remap.DefaultStart, remap.DefaultTerminal)   // acyclic, reaches terminal
//
// Resolve walks at most StageCount()+1 hops; a longer walk can only be a
// cycle and fails with ErrCyclicChain instead of looping forever.
//
// Input shape (Parse)
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Errors
//
//   - ErrUnknownStage     a non-terminal stage name has no definition.
//   - ErrDuplicateStage   two stages share a name.
//   - ErrEmptyStageName   a stage or its successor is unnamed.
//   - ErrCyclicChain      the chain revisits a stage.
//   - ErrNoTerminal       the chain ends before the terminal name; an undefined
//     successor also matches ErrUnknownStage.
//   - ErrMalformedHeader, ErrMalformedRule, ErrMalformedSeeds for bad input.
//   - ErrOptionViolation  for invalid options.
//
// Complexity: Resolve is O(S·R) for S stages of R rules; ResolveIntervals is
// O(S·R·P) for P live pieces.
package remap
