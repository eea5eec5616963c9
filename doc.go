// Package aoc2023 solves Advent of Code 2023 puzzles on top of a small
// graph toolkit.
//
// What is in here?
//
//   - core/    thread-safe directed graph with labelled out-edges
//   - dfs/     three-colour DFS: topological order and reachability
//   - remap/   staged range remapping (day 5), scalars and whole intervals
//   - walker/  instruction-driven graph walks synchronised by LCM (day 8)
//   - puzzles/ one package per day plus a (day, part) solver registry
//   - cmd/aoc  the command line runner
//
// Quick example, the day-8 network as a graph:
//
//	AAA ─L→ BBB ─R→ ZZZ
//	 ↑       │
//	 └───L───┘
//
// With instructions LLR the walk AAA→ZZZ takes 6 steps.
//
//	go run ./cmd/aoc -d 8 -p 1
package aoc2023
