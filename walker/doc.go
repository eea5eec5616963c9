// Package walker follows a repeating left/right instruction sequence through
// a network of labelled nodes, counting steps until a terminal node is met,
// and combines several such walks with a least-common-multiple fold.
//
// What
//
//   - Network: node id → (left, right), stored in a core.Graph with one "L"
//     and one "R" out-edge per node. Immutable after NewNetwork; every
//     reference is checked at build time.
//   - Instructions: a non-empty sequence of Left/Right consumed cyclically;
//     At(n) == At(n+len).
//   - StepsToTerminal: steps from a start node until the terminal predicate
//     holds (0 if the start already satisfies it).
//   - SynchronizedSteps: every node matching the start predicate walks to its
//     first terminal; the counts are folded with LCM starting from 1.
//
// The LCM fold is only exact when each walk keeps hitting a terminal with a
// period equal to its first-arrival count. That holds for the puzzle inputs
// but is not true of arbitrary networks; WithPeriodCheck verifies it per walk
// and fails with ErrNotPeriodic instead of returning a wrong answer.
//
// Guards
//
//	A walk visits (node, instruction index) states; there are
//	len(instructions)·len(nodes) of them. A walk that has not met a terminal
//	after that many steps is in a terminal-free cycle, so the default step
//	limit is exactly that product and exceeding it yields ErrNoTerminal.
//	WithMaxSteps overrides it.
//
// Usage
//
//	in, net, err := walker.Parse(lines)
//	steps, err := walker.StepsToTerminal(net, "AAA", in, walker.Equals("ZZZ"))
//	sync, err := walker.SynchronizedSteps(net, in,
//	    walker.HasSuffix("A"), walker.HasSuffix("Z"),
//	    walker.WithWorkers(4), walker.WithPeriodCheck())
//
// Errors
//
//   - ErrEmptyInstructions, ErrBadInstruction  for the instruction line.
//   - ErrMalformedNode, ErrDuplicateNode        for node lines.
//   - ErrUnknownNode                            unresolved left/right or start id.
//   - ErrNoStartNodes                           start predicate matched nothing.
//   - ErrNoTerminal                             step limit exceeded.
//   - ErrNotPeriodic                            LCM precondition violated.
//   - ErrOptionViolation                        invalid Option.
package walker
