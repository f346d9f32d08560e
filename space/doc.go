// Package space defines the state-space abstraction shared by the informed
// search engines of github.com/katalvlaran/informed.
//
// What:
//
//   - Space: successor generation for an opaque, comparable State type.
//   - Heuristic: estimate of the remaining cost from a state to a goal.
//   - Goal: goal test paired with the bound heuristic estimate.
//   - Node: immutable search node (g, h, parent link) with path reconstruction.
//   - CheckPath: verifies that a path is a chain of successor edges.
//
// Contract:
//
//   - Successors must be finite, order-stable and side-effect free.
//   - Step costs are non-negative. Engines reject negative and NaN costs with ErrNegativeCost.
//   - h(state, goal) ≥ 0 and h(goal, goal) = 0.
//
// Heuristic quality is a caller precondition. An admissible heuristic (never
// overestimates) makes A* and IDA* return optimal paths; a consistent one also
// avoids re-expansions. Neither property is verified by the engines: with an
// inadmissible heuristic the engines remain complete but the returned path may
// be longer than the shortest one.
//
// Errors:
//
//   - ErrNotFound: the goal is unreachable from the start state.
//   - ErrInvalidState: a state lies outside the declared space.
//   - ErrNegativeCost: a successor reported a negative or NaN step cost.
//   - ErrNegativeHeuristic: a heuristic returned a negative or NaN estimate.
//   - ErrNilSpace, ErrNilGoal: missing collaborators.
package space
