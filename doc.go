// Package informed is a small toolkit for informed (heuristic) search over
// implicit state spaces: grids, weighted graphs and sliding-tile puzzles.
//
// What is informed?
//
//	One state-space abstraction, two engines that share it:
//		• A*: best-first search with a deterministic tie-break policy
//		• IDA*: iterative deepening on f = g + h, memory linear in depth
//	plus Dijkstra as the h = 0 oracle used to check optimality.
//
// Why use it?
//
//   - Generic over any comparable state type, no interface boxing on hot paths
//   - Reproducible: equal inputs expand states in the same order
//   - Explicit errors: unreachable goals, negative costs and limits are sentinels
//   - Hooks (OnExpand, OnContour) and optional slog logging for tracing a run
//
// Packages:
//
//	space/       — Space, Heuristic, Goal, immutable Node, path reconstruction
//	astar/       — A* engine with lazy-deletion open set and reopening
//	idastar/     — IDA* engine on an explicit frame stack
//	dijkstra/    — uniform-cost search over any Space (reference oracle)
//	gridgraph/   — 4/8-connected obstacle grids, Manhattan/Octile/Chebyshev
//	core/        — thread-safe weighted graph adapted as a Space
//	puzzle/      — N×N sliding-tile puzzle, Manhattan and misplaced tiles
//	cmd/informed — CLI solving YAML/HCL problem files
//
// Quick ASCII example:
//
//	S . # .
//	. . # .
//	. . . G
//
//	A* with Manhattan distance walks around the wall in 5 moves.
//
//	go install github.com/katalvlaran/informed/cmd/informed@latest
package informed
