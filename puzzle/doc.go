// Package puzzle models the N×N sliding-tile puzzle (the 8-puzzle for N = 3)
// as a space.Space over comparable Board values.
//
// A Board is a permutation of 0..N²-1 in row-major order, 0 being the blank.
// Successors slide the blank up, right, down or left (in that order) at unit
// cost, labelled with the direction the blank moved.
//
// Heuristics:
//
//   - Manhattan: sum of tile distances to their goal cells, blank excluded.
//     Admissible and consistent.
//   - Misplaced: number of tiles off their goal cell, blank excluded. Admissible.
//
// Solvable tells, without searching, whether a goal is reachable at all:
// half of all permutations are not, and IDA* would otherwise explore the whole
// reachable half before reporting space.ErrNotFound.
//
// Errors:
//
//   - ErrBadSize: N < 2 or N > MaxSize.
//   - ErrBadTiles: wrong tile count, duplicates, out-of-range or non-numeric tiles.
//     Wraps space.ErrInvalidState.
package puzzle
