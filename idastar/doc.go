// Package idastar implements Iterative-Deepening A* (IDA*) over any space.Space.
//
// IDA* trades time for memory: instead of a frontier it runs a sequence of
// depth-first passes ("contours"), each bounded by an f-threshold.
//
// Algorithm:
//
//  1. threshold = h(start).
//  2. Depth-first from start on an explicit stack; a successor whose
//     f = g + h exceeds threshold is pruned and its f is remembered.
//  3. When the goal is pushed, the path is read straight off the stack.
//  4. If nothing was pruned the space is exhausted: space.ErrNotFound.
//  5. Otherwise threshold = the smallest pruned f, and go to 2.
//
// The stack is a slice of frames, not Go recursion, so deep instances do not
// grow the goroutine stack. A state already on the current path is never
// pushed again (ancestor check), which keeps contours finite on cyclic spaces
// such as the sliding-tile puzzle.
//
// With an admissible heuristic the first goal found is optimal and its cost
// equals the one astar.Search reports, although the two paths may differ.
//
// Options:
//
//   - WithMaxIterations(n): stop with ErrIterationLimit after n contours.
//   - WithMaxDepth(n): cut branches longer than n edges.
//   - WithOnContour(fn), WithOnExpand(fn): progress hooks.
//   - WithLogger(l): Debug records "contour" and "expand".
//
// Complexity:
//
//   - Time:  O(b^d) per contour in the worst case, repeated for every contour.
//   - Space: O(b·d), the current path plus its pending successors.
package idastar
