// Package gridgraph treats a 2D grid of cells as a state space for the
// informed search engines.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WallThreshold.
//   - Successors yields passable neighbors (Conn4 or Conn8) with unit
//     orthogonal cost and DiagonalCost for diagonal moves.
//   - Manhattan, Octile and Chebyshev heuristics.
//   - Connected components of passable cells and a Reachable pre-check.
//
// Why:
//
//   - Game maps and robot planning: shortest obstacle-avoiding routes.
//   - A fast "different components" answer before spending an A* run.
//
// Complexity:
//
//   - Successors:          O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Reachable:           O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.WallThreshold: minimum value considered a wall.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.DiagonalCost: cost of diagonal moves under Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds, ErrWall: invalid cells (both wrap space.ErrInvalidState).
//   - ErrBadSymbol, ErrMarker: malformed textual maps.
package gridgraph
