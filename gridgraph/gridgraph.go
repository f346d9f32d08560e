// Package gridgraph provides a rectangular obstacle grid as a space.Space
// whose states are Cells. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Textual maps ('.', '#', 'S', 'G') via Parse
//   - Manhattan and octile heuristics
//   - Connected components of passable cells for quick reachability checks
//
// Cells with value < WallThreshold are passable; cells with value ≥ WallThreshold are walls.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/informed/space"
)

var (
	_ space.Space[Cell]     = (*GridGraph)(nil)
	_ space.Validator[Cell] = (*GridGraph)(nil)
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadDiagonalCost for a negative DiagonalCost.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.DiagonalCost < 0 {
		return nil, ErrBadDiagonalCost
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute moves based on connectivity, clockwise from north
	moves := []move{
		{0, -1, 1, "up"},
		{1, 0, 1, "right"},
		{0, 1, 1, "down"},
		{-1, 0, 1, "left"},
	}
	if opts.Conn == Conn8 {
		d := opts.DiagonalCost
		moves = []move{
			{0, -1, 1, "up"},
			{1, -1, d, "up-right"},
			{1, 0, 1, "right"},
			{1, 1, d, "down-right"},
			{0, 1, 1, "down"},
			{-1, 1, d, "down-left"},
			{-1, 0, 1, "left"},
			{-1, -1, d, "up-left"},
		}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		WallThreshold: opts.WallThreshold,
		moves:         moves,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] < gg.WallThreshold
}

// Validate returns ErrOutOfBounds or ErrWall for cells a path cannot occupy.
func (gg *GridGraph) Validate(c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, gg.Width, gg.Height)
	}
	if gg.CellValues[c.Y][c.X] >= gg.WallThreshold {
		return fmt.Errorf("%w: %v", ErrWall, c)
	}
	return nil
}

// Successors returns the passable neighbors of c in clockwise order starting
// north. Diagonal moves are only generated when both orthogonal cells they
// pass between are passable, so paths never cut wall corners.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Successors(c Cell) ([]space.Successor[Cell], error) {
	if !gg.InBounds(c.X, c.Y) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	out := make([]space.Successor[Cell], 0, len(gg.moves))
	for _, m := range gg.moves {
		nx, ny := c.X+m.dx, c.Y+m.dy
		if !gg.Passable(nx, ny) {
			continue
		}
		if m.dx != 0 && m.dy != 0 && (!gg.Passable(c.X+m.dx, c.Y) || !gg.Passable(c.X, c.Y+m.dy)) {
			continue
		}
		out = append(out, space.Successor[Cell]{State: Cell{nx, ny}, Cost: m.cost, Action: m.action})
	}

	return out, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
