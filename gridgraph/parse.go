package gridgraph

import (
	"fmt"
	"strings"
)

// Map symbols understood by Parse.
const (
	SymbolFree  = '.'
	SymbolWall  = '#'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// Parse builds a GridGraph from a textual map, one string per row.
// '.' is free, '#' is a wall, 'S' and 'G' mark the start and goal cells
// (both free). Spaces between symbols are ignored, so "S . #" equals "S.#".
// Returns ErrBadSymbol, ErrMarker or any NewGridGraph error.
func Parse(rows []string, opts GridOptions) (*GridGraph, Cell, Cell, error) {
	var (
		start, goal   Cell
		nStart, nGoal int
	)
	values := make([][]int, 0, len(rows))
	for y, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		row := make([]int, 0, len(line))
		for x, r := range line {
			switch r {
			case SymbolFree:
				row = append(row, 0)
			case SymbolWall:
				row = append(row, opts.WallThreshold)
			case SymbolStart:
				start, nStart = Cell{x, y}, nStart+1
				row = append(row, 0)
			case SymbolGoal:
				goal, nGoal = Cell{x, y}, nGoal+1
				row = append(row, 0)
			default:
				return nil, Cell{}, Cell{}, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, r, x, y)
			}
		}
		values = append(values, row)
	}
	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, Cell{}, Cell{}, err
	}
	if nStart != 1 || nGoal != 1 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: found %d S and %d G", ErrMarker, nStart, nGoal)
	}

	return gg, start, goal, nil
}

// FromWalls builds a width×height grid with walls at the given cells.
// Cells outside the grid are rejected with ErrOutOfBounds.
func FromWalls(width, height int, walls []Cell, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
	}
	for _, w := range walls {
		if w.X < 0 || w.X >= width || w.Y < 0 || w.Y >= height {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, w)
		}
		values[w.Y][w.X] = opts.WallThreshold
	}

	return NewGridGraph(values, opts)
}
