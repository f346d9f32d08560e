// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/informed.
package gridgraph

import (
	"fmt"
	"math"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a search state: a grid coordinate. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// GridOptions contains tunable parameters for grid search.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered an obstacle.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalCost is the step cost of a diagonal move under Conn8.
	DiagonalCost float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (values ≥1 are walls), Conn=Conn4, DiagonalCost=√2.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
		DiagonalCost:  math.Sqrt2,
	}
}

// move is one precomputed neighbor offset with its cost and action label.
type move struct {
	dx, dy int
	cost   float64
	action string
}

// GridGraph treats a 2D integer grid as a state space. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	WallThreshold int
	moves         []move
}
