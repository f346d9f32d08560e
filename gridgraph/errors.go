package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/informed/space"
)

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadSymbol indicates an unknown character in a textual map.
	ErrBadSymbol = errors.New("gridgraph: unknown map symbol")
	// ErrMarker indicates a textual map without exactly one S and one G.
	ErrMarker = errors.New("gridgraph: map needs exactly one S and one G")
	// ErrBadDiagonalCost indicates a DiagonalCost below zero.
	ErrBadDiagonalCost = errors.New("gridgraph: diagonal cost must be non-negative")

	// ErrOutOfBounds indicates a cell outside the grid. It wraps space.ErrInvalidState.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", space.ErrInvalidState)
	// ErrWall indicates a cell that is an obstacle. It wraps space.ErrInvalidState.
	ErrWall = fmt.Errorf("%w: cell is an obstacle", space.ErrInvalidState)
)
