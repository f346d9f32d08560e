package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/informed/space"
)

// MaxSize is the largest supported side length; tiles are stored in one byte.
const MaxSize = 15

var (
	// ErrBadSize indicates an unsupported puzzle side length.
	ErrBadSize = errors.New("puzzle: size must be between 2 and 15")
	// ErrBadTiles indicates a tile list that is not a permutation of 0..N²-1.
	ErrBadTiles = fmt.Errorf("%w: puzzle: tiles must be a permutation of 0..N²-1", space.ErrInvalidState)
)

// Board is an immutable, comparable puzzle position.
type Board struct {
	size  int
	tiles string // one byte per cell, row-major
}

// NewBoard validates tiles as a permutation of 0..size²-1 and builds a Board.
func NewBoard(size int, tiles []int) (Board, error) {
	if size < 2 || size > MaxSize {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	if len(tiles) != n {
		return Board{}, fmt.Errorf("%w: want %d tiles, got %d", ErrBadTiles, n, len(tiles))
	}
	seen := make([]bool, n)
	buf := make([]byte, n)
	for i, t := range tiles {
		if t < 0 || t >= n {
			return Board{}, fmt.Errorf("%w: tile %d out of range", ErrBadTiles, t)
		}
		if seen[t] {
			return Board{}, fmt.Errorf("%w: duplicate tile %d", ErrBadTiles, t)
		}
		seen[t] = true
		buf[i] = byte(t)
	}

	return Board{size: size, tiles: string(buf)}, nil
}

// Parse reads whitespace-separated integers such as "1 2 3 4 5 6 7 8 0".
func Parse(size int, s string) (Board, error) {
	fields := strings.Fields(s)
	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q is not a number", ErrBadTiles, f)
		}
		tiles[i] = v
	}
	return NewBoard(size, tiles)
}

// Solved returns the canonical goal 1, 2, …, N²-1, 0.
func Solved(size int) (Board, error) {
	if size < 2 || size > MaxSize {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	return NewBoard(size, tiles)
}

// Size returns N.
func (b Board) Size() int { return b.size }

// Tiles returns a copy of the tiles in row-major order.
func (b Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	for i := 0; i < len(b.tiles); i++ {
		out[i] = int(b.tiles[i])
	}
	return out
}

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int { return int(b.tiles[r*b.size+c]) }

// Blank returns the row-major index of the blank.
func (b Board) Blank() int { return strings.IndexByte(b.tiles, 0) }

// IsZero reports whether b is the zero Board.
func (b Board) IsZero() bool { return b.size == 0 }

// String renders the tiles as space-separated integers on one line.
func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < len(b.tiles); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(b.tiles[i])))
	}
	return sb.String()
}

// swap returns a copy of b with cells i and j exchanged.
func (b Board) swap(i, j int) Board {
	buf := []byte(b.tiles)
	buf[i], buf[j] = buf[j], buf[i]
	return Board{size: b.size, tiles: string(buf)}
}
