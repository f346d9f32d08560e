package puzzle

import (
	"fmt"

	"github.com/katalvlaran/informed/space"
)

var (
	_ space.Space[Board]     = Space{}
	_ space.Validator[Board] = Space{}
)

// Space is the move generator for N×N boards.
type Space struct {
	N int
}

// NewSpace returns the space of size×size boards.
func NewSpace(size int) (Space, error) {
	if size < 2 || size > MaxSize {
		return Space{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	return Space{N: size}, nil
}

// Validate rejects boards of another size and zero Boards.
func (s Space) Validate(b Board) error {
	if b.IsZero() || b.size != s.N || len(b.tiles) != s.N*s.N {
		return fmt.Errorf("%w: board of size %d in a %d×%d space", ErrBadTiles, b.size, s.N, s.N)
	}
	return nil
}

// Successors slides the blank up, right, down and left, skipping moves off
// the board. Every move costs 1.
func (s Space) Successors(b Board) ([]space.Successor[Board], error) {
	if err := s.Validate(b); err != nil {
		return nil, err
	}
	n := s.N
	blank := b.Blank()
	r, c := blank/n, blank%n
	out := make([]space.Successor[Board], 0, 4)
	if r > 0 {
		out = append(out, space.Successor[Board]{State: b.swap(blank, blank-n), Cost: 1, Action: "up"})
	}
	if c < n-1 {
		out = append(out, space.Successor[Board]{State: b.swap(blank, blank+1), Cost: 1, Action: "right"})
	}
	if r < n-1 {
		out = append(out, space.Successor[Board]{State: b.swap(blank, blank+n), Cost: 1, Action: "down"})
	}
	if c > 0 {
		out = append(out, space.Successor[Board]{State: b.swap(blank, blank-1), Cost: 1, Action: "left"})
	}

	return out, nil
}
