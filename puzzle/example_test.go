package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/informed/puzzle"
)

// ExampleSpace_Successors lists the moves from a board whose blank sits on
// the bottom edge.
func ExampleSpace_Successors() {
	sp, _ := puzzle.NewSpace(3)
	b, _ := puzzle.Parse(3, "1 2 3 4 5 6 7 0 8")
	goal, _ := puzzle.Solved(3)

	succ, _ := sp.Successors(b)
	for _, e := range succ {
		fmt.Printf("%-5s %v  h=%g\n", e.Action, e.State, puzzle.Manhattan(e.State, goal))
	}

	// Output:
	// up    1 2 3 4 0 6 7 5 8  h=2
	// right 1 2 3 4 5 6 7 8 0  h=0
	// left  1 2 3 4 5 6 0 7 8  h=2
}
