package idastar_test

import (
	"fmt"

	"github.com/katalvlaran/informed/idastar"
	"github.com/katalvlaran/informed/puzzle"
	"github.com/katalvlaran/informed/space"
)

// ExampleSearch solves an 8-puzzle instance and prints the blank's moves.
func ExampleSearch() {
	sp, _ := puzzle.NewSpace(3)
	goal, _ := puzzle.Solved(3)
	start, _ := puzzle.Parse(3, "1 2 3 4 0 6 7 5 8")

	res, err := idastar.Search[puzzle.Board](sp, start, space.GoalState(goal, puzzle.Manhattan))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("moves:", res.Actions)
	fmt.Println("cost:", res.Cost, "contours:", res.Stats.Iterations)
	// Output:
	// moves: [down right]
	// cost: 2 contours: 1
}

// ExampleWithMaxIterations shows the iteration bound surfacing as its own error.
func ExampleWithMaxIterations() {
	sp, _ := puzzle.NewSpace(3)
	goal, _ := puzzle.Solved(3)
	start, _ := puzzle.Parse(3, "8 6 7 2 5 4 3 0 1")

	res, err := idastar.Search[puzzle.Board](sp, start, space.GoalState(goal, puzzle.Manhattan),
		idastar.WithMaxIterations(1))
	fmt.Println(err)
	fmt.Println("threshold:", res.Stats.Threshold)
	// Output:
	// idastar: iteration limit reached: 1 contours, threshold 23
	// threshold: 21
}
