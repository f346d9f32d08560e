package astar_test

import (
	"fmt"

	"github.com/katalvlaran/informed/astar"
	"github.com/katalvlaran/informed/core"
	"github.com/katalvlaran/informed/gridgraph"
	"github.com/katalvlaran/informed/space"
)

// ExampleSearch finds the way around a wall on a 4-connected grid using the
// Manhattan heuristic.
func ExampleSearch() {
	gg, start, goal, _ := gridgraph.Parse([]string{
		"S . .",
		"# # .",
		"G . .",
	}, gridgraph.DefaultGridOptions())

	res, err := astar.Search[gridgraph.Cell](gg, start, space.GoalState(goal, gridgraph.Manhattan))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)
	fmt.Println("actions:", res.Actions)
	// Output:
	// cost: 6
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
	// actions: [right right down down left left]
}

// ExampleSearch_weightedTree shows that A* with h = 0 prefers the cheaper
// two-edge route over the direct edge.
func ExampleSearch_weightedTree() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)

	res, _ := astar.Search[string](g, "A", space.GoalState("B", space.Zero[string]()))
	fmt.Println(res.Path, res.Cost)
	// Output: [A C B] 2
}

// ExampleSearch_notFound shows that a failed search still reports statistics.
func ExampleSearch_notFound() {
	g := core.NewGraph(core.WithDirected(false))
	g.AddEdge("A", "B", 1)
	g.AddEdge("X", "Y", 1)

	res, err := astar.Search[string](g, "A", space.GoalState("Y", space.Zero[string]()))
	fmt.Println(err)
	fmt.Println("expanded:", res.Stats.Expanded)
	// Output:
	// space: no path to goal
	// expanded: 2
}
