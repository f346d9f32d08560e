// Package astar implements A* best-first search over any space.Space.
//
// Overview:
//
//   - Search expands states in order of f = g + h, where g is the exact cost
//     from the start and h the goal's estimate of the remaining cost.
//   - The frontier is a min-heap of immutable space.Node values. A cheaper path
//     to a state is pushed as a new node; superseded entries are discarded when
//     popped ("lazy deletion") instead of being mutated inside the heap.
//   - The explored set maps each state to the g it was expanded with. A state
//     is reopened when a strictly cheaper g reaches it, which keeps the result
//     optimal for admissible but inconsistent heuristics.
//   - Equal-f nodes are ordered by an explicit TieBreak policy and then by
//     insertion sequence, so repeated calls return identical paths.
//
// Heuristic contract:
//
//   - h(s) ≥ 0 is checked; a negative value aborts with space.ErrNegativeHeuristic.
//   - Admissibility (h never overestimates) is NOT checked. With an admissible
//     heuristic the returned path is optimal; otherwise it is merely a valid path.
//
// Options:
//
//   - WithTieBreak(TieHighG|TieLowG|TieFIFO|TieLIFO): equal-f ordering. Default TieHighG.
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n expansions.
//   - WithOnExpand(fn): hook called for every expanded state.
//   - WithLogger(l): Debug record "expand" per expansion.
//
// Errors:
//
//   - space.ErrNotFound: the frontier emptied; the Result still carries Stats.
//   - ErrExpansionLimit: the expansion bound was reached; a path may still exist.
//   - space.ErrNilSpace, space.ErrNilGoal, space.ErrInvalidState: bad input.
//   - space.ErrNegativeCost, space.ErrNegativeHeuristic: contract violations.
//   - ErrOptionViolation: invalid option values.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations in the worst case, E = generated nodes.
//   - Space: O(V + E) for the best-g map, the explored set and the frontier.
//
// Example:
//
//	gg, start, goal, _ := gridgraph.Parse([]string{"S..", "##.", "G.."}, gridgraph.DefaultGridOptions())
//	res, err := astar.Search[gridgraph.Cell](gg, start, space.GoalState(goal, gridgraph.Manhattan))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.Path) // 6 [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
package astar
