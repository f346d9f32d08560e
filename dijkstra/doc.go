// Package dijkstra provides Dijkstra's uniform-cost search over any
// space.Space with non-negative step costs.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a single source state to every
//     reachable state in O((V + E) log V) time, where V counts reachable states
//     and E the successors generated from them.
//   - It relies on a min-heap (priority queue) to always settle the next-closest state.
//   - ShortestPath stops as soon as a chosen target is settled and returns a space.Result.
//   - PathTo rebuilds a path from the predecessor map returned by WithReturnPath.
//
// When to use:
//
//   - As the exact oracle for checking the informed engines on small spaces.
//   - When no useful heuristic exists; A* with space.Zero behaves the same way.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large spaces.
//   - InfEdgeThreshold: treats any step with cost ≥ threshold as impassable.
//   - MaxStates: bounds the number of settled states in unbounded implicit spaces.
//
// Error handling (sentinel errors):
//
//   - space.ErrNilSpace:      the space is nil.
//   - space.ErrInvalidState:  the space rejected the source (via space.Validator).
//   - space.ErrNegativeCost:  a negative step cost was generated.
//   - space.ErrNotFound:      ShortestPath could not reach the target.
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadMaxStates: invalid options.
//   - ErrStateLimit:          MaxStates settled states were reached.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(false))
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	dist, prev, err := dijkstra.Dijkstra[string](g, "A", dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["C"])                           // 3
//	fmt.Println(dijkstra.PathTo(prev, "A", "C"))     // [A B C]
package dijkstra
