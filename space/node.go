package space

import (
	"fmt"
	"slices"
)

// Node wraps a State with its exact cost g, its estimate h and a link to the
// node it was reached from. A Node is immutable: a cheaper path to the same
// state is represented by a new Node, never by rewriting an existing one.
type Node[S comparable] struct {
	state  S
	g, h   float64
	parent *Node[S]
	action string
	depth  int
}

// Root creates the start node (g = 0, no parent).
func Root[S comparable](state S, h float64) *Node[S] {
	return &Node[S]{state: state, h: h}
}

// Child creates the node reached from n through edge e with estimate h.
// g(child) = g(n) + e.Cost.
func (n *Node[S]) Child(e Successor[S], h float64) *Node[S] {
	return &Node[S]{
		state:  e.State,
		g:      n.g + e.Cost,
		h:      h,
		parent: n,
		action: e.Action,
		depth:  n.depth + 1,
	}
}

// State returns the wrapped state.
func (n *Node[S]) State() S { return n.state }

// G returns the exact cost from the start.
func (n *Node[S]) G() float64 { return n.g }

// H returns the heuristic estimate to the goal.
func (n *Node[S]) H() float64 { return n.h }

// F returns g + h.
func (n *Node[S]) F() float64 { return n.g + n.h }

// Parent returns the predecessor node, nil for the root.
func (n *Node[S]) Parent() *Node[S] { return n.parent }

// Action returns the label of the edge that produced n.
func (n *Node[S]) Action() string { return n.action }

// Depth returns the number of edges between the root and n.
func (n *Node[S]) Depth() int { return n.depth }

// Trace walks parent links back to the root and returns the path
// start→…→n together with the edge actions, in forward order.
func (n *Node[S]) Trace() (Path[S], []string) {
	if n == nil {
		return nil, nil
	}
	path := make(Path[S], 0, n.depth+1)
	actions := make([]string, 0, n.depth)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state)
		if cur.parent != nil {
			actions = append(actions, cur.action)
		}
	}
	slices.Reverse(path)
	slices.Reverse(actions)

	return path, actions
}

// CheckPath verifies that every consecutive pair of path is a successor edge
// of sp and returns the summed cost. When a pair is connected by several
// edges the cheapest one is used. An empty path is rejected with ErrNotFound.
func CheckPath[S comparable](sp Space[S], path Path[S]) (float64, error) {
	if sp == nil {
		return 0, ErrNilSpace
	}
	if len(path) == 0 {
		return 0, ErrNotFound
	}
	var total float64
	for i := 0; i+1 < len(path); i++ {
		succ, err := Expand(sp, path[i])
		if err != nil {
			return 0, err
		}
		best, ok := 0.0, false
		for _, e := range succ {
			if e.State == path[i+1] && (!ok || e.Cost < best) {
				best, ok = e.Cost, true
			}
		}
		if !ok {
			return 0, fmt.Errorf("%w: step %d: %v is not a successor of %v", ErrInvalidState, i, path[i+1], path[i])
		}
		total += best
	}

	return total, nil
}
