package astar

import "github.com/katalvlaran/informed/space"

// entry is one frontier slot. The node it holds is never modified; a cheaper
// path to the same state is pushed as a new entry and the old one is dropped
// lazily when popped.
type entry[S comparable] struct {
	node *space.Node[S]
	seq  uint64 // insertion order
}

// frontier is a min-heap ordered by f, then by the tie-break policy, then by seq.
type frontier[S comparable] struct {
	items []entry[S]
	tie   TieBreak
	seq   uint64
}

func (q *frontier[S]) Len() int { return len(q.items) }

func (q *frontier[S]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if fa, fb := a.node.F(), b.node.F(); fa != fb {
		return fa < fb
	}
	switch q.tie {
	case TieHighG:
		if ga, gb := a.node.G(), b.node.G(); ga != gb {
			return ga > gb
		}
	case TieLowG:
		if ga, gb := a.node.G(), b.node.G(); ga != gb {
			return ga < gb
		}
	case TieLIFO:
		return a.seq > b.seq
	}
	return a.seq < b.seq
}

func (q *frontier[S]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push is called by heap.Push; x must be an entry[S].
func (q *frontier[S]) Push(x any) { q.items = append(q.items, x.(entry[S])) }

// Pop is called by heap.Pop.
func (q *frontier[S]) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = entry[S]{}
	q.items = old[:n-1]

	return it
}

// next wraps a node into an entry with the next insertion sequence number.
func (q *frontier[S]) next(n *space.Node[S]) entry[S] {
	q.seq++
	return entry[S]{node: n, seq: q.seq}
}
