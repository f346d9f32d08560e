package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/informed/space"
)

// Dijkstra computes shortest distances from source to every reachable state.
//
// Returns:
//
//   - dist: map from state to minimum distance; unreachable states are absent.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  invalid options, a nil space, an invalid source, a negative cost,
//     a successor error, or ErrStateLimit.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S comparable](sp space.Space[S], source S, opts ...Option) (map[S]float64, map[S]S, error) {
	r, err := newRunner(sp, source, opts)
	if err != nil {
		return nil, nil, err
	}
	if _, err := r.process(nil); err != nil {
		return nil, nil, err
	}
	if !r.options.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath runs Dijkstra from source and stops as soon as goal is settled.
// It returns the path, the per-edge actions and the exact cost, or
// space.ErrNotFound when goal is unreachable within the configured bounds.
func ShortestPath[S comparable](sp space.Space[S], source, goal S, opts ...Option) (space.Result[S], error) {
	r, err := newRunner(sp, source, append(opts, WithReturnPath()))
	if err != nil {
		return space.Result[S]{}, err
	}
	found, err := r.process(func(s S) bool { return s == goal })
	if err != nil {
		return space.Result[S]{Stats: r.stats}, err
	}
	if !found {
		return space.Result[S]{Stats: r.stats}, space.ErrNotFound
	}
	path := PathTo(r.prev, source, goal)
	actions := make([]string, 0, len(path))
	for i := 1; i < len(path); i++ {
		actions = append(actions, r.action[path[i]])
	}

	return space.Result[S]{Path: path, Actions: actions, Cost: r.dist[goal], Stats: r.stats}, nil
}

// PathTo rebuilds source→…→target from a predecessor map. It returns nil when
// target was not reached.
func PathTo[S comparable](prev map[S]S, source, target S) space.Path[S] {
	path := space.Path[S]{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	sp      space.Space[S]
	options Options
	dist    map[S]float64 // best known distance from source
	prev    map[S]S       // predecessor on the shortest path
	action  map[S]string  // action of the edge from prev
	visited map[S]bool    // settled states
	pq      nodePQ[S]     // lazy min-heap
	stats   space.Stats
}

// newRunner validates options and the source, then seeds the heap with source=0.
func newRunner[S comparable](sp space.Space[S], source S, opts []Option) (*runner[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if sp == nil {
		return nil, space.ErrNilSpace
	}
	if v, ok := sp.(space.Validator[S]); ok {
		if err := v.Validate(source); err != nil {
			return nil, fmt.Errorf("source %v: %w", source, err)
		}
	}
	r := &runner[S]{
		sp:      sp,
		options: cfg,
		dist:    map[S]float64{source: 0},
		visited: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
		r.action = make(map[S]string)
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[S]{id: source, dist: 0})

	return r, nil
}

// process is the core loop: extract the closest unsettled state and relax
// its outgoing edges. When stop is non-nil and accepts a settled state, the
// loop ends early and reports true.
func (r *runner[S]) process(stop func(S) bool) (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, d := item.id, item.dist

		// stale heap entry
		if r.visited[u] {
			continue
		}
		// beyond MaxDistance: nothing closer remains in the heap
		if d > r.options.MaxDistance {
			break
		}
		if r.options.MaxStates > 0 && len(r.visited) >= r.options.MaxStates {
			return false, fmt.Errorf("%w: %d states", ErrStateLimit, r.options.MaxStates)
		}
		r.visited[u] = true
		if stop != nil && stop(u) {
			return true, nil
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax tries to improve the distance of every successor of u.
func (r *runner[S]) relax(u S) error {
	succ, err := space.Expand(r.sp, u)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	r.stats.Expanded++
	for _, e := range succ {
		if e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[e.State]; ok && newDist >= old {
			continue
		}
		r.dist[e.State] = newDist
		if r.prev != nil {
			r.prev[e.State] = u
			r.action[e.State] = e.Action
		}
		heap.Push(&r.pq, &nodeItem[S]{id: e.State, dist: newDist})
		r.stats.Generated++
		if r.pq.Len() > r.stats.MaxFrontier {
			r.stats.MaxFrontier = r.pq.Len()
		}
	}

	return nil
}

// nodeItem represents a state and its current distance from the source.
type nodeItem[S comparable] struct {
	id   S
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
