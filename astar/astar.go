package astar

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/informed/space"
)

// Search runs A* from start until goal.Test accepts a popped state.
//
// Returns:
//
//   - a Result with the path start→goal, its actions, its cost and Stats;
//   - space.ErrNotFound when the frontier empties (Result carries the Stats);
//   - ErrExpansionLimit when WithMaxExpansions is exhausted;
//   - space.ErrInvalidState, space.ErrNegativeCost, space.ErrNegativeHeuristic
//     or any successor error, wrapped with the offending state;
//   - ErrOptionViolation for invalid options.
//
// Each call owns its frontier and explored set, so a Space may be searched by
// concurrent calls as long as its Successors method is safe for concurrent use.
func Search[S comparable](sp space.Space[S], start S, goal space.Goal[S], opts ...Option) (space.Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return space.Result[S]{}, o.err
	}
	if err := space.Prepare(sp, start, goal); err != nil {
		return space.Result[S]{}, err
	}

	r := &runner[S]{
		sp:       sp,
		goal:     goal,
		opts:     o,
		open:     &frontier[S]{tie: o.TieBreak},
		best:     make(map[S]float64),
		explored: make(map[S]float64),
	}
	if err := r.init(start); err != nil {
		return space.Result[S]{Stats: r.stats}, err
	}

	return r.loop()
}

// runner holds the mutable state of a single A* execution.
type runner[S comparable] struct {
	sp       space.Space[S]
	goal     space.Goal[S]
	opts     Options
	open     *frontier[S]
	best     map[S]float64 // state → cheapest g pushed so far
	explored map[S]float64 // state → g it was expanded with
	stats    space.Stats
}

// init pushes the root node (g = 0, h = h(start)).
func (r *runner[S]) init(start S) error {
	h, err := r.goal.H(start)
	if err != nil {
		return err
	}
	heap.Init(r.open)
	r.push(space.Root(start, h))

	return nil
}

// push records the node's g as the best known for its state and adds it to the frontier.
func (r *runner[S]) push(n *space.Node[S]) {
	r.best[n.State()] = n.G()
	heap.Push(r.open, r.open.next(n))
	if l := r.open.Len(); l > r.stats.MaxFrontier {
		r.stats.MaxFrontier = l
	}
}

// loop pops nodes until the goal is reached, the frontier empties or the
// expansion limit is hit.
func (r *runner[S]) loop() (space.Result[S], error) {
	for r.open.Len() > 0 {
		cur := heap.Pop(r.open).(entry[S]).node
		s := cur.State()

		// stale: a cheaper entry for s was pushed or already expanded
		if cur.G() > r.best[s] {
			continue
		}
		if g, ok := r.explored[s]; ok && g <= cur.G() {
			continue
		}

		if r.goal.Test(s) {
			path, actions := cur.Trace()
			return space.Result[S]{Path: path, Actions: actions, Cost: cur.G(), Stats: r.stats}, nil
		}

		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return space.Result[S]{Stats: r.stats}, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}

		if _, ok := r.explored[s]; ok {
			r.stats.Reopened++
		}
		r.explored[s] = cur.G()
		if err := r.expand(cur); err != nil {
			return space.Result[S]{Stats: r.stats}, err
		}
	}

	return space.Result[S]{Stats: r.stats}, space.ErrNotFound
}

// expand generates the successors of cur and pushes every one that improves
// on the best g known for its state.
func (r *runner[S]) expand(cur *space.Node[S]) error {
	r.stats.Expanded++
	r.opts.OnExpand(cur.State(), cur.G(), cur.H())
	if r.opts.Logger != nil {
		r.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "expand",
			slog.Any("state", cur.State()),
			slog.Float64("g", cur.G()),
			slog.Float64("h", cur.H()),
			slog.Float64("f", cur.F()),
		)
	}

	succ, err := space.Expand(r.sp, cur.State())
	if err != nil {
		return err
	}
	for _, e := range succ {
		g := cur.G() + e.Cost
		if b, ok := r.best[e.State]; ok && b <= g {
			continue
		}
		h, err := r.goal.H(e.State)
		if err != nil {
			return err
		}
		r.push(cur.Child(e, h))
		r.stats.Generated++
	}

	return nil
}
