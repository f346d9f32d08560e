package idastar

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/informed/space"
)

// Search runs IDA* from start until goal.Test accepts a state.
//
// Returns:
//
//   - a Result with the path read from the depth-first stack, its actions,
//     its cost and Stats (Iterations, Threshold, Expanded, Generated, Pruned);
//   - space.ErrNotFound when a contour prunes nothing, so no larger threshold exists;
//   - ErrIterationLimit when WithMaxIterations contours ran without success;
//   - the same input and contract errors as astar.Search.
//
// Memory is O(d·b) for depth d and branching factor b: only the current
// path and the pending successors of each of its states are kept.
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
	h0, err := goal.H(start)
	if err != nil {
		return space.Result[S]{}, err
	}

	r := &runner[S]{
		sp:     sp,
		goal:   goal,
		opts:   o,
		onPath: make(map[S]struct{}),
	}
	if goal.Test(start) {
		return space.Result[S]{Path: space.Path[S]{start}, Actions: []string{}, Stats: r.stats}, nil
	}

	threshold := h0
	for {
		if o.MaxIterations > 0 && r.stats.Iterations >= o.MaxIterations {
			return space.Result[S]{Stats: r.stats}, fmt.Errorf("%w: %d contours, threshold %g",
				ErrIterationLimit, r.stats.Iterations, threshold)
		}
		r.stats.Iterations++
		r.stats.Threshold = threshold
		o.OnContour(threshold, r.stats.Iterations)

		found, next, err := r.contour(start, h0, threshold)
		r.logContour(threshold, next)
		if err != nil {
			return space.Result[S]{Stats: r.stats}, err
		}
		if found {
			return r.result(), nil
		}
		if math.IsInf(next, 1) {
			return space.Result[S]{Stats: r.stats}, space.ErrNotFound
		}
		threshold = next
	}
}

// frame is one entry of the explicit depth-first stack. succ is filled the
// first time the frame reaches the top; next indexes the successor to try.
type frame[S comparable] struct {
	state    S
	g, h     float64
	action   string
	succ     []space.Successor[S]
	next     int
	expanded bool
}

// runner holds the mutable state of a single IDA* execution.
type runner[S comparable] struct {
	sp     space.Space[S]
	goal   space.Goal[S]
	opts   Options
	stack  []frame[S]
	onPath map[S]struct{} // states on the current stack
	stats  space.Stats
}

// contour runs one depth-first pass bounded by threshold. It returns whether
// the goal was pushed, and the smallest f that exceeded threshold.
func (r *runner[S]) contour(start S, h0, threshold float64) (bool, float64, error) {
	next := math.Inf(1)
	r.stack = r.stack[:0]
	clear(r.onPath)
	r.push(frame[S]{state: start, h: h0})

	for len(r.stack) > 0 {
		top := &r.stack[len(r.stack)-1]
		if !top.expanded {
			if err := r.expand(top); err != nil {
				return false, next, err
			}
		}
		if top.next >= len(top.succ) {
			r.pop()
			continue
		}
		e := top.succ[top.next]
		top.next++

		// ancestor check
		if _, ok := r.onPath[e.State]; ok {
			continue
		}
		// depth cut: the child would sit at depth len(stack)
		if r.opts.MaxDepth > 0 && len(r.stack) > r.opts.MaxDepth {
			r.stats.Pruned++
			continue
		}
		h, err := r.goal.H(e.State)
		if err != nil {
			return false, next, err
		}
		g := top.g + e.Cost
		if f := g + h; f > threshold {
			r.stats.Pruned++
			if f < next {
				next = f
			}
			continue
		}

		r.stats.Generated++
		r.push(frame[S]{state: e.State, g: g, h: h, action: e.Action})
		if r.goal.Test(e.State) {
			return true, next, nil
		}
	}

	return false, next, nil
}

// expand generates the successors of the top frame once.
func (r *runner[S]) expand(top *frame[S]) error {
	top.expanded = true
	r.stats.Expanded++
	r.opts.OnExpand(top.state, top.g, top.h)
	if r.opts.Logger != nil {
		r.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "expand",
			slog.Any("state", top.state),
			slog.Float64("g", top.g),
			slog.Float64("h", top.h),
			slog.Float64("f", top.g+top.h),
		)
	}
	succ, err := space.Expand(r.sp, top.state)
	if err != nil {
		return err
	}
	top.succ = succ

	return nil
}

func (r *runner[S]) push(f frame[S]) {
	r.stack = append(r.stack, f)
	r.onPath[f.state] = struct{}{}
	if len(r.stack) > r.stats.MaxFrontier {
		r.stats.MaxFrontier = len(r.stack)
	}
}

func (r *runner[S]) pop() {
	last := len(r.stack) - 1
	delete(r.onPath, r.stack[last].state)
	r.stack[last] = frame[S]{}
	r.stack = r.stack[:last]
}

// result reads the solution path off the stack, bottom to top.
func (r *runner[S]) result() space.Result[S] {
	path := make(space.Path[S], len(r.stack))
	actions := make([]string, 0, len(r.stack)-1)
	for i, f := range r.stack {
		path[i] = f.state
		if i > 0 {
			actions = append(actions, f.action)
		}
	}

	return space.Result[S]{Path: path, Actions: actions, Cost: r.stack[len(r.stack)-1].g, Stats: r.stats}
}

func (r *runner[S]) logContour(threshold, next float64) {
	if r.opts.Logger == nil {
		return
	}
	r.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "contour",
		slog.Int("iteration", r.stats.Iterations),
		slog.Float64("threshold", threshold),
		slog.Float64("next", next),
		slog.Int("expanded", r.stats.Expanded),
	)
}
