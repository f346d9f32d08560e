package space

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every engine and state space.
var (
	// ErrNotFound indicates that no path exists between start and goal.
	// It is a valid outcome, not a fault.
	ErrNotFound = errors.New("space: no path to goal")

	// ErrInvalidState indicates a state outside the declared space.
	ErrInvalidState = errors.New("space: invalid state")

	// ErrNegativeCost indicates a successor edge with a negative or NaN step cost.
	ErrNegativeCost = errors.New("space: negative step cost")

	// ErrNegativeHeuristic indicates a heuristic returned a value below zero or NaN.
	ErrNegativeHeuristic = errors.New("space: negative heuristic estimate")

	// ErrNilSpace indicates a nil Space was passed to an engine.
	ErrNilSpace = errors.New("space: state space is nil")

	// ErrNilGoal indicates a Goal without a test function.
	ErrNilGoal = errors.New("space: goal test is nil")
)

// Successor is one outgoing edge of a state: the reached state, the
// non-negative step cost and an optional action label ("up", "B", …).
type Successor[S comparable] struct {
	State  S
	Cost   float64
	Action string
}

// Space produces successors on demand. Implementations must return the same
// sequence every time they are called with the same state.
type Space[S comparable] interface {
	Successors(state S) ([]Successor[S], error)
}

// Validator is implemented by spaces that can tell whether a state belongs to
// them. Engines validate the start state (and a known goal state) up front.
type Validator[S comparable] interface {
	Validate(state S) error
}

// SpaceFunc adapts a plain function to the Space interface.
type SpaceFunc[S comparable] func(state S) ([]Successor[S], error)

// Successors calls f(state).
func (f SpaceFunc[S]) Successors(state S) ([]Successor[S], error) { return f(state) }

// Heuristic estimates the remaining cost from state to goal.
type Heuristic[S comparable] func(state, goal S) float64

// Zero returns the heuristic that always estimates 0. With it A* behaves
// like uniform-cost search.
func Zero[S comparable]() Heuristic[S] {
	return func(S, S) float64 { return 0 }
}

// Goal pairs the goal test with the heuristic estimate toward that goal.
// Engines only see Goal, so a goal may be a single state or any predicate.
type Goal[S comparable] struct {
	// Test reports whether a state satisfies the goal.
	Test func(state S) bool

	// Estimate returns h(state). Nil means the zero heuristic.
	Estimate func(state S) float64

	// state and known are set by GoalState so engines can validate the target.
	state S
	known bool
}

// GoalState builds a Goal for a single target state. A nil heuristic is
// treated as Zero.
func GoalState[S comparable](goal S, h Heuristic[S]) Goal[S] {
	if h == nil {
		h = Zero[S]()
	}
	return Goal[S]{
		Test:     func(s S) bool { return s == goal },
		Estimate: func(s S) float64 { return h(s, goal) },
		state:    goal,
		known:    true,
	}
}

// GoalFunc builds a Goal from an arbitrary predicate and estimate.
func GoalFunc[S comparable](test func(S) bool, estimate func(S) float64) Goal[S] {
	return Goal[S]{Test: test, Estimate: estimate}
}

// Target returns the goal state when the Goal was built with GoalState.
func (g Goal[S]) Target() (S, bool) { return g.state, g.known }

// Validate reports ErrNilGoal when the goal test is missing.
func (g Goal[S]) Validate() error {
	if g.Test == nil {
		return ErrNilGoal
	}
	return nil
}

// H evaluates the estimate for s and rejects negative or NaN values.
func (g Goal[S]) H(s S) (float64, error) {
	if g.Estimate == nil {
		return 0, nil
	}
	h := g.Estimate(s)
	if !(h >= 0) {
		return 0, fmt.Errorf("%w: h(%v) = %g", ErrNegativeHeuristic, s, h)
	}
	return h, nil
}

// Prepare runs the common pre-search checks: a non-nil space, a usable goal,
// and a valid start (and target) state when the space can validate states.
func Prepare[S comparable](sp Space[S], start S, goal Goal[S]) error {
	if sp == nil {
		return ErrNilSpace
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	v, ok := sp.(Validator[S])
	if !ok {
		return nil
	}
	if err := v.Validate(start); err != nil {
		return fmt.Errorf("start %v: %w", start, err)
	}
	if target, known := goal.Target(); known {
		if err := v.Validate(target); err != nil {
			return fmt.Errorf("goal %v: %w", target, err)
		}
	}
	return nil
}

// Expand fetches the successors of s and checks the step-cost contract:
// every cost must be a non-negative number (NaN is rejected). When sp is a
// Validator, every generated state must also pass Validate.
func Expand[S comparable](sp Space[S], s S) ([]Successor[S], error) {
	succ, err := sp.Successors(s)
	if err != nil {
		return nil, fmt.Errorf("successors of %v: %w", s, err)
	}
	v, _ := sp.(Validator[S])
	for _, e := range succ {
		if !(e.Cost >= 0) {
			return nil, fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, s, e.State, e.Cost)
		}
		if v == nil {
			continue
		}
		if err := v.Validate(e.State); err != nil {
			return nil, fmt.Errorf("successor %v of %v: %w", e.State, s, err)
		}
	}
	return succ, nil
}

// Path is an ordered sequence of states from start to goal inclusive.
type Path[S comparable] []S

// Stats are the diagnostics reported by a search call.
type Stats struct {
	// Expanded counts states whose successors were generated.
	Expanded int
	// Generated counts nodes created for successors (pushed or stacked).
	Generated int
	// Reopened counts closed states expanded again through a cheaper path (A*).
	Reopened int
	// Pruned counts successors cut by the f-threshold (IDA*).
	Pruned int
	// MaxFrontier is the largest frontier (A*) or stack (IDA*) size observed.
	MaxFrontier int
	// Iterations counts IDA* contours.
	Iterations int
	// Threshold is the last IDA* f-threshold.
	Threshold float64
}

// Result is the outcome of a search: the path, its action labels (one per
// edge, so len(Actions) == len(Path)-1), its total cost and the statistics.
type Result[S comparable] struct {
	Path    Path[S]
	Actions []string
	Cost    float64
	Stats   Stats
}

// Found reports whether the result carries a path.
func (r Result[S]) Found() bool { return len(r.Path) > 0 }
