package space_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/informed/space"
)

// chain is a tiny directed graph A→B(2)→C(3), A→C(10).
func chain() space.Space[string] {
	adj := map[string][]space.Successor[string]{
		"A": {{State: "B", Cost: 2, Action: "ab"}, {State: "C", Cost: 10, Action: "ac"}},
		"B": {{State: "C", Cost: 3, Action: "bc"}},
	}
	return space.SpaceFunc[string](func(s string) ([]space.Successor[string], error) {
		return adj[s], nil
	})
}

type strictSpace struct{ space.Space[string] }

func (strictSpace) Validate(s string) error {
	if s == "" {
		return space.ErrInvalidState
	}
	return nil
}

func TestNode_ChildAccumulatesCost(t *testing.T) {
	root := space.Root("A", 4)
	b := root.Child(space.Successor[string]{State: "B", Cost: 2, Action: "ab"}, 3)
	c := b.Child(space.Successor[string]{State: "C", Cost: 3, Action: "bc"}, 0)

	assert.Equal(t, 0.0, root.G())
	assert.Equal(t, 4.0, root.F())
	assert.Equal(t, 5.0, c.G())
	assert.Equal(t, 5.0, c.F())
	assert.Equal(t, 2, c.Depth())
	assert.Same(t, b, c.Parent())
	assert.Equal(t, "bc", c.Action())
	// root untouched by children
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.Depth())
}

func TestNode_Trace(t *testing.T) {
	root := space.Root("A", 0)
	c := root.
		Child(space.Successor[string]{State: "B", Cost: 2, Action: "ab"}, 0).
		Child(space.Successor[string]{State: "C", Cost: 3, Action: "bc"}, 0)

	path, actions := c.Trace()
	assert.Equal(t, space.Path[string]{"A", "B", "C"}, path)
	assert.Equal(t, []string{"ab", "bc"}, actions)

	path, actions = root.Trace()
	assert.Equal(t, space.Path[string]{"A"}, path)
	assert.Empty(t, actions)

	var nilNode *space.Node[string]
	path, actions = nilNode.Trace()
	assert.Nil(t, path)
	assert.Nil(t, actions)
}

func TestCheckPath(t *testing.T) {
	sp := chain()

	cost, err := space.CheckPath(sp, space.Path[string]{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)

	cost, err = space.CheckPath(sp, space.Path[string]{"A"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)

	_, err = space.CheckPath(sp, space.Path[string]{"C", "A"})
	assert.ErrorIs(t, err, space.ErrInvalidState)

	_, err = space.CheckPath(sp, nil)
	assert.ErrorIs(t, err, space.ErrNotFound)

	_, err = space.CheckPath[string](nil, space.Path[string]{"A"})
	assert.ErrorIs(t, err, space.ErrNilSpace)
}

func TestExpand_NegativeCost(t *testing.T) {
	sp := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		return []space.Successor[int]{{State: s + 1, Cost: -1}}, nil
	})
	_, err := space.Expand[int](sp, 0)
	assert.ErrorIs(t, err, space.ErrNegativeCost)
}

func TestExpand_NaNCost(t *testing.T) {
	sp := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		return []space.Successor[int]{{State: s + 1, Cost: math.NaN()}}, nil
	})
	_, err := space.Expand[int](sp, 0)
	assert.ErrorIs(t, err, space.ErrNegativeCost)
}

// TestExpand_ValidatesSuccessors: a Validator space may not generate a state
// its own Validate rejects.
func TestExpand_ValidatesSuccessors(t *testing.T) {
	leaky := strictSpace{space.SpaceFunc[string](func(s string) ([]space.Successor[string], error) {
		return []space.Successor[string]{{State: s + "x", Cost: 1}, {State: "", Cost: 1}}, nil
	})}
	_, err := space.Expand[string](leaky, "A")
	require.ErrorIs(t, err, space.ErrInvalidState)
	assert.Contains(t, err.Error(), "of A")

	succ, err := space.Expand[string](strictSpace{chain()}, "A")
	require.NoError(t, err)
	assert.Len(t, succ, 2)
}

func TestGoal_RejectsNaNEstimate(t *testing.T) {
	g := space.GoalFunc(func(s int) bool { return s == 0 }, func(int) float64 { return math.NaN() })
	_, err := g.H(3)
	assert.ErrorIs(t, err, space.ErrNegativeHeuristic)
}

func TestExpand_WrapsSpaceError(t *testing.T) {
	boom := errors.New("boom")
	sp := space.SpaceFunc[int](func(int) ([]space.Successor[int], error) { return nil, boom })
	_, err := space.Expand[int](sp, 7)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "successors of 7")
}

func TestGoal(t *testing.T) {
	g := space.GoalState("C", func(s, goal string) float64 {
		if s == goal {
			return 0
		}
		return 1
	})
	require.NoError(t, g.Validate())
	assert.True(t, g.Test("C"))
	assert.False(t, g.Test("A"))

	h, err := g.H("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, h)

	target, ok := g.Target()
	assert.True(t, ok)
	assert.Equal(t, "C", target)

	nilH := space.GoalState[string]("C", nil)
	h, err = nilH.H("A")
	require.NoError(t, err)
	assert.Zero(t, h)

	neg := space.GoalFunc(func(string) bool { return false }, func(string) float64 { return -2 })
	_, err = neg.H("A")
	assert.ErrorIs(t, err, space.ErrNegativeHeuristic)

	_, ok = neg.Target()
	assert.False(t, ok)

	assert.ErrorIs(t, space.Goal[string]{}.Validate(), space.ErrNilGoal)
}

func TestPrepare(t *testing.T) {
	goal := space.GoalState[string]("C", nil)

	assert.ErrorIs(t, space.Prepare[string](nil, "A", goal), space.ErrNilSpace)
	assert.ErrorIs(t, space.Prepare(chain(), "A", space.Goal[string]{}), space.ErrNilGoal)
	assert.NoError(t, space.Prepare(chain(), "A", goal))

	strict := strictSpace{chain()}
	assert.ErrorIs(t, space.Prepare[string](strict, "", goal), space.ErrInvalidState)
	assert.ErrorIs(t, space.Prepare[string](strict, "A", space.GoalState[string]("", nil)), space.ErrInvalidState)
	assert.NoError(t, space.Prepare[string](strict, "A", goal))
}
