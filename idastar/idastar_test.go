package idastar_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/informed/astar"
	"github.com/katalvlaran/informed/core"
	"github.com/katalvlaran/informed/gridgraph"
	"github.com/katalvlaran/informed/idastar"
	"github.com/katalvlaran/informed/puzzle"
	"github.com/katalvlaran/informed/space"
)

// PuzzleSuite groups the 8-puzzle scenarios that share a space and goal.
type PuzzleSuite struct {
	suite.Suite
	sp   puzzle.Space
	goal puzzle.Board
}

func (s *PuzzleSuite) SetupTest() {
	var err error
	s.sp, err = puzzle.NewSpace(3)
	s.Require().NoError(err)
	s.goal, err = puzzle.Solved(3)
	s.Require().NoError(err)
}

func (s *PuzzleSuite) board(tiles string) puzzle.Board {
	b, err := puzzle.Parse(3, tiles)
	s.Require().NoError(err)
	return b
}

// TestOneMove: the blank sits one slide away from the solved board.
func (s *PuzzleSuite) TestOneMove() {
	start := s.board("1 2 3 4 5 6 7 0 8")
	res, err := idastar.Search[puzzle.Board](s.sp, start, space.GoalState(s.goal, puzzle.Manhattan))
	s.Require().NoError(err)

	s.Equal(space.Path[puzzle.Board]{start, s.goal}, res.Path)
	s.Equal([]string{"right"}, res.Actions)
	s.Equal(1.0, res.Cost)
	s.Equal(1, res.Stats.Iterations)
	s.Equal(1.0, res.Stats.Threshold)
	s.Equal(1, res.Stats.Pruned, "sliding up overshoots the threshold")
}

func (s *PuzzleSuite) TestAlreadySolved() {
	res, err := idastar.Search[puzzle.Board](s.sp, s.goal, space.GoalState(s.goal, puzzle.Manhattan))
	s.Require().NoError(err)
	s.Equal(space.Path[puzzle.Board]{s.goal}, res.Path)
	s.Zero(res.Cost)
	s.Zero(res.Stats.Expanded)
}

// TestAgreesWithAStar scrambles the solved board with random walks and
// checks both engines report the same optimal cost.
func (s *PuzzleSuite) TestAgreesWithAStar() {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 15; trial++ {
		start := s.goal
		for i := 0; i < 24; i++ {
			succ, err := s.sp.Successors(start)
			s.Require().NoError(err)
			start = succ[rng.Intn(len(succ))].State
		}
		goal := space.GoalState(s.goal, puzzle.Manhattan)

		want, err := astar.Search[puzzle.Board](s.sp, start, goal)
		s.Require().NoError(err)
		got, err := idastar.Search[puzzle.Board](s.sp, start, goal)
		s.Require().NoError(err)

		s.Equal(want.Cost, got.Cost, "trial %d from %v", trial, start)
		cost, err := space.CheckPath[puzzle.Board](s.sp, got.Path)
		s.Require().NoError(err)
		s.Equal(got.Cost, cost)
	}
}

func (s *PuzzleSuite) TestIterationLimit() {
	start := s.board("8 6 7 2 5 4 3 0 1")
	res, err := idastar.Search[puzzle.Board](s.sp, start,
		space.GoalState(s.goal, puzzle.Manhattan), idastar.WithMaxIterations(2))
	s.Require().ErrorIs(err, idastar.ErrIterationLimit)
	s.NotErrorIs(err, space.ErrNotFound)
	s.False(res.Found())
	s.Equal(2, res.Stats.Iterations)
	s.Positive(res.Stats.Pruned)
}

func TestPuzzleSuite(t *testing.T) {
	suite.Run(t, new(PuzzleSuite))
}

func TestSearch_DisconnectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("X", "Y", 1)
	require.NoError(t, err)

	res, err := idastar.Search[string](g, "A", space.GoalState("Y", space.Zero[string]()))
	require.ErrorIs(t, err, space.ErrNotFound)
	assert.False(t, res.Found())
	assert.Equal(t, 2, res.Stats.Iterations)
}

func TestSearch_WeightedTree(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 5}, {"A", "C", 1}, {"C", "B", 1}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	res, err := idastar.Search[string](g, "A", space.GoalState("B", space.Zero[string]()))
	require.NoError(t, err)
	assert.Equal(t, space.Path[string]{"A", "C", "B"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestSearch_ContourThresholds(t *testing.T) {
	gg, start, goal, err := gridgraph.Parse([]string{
		"S..",
		"##.",
		"G..",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	var thresholds []float64
	res, err := idastar.Search[gridgraph.Cell](gg, start, space.GoalState(goal, gridgraph.Manhattan),
		idastar.WithOnContour(func(threshold float64, iteration int) {
			require.Equal(t, len(thresholds)+1, iteration)
			thresholds = append(thresholds, threshold)
		}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, thresholds)
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, 6.0, res.Stats.Threshold)
	assert.Equal(t, 3, res.Stats.Iterations)
	assert.Equal(t, []string{"right", "right", "down", "down", "left", "left"}, res.Actions)
}

// TestSearch_AgreesWithAStarOnGrids compares costs on random 4-connected grids.
func TestSearch_AgreesWithAStarOnGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		const w, h = 6, 6
		var walls []gridgraph.Cell
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x+y != 0 && (x != w-1 || y != h-1) && rng.Float64() < 0.25 {
					walls = append(walls, gridgraph.Cell{X: x, Y: y})
				}
			}
		}
		gg, err := gridgraph.FromWalls(w, h, walls, gridgraph.DefaultGridOptions())
		require.NoError(t, err)
		goal := space.GoalState(gridgraph.Cell{X: w - 1, Y: h - 1}, gridgraph.Manhattan)

		want, err := astar.Search[gridgraph.Cell](gg, gridgraph.Cell{}, goal)
		if err != nil {
			// IDA* would enumerate every simple path of the component first.
			require.ErrorIs(t, err, space.ErrNotFound)
			continue
		}
		got, err := idastar.Search[gridgraph.Cell](gg, gridgraph.Cell{}, goal)
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, want.Cost, got.Cost, "trial %d", trial)
	}
}

func TestSearch_MaxDepth(t *testing.T) {
	line := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		return []space.Successor[int]{{State: s + 1, Cost: 1}}, nil
	})
	goal := space.GoalState(10, space.Zero[int]())

	res, err := idastar.Search[int](line, 0, goal, idastar.WithMaxDepth(5))
	require.ErrorIs(t, err, space.ErrNotFound)
	assert.Equal(t, 6, res.Stats.Iterations)

	res, err = idastar.Search[int](line, 0, goal, idastar.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Cost)
	assert.Len(t, res.Path, 11)
}

// TestSearch_AncestorCheck runs on a two-state cycle; without the ancestor
// check the contour would bounce between A and B forever.
func TestSearch_AncestorCheck(t *testing.T) {
	cycle := space.SpaceFunc[string](func(s string) ([]space.Successor[string], error) {
		if s == "A" {
			return []space.Successor[string]{{State: "B", Cost: 0}}, nil
		}
		return []space.Successor[string]{{State: "A", Cost: 0}}, nil
	})
	res, err := idastar.Search[string](cycle, "A", space.GoalFunc(func(string) bool { return false }, nil))
	require.ErrorIs(t, err, space.ErrNotFound)
	assert.Equal(t, 1, res.Stats.Iterations)
	assert.Equal(t, 2, res.Stats.MaxFrontier)
}

func TestSearch_Errors(t *testing.T) {
	gg, start, goal, err := gridgraph.Parse([]string{"S#", ".G"}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	h := space.GoalState(goal, gridgraph.Manhattan)

	_, err = idastar.Search[gridgraph.Cell](nil, start, h)
	assert.ErrorIs(t, err, space.ErrNilSpace)

	_, err = idastar.Search[gridgraph.Cell](gg, gridgraph.Cell{X: 1, Y: 0}, h)
	assert.ErrorIs(t, err, space.ErrInvalidState)

	_, err = idastar.Search[gridgraph.Cell](gg, start, h, idastar.WithMaxIterations(-1))
	assert.ErrorIs(t, err, idastar.ErrOptionViolation)

	_, err = idastar.Search[gridgraph.Cell](gg, start, h, idastar.WithMaxDepth(-1))
	assert.ErrorIs(t, err, idastar.ErrOptionViolation)

	neg := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		return []space.Successor[int]{{State: s + 1, Cost: -1}}, nil
	})
	_, err = idastar.Search[int](neg, 0, space.GoalState(3, nil))
	assert.ErrorIs(t, err, space.ErrNegativeCost)

	_, err = idastar.Search[int](neg, 0, space.GoalFunc(func(int) bool { return false }, func(int) float64 { return -1 }))
	assert.ErrorIs(t, err, space.ErrNegativeHeuristic)
}

// TestSearch_NaNContract: a NaN cost or estimate must not reach the
// threshold, where every f > threshold comparison would be false.
func TestSearch_NaNContract(t *testing.T) {
	nanCost := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		if s == 1 {
			return []space.Successor[int]{{State: 2, Cost: math.NaN()}}, nil
		}
		return []space.Successor[int]{{State: s + 1, Cost: 1}}, nil
	})
	res, err := idastar.Search[int](nanCost, 0, space.GoalState(3, nil))
	require.ErrorIs(t, err, space.ErrNegativeCost)
	assert.False(t, res.Found())

	line := space.SpaceFunc[int](func(s int) ([]space.Successor[int], error) {
		return []space.Successor[int]{{State: s + 1, Cost: 1}}, nil
	})
	res, err = idastar.Search[int](line, 0, space.GoalFunc(func(s int) bool { return s == 3 }, func(int) float64 { return math.NaN() }))
	require.ErrorIs(t, err, space.ErrNegativeHeuristic)
	assert.False(t, res.Found())
	assert.Zero(t, res.Stats.Iterations)

	midNaN := space.GoalFunc(func(s int) bool { return s == 3 }, func(s int) float64 {
		if s == 2 {
			return math.NaN()
		}
		return 0
	})
	_, err = idastar.Search[int](line, 0, midNaN)
	require.ErrorIs(t, err, space.ErrNegativeHeuristic)
}

// TestSearch_RejectsInvalidSuccessor: successors are checked against the
// space's Validate, so a wall cell never enters the stack.
func TestSearch_RejectsInvalidSuccessor(t *testing.T) {
	gg, start, goal, err := gridgraph.Parse([]string{"S#G"}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	leaky := leakyGrid{gg}
	_, err = idastar.Search[gridgraph.Cell](leaky, start, space.GoalState(goal, gridgraph.Manhattan))
	require.ErrorIs(t, err, gridgraph.ErrWall)
}

type leakyGrid struct{ *gridgraph.GridGraph }

func (l leakyGrid) Successors(c gridgraph.Cell) ([]space.Successor[gridgraph.Cell], error) {
	next := gridgraph.Cell{X: c.X + 1, Y: c.Y}
	if !l.InBounds(next.X, next.Y) {
		return nil, nil
	}
	return []space.Successor[gridgraph.Cell]{{State: next, Cost: 1, Action: "right"}}, nil
}

func TestSearch_Logging(t *testing.T) {
	gg, start, goal, err := gridgraph.Parse([]string{"S..", "##.", "G.."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	expanded := 0
	res, err := idastar.Search[gridgraph.Cell](gg, start, space.GoalState(goal, gridgraph.Manhattan),
		idastar.WithLogger(logger),
		idastar.WithOnExpand(func(any, float64, float64) { expanded++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Stats.Expanded, expanded)
	assert.Equal(t, res.Stats.Iterations, bytes.Count(buf.Bytes(), []byte("msg=contour")))
	assert.Equal(t, res.Stats.Expanded, bytes.Count(buf.Bytes(), []byte("msg=expand")))
	assert.Contains(t, buf.String(), "iteration=1 threshold=2 next=4")
}
