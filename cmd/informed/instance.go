package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/informed/astar"
	"github.com/katalvlaran/informed/core"
	"github.com/katalvlaran/informed/dijkstra"
	"github.com/katalvlaran/informed/gridgraph"
	"github.com/katalvlaran/informed/idastar"
	"github.com/katalvlaran/informed/puzzle"
	"github.com/katalvlaran/informed/space"
)

// Engine names accepted by --engine.
const (
	engineAStar   = "astar"
	engineIDAStar = "idastar"
)

// defaultVerifyStates bounds the uniform-cost search behind --verify. Large
// puzzles have far more states than memory allows.
const defaultVerifyStates = 2_000_000

// runConfig carries the solve flags and the run-wide collaborators.
type runConfig struct {
	Engine        string
	MaxExpansions int
	MaxIterations int
	Verify        bool
	VerifyStates  int
	Logger        *slog.Logger
	Metrics       *searchMetrics
}

// instance is a problem turned into a typed search input.
type instance[S comparable] struct {
	kind   string
	space  space.Space[S]
	start  S
	target S
	goal   space.Goal[S]
	// hopeless is set when the problem is known to have no solution, so the
	// engines are not run at all.
	hopeless error
	draw     func(space.Path[S]) string
}

// solveProblem builds the instance for p and runs the configured engine.
func solveProblem(ctx context.Context, p *Problem, cfg runConfig) (*report, error) {
	switch p.Kind {
	case kindGrid:
		in, err := gridInstance(p.Grid)
		if err != nil {
			return nil, err
		}
		return solve(ctx, p.Name, in, cfg)
	case kindGraph:
		in, err := graphInstance(p.Graph)
		if err != nil {
			return nil, err
		}
		return solve(ctx, p.Name, in, cfg)
	case kindPuzzle:
		in, err := puzzleInstance(p.Puzzle)
		if err != nil {
			return nil, err
		}
		return solve(ctx, p.Name, in, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrProblem, p.Kind)
	}
}

func gridInstance(spec *GridSpec) (instance[gridgraph.Cell], error) {
	opts := gridgraph.DefaultGridOptions()
	if spec.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	if spec.DiagonalCost > 0 {
		opts.DiagonalCost = spec.DiagonalCost
	}
	gg, start, goal, err := gridgraph.Parse(spec.Rows, opts)
	if err != nil {
		return instance[gridgraph.Cell]{}, fmt.Errorf("%w: %w", ErrProblem, err)
	}

	var h space.Heuristic[gridgraph.Cell]
	switch spec.Heuristic {
	case "zero":
		h = space.Zero[gridgraph.Cell]()
	case "chebyshev":
		h = gridgraph.Chebyshev
	case "octile":
		h = gridgraph.Octile
	case "manhattan":
		h = gridgraph.Manhattan
	default:
		h = gridgraph.Manhattan
		if opts.Conn == gridgraph.Conn8 {
			h = gridgraph.Octile
		}
	}

	in := instance[gridgraph.Cell]{
		kind:   kindGrid,
		space:  gg,
		start:  start,
		target: goal,
		goal:   space.GoalState(goal, h),
		draw: func(path space.Path[gridgraph.Cell]) string {
			return renderGrid(gg, start, goal, path)
		},
	}
	if !gg.Reachable(start, goal) {
		in.hopeless = fmt.Errorf("%w: %v and %v lie in different components", space.ErrNotFound, start, goal)
	}

	return in, nil
}

func graphInstance(spec *GraphSpec) (instance[string], error) {
	g := core.NewGraph(core.WithDirected(!spec.Undirected))
	for _, e := range spec.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return instance[string]{}, fmt.Errorf("%w: %w", ErrProblem, err)
		}
	}
	parents := make([]string, 0, len(spec.Children))
	for parent := range spec.Children {
		parents = append(parents, parent)
	}
	slices.Sort(parents)
	for _, parent := range parents {
		children, err := core.ParseChildren(spec.Children[parent])
		if err == nil {
			err = g.AddChildren(parent, children)
		}
		if err != nil {
			return instance[string]{}, fmt.Errorf("%w: children of %q: %w", ErrProblem, parent, err)
		}
	}

	h := space.Zero[string]()
	if spec.Heuristic == "symbol" {
		h = core.SymbolDistance
	}

	return instance[string]{
		kind:   kindGraph,
		space:  g,
		start:  spec.Start,
		target: spec.Goal,
		goal:   space.GoalState(spec.Goal, h),
		draw:   renderChain[string],
	}, nil
}

func puzzleInstance(spec *PuzzleSpec) (instance[puzzle.Board], error) {
	sp, err := puzzle.NewSpace(spec.Size)
	if err != nil {
		return instance[puzzle.Board]{}, fmt.Errorf("%w: %w", ErrProblem, err)
	}
	start, err := puzzle.Parse(spec.Size, spec.Start)
	if err != nil {
		return instance[puzzle.Board]{}, fmt.Errorf("%w: start: %w", ErrProblem, err)
	}
	goal, err := puzzle.Solved(spec.Size)
	if spec.Goal != "" {
		goal, err = puzzle.Parse(spec.Size, spec.Goal)
	}
	if err != nil {
		return instance[puzzle.Board]{}, fmt.Errorf("%w: goal: %w", ErrProblem, err)
	}

	var h space.Heuristic[puzzle.Board]
	switch spec.Heuristic {
	case "zero":
		h = space.Zero[puzzle.Board]()
	case "misplaced":
		h = puzzle.Misplaced
	default:
		h = puzzle.Manhattan
	}

	in := instance[puzzle.Board]{
		kind:   kindPuzzle,
		space:  sp,
		start:  start,
		target: goal,
		goal:   space.GoalState(goal, h),
		draw:   renderBoards,
	}
	if !puzzle.Solvable(start, goal) {
		in.hopeless = fmt.Errorf("%w: permutation parity of start and goal differ", space.ErrNotFound)
	}

	return in, nil
}

// solve runs one search inside a span and records metrics for it.
func solve[S comparable](ctx context.Context, name string, in instance[S], cfg runConfig) (*report, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "informed.solve", trace.WithAttributes(
		attribute.String("problem", name),
		attribute.String("kind", in.kind),
		attribute.String("engine", cfg.Engine),
	))
	defer span.End()

	logger := cfg.Logger.With("problem", name, "kind", in.kind, "engine", cfg.Engine)
	begin := time.Now()
	res, err := search(in, cfg, logger)
	elapsed := time.Since(begin)

	outcome := classify(err)
	cfg.Metrics.observe(in.kind, cfg.Engine, outcome, res.Stats, res.Cost, elapsed)
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("expanded", res.Stats.Expanded),
		attribute.Float64("cost", res.Cost),
	)
	rep := newReport(name, in.kind, cfg.Engine, outcome, res, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		rep.Error = err.Error()
		logger.InfoContext(ctx, "search finished", "outcome", outcome, "error", err)
		return rep, err
	}
	rep.Picture = in.draw(res.Path)
	logger.InfoContext(ctx, "search finished",
		"outcome", outcome,
		"cost", res.Cost,
		"expanded", res.Stats.Expanded,
		"elapsed", elapsed,
	)

	if cfg.Verify {
		optimal, err := verify(ctx, in, res, cfg.VerifyStates)
		if errors.Is(err, dijkstra.ErrStateLimit) {
			rep.Unverified = true
			logger.WarnContext(ctx, "path not verified; uniform-cost search hit its state bound",
				"max_states", cfg.VerifyStates)
			return rep, nil
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return rep, err
		}
		rep.Optimal = &optimal
		if !optimal {
			logger.WarnContext(ctx, "path is longer than the shortest one; the heuristic is not admissible",
				"cost", res.Cost)
		}
	}

	return rep, nil
}

func search[S comparable](in instance[S], cfg runConfig, logger *slog.Logger) (space.Result[S], error) {
	if in.hopeless != nil {
		return space.Result[S]{}, in.hopeless
	}
	if cfg.Engine == engineIDAStar {
		return idastar.Search(in.space, in.start, in.goal,
			idastar.WithMaxIterations(cfg.MaxIterations),
			idastar.WithLogger(logger),
		)
	}

	return astar.Search(in.space, in.start, in.goal,
		astar.WithMaxExpansions(cfg.MaxExpansions),
		astar.WithLogger(logger),
	)
}

// verify re-checks the path edge by edge and compares its cost with the
// uniform-cost optimum. The oracle settles at most maxStates states (0 = no
// bound) and fails with dijkstra.ErrStateLimit beyond that.
func verify[S comparable](ctx context.Context, in instance[S], res space.Result[S], maxStates int) (bool, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "informed.verify")
	defer span.End()

	cost, err := space.CheckPath(in.space, res.Path)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	if math.Abs(cost-res.Cost) > 1e-9 {
		return false, fmt.Errorf("verify: path sums to %g, reported %g", cost, res.Cost)
	}
	best, err := dijkstra.ShortestPath(in.space, in.start, in.target, dijkstra.WithMaxStates(maxStates))
	if err != nil {
		span.SetAttributes(attribute.Bool("verified", false))
		return false, fmt.Errorf("verify: %w", err)
	}
	optimal := math.Abs(best.Cost-res.Cost) <= 1e-9
	span.SetAttributes(attribute.Bool("optimal", optimal), attribute.Float64("optimum", best.Cost))

	return optimal, nil
}
