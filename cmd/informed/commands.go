package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/informed/core"
	"github.com/katalvlaran/informed/gridgraph"
	"github.com/katalvlaran/informed/puzzle"
	"github.com/katalvlaran/informed/space"
)

// ErrUnsolved is returned by solve when no path was produced, so the
// process exits non-zero after the report has been printed.
var ErrUnsolved = errors.New("informed: problem not solved")

// globalFlags are shared by every command.
type globalFlags struct {
	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// solveFlags are the flags of "informed solve".
type solveFlags struct {
	Engine        string `validate:"oneof=astar idastar"`
	MaxExpansions int    `validate:"gte=0"`
	MaxIterations int    `validate:"gte=0"`
	Verify        bool
	VerifyStates  int    `validate:"gte=0"`
	Format        string `validate:"oneof=text yaml"`
	MetricsOut    string
	Trace         bool
}

var flagValidate = validator.New()

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "informed",
		Short:         "Solve grid, graph and sliding-puzzle problems with A* and IDA*",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flagValidate.Struct(gf); err != nil {
				return fmt.Errorf("flags: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&gf.LogFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVar(&gf.LogLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newSolveCmd(gf))
	root.AddCommand(newCheckCmd(gf))

	return root
}

func newSolveCmd(gf *globalFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Search a path for the problem in FILE (.yaml, .yml or .hcl)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flagValidate.Struct(sf); err != nil {
				return fmt.Errorf("flags: %w", err)
			}
			return runSolve(cmd, gf, sf, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&sf.Engine, "engine", engineAStar, "search engine: astar or idastar")
	f.IntVar(&sf.MaxExpansions, "max-expansions", 0, "A* expansion bound (0 = none)")
	f.IntVar(&sf.MaxIterations, "max-iterations", 0, "IDA* contour bound (0 = none)")
	f.BoolVar(&sf.Verify, "verify", false, "check the path against uniform-cost search")
	f.IntVar(&sf.VerifyStates, "verify-max-states", defaultVerifyStates,
		"states uniform-cost search may settle while verifying (0 = none)")
	f.StringVar(&sf.Format, "format", "text", "output format: text or yaml")
	f.StringVar(&sf.MetricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	f.BoolVar(&sf.Trace, "trace", false, "print OpenTelemetry spans to stderr")

	return cmd
}

func runSolve(cmd *cobra.Command, gf *globalFlags, sf *solveFlags, path string) error {
	runID := uuid.NewString()
	logger, err := newLogger(cmd.ErrOrStderr(), gf.LogFormat, gf.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", runID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if sf.Trace {
		shutdown, err := setupTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown", "error", err)
			}
		}()
	}

	p, err := loadProblem(path)
	if err != nil {
		return err
	}
	logger.Debug("problem loaded", "path", path, "name", p.Name, "kind", p.Kind)

	reg := prometheus.NewRegistry()
	cfg := runConfig{
		Engine:        sf.Engine,
		MaxExpansions: sf.MaxExpansions,
		MaxIterations: sf.MaxIterations,
		Verify:        sf.Verify,
		VerifyStates:  sf.VerifyStates,
		Logger:        logger,
		Metrics:       newSearchMetrics(reg),
	}
	rep, solveErr := solveProblem(ctx, p, cfg)
	if rep == nil {
		return solveErr
	}
	rep.RunID = runID

	if err := printReport(cmd, sf.Format, rep); err != nil {
		return err
	}
	if sf.MetricsOut != "" {
		if err := writeMetrics(sf.MetricsOut, reg); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", sf.MetricsOut)
	}
	if solveErr != nil {
		return fmt.Errorf("%w: %w", ErrUnsolved, solveErr)
	}

	return nil
}

func printReport(cmd *cobra.Command, format string, rep *report) error {
	out := cmd.OutOrStdout()
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	_, err := fmt.Fprint(out, renderText(rep))
	return err
}

func newCheckCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Load and validate the problem in FILE without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), gf.LogFormat, gf.LogLevel)
			if err != nil {
				return err
			}
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			note, err := describe(p)
			if err != nil {
				return err
			}
			logger.Debug("problem checked", "path", args[0], "kind", p.Kind)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s): %s\n",
				styles.OK.Render("✓"), p.Name, p.Kind, note)
			return err
		},
	}
}

// describe builds the problem's search space and summarises it, reporting
// problems that are known to be unsolvable.
func describe(p *Problem) (string, error) {
	switch p.Kind {
	case kindGrid:
		in, err := gridInstance(p.Grid)
		if err != nil {
			return "", err
		}
		gg := in.space.(*gridgraph.GridGraph)
		note := fmt.Sprintf("%d×%d grid, %d components", gg.Width, gg.Height, len(gg.ConnectedComponents()))
		if in.hopeless != nil {
			note += ", goal unreachable"
		}
		return note, nil
	case kindGraph:
		in, err := graphInstance(p.Graph)
		if err != nil {
			return "", err
		}
		if err := space.Prepare(in.space, in.start, in.goal); err != nil {
			return "", fmt.Errorf("%w: %w", ErrProblem, err)
		}
		g := in.space.(*core.Graph)
		return fmt.Sprintf("%d vertices, %d edges, %s → %s", g.VertexCount(), g.EdgeCount(), in.start, in.target), nil
	case kindPuzzle:
		in, err := puzzleInstance(p.Puzzle)
		if err != nil {
			return "", err
		}
		note := fmt.Sprintf("%d-puzzle, h(start)=%g", p.Puzzle.Size*p.Puzzle.Size-1, puzzle.Manhattan(in.start, in.target))
		if in.hopeless != nil {
			note += ", unsolvable"
		}
		return note, nil
	}

	return "", fmt.Errorf("%w: unknown kind %q", ErrProblem, p.Kind)
}
