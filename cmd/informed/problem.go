package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/informed/puzzle"
)

// Problem kinds.
const (
	kindGrid   = "grid"
	kindGraph  = "graph"
	kindPuzzle = "puzzle"
)

var (
	// ErrProblem wraps every problem file that fails to decode or validate.
	ErrProblem = errors.New("informed: invalid problem")
	// ErrFormat indicates a problem file extension other than .yaml, .yml or .hcl.
	ErrFormat = errors.New("informed: unsupported problem format")
)

// Problem is the decoded content of a problem file. Exactly one of Grid,
// Graph or Puzzle is set, matching Kind.
type Problem struct {
	Name   string      `yaml:"name" hcl:"name,optional"`
	Kind   string      `yaml:"kind" hcl:"kind" validate:"required,oneof=grid graph puzzle"`
	Grid   *GridSpec   `yaml:"grid,omitempty" hcl:"grid,block" validate:"required_if=Kind grid"`
	Graph  *GraphSpec  `yaml:"graph,omitempty" hcl:"graph,block" validate:"required_if=Kind graph"`
	Puzzle *PuzzleSpec `yaml:"puzzle,omitempty" hcl:"puzzle,block" validate:"required_if=Kind puzzle"`
}

// GridSpec describes an obstacle grid as a textual map of '.', '#', 'S' and 'G'.
type GridSpec struct {
	Rows         []string `yaml:"rows" hcl:"rows" validate:"required,min=1,dive,required"`
	Connectivity int      `yaml:"connectivity" hcl:"connectivity,optional" validate:"omitempty,oneof=4 8"`
	DiagonalCost float64  `yaml:"diagonal_cost" hcl:"diagonal_cost,optional" validate:"gte=0"`
	Heuristic    string   `yaml:"heuristic" hcl:"heuristic,optional" validate:"omitempty,oneof=manhattan octile chebyshev zero"`
}

// GraphSpec describes a labelled weighted graph by explicit edges, by
// "child:cost" lists per parent, or both.
type GraphSpec struct {
	Undirected bool              `yaml:"undirected" hcl:"undirected,optional"`
	Start      string            `yaml:"start" hcl:"start" validate:"required"`
	Goal       string            `yaml:"goal" hcl:"goal" validate:"required"`
	Heuristic  string            `yaml:"heuristic" hcl:"heuristic,optional" validate:"omitempty,oneof=zero symbol"`
	Edges      []EdgeSpec        `yaml:"edges" hcl:"edge,block" validate:"dive"`
	Children   map[string]string `yaml:"children" hcl:"children,optional"`
}

// EdgeSpec is one weighted edge.
type EdgeSpec struct {
	From string  `yaml:"from" hcl:"from" validate:"required"`
	To   string  `yaml:"to" hcl:"to" validate:"required"`
	Cost float64 `yaml:"cost" hcl:"cost" validate:"gte=0"`
}

// PuzzleSpec describes a sliding-tile instance. Goal defaults to the solved board.
type PuzzleSpec struct {
	Size      int    `yaml:"size" hcl:"size" validate:"required,min=2,max=15"`
	Start     string `yaml:"start" hcl:"start" validate:"required"`
	Goal      string `yaml:"goal" hcl:"goal,optional"`
	Heuristic string `yaml:"heuristic" hcl:"heuristic,optional" validate:"omitempty,oneof=manhattan misplaced zero"`
}

var problemValidate = validator.New(validator.WithRequiredStructEnabled())

// loadProblem reads, decodes and validates the problem file at path.
func loadProblem(path string) (*Problem, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	var p Problem
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrProblem, path, err)
		}
	case ".hcl":
		if err := hclsimple.Decode(path, src, problemEvalContext(), &p); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrProblem, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &p, nil
}

// Validate runs the struct tag rules, then the checks tags cannot express.
func (p *Problem) Validate() error {
	if err := problemValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrProblem, err)
	}
	switch p.Kind {
	case kindGraph:
		if len(p.Graph.Edges) == 0 && len(p.Graph.Children) == 0 {
			return fmt.Errorf("%w: graph needs edges or children", ErrProblem)
		}
	case kindGrid:
		if p.Grid.Heuristic == "octile" && p.Grid.Connectivity != 8 {
			return fmt.Errorf("%w: octile heuristic needs connectivity 8", ErrProblem)
		}
	}

	return nil
}

// goalTilesFunc is the HCL function goal_tiles(size), returning the solved
// board of that size as a tile string, e.g. goal_tiles(3) = "1 2 3 4 5 6 7 8 0".
var goalTilesFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "size", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var size int
		if err := gocty.FromCtyValue(args[0], &size); err != nil {
			return cty.NilVal, err
		}
		b, err := puzzle.Solved(size)
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(b.String()), nil
	},
})

func problemEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"goal_tiles": goalTilesFunc,
		},
	}
}
