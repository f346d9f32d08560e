package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProblem stores content under name in a fresh temp dir and returns the path.
func writeProblem(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const detourYAML = `
kind: grid
grid:
  rows:
    - "S . ."
    - "# # ."
    - "G . ."
`

func TestLoadProblem_YAMLGrid(t *testing.T) {
	p, err := loadProblem(writeProblem(t, "detour.yaml", detourYAML))
	require.NoError(t, err)
	assert.Equal(t, "detour", p.Name, "name defaults to the file name")
	assert.Equal(t, kindGrid, p.Kind)
	require.NotNil(t, p.Grid)
	assert.Len(t, p.Grid.Rows, 3)
	assert.Nil(t, p.Graph)
	assert.Nil(t, p.Puzzle)
}

func TestLoadProblem_HCLPuzzle(t *testing.T) {
	p, err := loadProblem(writeProblem(t, "one-move.hcl", `
name = "one move"
kind = "puzzle"

puzzle {
  size      = 3
  start     = "1 2 3 4 5 6 7 0 8"
  goal      = goal_tiles(3)
  heuristic = "misplaced"
}
`))
	require.NoError(t, err)
	assert.Equal(t, "one move", p.Name)
	require.NotNil(t, p.Puzzle)
	assert.Equal(t, "1 2 3 4 5 6 7 8 0", p.Puzzle.Goal)
	assert.Equal(t, "misplaced", p.Puzzle.Heuristic)
}

func TestLoadProblem_HCLGraph(t *testing.T) {
	p, err := loadProblem(writeProblem(t, "tree.hcl", `
kind = "graph"

graph {
  start = "A"
  goal  = "B"

  edge {
    from = "A"
    to   = "B"
    cost = 5
  }

  children = {
    A = "C:1"
    C = "B:1"
  }
}
`))
	require.NoError(t, err)
	require.NotNil(t, p.Graph)
	assert.Equal(t, []EdgeSpec{{From: "A", To: "B", Cost: 5}}, p.Graph.Edges)
	assert.Equal(t, map[string]string{"A": "C:1", "C": "B:1"}, p.Graph.Children)
	assert.False(t, p.Graph.Undirected)
}

func TestLoadProblem_GoalTilesRejectsBadSize(t *testing.T) {
	_, err := loadProblem(writeProblem(t, "bad.hcl", `
kind = "puzzle"
puzzle {
  size  = 3
  start = "1 2 3 4 5 6 7 0 8"
  goal  = goal_tiles(1)
}
`))
	require.ErrorIs(t, err, ErrProblem)
}

func TestLoadProblem_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"missing kind", "p.yaml", "grid:\n  rows: [\"SG\"]\n", ErrProblem},
		{"unknown kind", "p.yaml", "kind: maze\n", ErrProblem},
		{"grid kind without grid", "p.yaml", "kind: grid\n", ErrProblem},
		{"bad connectivity", "p.yaml", "kind: grid\ngrid:\n  rows: [\"SG\"]\n  connectivity: 6\n", ErrProblem},
		{"octile on 4-grid", "p.yaml", "kind: grid\ngrid:\n  rows: [\"SG\"]\n  heuristic: octile\n", ErrProblem},
		{"graph without edges", "p.yaml", "kind: graph\ngraph:\n  start: A\n  goal: B\n", ErrProblem},
		{"negative edge", "p.yaml", "kind: graph\ngraph:\n  start: A\n  goal: B\n  edges: [{from: A, to: B, cost: -1}]\n", ErrProblem},
		{"unknown field", "p.yaml", "kind: grid\ncolour: red\n", ErrProblem},
		{"puzzle too large", "p.yaml", "kind: puzzle\npuzzle:\n  size: 16\n  start: \"0\"\n", ErrProblem},
		{"hcl syntax", "p.hcl", "kind = \n", ErrProblem},
		{"json", "p.json", "{}", ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadProblem(writeProblem(t, tc.file, tc.content))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadProblem_MissingFile(t *testing.T) {
	_, err := loadProblem(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
