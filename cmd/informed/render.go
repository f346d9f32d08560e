package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/informed/gridgraph"
	"github.com/katalvlaran/informed/puzzle"
	"github.com/katalvlaran/informed/space"
)

// report is what solve prints, as styled text or YAML.
type report struct {
	RunID   string      `yaml:"run_id"`
	Problem string      `yaml:"problem"`
	Kind    string      `yaml:"kind"`
	Engine  string      `yaml:"engine"`
	Outcome string      `yaml:"outcome"`
	Cost    float64     `yaml:"cost"`
	Path    []string    `yaml:"path,omitempty"`
	Actions []string    `yaml:"actions,omitempty"`
	Stats   statsReport `yaml:"stats"`
	Optimal *bool       `yaml:"optimal,omitempty"`
	Error   string      `yaml:"error,omitempty"`

	// Unverified is set when --verify gave up at its state bound.
	Unverified bool `yaml:"unverified,omitempty"`

	// Picture is the rendered grid, boards or chain of the path.
	Picture string `yaml:"-"`
}

type statsReport struct {
	Expanded    int     `yaml:"expanded"`
	Generated   int     `yaml:"generated"`
	Reopened    int     `yaml:"reopened,omitempty"`
	Pruned      int     `yaml:"pruned,omitempty"`
	MaxFrontier int     `yaml:"max_frontier"`
	Iterations  int     `yaml:"iterations,omitempty"`
	Threshold   float64 `yaml:"threshold,omitempty"`
	Elapsed     string  `yaml:"elapsed"`
}

func newReport[S comparable](name, kind, engine, outcome string, res space.Result[S], elapsed time.Duration) *report {
	rep := &report{
		Problem: name,
		Kind:    kind,
		Engine:  engine,
		Outcome: outcome,
		Cost:    res.Cost,
		Actions: res.Actions,
		Stats: statsReport{
			Expanded:    res.Stats.Expanded,
			Generated:   res.Stats.Generated,
			Reopened:    res.Stats.Reopened,
			Pruned:      res.Stats.Pruned,
			MaxFrontier: res.Stats.MaxFrontier,
			Iterations:  res.Stats.Iterations,
			Threshold:   res.Stats.Threshold,
			Elapsed:     elapsed.Round(time.Microsecond).String(),
		},
	}
	for _, s := range res.Path {
		rep.Path = append(rep.Path, fmt.Sprint(s))
	}

	return rep
}

// Terminal palette.
var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorWall   = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
	colorWarn   = lipgloss.Color("#F4D03F")
)

var styles = struct {
	Title lipgloss.Style
	Label lipgloss.Style
	OK    lipgloss.Style
	Fail  lipgloss.Style
	Warn  lipgloss.Style
	Box   lipgloss.Style
	Path  lipgloss.Style
	Wall  lipgloss.Style
	Tile  lipgloss.Style
	Blank lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Label: lipgloss.NewStyle().Width(10),
	OK:    lipgloss.NewStyle().Foreground(colorAccent),
	Fail:  lipgloss.NewStyle().Foreground(colorError),
	Warn:  lipgloss.NewStyle().Foreground(colorWarn),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorWall).
		Padding(0, 1),
	Path:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Wall:  lipgloss.NewStyle().Foreground(colorWall),
	Tile:  lipgloss.NewStyle().Align(lipgloss.Right),
	Blank: lipgloss.NewStyle().Foreground(colorWall),
}

// renderText formats rep for the terminal.
func renderText(rep *report) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("%s · %s · %s", rep.Problem, rep.Kind, rep.Engine)))
	b.WriteByte('\n')
	line := func(label, value string) {
		b.WriteString(styles.Label.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	if rep.Outcome == outcomeFound {
		line("outcome", styles.OK.Render("✓ "+rep.Outcome))
		line("cost", strconv.FormatFloat(rep.Cost, 'g', -1, 64))
		line("steps", strconv.Itoa(len(rep.Path)-1))
		if len(rep.Actions) > 0 {
			line("actions", strings.Join(rep.Actions, " "))
		}
	} else {
		line("outcome", styles.Fail.Render("✗ "+rep.Outcome))
		line("error", rep.Error)
	}
	st := rep.Stats
	stats := fmt.Sprintf("expanded=%d generated=%d max_frontier=%d", st.Expanded, st.Generated, st.MaxFrontier)
	if st.Reopened > 0 {
		stats += fmt.Sprintf(" reopened=%d", st.Reopened)
	}
	if st.Iterations > 0 {
		stats += fmt.Sprintf(" contours=%d threshold=%g pruned=%d", st.Iterations, st.Threshold, st.Pruned)
	}
	line("stats", stats)
	line("elapsed", st.Elapsed)
	if rep.Optimal != nil {
		if *rep.Optimal {
			line("verified", styles.OK.Render("✓ optimal"))
		} else {
			line("verified", styles.Warn.Render("⚠ not optimal"))
		}
	}
	if rep.Unverified {
		line("verified", styles.Warn.Render("⚠ skipped, state bound reached"))
	}
	if rep.Picture != "" {
		b.WriteString(styles.Box.Render(rep.Picture))
		b.WriteByte('\n')
	}

	return b.String()
}

// renderGrid draws the map with the path cells marked '*'.
func renderGrid(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, path space.Path[gridgraph.Cell]) string {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	rows := make([]string, gg.Height)
	for y := 0; y < gg.Height; y++ {
		var row strings.Builder
		for x := 0; x < gg.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			switch {
			case c == start:
				row.WriteString(styles.Path.Render(string(gridgraph.SymbolStart)))
			case c == goal:
				row.WriteString(styles.Path.Render(string(gridgraph.SymbolGoal)))
			case !gg.Passable(x, y):
				row.WriteString(styles.Wall.Render(string(gridgraph.SymbolWall)))
			case onPath[c]:
				row.WriteString(styles.Path.Render("*"))
			default:
				row.WriteString(string(gridgraph.SymbolFree))
			}
		}
		rows[y] = row.String()
	}

	return strings.Join(rows, "\n")
}

// maxBoards is the longest path drawn board by board; longer paths show
// only the first and last boards.
const maxBoards = 5

// renderBoards lays the boards of the path side by side.
func renderBoards(path space.Path[puzzle.Board]) string {
	if len(path) > maxBoards {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			renderBoard(path[0]),
			fmt.Sprintf("  → %d moves →  ", len(path)-1),
			renderBoard(path[len(path)-1]),
		)
	}
	boards := make([]string, 0, 2*len(path))
	for i, b := range path {
		if i > 0 {
			boards = append(boards, "  →  ")
		}
		boards = append(boards, renderBoard(b))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, boards...)
}

func renderBoard(b puzzle.Board) string {
	n := b.Size()
	width := len(strconv.Itoa(n*n - 1))
	rows := make([]string, n)
	for r := 0; r < n; r++ {
		cells := make([]string, n)
		for c := 0; c < n; c++ {
			tile := b.At(r, c)
			if tile == 0 {
				cells[c] = styles.Blank.Width(width).Render("·")
				continue
			}
			cells[c] = styles.Tile.Width(width).Render(strconv.Itoa(tile))
		}
		rows[r] = strings.Join(cells, " ")
	}

	return strings.Join(rows, "\n")
}

// renderChain prints the path as "A → C → B".
func renderChain[S comparable](path space.Path[S]) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = fmt.Sprint(s)
	}

	return strings.Join(parts, " → ")
}
