package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/informed/space"
)

var (
	_ space.Space[string]     = (*Graph)(nil)
	_ space.Validator[string] = (*Graph)(nil)
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates the edge from→to with the given weight, creating missing
// endpoints. Undirected graphs also expose the edge from `to`.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock, check the multi-edge constraint.
//  3. Ensure endpoints, generate the edge ID, append to adjacency.
//
// Complexity: O(d) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return "", fmt.Errorf("%w: %s→%s weight=%g", ErrBadWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.nextEdgeID++
	e := &Edge{ID: "e" + strconv.FormatUint(g.nextEdgeID, 10), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge leads from→to (either way when undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if other(e, from) == to {
			return true
		}
	}
	return false
}

// other returns the endpoint of e opposite to id.
func other(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Neighbors returns the edges leaving id in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// The returned edges are live catalog entries; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Validate returns ErrVertexNotFound when id is not a vertex.
func (g *Graph) Validate(id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return nil
}

// Successors implements space.Space: one successor per outgoing edge, in
// insertion order, labelled with the reached vertex.
func (g *Graph) Successors(id string) ([]space.Successor[string], error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]space.Successor[string], len(edges))
	for i, e := range edges {
		to := other(e, id)
		out[i] = space.Successor[string]{State: to, Cost: e.Weight, Action: to}
	}

	return out, nil
}
