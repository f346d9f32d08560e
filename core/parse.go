package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Child is one "child:cost" entry of a tree description.
type Child struct {
	ID   string
	Cost float64
}

// ParseChildren parses a comma-separated "child:cost" list such as
// "B:5, C:1". An empty or blank string yields no children.
// Returns ErrBadChildList for entries without a label or a numeric cost.
func ParseChildren(s string) ([]Child, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Child, 0, len(parts))
	for _, p := range parts {
		id, cost, ok := strings.Cut(strings.TrimSpace(p), ":")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadChildList, p)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(cost), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadChildList, p, err)
		}
		out = append(out, Child{ID: id, Cost: w})
	}

	return out, nil
}

// AddChildren adds parent→child edges for every entry, creating parent even
// when the list is empty (a leaf).
func (g *Graph) AddChildren(parent string, children []Child) error {
	if err := g.AddVertex(parent); err != nil {
		return err
	}
	for _, c := range children {
		if _, err := g.AddEdge(parent, c.ID, c.Cost); err != nil {
			return err
		}
	}
	return nil
}
