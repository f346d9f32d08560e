package gridgraph

import "math"

// Manhattan is |dx| + |dy|. Admissible and consistent under Conn4 with unit costs.
func Manhattan(a, b Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Octile is the exact distance on an empty Conn8 grid with unit orthogonal
// and √2 diagonal steps. Admissible when DiagonalCost is at least √2.
func Octile(a, b Cell) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := min(dx, dy), max(dx, dy)
	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

// Chebyshev is max(|dx|, |dy|); admissible under Conn8 for any DiagonalCost ≥ 1.
func Chebyshev(a, b Cell) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
