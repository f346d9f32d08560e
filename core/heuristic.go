package core

import "unicode/utf8"

// SymbolDistance estimates the distance between two labels as the absolute
// difference of their first runes ('A'→'D' = 3). It is cheap and satisfies
// h(goal,goal) = 0, but it knows nothing about edge weights and is NOT
// admissible in general: with it A* is complete but may return a costlier path.
// Use space.Zero when optimality matters.
func SymbolDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	ra, _ := utf8.DecodeRuneInString(a)
	rb, _ := utf8.DecodeRuneInString(b)
	d := int(ra) - int(rb)
	if d < 0 {
		d = -d
	}
	return float64(d)
}
