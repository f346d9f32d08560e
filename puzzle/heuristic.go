package puzzle

// Manhattan sums, over every non-blank tile, the grid distance between its
// cell in state and its cell in goal. Boards of different sizes yield 0.
func Manhattan(state, goal Board) float64 {
	if state.size != goal.size || state.size == 0 {
		return 0
	}
	n := state.size
	pos := goal.positions()
	d := 0
	for i := 0; i < len(state.tiles); i++ {
		t := state.tiles[i]
		if t == 0 {
			continue
		}
		j := pos[t]
		d += absInt(i/n-j/n) + absInt(i%n-j%n)
	}
	return float64(d)
}

// Misplaced counts non-blank tiles that are not on their goal cell.
func Misplaced(state, goal Board) float64 {
	if state.size != goal.size {
		return 0
	}
	d := 0
	for i := 0; i < len(state.tiles); i++ {
		if state.tiles[i] != 0 && state.tiles[i] != goal.tiles[i] {
			d++
		}
	}
	return float64(d)
}

// Solvable reports whether goal can be reached from start. A move swaps the
// blank with a neighbor, flipping the permutation parity and moving the blank
// by one cell, so both parities must agree.
func Solvable(start, goal Board) bool {
	if start.size != goal.size || start.IsZero() {
		return false
	}
	n := start.size
	pos := goal.positions()
	// perm[i] = goal cell of the tile sitting in cell i
	perm := make([]int, len(start.tiles))
	for i := 0; i < len(start.tiles); i++ {
		perm[i] = pos[start.tiles[i]]
	}
	// parity via cycle decomposition
	swaps := 0
	seen := make([]bool, len(perm))
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		swaps += length - 1
	}
	sb, gb := start.Blank(), goal.Blank()
	blankDist := absInt(sb/n-gb/n) + absInt(sb%n-gb%n)

	return swaps%2 == blankDist%2
}

// positions maps tile value → cell index.
func (b Board) positions() []int {
	pos := make([]int, len(b.tiles))
	for i := 0; i < len(b.tiles); i++ {
		pos[b.tiles[i]] = i
	}
	return pos
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
