package grid

// Reachable counts the passable cells 4-connected to from, including from
// itself. Returns 0 when from is blocked or out of bounds.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and the queue.
func (g *Grid) Reachable(from Coord) int {
	if g.IsBlocked(from) {
		return 0
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(from)] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return len(queue)
}

// index maps c to a row-major index: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
