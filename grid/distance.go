package grid

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|, the exact step count
// between a and b on an obstacle-free 4-connected grid.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by one unit along exactly one axis.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
