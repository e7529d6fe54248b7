package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// ErrInvalidPath is returned by ValidatePath for a malformed route.
var ErrInvalidPath = errors.New("search: invalid path")

// Reconstruct walks the predecessor map from goal back to start and returns
// the route ordered start→goal. If a coordinate other than start has no
// predecessor the goal was never reached and Reconstruct returns nil.
// start == goal yields [start].
//
// Complexity: O(path length).
func Reconstruct(prev map[grid.Coord]grid.Coord, start, goal grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that path runs from start to goal over passable cells
// of g, with 4-adjacent consecutive steps and no repeated coordinate.
// An empty path is valid and means "no route".
func ValidatePath(g *grid.Grid, path []grid.Coord, start, goal grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return nil
	}
	if path[0] != start {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, goal)
	}
	seen := make(map[grid.Coord]bool, len(path))
	for i, c := range path {
		if g.IsBlocked(c) {
			return fmt.Errorf("%w: step %d at %v is blocked", ErrInvalidPath, i, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: %v repeats at step %d", ErrInvalidPath, c, i)
		}
		seen[c] = true
		if i > 0 && !grid.Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: %v→%v is not a unit move", ErrInvalidPath, path[i-1], c)
		}
	}
	return nil
}
