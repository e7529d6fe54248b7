// Package grid provides an immutable matrix of cell kinds searched with
// 4-directional unit-cost moves.
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular matrix of kinds.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrUnknownSymbol if a cell holds a kind outside {Start, Goal, Blocked, Free}.
// Complexity: O(R×C) time and memory.
func New(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for r, row := range kinds {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, rune(k), r, c)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]CellKind, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]CellKind, w)
		copy(cells[r], kinds[r])
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Parse builds a Grid from text rows, one symbol per cell.
// Whitespace inside a row is ignored, so "R . . X ." and "R..X." are equal.
func Parse(rows []string) (*Grid, error) {
	kinds := make([][]CellKind, 0, len(rows))
	for _, line := range rows {
		row := make([]CellKind, 0, len(line))
		for _, ch := range line {
			if ch == ' ' || ch == '\t' || ch == '\r' {
				continue
			}
			if ch > 0x7f {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, ch)
			}
			row = append(row, CellKind(ch))
		}
		kinds = append(kinds, row)
	}

	return New(kinds)
}

// MustParse is like Parse but panics on error. Intended for fixed maps in
// tests and examples.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the kind stored at c. c must be in bounds.
func (g *Grid) At(c Coord) CellKind {
	return g.cells[c.Row][c.Col]
}

// IsBlocked reports whether c is an impassable cell.
// Out-of-bounds coordinates are treated as blocked.
func (g *Grid) IsBlocked(c Coord) bool {
	return !g.InBounds(c) || g.cells[c.Row][c.Col] == Blocked
}

// Neighbors returns the in-bounds, non-blocked cells one unit step from c,
// in the order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.IsBlocked(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// FindPosition scans the grid row by row and returns the unique Coord whose
// cell equals kind. Returns ErrNotFound if no such cell exists and
// ErrDuplicateSymbol if more than one does.
// Complexity: O(R×C).
func (g *Grid) FindPosition(kind CellKind) (Coord, error) {
	var (
		found Coord
		count int
	)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != kind {
				continue
			}
			if count == 0 {
				found = Coord{Row: r, Col: c}
			}
			count++
		}
	}
	switch count {
	case 0:
		return Coord{}, fmt.Errorf("%w: %q", ErrNotFound, rune(kind))
	case 1:
		return found, nil
	default:
		return Coord{}, fmt.Errorf("%w: %q occurs %d times", ErrDuplicateSymbol, rune(kind), count)
	}
}

// Endpoints returns the Start and Goal coordinates, failing on the first
// lookup error.
func (g *Grid) Endpoints() (start, goal Coord, err error) {
	if start, err = g.FindPosition(Start); err != nil {
		return Coord{}, Coord{}, err
	}
	if goal, err = g.FindPosition(Goal); err != nil {
		return Coord{}, Coord{}, err
	}
	return start, goal, nil
}

// Kinds returns a deep copy of the cell matrix.
func (g *Grid) Kinds() [][]CellKind {
	out := make([][]CellKind, g.rows)
	for r := range g.cells {
		out[r] = make([]CellKind, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// String renders the grid as newline-separated symbol rows.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteByte(byte(k))
		}
	}
	return sb.String()
}
