package grid

import "fmt"

// CellKind is the content of a single grid cell. Its value is the symbol
// used when a grid is parsed or printed.
type CellKind byte

const (
	// Free is an open, passable cell.
	Free CellKind = '.'
	// Blocked is an impassable cell.
	Blocked CellKind = 'X'
	// Start marks the courier's position. Passable.
	Start CellKind = 'R'
	// Goal marks the customer's position. Passable.
	Goal CellKind = 'C'
	// Path marks a cell on a rendered route. Never accepted as grid input.
	Path CellKind = '*'
)

// Valid reports whether k may appear in a Grid.
func (k CellKind) Valid() bool {
	switch k {
	case Free, Blocked, Start, Goal:
		return true
	}
	return false
}

// String returns the single-character symbol of k.
func (k CellKind) String() string { return string(rune(k)) }

// Coord is a (row, column) position. Coordinates compare by value and are
// safe to use as map keys.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// offsets lists the 4-directional moves in neighbor order: up, down, left, right.
// Searches break frontier ties through this order, so it must not change.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular map of cell kinds.
// cells[r][c] holds the kind at Coord{r, c}.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
}

// DefaultCity is the reference delivery map: courier at (0,0), customer at (2,4).
var DefaultCity = []string{
	"R..X.",
	".X...",
	"...XC",
}
