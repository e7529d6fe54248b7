// Package grid models a small static delivery map as an immutable 2D matrix
// of cell kinds, ready to be searched with 4-directional unit-cost moves.
//
// What:
//
//   - Grid wraps a rectangular matrix of CellKind values: Start ('R'),
//     Goal ('C'), Blocked ('X') and Free ('.').
//   - Neighbors returns the passable cells one step away, always in the
//     order up, down, left, right.
//   - FindPosition and Endpoints locate the unique Start and Goal cells.
//   - Manhattan is the admissible, consistent distance estimate for
//     4-directional movement.
//
// Why:
//
//   - Search code never touches raw symbols or bounds checks.
//   - The neighbor order is fixed, so every search over the same Grid is
//     reproducible down to the number of explored nodes.
//
// Complexity:
//
//   - New / Parse:   O(R×C) time and memory (deep copy).
//   - Neighbors:     O(1).
//   - FindPosition:  O(R×C).
//   - Reachable:     O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a cell symbol is not one of R, C, X, '.'.
//   - ErrNotFound: the requested kind does not occur in the grid.
//   - ErrDuplicateSymbol: the requested kind occurs more than once.
package grid
