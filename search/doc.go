// Package search implements Greedy Best-First Search and A* over a grid.Grid
// with 4-directional unit-cost moves.
//
// Overview:
//
//   - GreedyBestFirst orders its frontier purely by the heuristic estimate to
//     the goal. It is fast on open maps but does not guarantee a shortest route.
//   - AStar orders its frontier by accumulated cost plus the heuristic. With
//     the default Manhattan heuristic it always returns a minimum-step route.
//   - Both return a Result holding the start→goal path (empty when the goal is
//     unreachable) and the number of frontier pops ("nodes explored").
//
// Determinism:
//
//   - Neighbors are expanded in the order up, down, left, right.
//   - Frontier ties are broken by (priority, cost, row, col), lexicographically.
//   - Running a search twice on the same Grid yields the same path and count.
//
// Frontier semantics:
//
//   - GBFS may hold several entries for one coordinate. Every pop is counted,
//     including pops of coordinates that were already expanded; re-expansion
//     only pushes neighbors that are still unvisited.
//   - A* keeps stale entries after a cheaper cost is found and does not
//     re-check cost on pop. The first pop of the goal ends the search.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of pushes ≤ 4·R·C.
//   - Space: O(R·C) for predecessor and cost maps plus the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         a nil *grid.Grid was passed.
//   - ErrInvalidEndpoint: start or goal is out of bounds or blocked.
//   - ErrOptionViolation: an Option was given an invalid value.
//   - ErrUnknownAlgorithm: Run / ParseAlgorithm got an unsupported name.
//
// An unreachable goal is not an error: Result.Found is false, Path is empty
// and Explored still reports the work performed.
package search
