package search

import (
	"github.com/katalvlaran/gridroute/grid"
)

// GreedyBestFirst searches g from start to goal, always expanding the
// frontier entry with the smallest heuristic estimate to goal.
//
// Loop:
//  1. Pop the best entry and count it as explored.
//  2. If it is goal, stop. The goal is never marked visited.
//  3. Mark it visited and push every unvisited passable neighbor, recording
//     the popped cell as that neighbor's predecessor.
//
// A coordinate may sit in the frontier more than once; its predecessor is the
// cell that discovered it last before it was expanded. The route is not
// guaranteed to be shortest.
//
// Returns ErrNilGrid, ErrInvalidEndpoint or ErrOptionViolation for invalid
// input. An unreachable goal yields Found=false and an empty Path.
//
// Complexity: O(N log N) time, O(R·C + N) space, N = pushes ≤ 4·R·C.
func GreedyBestFirst(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	cells := g.Rows() * g.Cols()
	w := &greedyWalker{
		g:        g,
		goal:     goal,
		opts:     o,
		open:     newFrontier(cells, o.OnPush),
		prev:     make(map[grid.Coord]grid.Coord, cells),
		visited:  make(map[grid.Coord]bool, cells),
		explored: 0,
	}
	w.open.push(entry{priority: o.Heuristic(start, goal), at: start})
	w.loop()

	path := Reconstruct(w.prev, start, goal)
	return &Result{
		Algorithm: AlgorithmGBFS,
		Path:      path,
		Explored:  w.explored,
		Found:     path != nil,
	}, nil
}

// greedyWalker holds the mutable state of one GBFS run.
type greedyWalker struct {
	g        *grid.Grid
	goal     grid.Coord
	opts     Options
	open     *frontier
	prev     map[grid.Coord]grid.Coord
	visited  map[grid.Coord]bool
	explored int
}

// loop pops until the goal is popped or the frontier is empty.
func (w *greedyWalker) loop() {
	for !w.open.empty() {
		cur := w.open.pop().at
		w.explored++
		w.opts.OnPop(cur, w.explored)
		if cur == w.goal {
			return
		}
		w.visited[cur] = true
		w.expand(cur)
	}
}

// expand pushes every unvisited passable neighbor of cur.
func (w *greedyWalker) expand(cur grid.Coord) {
	for _, n := range w.g.Neighbors(cur) {
		if w.visited[n] {
			continue
		}
		w.prev[n] = cur
		w.open.push(entry{priority: w.opts.Heuristic(n, w.goal), at: n})
	}
}

// prepare applies options and validates the grid and both endpoints.
func prepare(g *grid.Grid, start, goal grid.Coord, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if g.IsBlocked(start) {
		return Options{}, errEndpoint("start", start)
	}
	if g.IsBlocked(goal) {
		return Options{}, errEndpoint("goal", goal)
	}
	return o, nil
}
