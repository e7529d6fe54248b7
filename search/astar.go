package search

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// AStar searches g from start to goal, expanding the frontier entry with the
// smallest cost-so-far plus heuristic estimate.
//
// Loop:
//  1. Pop the best entry and count it as explored.
//  2. If it is goal, stop. Cost is not re-checked on pop.
//  3. For every passable neighbor, tentative = cost[cur] + 1. If the neighbor
//     has no cost yet or tentative is strictly lower, store it, record cur as
//     predecessor and push (tentative + h, tentative, neighbor).
//
// Stale entries for a coordinate stay in the frontier after a cheaper cost is
// found. With an admissible, consistent heuristic (the default Manhattan
// estimate) the returned route has the minimum number of steps.
//
// Returns ErrNilGrid, ErrInvalidEndpoint or ErrOptionViolation for invalid
// input. An unreachable goal yields Found=false and an empty Path.
//
// Complexity: O(N log N) time, O(R·C + N) space, N = pushes.
func AStar(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	cells := g.Rows() * g.Cols()
	r := &astarRunner{
		g:    g,
		goal: goal,
		opts: o,
		open: newFrontier(cells, o.OnPush),
		prev: make(map[grid.Coord]grid.Coord, cells),
		cost: make(map[grid.Coord]int, cells),
	}
	r.cost[start] = 0
	r.open.push(entry{priority: o.Heuristic(start, goal), cost: 0, at: start})
	r.loop()

	path := Reconstruct(r.prev, start, goal)
	return &Result{
		Algorithm: AlgorithmAStar,
		Path:      path,
		Explored:  r.explored,
		Found:     path != nil,
	}, nil
}

// astarRunner holds the mutable state of one A* run.
type astarRunner struct {
	g        *grid.Grid
	goal     grid.Coord
	opts     Options
	open     *frontier
	prev     map[grid.Coord]grid.Coord
	cost     map[grid.Coord]int // best known steps from start; only ever lowered
	explored int
}

// loop pops until the goal is popped or the frontier is empty.
func (r *astarRunner) loop() {
	for !r.open.empty() {
		cur := r.open.pop().at
		r.explored++
		r.opts.OnPop(cur, r.explored)
		if cur == r.goal {
			return
		}
		r.relax(cur)
	}
}

// relax tries to improve the cost of every passable neighbor of cur.
func (r *astarRunner) relax(cur grid.Coord) {
	base := r.cost[cur]
	for _, n := range r.g.Neighbors(cur) {
		tentative := base + 1
		if old, ok := r.cost[n]; ok && tentative >= old {
			continue
		}
		r.cost[n] = tentative
		r.prev[n] = cur
		r.open.push(entry{
			priority: tentative + r.opts.Heuristic(n, r.goal),
			cost:     tentative,
			at:       n,
		})
	}
}

func errEndpoint(name string, c grid.Coord) error {
	return fmt.Errorf("%w: %s %v", ErrInvalidEndpoint, name, c)
}
