package compare

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// Run locates the Start and Goal cells of g, then runs GBFS followed by A*
// on that pair, timing each call with the configured clock.
//
// Missing or duplicated endpoints (grid.ErrNotFound, grid.ErrDuplicateSymbol)
// abort the run before any search starts. An unreachable goal is reported
// as Found=false with an empty path.
func Run(g *grid.Grid, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, goal, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	if o.RunID == "" {
		o.RunID = uuid.New().String()
	}

	rep := &Report{RunID: o.RunID, Grid: g, Start: start, Goal: goal}
	if rep.GBFS, err = timed(o, search.AlgorithmGBFS, g, start, goal); err != nil {
		return nil, err
	}
	if rep.AStar, err = timed(o, search.AlgorithmAStar, g, start, goal); err != nil {
		return nil, err
	}
	return rep, nil
}

// timed runs one strategy between two clock samples.
func timed(o Options, alg search.Algorithm, g *grid.Grid, start, goal grid.Coord) (Outcome, error) {
	begin := o.Clock()
	res, err := search.Run(alg, g, start, goal, o.Search...)
	elapsed := o.Clock().Sub(begin)
	if err != nil {
		return Outcome{}, err
	}
	o.Logger.Printf("run=%s alg=%q found=%t steps=%d explored=%d elapsed=%s",
		o.RunID, alg, res.Found, res.Steps(), res.Explored, elapsed)

	return Outcome{
		Algorithm: alg,
		Path:      res.Path,
		Explored:  res.Explored,
		Found:     res.Found,
		Elapsed:   elapsed,
	}, nil
}
