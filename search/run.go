package search

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// Run dispatches to the strategy named by alg.
func Run(alg Algorithm, g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	switch alg {
	case AlgorithmGBFS:
		return GreedyBestFirst(g, start, goal, opts...)
	case AlgorithmAStar:
		return AStar(g, start, goal, opts...)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
