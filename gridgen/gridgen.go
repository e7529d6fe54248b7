// Package gridgen generates random delivery maps for benchmarks and the
// comparison CLI. Generation is deterministic for a given Config.
package gridgen

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/gridroute/grid"
)

// ErrBadConfig is returned for non-positive dimensions, a density outside
// [0, 1), or a map too small to hold both endpoints.
var ErrBadConfig = errors.New("gridgen: invalid config")

// Config describes the map to generate.
type Config struct {
	Rows, Cols int
	// Density is the probability that a non-endpoint cell is Blocked.
	Density float64
	// Seed fixes the random stream; equal configs yield equal maps.
	Seed uint64
}

// Generate builds a Rows×Cols grid. Start and Goal are placed on two distinct
// cells chosen uniformly at random; every other cell is Blocked with
// probability Density. The goal is not guaranteed to be reachable.
func Generate(cfg Config) (*grid.Grid, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.Rows*cfg.Cols < 2 {
		return nil, fmt.Errorf("%w: need at least two cells", ErrBadConfig)
	}
	if cfg.Density < 0 || cfg.Density >= 1 {
		return nil, fmt.Errorf("%w: density %v not in [0,1)", ErrBadConfig, cfg.Density)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	kinds := make([][]grid.CellKind, cfg.Rows)
	for r := range kinds {
		kinds[r] = make([]grid.CellKind, cfg.Cols)
		for c := range kinds[r] {
			kinds[r][c] = grid.Free
			if rng.Float64() < cfg.Density {
				kinds[r][c] = grid.Blocked
			}
		}
	}

	n := cfg.Rows * cfg.Cols
	s := rng.Intn(n)
	g := rng.Intn(n - 1)
	if g >= s {
		g++
	}
	kinds[s/cfg.Cols][s%cfg.Cols] = grid.Start
	kinds[g/cfg.Cols][g%cfg.Cols] = grid.Goal

	return grid.New(kinds)
}
