// Package search defines options, results and sentinel errors for the
// grid search strategies.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidEndpoint is returned when start or goal is out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("search: endpoint is out of bounds or blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm identifies a search strategy.
type Algorithm int

const (
	// AlgorithmGBFS is Greedy Best-First Search.
	AlgorithmGBFS Algorithm = iota
	// AlgorithmAStar is A* search.
	AlgorithmAStar
)

// Algorithms lists every strategy in comparison order.
var Algorithms = []Algorithm{AlgorithmGBFS, AlgorithmAStar}

// String returns the display name used in reports.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmGBFS:
		return "GBFS"
	case AlgorithmAStar:
		return "A star"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "gbfs", "greedy", "astar", "a*" or "a star"
// (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gbfs", "greedy":
		return AlgorithmGBFS, nil
	case "astar", "a*", "a star":
		return AlgorithmAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Heuristic estimates the remaining step count from a to b.
type Heuristic func(a, b grid.Coord) int

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a single search run.
type Options struct {
	// Heuristic estimates distance to the goal. Defaults to grid.Manhattan.
	Heuristic Heuristic

	// OnPush is called for every frontier push with the pushed coordinate
	// and its priority key.
	OnPush func(c grid.Coord, priority int)

	// OnPop is called for every frontier pop with the popped coordinate and
	// the running explored count (1 for the first pop).
	OnPop func(c grid.Coord, explored int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Manhattan heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: grid.Manhattan,
		OnPush:    func(grid.Coord, int) {},
		OnPop:     func(grid.Coord, int) {},
	}
}

// WithHeuristic replaces the distance estimate. A nil function is an
// option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(c grid.Coord, priority int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback run on every frontier pop.
func WithOnPop(fn func(c grid.Coord, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// Result holds the outcome of one search run:
//   - Path: start→goal inclusive, or nil if the goal was not reached.
//   - Explored: number of frontier pops performed.
//   - Found: whether the goal was reached.
type Result struct {
	Algorithm Algorithm
	Path      []grid.Coord
	Explored  int
	Found     bool
}

// Steps returns the number of moves on the path, or -1 if no path was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
