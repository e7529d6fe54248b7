// Package compare runs GBFS and A* on the same map and collects timing and
// exploration figures for presentation.
package compare

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("compare: grid is nil")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("compare: invalid option supplied")

// Clock returns the current time. Sampled immediately before and after each
// search call.
type Clock func() time.Time

// Option configures a comparison run.
type Option func(*Options)

// Options holds the harness configuration.
type Options struct {
	// Clock defaults to time.Now.
	Clock Clock
	// Logger receives one line per finished search. Defaults to a discarding logger.
	Logger *log.Logger
	// RunID labels the report. Defaults to a fresh random UUID.
	RunID string
	// Search options passed to both strategies.
	Search []search.Option

	err error
}

// DefaultOptions returns Options with the wall clock and a silent logger.
func DefaultOptions() Options {
	return Options{
		Clock:  time.Now,
		Logger: log.New(io.Discard, "", 0),
	}
}

// WithClock overrides the time source. A nil clock is an option violation.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: clock cannot be nil", ErrOptionViolation)
			return
		}
		o.Clock = c
	}
}

// WithLogger sets the logger for per-search progress lines.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID fixes the report identifier instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithSearchOptions forwards options to both search strategies.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Outcome is one strategy's contribution to a Report.
type Outcome struct {
	Algorithm search.Algorithm
	Path      []grid.Coord
	Explored  int
	Found     bool
	Elapsed   time.Duration
}

// Millis returns Elapsed in milliseconds.
func (o Outcome) Millis() float64 {
	return float64(o.Elapsed) / float64(time.Millisecond)
}

// Steps returns the number of moves, or -1 if the goal was not reached.
func (o Outcome) Steps() int {
	if !o.Found {
		return -1
	}
	return len(o.Path) - 1
}

// Report bundles both outcomes for one start/goal pair.
type Report struct {
	RunID       string
	Grid        *grid.Grid
	Start, Goal grid.Coord
	GBFS        Outcome
	AStar       Outcome
}

// Outcomes returns GBFS then A*.
func (r *Report) Outcomes() []Outcome {
	return []Outcome{r.GBFS, r.AStar}
}
