// Package filtration - direction tags, tunable options and error definitions.
package filtration

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the filtration sweep.
var (
	// ErrGraphNil is returned if a nil reduced graph is passed.
	ErrGraphNil = errors.New("filtration: graph is nil")

	// ErrInvalidStep is returned for an explicit step ≤ 0. The step is never
	// silently clamped.
	ErrInvalidStep = errors.New("filtration: step must be a positive integer")

	// ErrBadDirection is returned for a Direction outside the defined enum.
	ErrBadDirection = errors.New("filtration: unknown filtration direction")

	// ErrMissingDegree is returned when a reduced-graph vertex has no entry
	// in the full-degree table. The table is frozen before reduction, so a
	// missing entry means a pipeline invariant was broken upstream.
	ErrMissingDegree = errors.New("filtration: vertex missing from full-degree table")
)

// Direction selects the sweep orientation and its membership predicate.
type Direction int

const (
	// SuperLevel descends from max to min degree; a vertex survives at
	// threshold t iff its full-graph degree ≥ t.
	SuperLevel Direction = iota

	// SubLevel ascends from min to max degree; a vertex survives at
	// threshold t iff its full-graph degree ≤ t.
	SubLevel
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case SuperLevel:
		return "super-level"
	case SubLevel:
		return "sub-level"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// valid reports whether d is one of the defined directions.
func (d Direction) valid() bool { return d == SuperLevel || d == SubLevel }

// MonotoneCompatible reports whether degree-domination pruning is sound
// ahead of a sweep in this direction: a dominating vertex must enter the
// filtration no later than any vertex it dominates. Degree under SuperLevel
// satisfies that (superset neighborhood ⇒ degree at least as large ⇒
// admitted at least as early); SubLevel inverts the order and does not.
func (d Direction) MonotoneCompatible() bool { return d == SuperLevel }

// autoStepSpan bounds the number of filtration points when no explicit
// step is configured: step = 1 while the degree range fits, otherwise
// floor(range/autoStepSpan).
const autoStepSpan = 100

// Point is the simplex proxy triple of one filtration graph.
type Point struct {
	// Threshold is the activation value this point was taken at.
	Threshold int

	// Nodes, Edges and Triangles are the 0-, 1- and 2-simplex proxy counts
	// of the induced filtration graph. Triangles is the triangle degree sum,
	// three times the true triangle count by construction.
	Nodes     int
	Edges     int
	Triangles int
}

// Result holds the outcome of one sweep in threshold order.
type Result struct {
	// Direction is the policy the sweep ran under.
	Direction Direction

	// Step is the resolved threshold increment (0 only for the degenerate
	// empty-graph sweep, which visits no thresholds).
	Step int

	// Points are the per-threshold triples, ordered by sweep direction.
	Points []Point
}

// Option configures a sweep via functional arguments. An invalid option is
// recorded internally and surfaced when Sweep is invoked.
type Option func(*Options)

// Options holds the immutable sweep parameters. The struct is resolved once
// at the top of Sweep and never mutated mid-sweep.
type Options struct {
	// Direction selects predicate and iteration order. Default SuperLevel.
	Direction Direction

	// Step is the threshold increment; 0 selects the automatic policy
	// (1 while the degree range ≤ 100, else floor(range/100)).
	Step int

	// Ctx allows caller-level cancellation between thresholds.
	Ctx context.Context

	// Workers > 0 computes thresholds on that many goroutines; results are
	// still collected in threshold order. 0 keeps the sweep sequential.
	Workers int

	// OnThreshold, if set, observes each point in threshold order.
	OnThreshold func(Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the sweep defaults: SuperLevel direction,
// automatic step policy, background context, sequential execution.
func DefaultOptions() Options {
	return Options{
		Direction: SuperLevel,
		Step:      0,
		Ctx:       context.Background(),
		Workers:   0,
	}
}

// WithDirection selects the sweep policy; an unknown value is surfaced as
// ErrBadDirection when Sweep runs.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if !d.valid() {
			o.err = fmt.Errorf("%w: %d", ErrBadDirection, int(d))
			return
		}
		o.Direction = d
	}
}

// WithStep sets an explicit threshold increment.
//
//	s > 0: use s verbatim
//	s ≤ 0: invalid option → ErrInvalidStep (never clamped)
func WithStep(s int) Option {
	return func(o *Options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidStep, s)
			return
		}
		o.Step = s
	}
}

// WithContext sets a custom context checked between thresholds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fans the per-threshold work out over n goroutines. Results
// stay ordered by threshold, not completion. n ≤ 0 keeps the sweep
// sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithOnThreshold registers a callback invoked for each point, in
// threshold order, after the point is computed.
func WithOnThreshold(fn func(Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnThreshold = fn
		}
	}
}
