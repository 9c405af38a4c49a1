// Package phcost collapses per-threshold simplex proxy counts into a single
// scalar: Σ_t (nodes + edges + triangles)^k. The default exponent k=3
// mirrors the cubic cost of simplicial boundary-matrix reduction, so the
// scalar orders candidate graphs by expected persistent-homology effort.
//
// The aggregation is a pure, order-independent sum; it needs only the
// relative ordering of candidates, which is why the triple-counted triangle
// proxy upstream is carried as-is rather than divided out.
package phcost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/phlite/filtration"
)

// ErrBadExponent is returned for a cost exponent below 1.
var ErrBadExponent = errors.New("phcost: exponent must be a positive integer")

// DefaultExponent matches the cubic boundary-matrix reduction cost model.
const DefaultExponent = 3

// Option configures Estimate via functional arguments.
type Option func(*Options)

// Options holds the estimator parameters.
type Options struct {
	// Exponent is the power each per-threshold simplex total is raised to.
	Exponent int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the estimator defaults (cubic cost model).
func DefaultOptions() Options {
	return Options{Exponent: DefaultExponent}
}

// WithExponent overrides the cost exponent; k < 1 is surfaced as
// ErrBadExponent when Estimate runs.
func WithExponent(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadExponent, k)
			return
		}
		o.Exponent = k
	}
}

// Estimate reduces the per-threshold points to the scalar PH cost proxy.
// An empty sweep (no thresholds) costs zero.
// Complexity: O(len(points)).
func Estimate(points []filtration.Point, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	total := 0.0
	for _, p := range points {
		simplices := float64(p.Nodes + p.Edges + p.Triangles)
		total += math.Pow(simplices, float64(o.Exponent))
	}

	return total, nil
}
