package reduce

import (
	"errors"

	"github.com/katalvlaran/phlite/core"
	"github.com/katalvlaran/phlite/domset"
	"github.com/katalvlaran/phlite/filtration"
)

// ErrGraphNil is returned if a nil full graph is passed.
var ErrGraphNil = errors.New("reduce: graph is nil")

// Reduction is the outcome of dominated-vertex pruning. Full stays exactly
// as ingested; Reduced is the pruned working copy; FullDegree is the
// activation table frozen before any removal.
type Reduction struct {
	// Full is the original graph, read-only after construction.
	Full *core.Graph

	// Reduced is Full minus the dominated vertices and their incident edges.
	Reduced *core.Graph

	// FullDegree maps every vertex of Full to its original degree. The
	// sweep's membership predicate reads this table, never Reduced degrees.
	FullDegree map[string]int

	// Dominated lists every removed vertex, sorted ascending.
	Dominated []string

	// Witness maps each removed vertex to the neighbor that dominated it,
	// valid in the graph state of the pass that detected it.
	Witness map[string]string

	// dir is the sweep direction the reduction was validated against.
	dir filtration.Direction
}

// Option configures Apply.
type Option func(*options)

type options struct {
	closure bool
}

// WithClosure repeats detection and removal until no dominated vertex
// remains, instead of the default single pass.
func WithClosure() Option {
	return func(o *options) { o.closure = true }
}

// Apply prunes every dominated vertex of full for a sweep in direction dir.
//
// The input graph is never mutated: degrees are snapshotted first, then a
// deep clone is pruned. Returns ErrGraphNil for nil input and propagates
// domset errors (including ErrIncompatibleFiltration for a direction the
// pruning precondition does not cover).
//
// Complexity: detection cost per pass (see domset.Find) plus O(V+E) for
// clone and removal; a single pass unless WithClosure is set.
func Apply(full *core.Graph, dir filtration.Direction, opts ...Option) (*Reduction, error) {
	if full == nil {
		return nil, ErrGraphNil
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Reduction{
		Full:       full,
		Reduced:    full.Clone(),
		FullDegree: full.Degrees(), // frozen before any removal
		Witness:    make(map[string]string),
		dir:        dir,
	}

	for {
		found, err := domset.Find(r.Reduced, dir)
		if err != nil {
			return nil, err
		}
		if len(found.Dominated) == 0 {
			break
		}
		if err := r.Reduced.RemoveVertices(found.Dominated); err != nil {
			return nil, err
		}
		r.Dominated = mergeSorted(r.Dominated, found.Dominated)
		for id, by := range found.Witness {
			r.Witness[id] = by
		}
		if !o.closure {
			break
		}
	}

	return r, nil
}

// Direction returns the sweep direction this reduction was validated for.
func (r *Reduction) Direction() filtration.Direction { return r.dir }

// Sweep runs the filtration sweep over the reduced graph with the frozen
// full-degree table. The direction is pinned to the one the reduction was
// validated against, so callers cannot accidentally pair a pruned graph
// with an incompatible sweep; all other sweep options pass through.
func (r *Reduction) Sweep(opts ...filtration.Option) (*filtration.Result, error) {
	pinned := make([]filtration.Option, 0, len(opts)+1)
	pinned = append(pinned, opts...)
	pinned = append(pinned, filtration.WithDirection(r.dir))

	return filtration.Sweep(r.Reduced, r.FullDegree, pinned...)
}

// mergeSorted merges two sorted ID slices into one sorted slice.
func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
