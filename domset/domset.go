package domset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/phlite/core"
	"github.com/katalvlaran/phlite/filtration"
)

// Sentinel errors for domination detection.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("domset: graph is nil")

	// ErrIncompatibleFiltration is returned when the requested sweep
	// direction does not guarantee that a dominating vertex activates no
	// later than the vertices it dominates. Domination pruning is unsound
	// in that case, so detection refuses to run.
	ErrIncompatibleFiltration = errors.New("domset: filtration direction is not monotone-compatible with domination pruning")
)

// Result holds one detection pass.
type Result struct {
	// Dominated lists every dominated vertex ID, sorted ascending. A vertex
	// dominated by several neighbors appears once.
	Dominated []string

	// Witness maps each dominated vertex to one dominating neighbor (the
	// first found in visit order). For every pair N⁺(dominated) ⊆ N⁺(witness)
	// held in the graph the pass ran on.
	Witness map[string]string
}

// Has reports whether id was detected as dominated.
func (r *Result) Has(id string) bool {
	_, ok := r.Witness[id]

	return ok
}

// Set returns the dominated IDs as a set.
func (r *Result) Set() map[string]struct{} {
	out := make(map[string]struct{}, len(r.Dominated))
	for _, id := range r.Dominated {
		out[id] = struct{}{}
	}

	return out
}

// Find runs one detection pass over g for a sweep in direction dir and
// returns the set of dominated vertices. The input graph is never mutated.
//
// For every vertex k (sorted-ID order) and every neighbor j of k (sorted
// order), the closed neighborhoods are compared three ways:
//
//   - N⁺(k) == N⁺(j): a twin pair; j is marked dominated unless k was
//     already marked earlier in this pass, so exactly one twin survives and
//     the survivor is the first visited.
//   - N⁺(k) ⊊ N⁺(j): k is dominated by j.
//   - N⁺(j) ⊊ N⁺(k): j is dominated by k.
//   - otherwise: no relation, no action.
//
// Returns ErrGraphNil for nil input and ErrIncompatibleFiltration when
// dir.MonotoneCompatible() is false (see the package comment).
//
// Complexity: O(Σ_k Σ_{j∈N(k)} (deg k + deg j)) set work; quadratic in the
// worst case, fast on sparse graphs.
func Find(g *core.Graph, dir filtration.Direction) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !dir.MonotoneCompatible() {
		return nil, fmt.Errorf("%w: %s", ErrIncompatibleFiltration, dir)
	}

	res := &Result{Witness: make(map[string]string)}
	for _, k := range g.Vertices() {
		closedK, err := g.ClosedNeighborhood(k)
		if err != nil {
			return nil, err
		}
		nbrs, err := g.Neighbors(k)
		if err != nil {
			return nil, err
		}
		for _, j := range nbrs {
			closedJ, err := g.ClosedNeighborhood(j)
			if err != nil {
				return nil, err
			}
			kInJ := subset(closedK, closedJ)
			jInK := subset(closedJ, closedK)
			switch {
			case kInJ && jInK:
				// Twin pair: keep the vertex visited first. If k is already
				// dominated the pair is left as-is, so one twin survives.
				if _, kGone := res.Witness[k]; !kGone {
					mark(res, j, k)
				}
			case kInJ:
				mark(res, k, j)
			case jInK:
				mark(res, j, k)
			}
		}
	}

	res.Dominated = make([]string, 0, len(res.Witness))
	for id := range res.Witness {
		res.Dominated = append(res.Dominated, id)
	}
	sort.Strings(res.Dominated)

	return res, nil
}

// mark records id as dominated by dominator, keeping the first witness.
func mark(res *Result, id, dominator string) {
	if _, seen := res.Witness[id]; seen {
		return
	}
	res.Witness[id] = dominator
}

// subset reports a ⊆ b.
func subset(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}

	return true
}
