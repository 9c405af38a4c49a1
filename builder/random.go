// Package builder - seeded random graph families.
package builder

import (
	"fmt"

	"github.com/katalvlaran/phlite/core"
)

// maxPairingAttempts bounds the stub-matching retries in RandomRegular.
const maxPairingAttempts = 100

// RandomSparse returns the Erdős–Rényi graph G(n, p): every unordered pair
// gets an edge independently with probability p, drawn from the seeded
// stream. Requires n ≥ 1 and p ∈ [0,1].
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: RandomSparse needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}
	c := resolve(opts)
	rng := c.rng()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(c.idFn(i)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(c.idFn(i), c.idFn(j)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomRegular returns a d-regular simple graph on n vertices via the
// pairing (configuration) model: d stubs per vertex are shuffled and
// matched, resampling whenever the matching produces a loop or a parallel
// edge. Requires 0 ≤ d < n and n·d even. Returns ErrPairingFailed if no
// simple matching appears within the retry budget (vanishingly unlikely
// for feasible n, d).
// Complexity: O(n·d) per attempt.
func RandomRegular(n, d int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: RandomRegular needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	if d < 0 || d >= n || (n*d)%2 != 0 {
		return nil, fmt.Errorf("%w: n=%d d=%d", ErrBadDegree, n, d)
	}
	c := resolve(opts)
	rng := c.rng()

	// d stubs per vertex; stub s belongs to vertex s/d.
	stubs := make([]int, n*d)
	for s := range stubs {
		stubs[s] = s / d
	}

	for attempt := 0; attempt < maxPairingAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		if g, ok := matchStubs(stubs, n, c); ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: n=%d d=%d after %d attempts", ErrPairingFailed, n, d, maxPairingAttempts)
}

// matchStubs pairs consecutive stubs into edges; reports false on a loop
// or duplicate pair so the caller can reshuffle.
func matchStubs(stubs []int, n int, c config) (*core.Graph, bool) {
	type pair struct{ a, b int }
	seen := make(map[pair]struct{}, len(stubs)/2)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(c.idFn(i)) // idFn output is non-empty for valid schemes
	}
	for s := 0; s < len(stubs); s += 2 {
		u, v := stubs[s], stubs[s+1]
		if u == v {
			return nil, false
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[pair{u, v}]; dup {
			return nil, false
		}
		seen[pair{u, v}] = struct{}{}
		if err := g.AddEdge(c.idFn(u), c.idFn(v)); err != nil {
			return nil, false
		}
	}

	return g, true
}
