// Package builder - deterministic graph families.
package builder

import (
	"fmt"

	"github.com/katalvlaran/phlite/core"
)

// Path returns the path graph P_n: 0-1-2-…-(n-1). Requires n ≥ 1.
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Path needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)
	g := core.NewGraph()
	if err := g.AddVertex(c.idFn(0)); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(c.idFn(i-1), c.idFn(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the cycle graph C_n. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(c.idFn(i), c.idFn((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete returns the complete graph K_n. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Complete needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)
	g := core.NewGraph()
	if err := g.AddVertex(c.idFn(0)); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(c.idFn(i), c.idFn(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star returns the star S_n: hub 0 joined to n leaves. Requires n ≥ 1 leaves.
// Complexity: O(n).
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Star needs ≥ 1 leaf, got %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		if err := g.AddEdge(c.idFn(0), c.idFn(i)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Wheel returns the wheel W_n: hub 0 joined to an n-cycle on 1..n.
// Requires n ≥ 3 rim vertices.
// Complexity: O(n).
func Wheel(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Wheel needs a rim of ≥ 3, got %d", ErrTooFewVertices, n)
	}
	c := resolve(opts)
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		if err := g.AddEdge(c.idFn(0), c.idFn(i)); err != nil {
			return nil, err
		}
		next := i%n + 1
		if err := g.AddEdge(c.idFn(i), c.idFn(next)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid returns the rows×cols lattice with 4-connectivity; vertex (r,c) has
// index r·cols+c. Requires rows ≥ 1 and cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: Grid needs rows,cols ≥ 1, got %d×%d", ErrTooFewVertices, rows, cols)
	}
	c := resolve(opts)
	g := core.NewGraph()
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			idx := r*cols + col
			if err := g.AddVertex(c.idFn(idx)); err != nil {
				return nil, err
			}
			if col+1 < cols {
				if err := g.AddEdge(c.idFn(idx), c.idFn(idx+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(c.idFn(idx), c.idFn(idx+cols)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
