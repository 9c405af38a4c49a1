// Package core - triangle counting used as the 2-simplex proxy.
package core

// TriangleDegree returns the number of triangles through the vertex id,
// i.e. the number of adjacent neighbor pairs, or ErrVertexNotFound /
// ErrEmptyVertexID for an unknown vertex.
// Complexity: O(deg²) set lookups.
func (g *Graph) TriangleDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return g.triangleDegreeLocked(bucket), nil
}

// TriangleDegreeSum returns Σ_v TriangleDegree(v), which equals three times
// the number of distinct triangles. The factor three is carried through the
// whole pipeline unchanged: the cost estimate only needs a consistent
// 2-simplex proxy, not an exact count.
// Complexity: O(Σ deg(v)²) set lookups.
func (g *Graph) TriangleDegreeSum() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sum := 0
	for _, bucket := range g.adjacency {
		sum += g.triangleDegreeLocked(bucket)
	}

	return sum
}

// triangleDegreeLocked counts adjacent pairs inside one neighbor bucket;
// callers hold at least the read lock.
func (g *Graph) triangleDegreeLocked(bucket map[string]struct{}) int {
	count := 0
	for a := range bucket {
		for b := range bucket {
			// visit each unordered neighbor pair once
			if a < b {
				if _, adj := g.adjacency[a][b]; adj {
					count++
				}
			}
		}
	}

	return count
}
