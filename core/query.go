// Package core - read-only queries over vertices, edges and neighborhoods.
package core

import "sort"

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The sorted order is the total order every deterministic phlite stage
// iterates in.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the neighbor IDs of id sorted ascending, or
// ErrVertexNotFound / ErrEmptyVertexID for an unknown vertex.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// NeighborSet returns a copy of the neighbor set of id.
// Complexity: O(deg).
func (g *Graph) NeighborSet(id string) (map[string]struct{}, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]struct{}, len(bucket))
	for nbr := range bucket {
		out[nbr] = struct{}{}
	}

	return out, nil
}

// ClosedNeighborhood returns N⁺(id) = {id} ∪ neighbors(id) as a fresh set.
// Complexity: O(deg).
func (g *Graph) ClosedNeighborhood(id string) (map[string]struct{}, error) {
	out, err := g.NeighborSet(id)
	if err != nil {
		return nil, err
	}
	out[id] = struct{}{}

	return out, nil
}

// Degree returns the number of neighbors of id, or ErrVertexNotFound /
// ErrEmptyVertexID for an unknown vertex.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// Degrees returns a snapshot of every vertex degree in one map.
// The reducer freezes this snapshot from the full graph before any removal;
// it is the activation table every later membership decision reads.
// Complexity: O(V).
func (g *Graph) Degrees() map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int, len(g.adjacency))
	for id, bucket := range g.adjacency {
		out[id] = len(bucket)
	}

	return out
}
