// Package core - mutating operations: vertex/edge insertion and vertex removal.
package core

// AddVertex inserts an isolated vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Re-adding an existing edge is a no-op, so the graph stays simple.
// Returns ErrEmptyVertexID for an empty endpoint and ErrSelfLoop for u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	// Mirror both directions atomically under the write lock.
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveVertices deletes every listed vertex together with all incident
// edges. The whole batch is validated first: if any ID is empty or absent,
// the graph is left untouched and the matching sentinel is returned.
// Duplicate IDs in the batch are tolerated.
// Complexity: O(Σ deg(v)) over the removed vertices.
func (g *Graph) RemoveVertices(ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Validate the whole batch before touching topology.
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
		if _, ok := g.adjacency[id]; !ok {
			return ErrVertexNotFound
		}
	}

	for _, id := range ids {
		bucket, ok := g.adjacency[id]
		if !ok {
			continue // duplicate in the batch, already removed
		}
		for nbr := range bucket {
			delete(g.adjacency[nbr], id)
			g.edgeCount--
		}
		delete(g.adjacency, id)
	}

	return nil
}

// ensureVertex bootstraps an adjacency bucket; callers hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
