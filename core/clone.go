// Package core - deep structural cloning and induced subgraphs.
package core

// Clone returns a deep structural copy of g: fresh adjacency buckets, no
// shared state. Mutating the clone never touches the receiver, which is how
// the reducer keeps the full graph intact while it prunes a working copy.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, bucket := range g.adjacency {
		copied := make(map[string]struct{}, len(bucket))
		for nbr := range bucket {
			copied[nbr] = struct{}{}
		}
		out.adjacency[id] = copied
	}

	return out
}

// Induced returns the subgraph of g induced by keep ∩ vertices(g): the
// surviving vertices plus every edge of g with both endpoints surviving.
// IDs in keep that are absent from g are ignored. The result shares no
// state with the receiver; the filtration sweep derives one ephemeral
// induced subgraph per threshold this way.
// Complexity: O(V+E) bounded by the receiver.
func (g *Graph) Induced(keep map[string]struct{}) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id := range keep {
		bucket, ok := g.adjacency[id]
		if !ok {
			continue
		}
		out.adjacency[id] = make(map[string]struct{})
		for nbr := range bucket {
			if _, stays := keep[nbr]; !stays {
				continue
			}
			out.adjacency[id][nbr] = struct{}{}
			if id < nbr { // count each unordered pair once
				out.edgeCount++
			}
		}
	}

	return out
}
