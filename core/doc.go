// Package core defines the undirected simple Graph store used by every
// phlite stage: adjacency-set storage with O(1) neighbor membership and
// degree lookup, vertex removal with incident-edge cleanup, and deep
// structural cloning.
//
// Model:
//
//   - Vertices are opaque non-empty string identifiers carrying no payload.
//   - Edges are unordered pairs; adjacency is always mirrored (if u lists v,
//     v lists u). Self-loops and parallel edges are rejected/ignored, so the
//     graph is always simple.
//   - Enumeration surfaces (Vertices, Neighbors) return identifiers sorted
//     lexicographically ascending; higher stages rely on this total order
//     for reproducible tie-breaking.
//
// Concurrency:
//
//	All methods are guarded by a single sync.RWMutex, so any number of
//	goroutines may query one Graph concurrently (the filtration sweep does
//	exactly that). Mutation and concurrent reads must not overlap — the
//	pipeline keeps a strict writer-then-readers discipline.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - operation referenced a vertex absent from the graph.
//	ErrSelfLoop       - edge endpoints are the same vertex.
package core
