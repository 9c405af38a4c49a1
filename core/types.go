// Package core - Graph type, sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// Internal pipeline callers always enumerate existing vertices, so seeing
	// this error from pipeline code means a graph-store invariant was broken.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge with identical endpoints; the store keeps
	// graphs simple by construction.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
)

// Graph is an undirected simple graph stored as mirrored adjacency sets.
//
// adjacency maps a vertex ID to the set of its neighbor IDs; membership of a
// vertex in the graph is membership of its (possibly empty) adjacency bucket.
// edgeCount tracks the number of unordered pairs, kept in lockstep with the
// adjacency sets so EdgeCount is O(1).
type Graph struct {
	mu        sync.RWMutex
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]struct{})}
}
