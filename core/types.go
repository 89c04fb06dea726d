// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected simple graph over string vertex IDs.
//
// mu guards vertices and adjacency. Edges are stored symmetrically:
// adjacency[u][v] exists iff adjacency[v][u] exists.
type Graph struct {
	mu sync.RWMutex

	// vertices is the membership set of vertex IDs.
	vertices map[string]struct{}

	// adjacency[u][v] = struct{}{} marks an undirected edge {u,v}.
	adjacency map[string]map[string]struct{}

	// edgeCount tracks the number of undirected edges.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
