// This file implements mutation (AddVertex, AddEdge, EnsureEdge),
// queries (HasVertex, HasEdge, Neighbors, Vertices, counts), and Clone.

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Inserting an existing vertex is a no-op.
//
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
		g.adjacency[id] = make(map[string]struct{})
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}.
// Both endpoints must already exist. Duplicate edges coalesce silently.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound or ErrLoopNotAllowed.
// Complexity: O(1)
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return ErrVertexNotFound
	}

	g.addEdgeLocked(u, v)

	return nil
}

// EnsureEdge inserts the undirected edge {u, v} unless it is already
// present. It is the fill-in primitive used while triangulating an
// elimination graph; semantics are identical to AddEdge.
//
// Complexity: O(1)
func (g *Graph) EnsureEdge(u, v string) error {
	return g.AddEdge(u, v)
}

// addEdgeLocked links u and v symmetrically. Caller holds the write lock
// and has validated both endpoints.
func (g *Graph) addEdgeLocked(u, v string) {
	if _, ok := g.adjacency[u][v]; ok {
		return
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Neighbors returns the IDs adjacent to id, sorted lexicographically
// ascending for reproducible iteration. The slice is freshly allocated.
//
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs, sorted lexicographically ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the Graph. The clone shares no state with
// the receiver, so callers may mutate it freely — this is the working-copy
// primitive for ordering heuristics that insert fill-in edges.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	for u, nbs := range g.adjacency {
		for v := range nbs {
			clone.adjacency[u][v] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
