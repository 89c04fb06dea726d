// Package core provides the undirected, simple (no loops, no multi-edges)
// graph primitive that model structure is built on: vertex and edge
// insertion, membership tests, deterministic neighbor enumeration, and
// deep cloning for algorithms that need a private working copy.
//
// All mutating and reading APIs share a single sync.RWMutex, so a Graph
// may be used across goroutines. Elimination-ordering heuristics mutate
// their graph (fill-in edges); they must operate on Clone() output, never
// on a model's canonical graph.
//
// Key properties:
//   - Vertices are identified by non-empty string IDs.
//   - Edges are unordered pairs; duplicates coalesce, self-loops rejected.
//   - Neighbors(id) and Vertices() return fresh, lexicographically sorted
//     slices for reproducible iteration.
//
// Complexity:
//
//   - AddVertex / AddEdge / EnsureEdge / HasVertex / HasEdge: O(1) average.
//   - Neighbors(id): O(d log d) for degree d (sorting).
//   - Vertices(): O(V log V).
//   - Clone(): O(V + E).
//
// Errors:
//
//   - ErrEmptyVertexID    if a vertex ID is the empty string.
//   - ErrVertexNotFound   if an operation references a missing vertex.
//   - ErrLoopNotAllowed   if an edge's endpoints are the same vertex.
package core
