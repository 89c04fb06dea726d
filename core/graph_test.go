package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmgo/pgmgo/core"
)

// buildPath returns a graph over {A,B,C} with edges A-B and B-C.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	return g
}

// TestAddVertex_EmptyID verifies that an empty vertex ID is rejected.
func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID, "empty ID must error")
}

// TestAddVertex_Idempotent verifies that re-adding a vertex is a no-op.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount(), "duplicate AddVertex must coalesce")
}

// TestAddEdge_Validation covers missing endpoints and self-loops.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	assert.ErrorIs(t, g.AddEdge("A", "B"), core.ErrVertexNotFound, "missing endpoint must error")
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed, "self-loop must error")
	assert.ErrorIs(t, g.AddEdge("", "A"), core.ErrEmptyVertexID, "empty endpoint must error")
}

// TestAddEdge_UndirectedAndCoalescing verifies symmetry and duplicate handling.
func TestAddEdge_UndirectedAndCoalescing(t *testing.T) {
	g := buildPath(t)

	assert.True(t, g.HasEdge("A", "B"), "edge must exist as inserted")
	assert.True(t, g.HasEdge("B", "A"), "edge must exist mirrored")
	assert.Equal(t, 2, g.EdgeCount())

	// Duplicate insertion, both orientations.
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 2, g.EdgeCount(), "duplicates must coalesce")
}

// TestEnsureEdge verifies edge-if-absent semantics.
func TestEnsureEdge(t *testing.T) {
	g := buildPath(t)

	require.NoError(t, g.EnsureEdge("A", "C"))
	assert.True(t, g.HasEdge("A", "C"))
	assert.Equal(t, 3, g.EdgeCount())

	require.NoError(t, g.EnsureEdge("A", "C"))
	assert.Equal(t, 3, g.EdgeCount(), "EnsureEdge on present edge must be a no-op")
}

// TestNeighbors_SortedAndFresh verifies deterministic neighbor enumeration.
func TestNeighbors_SortedAndFresh(t *testing.T) {
	g := buildPath(t)

	nbs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbs, "neighbors must be sorted lex asc")

	// Mutating the returned slice must not affect the graph.
	nbs[0] = "Z"
	again, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, again, "returned slices must be fresh")

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestVertices_Sorted verifies deterministic vertex enumeration.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestClone_Isolation verifies that a clone shares no state with its source.
func TestClone_Isolation(t *testing.T) {
	g := buildPath(t)
	c := g.Clone()

	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutate the clone: fill-in style edge insertion.
	require.NoError(t, c.EnsureEdge("A", "C"))
	assert.True(t, c.HasEdge("A", "C"), "clone must accept new edges")
	assert.False(t, g.HasEdge("A", "C"), "source must be unaffected by clone mutation")
}
