package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmgo/pgmgo/factor"
)

// TestNewAssignment_SortsAndRejectsDuplicates verifies canonical ordering
// and unique-variable enforcement.
func TestNewAssignment_SortsAndRejectsDuplicates(t *testing.T) {
	a, err := factor.NewAssignment(
		factor.Pair{Var: "Y", Val: 1},
		factor.Pair{Var: "X", Val: 0},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, a.Vars(), "pairs must sort by variable ID")
	assert.Equal(t, "X=0|Y=1", a.Key())

	_, err = factor.NewAssignment(
		factor.Pair{Var: "X", Val: 0},
		factor.Pair{Var: "X", Val: 1},
	)
	assert.ErrorIs(t, err, factor.ErrDuplicateAssignVar)
}

// TestAssignment_GetAndRestrict covers lookup and sub-scope restriction.
func TestAssignment_GetAndRestrict(t *testing.T) {
	a, err := factor.NewAssignment(
		factor.Pair{Var: "X", Val: 0},
		factor.Pair{Var: "Y", Val: 1},
		factor.Pair{Var: "Z", Val: 2},
	)
	require.NoError(t, err)

	v, ok := a.Get("Y")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = a.Get("W")
	assert.False(t, ok, "unbound variable must report absence")

	r := a.Restrict(factor.NewScope("X", "Z", "W"))
	assert.Equal(t, []string{"X", "Z"}, r.Vars(), "restriction keeps only scope members present")
}

// TestAssignment_Union covers merging and conflict detection.
func TestAssignment_Union(t *testing.T) {
	a, err := factor.NewAssignment(factor.Pair{Var: "X", Val: 0})
	require.NoError(t, err)
	b, err := factor.NewAssignment(factor.Pair{Var: "Y", Val: 1}, factor.Pair{Var: "X", Val: 0})
	require.NoError(t, err)

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, "X=0|Y=1", u.Key(), "agreeing overlap merges")

	c, err := factor.NewAssignment(factor.Pair{Var: "X", Val: 1})
	require.NoError(t, err)
	_, err = a.Union(c)
	assert.ErrorIs(t, err, factor.ErrConflictingAssignment, "disagreeing overlap must error")
}

// TestAssignment_EqualAndEmpty covers equality and the zero value.
func TestAssignment_EqualAndEmpty(t *testing.T) {
	var empty factor.Assignment
	assert.Zero(t, empty.Len())
	assert.Equal(t, "", empty.Key())

	a, err := factor.NewAssignment(factor.Pair{Var: "X", Val: 0})
	require.NoError(t, err)
	b, err := factor.NewAssignment(factor.Pair{Var: "X", Val: 0})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(empty))
}

// TestScope_SetOperations covers union, difference, intersection and
// subset checks.
func TestScope_SetOperations(t *testing.T) {
	s := factor.NewScope("A", "B", "C")
	u := factor.NewScope("B", "D")

	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Union(u).IDs())
	assert.Equal(t, []string{"A", "C"}, s.Diff(u).IDs())
	assert.Equal(t, []string{"B"}, s.Intersect(u).IDs())
	assert.True(t, factor.NewScope("A", "B").SubsetOf(s))
	assert.False(t, s.SubsetOf(u))
	assert.True(t, s.Equal(factor.NewScope("C", "B", "A")))

	// Purity: operations never mutate operands.
	assert.Equal(t, []string{"A", "B", "C"}, s.IDs())
	assert.Equal(t, []string{"B", "D"}, u.IDs())
}
