package pgm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmgo/pgmgo/core"
	"github.com/pgmgo/pgmgo/factor"
	"github.com/pgmgo/pgmgo/pgm"
	"github.com/pgmgo/pgmgo/randvar"
)

const eps = 1e-9

// uniformBinary returns a binary variable with a uniform marginal.
func uniformBinary(t *testing.T, id string, opts ...randvar.Option) *randvar.Variable {
	t.Helper()
	opts = append(opts, randvar.WithMarginal(func(randvar.Value) float64 { return 0.5 }))
	v, err := randvar.New(id, []randvar.Value{0, 1}, opts...)
	require.NoError(t, err)

	return v
}

// mustAssign builds an assignment or fails the test.
func mustAssign(t *testing.T, pairs ...factor.Pair) factor.Assignment {
	t.Helper()
	a, err := factor.NewAssignment(pairs...)
	require.NoError(t, err)

	return a
}

// agreement builds a pairwise factor weighing agreeing values at 3 and
// disagreeing values at 1.
func agreement(t *testing.T, x, y *randvar.Variable) *factor.Factor {
	t.Helper()
	phi := func(a factor.Assignment) (float64, error) {
		xv, _ := a.Get(x.ID())
		yv, _ := a.Get(y.ID())
		if xv == yv {
			return 3, nil
		}

		return 1, nil
	}
	f, err := factor.New("", []*randvar.Variable{x, y}, phi)
	require.NoError(t, err)

	return f
}

// chainModel builds A-B-C with explicit agreement factors on each edge.
func chainModel(t *testing.T) *pgm.Model {
	t.Helper()
	a, b, c := uniformBinary(t, "A"), uniformBinary(t, "B"), uniformBinary(t, "C")
	m, err := pgm.NewModel(
		[]*randvar.Variable{a, b, c},
		[][2]string{{"A", "B"}, {"B", "C"}},
		pgm.WithFactors([]*factor.Factor{agreement(t, a, b), agreement(t, b, c)}),
	)
	require.NoError(t, err)

	return m
}

// TestNewModel_Validation covers the construction error set.
func TestNewModel_Validation(t *testing.T) {
	x := uniformBinary(t, "X")

	_, err := pgm.NewModel(nil, nil)
	assert.ErrorIs(t, err, pgm.ErrNilModel, "empty variable set")

	_, err = pgm.NewModel([]*randvar.Variable{x, nil}, nil)
	assert.ErrorIs(t, err, pgm.ErrNilVariable, "nil variable")

	_, err = pgm.NewModel([]*randvar.Variable{x, uniformBinary(t, "X")}, nil)
	assert.ErrorIs(t, err, pgm.ErrDuplicateVariable, "duplicate ID")

	_, err = pgm.NewModel([]*randvar.Variable{x}, [][2]string{{"X", "Y"}})
	assert.ErrorIs(t, err, pgm.ErrUnknownVariable, "unknown edge endpoint")

	_, err = pgm.NewModel([]*randvar.Variable{x}, [][2]string{{"X", "X"}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed, "self loop")
}

// TestNewModel_DefaultEdgeFactors checks the derived pairwise factor:
// phi(x,y) = P(x) * P(y) = 0.25 for uniform binary endpoints.
func TestNewModel_DefaultEdgeFactors(t *testing.T) {
	x, y := uniformBinary(t, "X"), uniformBinary(t, "Y")
	m, err := pgm.NewModel([]*randvar.Variable{x, y}, [][2]string{{"X", "Y"}})
	require.NoError(t, err)

	fs := m.Factors()
	require.Len(t, fs, 1)
	assert.ElementsMatch(t, []string{"X", "Y"}, fs[0].Scope().IDs())
	for _, row := range fs[0].Rows() {
		v, err := fs[0].Phi(row)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, v, eps)
	}
	assert.InDelta(t, 1.0, fs[0].Z(), eps, "four rows of 0.25")
}

// TestNewModel_EvidenceConditionsDefaults checks that an observed
// endpoint is conditioned out of the derived factor's scope.
func TestNewModel_EvidenceConditionsDefaults(t *testing.T) {
	x := uniformBinary(t, "X")
	y := uniformBinary(t, "Y", randvar.WithEvidenceValue(0))
	m, err := pgm.NewModel([]*randvar.Variable{x, y}, [][2]string{{"X", "Y"}})
	require.NoError(t, err)

	fs := m.Factors()
	require.Len(t, fs, 1)
	assert.Equal(t, []string{"X"}, fs[0].Scope().IDs())
	v, err := fs[0].Phi(mustAssign(t, factor.Pair{Var: "X", Val: 1}))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, eps)
}

// TestNewModel_WithFactors covers the explicit factor-set path.
func TestNewModel_WithFactors(t *testing.T) {
	a, b := uniformBinary(t, "A"), uniformBinary(t, "B")
	f := agreement(t, a, b)

	m, err := pgm.NewModel([]*randvar.Variable{a, b}, [][2]string{{"A", "B"}},
		pgm.WithFactors([]*factor.Factor{f}))
	require.NoError(t, err)
	require.Len(t, m.Factors(), 1)
	assert.Same(t, f, m.Factors()[0])

	stray := agreement(t, a, uniformBinary(t, "Q"))
	_, err = pgm.NewModel([]*randvar.Variable{a, b}, nil,
		pgm.WithFactors([]*factor.Factor{stray}))
	assert.ErrorIs(t, err, pgm.ErrUnknownVariable, "scope outside model")

	_, err = pgm.NewModel([]*randvar.Variable{a, b}, nil,
		pgm.WithFactors([]*factor.Factor{nil}))
	assert.ErrorIs(t, err, factor.ErrNilFactor)
}

// TestModel_Accessors covers lookups, copies, and graph purity.
func TestModel_Accessors(t *testing.T) {
	m := chainModel(t)

	assert.Equal(t, []string{"A", "B", "C"}, m.VariableIDs())

	v, err := m.Variable("B")
	require.NoError(t, err)
	assert.Equal(t, "B", v.ID())
	_, err = m.Variable("nope")
	assert.ErrorIs(t, err, pgm.ErrUnknownVariable)

	vars := m.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, "A", vars[0].ID())

	// Mutating the returned graph never touches the model.
	g := m.Graph()
	require.NoError(t, g.AddEdge("A", "C"))
	assert.False(t, m.Graph().HasEdge("A", "C"))

	blanket, err := m.MarkovBlanket("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, blanket)

	closure, err := m.ClosureOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, closure)

	_, err = m.MarkovBlanket("nope")
	assert.ErrorIs(t, err, pgm.ErrUnknownVariable)
}

// TestModel_ScopeSubsetFactors filters factors by scope containment.
func TestModel_ScopeSubsetFactors(t *testing.T) {
	m := chainModel(t)

	sub := m.ScopeSubsetFactors(factor.NewScope("A", "B"))
	require.Len(t, sub, 1)
	assert.ElementsMatch(t, []string{"A", "B"}, sub[0].Scope().IDs())

	all := m.ScopeSubsetFactors(factor.NewScope("A", "B", "C"))
	assert.Len(t, all, 2)

	none := m.ScopeSubsetFactors(factor.NewScope("A"))
	assert.Empty(t, none)
}
