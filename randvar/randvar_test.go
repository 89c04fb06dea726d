package randvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmgo/pgmgo/randvar"
)

// TestNew_Validation covers identifier and domain validation.
func TestNew_Validation(t *testing.T) {
	_, err := randvar.New("", []randvar.Value{0, 1})
	assert.ErrorIs(t, err, randvar.ErrEmptyID, "empty ID must error")

	_, err = randvar.New("X", nil)
	assert.ErrorIs(t, err, randvar.ErrEmptyDomain, "empty domain must error")
}

// TestNew_DomainSortedDeduped verifies deterministic domain canonicalization.
func TestNew_DomainSortedDeduped(t *testing.T) {
	v, err := randvar.New("X", []randvar.Value{2, 0, 1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []randvar.Value{0, 1, 2}, v.Domain(), "domain must be sorted and deduplicated")
}

// TestEvidence_CollapsesDomain verifies the singleton effective domain.
func TestEvidence_CollapsesDomain(t *testing.T) {
	v, err := randvar.New("X", []randvar.Value{0, 1, 2}, randvar.WithEvidenceValue(1))
	require.NoError(t, err)

	ev, ok := v.Evidence()
	assert.True(t, ok, "evidence must be attached")
	assert.Equal(t, randvar.Value(1), ev)
	assert.Equal(t, []randvar.Value{1}, v.Domain(), "evidence collapses the effective domain")
	assert.Equal(t, []randvar.Value{0, 1, 2}, v.FullDomain(), "FullDomain ignores evidence")
}

// TestEvidence_OutsideDomain verifies rejection of foreign evidence.
func TestEvidence_OutsideDomain(t *testing.T) {
	_, err := randvar.New("X", []randvar.Value{0, 1}, randvar.WithEvidenceValue(7))
	assert.ErrorIs(t, err, randvar.ErrEvidenceNotInDomain)

	v, err := randvar.New("X", []randvar.Value{0, 1})
	require.NoError(t, err)
	_, err = v.WithEvidence(7)
	assert.ErrorIs(t, err, randvar.ErrEvidenceNotInDomain)
}

// TestWithEvidence_CopyOnWrite verifies that evidence attachment never
// mutates the receiver.
func TestWithEvidence_CopyOnWrite(t *testing.T) {
	v, err := randvar.New("X", []randvar.Value{0, 1})
	require.NoError(t, err)

	observed, err := v.WithEvidence(1)
	require.NoError(t, err)

	_, ok := v.Evidence()
	assert.False(t, ok, "receiver must stay unobserved")
	_, ok = observed.Evidence()
	assert.True(t, ok, "copy must carry evidence")

	cleared := observed.DroppedEvidence()
	_, ok = cleared.Evidence()
	assert.False(t, ok, "DroppedEvidence must clear evidence on the copy")
	_, ok = observed.Evidence()
	assert.True(t, ok, "original observed copy must stay observed")
}

// TestMarginal_DefaultAndCustom covers mass lookup with and without a
// supplied distribution.
func TestMarginal_DefaultAndCustom(t *testing.T) {
	v, err := randvar.New("X", []randvar.Value{0, 1})
	require.NoError(t, err)

	m, err := v.Marginal(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m, "default marginal mass is 1")

	_, err = v.Marginal(9)
	assert.ErrorIs(t, err, randvar.ErrValueNotInDomain)

	w, err := randvar.New("W", []randvar.Value{0, 1},
		randvar.WithMarginal(func(val randvar.Value) float64 {
			if val == 0 {
				return 0.25
			}

			return 0.75
		}))
	require.NoError(t, err)

	m, err = w.Marginal(1)
	require.NoError(t, err)
	assert.Equal(t, 0.75, m)
}

// TestMarginal_Validation covers mass range and sum checks.
func TestMarginal_Validation(t *testing.T) {
	_, err := randvar.New("X", []randvar.Value{0, 1},
		randvar.WithMarginal(func(randvar.Value) float64 { return -0.1 }))
	assert.ErrorIs(t, err, randvar.ErrBadMarginal, "negative mass must error")

	_, err = randvar.New("X", []randvar.Value{0, 1},
		randvar.WithMarginal(func(randvar.Value) float64 { return 0.9 }))
	assert.ErrorIs(t, err, randvar.ErrBadMarginal, "masses summing above 1 must error")
}

// TestDomain_Fresh verifies defensive copying of domain slices.
func TestDomain_Fresh(t *testing.T) {
	v, err := randvar.New("X", []randvar.Value{0, 1})
	require.NoError(t, err)

	d := v.Domain()
	d[0] = 42
	assert.Equal(t, []randvar.Value{0, 1}, v.Domain(), "returned domains must be fresh copies")
}
