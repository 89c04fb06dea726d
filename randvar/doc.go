// Package randvar defines the categorical (discrete) random variable that
// factors are declared over: a stable string identifier, a finite numeric
// domain, an optional observed evidence value, and an optional marginal
// distribution over the domain.
//
// 🚀 What is a categorical random variable here?
//
//	A variable X with a finite set of numeric outcomes, e.g. X ∈ {0, 1}.
//	When evidence is attached, the effective domain collapses to the single
//	observed value for every downstream query. The optional marginal is a
//	per-outcome probability mass used when deriving default pairwise
//	factors from model edges.
//
// Variables are immutable after construction: WithEvidence and
// DroppedEvidence return modified copies, never mutate the receiver.
// Domains are deduplicated and kept sorted ascending, so enumeration over
// a variable's outcomes is deterministic.
//
// ⚙️ Usage:
//
//	x, err := randvar.New("X", []randvar.Value{0, 1})
//	y, err := randvar.New("Y", []randvar.Value{0, 1},
//	  randvar.WithEvidenceValue(0),                 // observed Y=0
//	  randvar.WithMarginal(func(v randvar.Value) float64 {
//	    return 0.5
//	  }),
//	)
//
// Errors:
//
//   - ErrEmptyID             if the identifier is empty.
//   - ErrEmptyDomain         if the domain has no values.
//   - ErrEvidenceNotInDomain if evidence is not one of the domain values.
//   - ErrValueNotInDomain    if a lookup references a foreign value.
//   - ErrBadMarginal         if marginal masses fall outside [0,1] or sum above 1.
package randvar
