// This file declares the Value alias, sentinel errors, construction
// options, and the Variable type.

package randvar

import "errors"

// Value is the numeric outcome type of a categorical random variable.
// Keeping outcomes numeric lets factors act as probability mass carriers
// (non-negativity checks are meaningful) while still encoding arbitrary
// categories as distinct numbers.
type Value = float64

// Sentinel errors for random-variable construction and lookups.
var (
	// ErrEmptyID indicates an empty variable identifier.
	ErrEmptyID = errors.New("randvar: variable ID is empty")

	// ErrEmptyDomain indicates a variable declared with no outcomes.
	ErrEmptyDomain = errors.New("randvar: domain is empty")

	// ErrEvidenceNotInDomain indicates evidence outside the domain.
	ErrEvidenceNotInDomain = errors.New("randvar: evidence value not in domain")

	// ErrValueNotInDomain indicates a lookup for a value outside the domain.
	ErrValueNotInDomain = errors.New("randvar: value not in domain")

	// ErrBadMarginal indicates marginal masses outside [0,1] or summing above 1.
	ErrBadMarginal = errors.New("randvar: marginal masses outside [0,1] or sum above 1")
)

// MarginalFunc maps a domain value to its marginal probability mass.
type MarginalFunc func(Value) float64

// Option configures optional behavior of New.
type Option func(*options)

// options holds construction parameters collected from Option values.
type options struct {
	evidence    *Value
	marginal    MarginalFunc
	hasEvidence bool
}

// WithEvidenceValue attaches an observed value to the variable.
// The effective domain collapses to this single value.
func WithEvidenceValue(v Value) Option {
	return func(o *options) {
		ev := v
		o.evidence = &ev
		o.hasEvidence = true
	}
}

// WithMarginal attaches a marginal distribution over the domain.
// Masses must lie in [0,1] and sum to at most 1 across the domain.
func WithMarginal(fn MarginalFunc) Option {
	return func(o *options) {
		o.marginal = fn
	}
}

// Variable is an immutable categorical random variable.
//
// The zero value is not usable; construct via New.
type Variable struct {
	id       string
	domain   []Value // sorted ascending, deduplicated
	evidence *Value  // nil when unobserved
	marginal MarginalFunc
}
