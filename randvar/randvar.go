// This file implements the Variable constructor and its read-only and
// copy-on-write accessors.

package randvar

import "sort"

// marginalSumEps absorbs floating rounding when validating that marginal
// masses sum to at most one.
const marginalSumEps = 1e-9

// New constructs an immutable categorical random variable.
//
// The domain is copied, deduplicated, and sorted ascending, so outcome
// enumeration order is deterministic regardless of input order. When
// WithMarginal is supplied, each mass must lie in [0,1] and the masses
// must sum to at most 1 over the full domain.
//
// Returns ErrEmptyID, ErrEmptyDomain, ErrEvidenceNotInDomain or
// ErrBadMarginal.
// Complexity: O(n log n) for a domain of n values.
func New(id string, domain []Value, opts ...Option) (*Variable, error) {
	// 1. Validate identifier and domain presence.
	if id == "" {
		return nil, ErrEmptyID
	}
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}

	// 2. Apply options.
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Copy, sort, deduplicate the domain.
	vals := make([]Value, len(domain))
	copy(vals, domain)
	sort.Float64s(vals)
	vals = dedupSorted(vals)

	v := &Variable{id: id, domain: vals, marginal: o.marginal}

	// 4. Validate evidence membership.
	if o.hasEvidence {
		if !v.InDomain(*o.evidence) {
			return nil, ErrEvidenceNotInDomain
		}
		v.evidence = o.evidence
	}

	// 5. Validate the marginal distribution over the full domain.
	if o.marginal != nil {
		sum := 0.0
		for _, dv := range vals {
			m := o.marginal(dv)
			if m < 0 || m > 1 {
				return nil, ErrBadMarginal
			}
			sum += m
		}
		if sum > 1+marginalSumEps {
			return nil, ErrBadMarginal
		}
	}

	return v, nil
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(vals []Value) []Value {
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// ID returns the variable's identifier.
func (v *Variable) ID() string { return v.id }

// Domain returns the effective domain: the full outcome set when the
// variable is unobserved, or the singleton evidence value when observed.
// The returned slice is freshly allocated.
func (v *Variable) Domain() []Value {
	if v.evidence != nil {
		return []Value{*v.evidence}
	}
	out := make([]Value, len(v.domain))
	copy(out, v.domain)

	return out
}

// FullDomain returns the declared outcome set, ignoring evidence.
// The returned slice is freshly allocated.
func (v *Variable) FullDomain() []Value {
	out := make([]Value, len(v.domain))
	copy(out, v.domain)

	return out
}

// Evidence returns the observed value and whether one is attached.
func (v *Variable) Evidence() (Value, bool) {
	if v.evidence == nil {
		return 0, false
	}

	return *v.evidence, true
}

// InDomain reports whether val is one of the declared outcomes.
// Complexity: O(log n)
func (v *Variable) InDomain(val Value) bool {
	i := sort.SearchFloat64s(v.domain, val)

	return i < len(v.domain) && v.domain[i] == val
}

// Marginal returns the marginal mass of val. Variables constructed
// without WithMarginal report mass 1 for every outcome, so products of
// marginals degrade to uniform unnormalized potentials.
//
// Returns ErrValueNotInDomain for foreign values.
func (v *Variable) Marginal(val Value) (float64, error) {
	if !v.InDomain(val) {
		return 0, ErrValueNotInDomain
	}
	if v.marginal == nil {
		return 1.0, nil
	}

	return v.marginal(val), nil
}

// WithEvidence returns a copy of the variable with the observed value
// attached. The receiver is never mutated.
//
// Returns ErrEvidenceNotInDomain for values outside the domain.
func (v *Variable) WithEvidence(val Value) (*Variable, error) {
	if !v.InDomain(val) {
		return nil, ErrEvidenceNotInDomain
	}
	ev := val
	clone := *v
	clone.evidence = &ev

	return &clone, nil
}

// DroppedEvidence returns a copy of the variable with no evidence
// attached. The receiver is never mutated.
func (v *Variable) DroppedEvidence() *Variable {
	clone := *v
	clone.evidence = nil

	return &clone
}
