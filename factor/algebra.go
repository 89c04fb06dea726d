// This file implements the factor algebra: Product, Reduce,
// FilterAssignments, SumOutVar, SumOutVars, and MaxOutVar. Every
// operation is pure — inputs are never mutated; each call returns a
// freshly constructed Factor.

package factor

import (
	"math"
	"sort"

	"github.com/pgmgo/pgmgo/randvar"
)

// Product multiplies two factors.
//
// The result's scope is the union of both scopes; its potential is
// combine(f.Phi(a|f.scope), g.Phi(a|g.scope)), where a|S restricts the
// assignment to sub-scope S and combine defaults to multiplication
// (override with WithCombine). The auxiliary scalar is the operands'
// partition values folded by the accumulator (default: their product,
// override with WithAccumulator) — a running normalization constant for
// product chains that costs no extra enumeration.
//
// Variables shared by both scopes must carry identical effective domains
// (ErrScopeMismatch otherwise).
//
// ⚠️ Enumerates the union scope's cartesian product: O(∏|domain_i|).
//
// Returns ErrNilFactor, ErrScopeMismatch, construction errors from the
// combined potential, or the context's error when cancelled.
func Product(f, g *Factor, opts ...Option) (*Factor, float64, error) {
	// 1. Validate operands.
	if f == nil || g == nil {
		return nil, 0, ErrNilFactor
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	combine := o.Combine
	if combine == nil {
		combine = func(x, y float64) float64 { return x * y }
	}
	accumulate := o.Accumulator
	if accumulate == nil {
		accumulate = func(zf, zg float64) float64 { return zf * zg }
	}

	// 2. Merge scopes; shared variables must agree on their domains.
	merged, err := mergeScopes(f, g)
	if err != nil {
		return nil, 0, err
	}

	fScope := f.Scope()
	gScope := g.Scope()

	// 3. Build the combined potential over the union scope.
	phi := func(a Assignment) (float64, error) {
		fv, err := f.Phi(a.Restrict(fScope))
		if err != nil {
			return 0, err
		}
		gv, err := g.Phi(a.Restrict(gScope))
		if err != nil {
			return 0, err
		}

		return combine(fv, gv), nil
	}

	prod, err := New(freshID("product"), merged, phi, opts...)
	if err != nil {
		return nil, 0, err
	}

	return prod, accumulate(f.Z(), g.Z()), nil
}

// mergeScopes unions the scope variables of f and g, verifying that
// shared IDs carry identical effective domains.
func mergeScopes(f, g *Factor) ([]*randvar.Variable, error) {
	merged := make([]*randvar.Variable, 0, len(f.vars)+len(g.vars))
	merged = append(merged, f.vars...)
	for i, gv := range g.vars {
		fv := f.variable(gv.ID())
		if fv == nil {
			merged = append(merged, gv)
			continue
		}
		// Shared variable: effective domains must match exactly.
		fi := sort.SearchStrings(f.varIDs(), gv.ID())
		if !sameDomain(f.domains[fi], g.domains[i]) {
			return nil, ErrScopeMismatch
		}
	}

	return merged, nil
}

// sameDomain reports element-wise equality of two sorted domain lists.
func sameDomain(a, b []randvar.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Reduce conditions a factor on evidence: the result's scope drops the
// evidenced variables and its potential is f.Phi(a ∪ evidence).
//
// Evidence for variables outside f's scope is silently ignored — the
// elimination engine reduces every factor in a model by the full query
// evidence set, so most factors see evidence for variables they do not
// carry. Unknown-variable validation belongs at the query boundary, not
// here. Evidence values must lie in their variable's effective domain.
//
// Returns ErrNilFactor, randvar.ErrValueNotInDomain, or construction
// errors from the reduced potential.
func Reduce(f *Factor, evidence Assignment, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	// 1. Keep only evidence that touches the scope.
	ev := evidence.Restrict(f.Scope())

	// 2. Validate evidence values against effective domains.
	for i, v := range f.vars {
		val, ok := ev.Get(v.ID())
		if !ok {
			continue
		}
		if _, ok = f.valIdx[i][val]; !ok {
			return nil, randvar.ErrValueNotInDomain
		}
	}

	// 3. Remaining scope = scope − evidence variables.
	evScope := ev.Scope()
	remaining := make([]*randvar.Variable, 0, len(f.vars))
	for _, v := range f.vars {
		if !evScope.Contains(v.ID()) {
			remaining = append(remaining, v)
		}
	}

	phi := func(a Assignment) (float64, error) {
		full, err := a.Union(ev)
		if err != nil {
			return 0, err
		}

		return f.Phi(full)
	}

	return New(freshID("reduced"), remaining, phi, opts...)
}

// FilterAssignments restricts a factor's effective domain to rows
// satisfying pred: failing rows get potential 0. The scope is unchanged.
//
// Returns ErrNilFactor, ErrNilPredicate, or construction errors.
func FilterAssignments(f *Factor, pred func(Assignment) bool, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}

	phi := func(a Assignment) (float64, error) {
		if !pred(a) {
			return 0, nil
		}

		return f.Phi(a)
	}

	return New(freshID("filtered"), f.Variables(), phi, opts...)
}

// SumOutVar marginalizes variable Y out of f: the result's scope drops Y
// and its potential is Σ_{y ∈ domain(Y)} f.Phi(a ∪ {Y=y}).
//
// Returns ErrNilFactor, ErrUnknownScopeVar, or construction errors.
func SumOutVar(f *Factor, yID string, opts ...Option) (*Factor, error) {
	return marginalize(f, yID, "summed", func(acc, v float64) float64 { return acc + v }, 0, opts...)
}

// MaxOutVar maximizes variable Y out of f: the result's scope drops Y
// and its potential is max_{y ∈ domain(Y)} f.Phi(a ∪ {Y=y}). Callers
// that also need the maximizing y (traceback) retain the pre-elimination
// factor and recompute the argmax on demand via ArgMax.
//
// Returns ErrNilFactor, ErrUnknownScopeVar, or construction errors.
func MaxOutVar(f *Factor, yID string, opts ...Option) (*Factor, error) {
	return marginalize(f, yID, "maxed", math.Max, math.Inf(-1), opts...)
}

// marginalize removes yID from f's scope, folding the potentials over
// yID's effective domain with the given reduction.
func marginalize(f *Factor, yID, prefix string, fold func(acc, v float64) float64, seed float64, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	// 1. Locate Y and its effective domain.
	yPos := sort.SearchStrings(f.varIDs(), yID)
	if yPos >= len(f.vars) || f.vars[yPos].ID() != yID {
		return nil, ErrUnknownScopeVar
	}
	yDomain := f.domains[yPos]

	// 2. Remaining scope = scope − {Y}.
	remaining := make([]*randvar.Variable, 0, len(f.vars)-1)
	for i, v := range f.vars {
		if i != yPos {
			remaining = append(remaining, v)
		}
	}

	phi := func(a Assignment) (float64, error) {
		acc := seed
		for _, y := range yDomain {
			full, err := a.Union(fromSortedPairs([]Pair{{Var: yID, Val: y}}))
			if err != nil {
				return 0, err
			}
			v, err := f.Phi(full)
			if err != nil {
				return 0, err
			}
			acc = fold(acc, v)
		}

		return acc, nil
	}

	return New(freshID(prefix), remaining, phi, opts...)
}

// SumOutVars marginalizes every variable in ys out of f, one at a time.
// Marginalization commutes, so the mathematical result is order
// independent; for reproducibility the implementation always eliminates
// in ascending ID order (duplicates coalesce).
//
// Returns ErrNilFactor, ErrEmptyEliminationSet, ErrUnknownScopeVar, or
// construction errors.
func SumOutVars(f *Factor, ys []string, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if len(ys) == 0 {
		return nil, ErrEmptyEliminationSet
	}

	// Deterministic elimination order: ascending ID, deduplicated.
	order := NewScope(ys...).IDs()

	out := f
	for _, y := range order {
		next, err := SumOutVar(out, y, opts...)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}
