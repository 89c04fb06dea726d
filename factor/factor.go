// This file implements the Factor type: construction (with negative-domain
// validation, totality checking, and cached partition value), potential
// lookup, normalization, partition computation over caller-supplied
// domains, row enumeration, and maximization queries.

package factor

import (
	"context"
	"math"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pgmgo/pgmgo/randvar"
)

// idSeq feeds freshID; factor IDs stay unique within a process.
var idSeq uint64

// freshID mints a process-unique factor identifier with the given prefix.
func freshID(prefix string) string {
	return prefix + "#" + strconv.FormatUint(atomic.AddUint64(&idSeq, 1), 10)
}

// Factor is a non-negative table-valued function over a variable scope,
// with a cached partition value. Factors are immutable: every algebra
// operation returns a fresh Factor.
type Factor struct {
	id   string
	kind Kind

	// vars is the scope, sorted by variable ID; domains and valIdx are
	// aligned with it. domains holds each variable's effective domain
	// (evidence collapses it to a singleton), sorted ascending.
	vars    []*randvar.Variable
	domains [][]randvar.Value
	valIdx  []map[randvar.Value]int

	rule  PotentialFunc // RuleBacked evaluation
	table []float64     // TableBacked rows in odometer order

	z float64 // cached partition value
}

// New constructs a Factor over the given scope from a potential function.
//
// The scope is copied and sorted by variable ID. Construction enumerates
// the full cartesian product of the scope's effective domains once — to
// validate that phi is total, finite and non-negative, and to cache the
// partition value Z. By default the evaluated rows are materialized
// (TableBacked); WithLazy discards them and keeps phi for on-demand
// evaluation (RuleBacked). An empty id is replaced by a generated one.
//
// ⚠️ This enumeration costs O(∏|domain_i|) phi evaluations — exponential
// in scope size. It is the dominant cost of everything built on factors.
//
// Returns ErrNilPotential, ErrNilVariable, ErrDuplicateScopeVar,
// ErrNegativeDomainValue, ErrNegativePotential, ErrNonFinitePotential,
// any error returned by phi, or the context's error when cancelled.
func New(id string, scope []*randvar.Variable, phi PotentialFunc, opts ...Option) (*Factor, error) {
	// 1. Validate the potential source.
	if phi == nil {
		return nil, ErrNilPotential
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Canonicalize the scope: copy, sort by ID, reject nils and dupes.
	vars, err := sortScope(scope)
	if err != nil {
		return nil, err
	}

	// 4. Reject negative domain values: such variables cannot carry
	//    probability mass.
	for _, v := range vars {
		for _, dv := range v.FullDomain() {
			if dv < 0 {
				return nil, ErrNegativeDomainValue
			}
		}
	}

	f := &Factor{
		id:   id,
		kind: TableBacked,
		vars: vars,
		rule: phi,
	}
	if f.id == "" {
		f.id = freshID("factor")
	}
	f.snapshotDomains()

	// 5. Enumerate every row: totality + non-negativity check, Z, table.
	vals, err := enumerate(o, f.varIDs(), f.domains, phi)
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		f.z += v
	}

	// 6. Pick the representation.
	if o.Lazy {
		f.kind = RuleBacked
	} else {
		f.table = vals
		f.rule = nil
	}

	return f, nil
}

// sortScope copies and sorts scope variables by ID, rejecting nil entries
// and duplicate IDs.
func sortScope(scope []*randvar.Variable) ([]*randvar.Variable, error) {
	vars := make([]*randvar.Variable, len(scope))
	copy(vars, scope)
	for _, v := range vars {
		if v == nil {
			return nil, ErrNilVariable
		}
	}
	sortVarsByID(vars)
	for i := 1; i < len(vars); i++ {
		if vars[i].ID() == vars[i-1].ID() {
			return nil, ErrDuplicateScopeVar
		}
	}

	return vars, nil
}

// snapshotDomains caches effective domains and value→position indices
// aligned with the sorted scope.
func (f *Factor) snapshotDomains() {
	f.domains = make([][]randvar.Value, len(f.vars))
	f.valIdx = make([]map[randvar.Value]int, len(f.vars))
	for i, v := range f.vars {
		f.domains[i] = v.Domain()
		idx := make(map[randvar.Value]int, len(f.domains[i]))
		for pos, dv := range f.domains[i] {
			idx[dv] = pos
		}
		f.valIdx[i] = idx
	}
}

// varIDs returns the scope IDs aligned with f.vars (already sorted).
func (f *Factor) varIDs() []string {
	ids := make([]string, len(f.vars))
	for i, v := range f.vars {
		ids[i] = v.ID()
	}

	return ids
}

// ID returns the factor identifier.
func (f *Factor) ID() string { return f.id }

// Kind returns the runtime representation tag.
func (f *Factor) Kind() Kind { return f.kind }

// Z returns the cached partition value: the sum of potentials over every
// row of the scope's cartesian product.
func (f *Factor) Z() float64 { return f.z }

// Scope returns the factor's variable-ID set (fresh copy).
func (f *Factor) Scope() Scope {
	return ScopeOf(f.vars)
}

// Variables returns the scope variables sorted by ID (fresh slice; the
// variables themselves are immutable and shared).
func (f *Factor) Variables() []*randvar.Variable {
	out := make([]*randvar.Variable, len(f.vars))
	copy(out, f.vars)

	return out
}

// variable returns the scope variable with the given ID, or nil.
func (f *Factor) variable(id string) *randvar.Variable {
	for _, v := range f.vars {
		if v.ID() == id {
			return v
		}
	}

	return nil
}

// Phi returns the potential of a full assignment over the scope.
//
// Returns ErrScopeMismatch if the assignment's variable set differs from
// the scope, and randvar.ErrValueNotInDomain if a bound value is not in
// its variable's effective domain.
// Complexity: O(k log k) for scope size k (TableBacked); one potential
// evaluation for RuleBacked.
func (f *Factor) Phi(a Assignment) (float64, error) {
	idx, err := f.rowIndex(a)
	if err != nil {
		return 0, err
	}
	if f.kind == TableBacked {
		return f.table[idx], nil
	}

	return f.rule(a)
}

// PhiNormal returns Phi(a) / Z — the normalized potential.
//
// Returns ErrZeroPartition when Z == 0, plus any Phi error.
func (f *Factor) PhiNormal(a Assignment) (float64, error) {
	if f.z == 0 {
		return 0, ErrZeroPartition
	}
	v, err := f.Phi(a)
	if err != nil {
		return 0, err
	}

	return v / f.z, nil
}

// rowIndex validates a against the scope and returns its odometer index.
func (f *Factor) rowIndex(a Assignment) (int, error) {
	if a.Len() != len(f.vars) {
		return 0, ErrScopeMismatch
	}
	idx := 0
	for i, v := range f.vars {
		val, ok := a.Get(v.ID())
		if !ok {
			return 0, ErrScopeMismatch
		}
		pos, ok := f.valIdx[i][val]
		if !ok {
			return 0, randvar.ErrValueNotInDomain
		}
		idx = idx*len(f.domains[i]) + pos
	}

	return idx, nil
}

// Partition sums the potential over the cartesian product of the given
// per-variable domain lists. The map's keys must be exactly the scope's
// variable IDs; the lists may be sub-domains (e.g. evidence-restricted).
//
// ⚠️ Costs O(∏|domains[id]|) potential evaluations — the dominant
// scaling factor of the whole inference stack.
//
// Returns ErrScopeMismatch if the keys differ from the scope,
// randvar.ErrValueNotInDomain for foreign values, any potential error,
// or the context's error when cancelled.
func (f *Factor) Partition(domains map[string][]randvar.Value, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. The supplied domains must cover the scope exactly.
	if len(domains) != len(f.vars) {
		return 0, ErrScopeMismatch
	}
	lists := make([][]randvar.Value, len(f.vars))
	for i, v := range f.vars {
		list, ok := domains[v.ID()]
		if !ok {
			return 0, ErrScopeMismatch
		}
		for _, dv := range list {
			if !v.InDomain(dv) {
				return 0, randvar.ErrValueNotInDomain
			}
		}
		lists[i] = list
	}

	// 2. Enumerate and sum in row order.
	vals, err := enumerate(o, f.varIDs(), lists, f.Phi)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum, nil
}

// Rows returns every assignment of the scope's cartesian product, in
// odometer order (last variable cycling fastest). For an empty scope the
// single empty assignment is returned.
func (f *Factor) Rows() []Assignment {
	n := rowCount(f.domains)
	out := make([]Assignment, n)
	ids := f.varIDs()
	for i := 0; i < n; i++ {
		out[i] = rowAssignment(ids, f.domains, i)
	}

	return out
}

// values returns the potential of every row in odometer order.
func (f *Factor) values() ([]float64, error) {
	if f.kind == TableBacked {
		return f.table, nil
	}

	return enumerate(DefaultOptions(), f.varIDs(), f.domains, f.rule)
}

// MaxValue returns the largest potential over all rows.
func (f *Factor) MaxValue() (float64, error) {
	vals, err := f.values()
	if err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, v := range vals {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// ArgMax returns every row achieving MaxValue, in row order. Ties are
// preserved so callers can apply their own tie-breaking.
func (f *Factor) ArgMax() ([]Assignment, error) {
	vals, err := f.values()
	if err != nil {
		return nil, err
	}
	best := math.Inf(-1)
	for _, v := range vals {
		if v > best {
			best = v
		}
	}
	ids := f.varIDs()
	var out []Assignment
	for i, v := range vals {
		if v == best {
			out = append(out, rowAssignment(ids, f.domains, i))
		}
	}

	return out, nil
}

// Equal reports whether both factors have identical variable-domains and
// agree on the potential of every row within eps.
//
// ⚠️ Enumerates the full cartesian product; intended for verification and
// tests, not hot paths.
func (f *Factor) Equal(other *Factor, eps float64) (bool, error) {
	if other == nil {
		return false, ErrNilFactor
	}
	if len(f.vars) != len(other.vars) {
		return false, nil
	}
	for i := range f.vars {
		if f.vars[i].ID() != other.vars[i].ID() {
			return false, nil
		}
		if len(f.domains[i]) != len(other.domains[i]) {
			return false, nil
		}
		for j := range f.domains[i] {
			if f.domains[i][j] != other.domains[i][j] {
				return false, nil
			}
		}
	}

	fv, err := f.values()
	if err != nil {
		return false, err
	}
	ov, err := other.values()
	if err != nil {
		return false, err
	}
	for i := range fv {
		if math.Abs(fv[i]-ov[i]) > eps {
			return false, nil
		}
	}

	return true, nil
}

// sortVarsByID sorts variables by ID in place.
func sortVarsByID(vars []*randvar.Variable) {
	for i := 1; i < len(vars); i++ {
		for j := i; j > 0 && vars[j].ID() < vars[j-1].ID(); j-- {
			vars[j], vars[j-1] = vars[j-1], vars[j]
		}
	}
}

// rowCount returns the cartesian-product size of the domain lists.
func rowCount(domains [][]randvar.Value) int {
	n := 1
	for _, d := range domains {
		n *= len(d)
	}

	return n
}

// rowAssignment decodes odometer row idx into an Assignment. The last
// variable cycles fastest; ids are sorted, so pairs come out sorted.
func rowAssignment(ids []string, domains [][]randvar.Value, idx int) Assignment {
	pairs := make([]Pair, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		d := domains[i]
		pairs[i] = Pair{Var: ids[i], Val: d[idx%len(d)]}
		idx /= len(d)
	}

	return fromSortedPairs(pairs)
}

// ctxCheckStride bounds how many rows a worker evaluates between
// cancellation checks.
const ctxCheckStride = 512

// enumerate evaluates eval over every row of the cartesian product of
// domains, in odometer order, and returns the dense value slice. Row
// evaluation fans out across o.Workers goroutines (each owning a
// contiguous index range, so no locking); validation rejects negative
// and non-finite potentials.
func enumerate(o Options, ids []string, domains [][]randvar.Value, eval PotentialFunc) ([]float64, error) {
	n := rowCount(domains)
	vals := make([]float64, n)

	// evalRange fills vals[lo:hi), checking cancellation periodically.
	evalRange := func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if (i-lo)%ctxCheckStride == 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
			v, err := eval(rowAssignment(ids, domains, i))
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinitePotential
			}
			if v < 0 {
				return ErrNegativePotential
			}
			vals[i] = v
		}

		return nil
	}

	nw := o.Workers
	if nw > n {
		nw = n
	}
	if nw < 2 {
		if err := evalRange(o.Ctx, 0, n); err != nil {
			return nil, err
		}

		return vals, nil
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	chunk := (n + nw - 1) / nw
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error { return evalRange(ctx, lo, hi) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vals, nil
}
