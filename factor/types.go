// This file declares sentinel errors, the representation Kind, the
// PotentialFunc contract, and the shared Options / Option machinery used
// by New and the algebra operations.

package factor

import (
	"context"
	"errors"
)

// Sentinel errors for factor construction and algebra.
var (
	// ErrNilFactor indicates a nil *Factor passed to an operation.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrNilPotential indicates New was called with a nil potential function.
	ErrNilPotential = errors.New("factor: nil potential function")

	// ErrNilVariable indicates a nil variable in a scope slice.
	ErrNilVariable = errors.New("factor: nil scope variable")

	// ErrDuplicateScopeVar indicates two scope variables share an ID.
	ErrDuplicateScopeVar = errors.New("factor: duplicate scope variable")

	// ErrNegativeDomainValue indicates a scope variable whose domain holds
	// a negative value; such variables cannot carry probability mass.
	ErrNegativeDomainValue = errors.New("factor: scope variable domain holds a negative value")

	// ErrNegativePotential indicates the potential function produced a
	// negative value for some assignment.
	ErrNegativePotential = errors.New("factor: negative potential value")

	// ErrNonFinitePotential indicates the potential function produced NaN
	// or ±Inf for some assignment.
	ErrNonFinitePotential = errors.New("factor: non-finite potential value")

	// ErrScopeMismatch indicates an assignment whose variable set differs
	// from the factor's scope, or incompatible scopes in a binary operation.
	ErrScopeMismatch = errors.New("factor: assignment does not match scope")

	// ErrUnknownScopeVar indicates an operation referenced a variable that
	// is not part of the factor's scope.
	ErrUnknownScopeVar = errors.New("factor: variable not in scope")

	// ErrConflictingAssignment indicates a union of assignments that
	// disagree on some variable's value.
	ErrConflictingAssignment = errors.New("factor: conflicting assignment values")

	// ErrDuplicateAssignVar indicates an assignment repeating a variable.
	ErrDuplicateAssignVar = errors.New("factor: duplicate assignment variable")

	// ErrNilPredicate indicates FilterAssignments was given a nil predicate.
	ErrNilPredicate = errors.New("factor: nil predicate")

	// ErrEmptyEliminationSet indicates SumOutVars was given no variables.
	ErrEmptyEliminationSet = errors.New("factor: empty elimination set")

	// ErrZeroPartition indicates normalization over a zero partition value.
	ErrZeroPartition = errors.New("factor: zero partition value")
)

// Kind tags the runtime representation of a Factor.
//
//   - TableBacked — the potential of every row is materialized at
//     construction; lookups are O(k) for scope size k. The common case.
//   - RuleBacked  — the potential function is retained and evaluated on
//     demand; cheaper to build, dearer to query. The function must be
//     total over the scope's cartesian product.
type Kind int

const (
	// TableBacked factors store a materialized row table.
	TableBacked Kind = iota

	// RuleBacked factors evaluate their potential function per lookup.
	RuleBacked
)

// String returns the representation name.
func (k Kind) String() string {
	switch k {
	case TableBacked:
		return "TableBacked"
	case RuleBacked:
		return "RuleBacked"
	default:
		return "Unknown"
	}
}

// PotentialFunc maps a full assignment of a factor's scope to its
// non-negative potential. The function must be total: defined for every
// row of the scope's cartesian product. It must be pure; it may be called
// concurrently when workers are configured.
type PotentialFunc func(Assignment) (float64, error)

// CombineFunc merges two potentials during Product (default: multiply).
type CombineFunc func(x, y float64) float64

// AccumulatorFunc folds the operands' partition values into the auxiliary
// scalar returned by Product (default: multiply). Callers use it to carry
// a running normalization constant through a chain of products without
// re-enumerating tables.
type AccumulatorFunc func(zf, zg float64) float64

// Option configures optional behavior of New and the algebra operations.
type Option func(*Options)

// Options holds configurable parameters shared by New and the algebra.
// Not every field applies to every operation: Lazy is honored only by
// New; Combine and Accumulator only by Product.
type Options struct {
	// Ctx allows cancellation of table enumeration; defaults to
	// context.Background(). Cancelling aborts with the context's error.
	Ctx context.Context

	// Workers bounds the goroutines used to evaluate table rows.
	// Values below 2 keep enumeration sequential (the default).
	Workers int

	// Lazy keeps the factor RuleBacked instead of materializing its table.
	// The partition value is still computed (one full enumeration).
	Lazy bool

	// Combine merges potentials in Product; nil means multiplication.
	Combine CombineFunc

	// Accumulator folds partition values in Product; nil means multiplication.
	Accumulator AccumulatorFunc
}

// DefaultOptions returns Options with a background context, sequential
// enumeration, eager tabulation, and multiplicative combine/accumulate.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Workers:     1,
		Lazy:        false,
		Combine:     nil,
		Accumulator: nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option bounding parallel row evaluation.
// The combining pass stays sequential in row order, so results are
// identical regardless of n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLazy returns an Option that keeps a new factor RuleBacked.
func WithLazy() Option {
	return func(o *Options) {
		o.Lazy = true
	}
}

// WithCombine returns an Option overriding Product's potential merge.
func WithCombine(fn CombineFunc) Option {
	return func(o *Options) {
		o.Combine = fn
	}
}

// WithAccumulator returns an Option overriding Product's partition fold.
func WithAccumulator(fn AccumulatorFunc) Option {
	return func(o *Options) {
		o.Accumulator = fn
	}
}
