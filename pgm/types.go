// This file declares sentinel errors, the elimination Strategy set,
// model/query options, and the result types.

package pgm

import (
	"errors"

	"github.com/pgmgo/pgmgo/elimorder"
	"github.com/pgmgo/pgmgo/factor"
)

// Sentinel errors for model construction and queries.
var (
	// ErrNilModel indicates a nil model or nil construction input.
	ErrNilModel = errors.New("pgm: nil model")

	// ErrNilVariable indicates a nil variable in the model's variable set.
	ErrNilVariable = errors.New("pgm: nil variable")

	// ErrDuplicateVariable indicates two model variables share an ID.
	ErrDuplicateVariable = errors.New("pgm: duplicate variable ID")

	// ErrUnknownVariable indicates a reference to a variable outside the model.
	ErrUnknownVariable = errors.New("pgm: variable not in model")

	// ErrEmptyFactorSet indicates a product over zero factors.
	ErrEmptyFactorSet = errors.New("pgm: empty factor set")

	// ErrEmptyQuery indicates a conditional query over zero variables.
	ErrEmptyQuery = errors.New("pgm: empty query variable set")

	// ErrQueryNotInModel indicates query variables outside the model.
	ErrQueryNotInModel = errors.New("pgm: query variables not a subset of model variables")

	// ErrUnknownEvidenceVar indicates evidence outside the model.
	ErrUnknownEvidenceVar = errors.New("pgm: evidence variable not in model")

	// ErrUnknownStrategy indicates an unrecognized elimination strategy.
	ErrUnknownStrategy = errors.New("pgm: unknown elimination strategy")

	// ErrInconsistentTraceback indicates the backward pass could not
	// determine any new variable from a recorded potential.
	ErrInconsistentTraceback = errors.New("pgm: traceback could not determine a variable")
)

// Strategy names the closed set of per-variable elimination moves.
type Strategy int

const (
	// SumStrategy marginalizes the eliminated variable (sum-product).
	SumStrategy Strategy = iota

	// MaxStrategy maximizes the eliminated variable away (max-product).
	MaxStrategy
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case SumStrategy:
		return "SumStrategy"
	case MaxStrategy:
		return "MaxStrategy"
	default:
		return "Unknown"
	}
}

// ModelOption configures NewModel.
type ModelOption func(*modelOptions)

// modelOptions holds construction parameters.
type modelOptions struct {
	factors    []*factor.Factor
	hasFactors bool
}

// WithFactors supplies the model's factor set explicitly, replacing the
// default per-edge derivation. Every factor's scope must reference model
// variables only.
func WithFactors(fs []*factor.Factor) ModelOption {
	return func(o *modelOptions) {
		o.factors = fs
		o.hasFactors = true
	}
}

// QueryOption configures ConditionalQuery and MostProbableExplanation.
type QueryOption func(*queryOptions)

// queryOptions holds per-query parameters.
type queryOptions struct {
	metric   elimorder.Metric
	ordering *elimorder.Ordering
	workers  int
}

// defaultQueryOptions returns the per-query defaults: greedy
// MinUnmarkedNeighbors ordering and sequential table evaluation.
func defaultQueryOptions() queryOptions {
	return queryOptions{
		metric:  elimorder.MinUnmarkedNeighbors,
		workers: 1,
	}
}

// WithOrderingMetric selects the greedy metric used to order the
// eliminated variables.
func WithOrderingMetric(m elimorder.Metric) QueryOption {
	return func(o *queryOptions) { o.metric = m }
}

// WithOrdering supplies an explicit elimination ordering, bypassing the
// greedy heuristic. The ordering must rank exactly the variables the
// query eliminates.
func WithOrdering(ord elimorder.Ordering) QueryOption {
	return func(o *queryOptions) { o.ordering = &ord }
}

// WithWorkers bounds parallel factor-table evaluation during the query.
func WithWorkers(n int) QueryOption {
	return func(o *queryOptions) { o.workers = n }
}

// QueryResult is the outcome of a conditional-probability query.
type QueryResult struct {
	// Phi is the unnormalized surviving factor over the un-evidenced
	// query variables.
	Phi *factor.Factor

	// Fixed holds query variables that were collapsed to their observed
	// evidence values; they no longer appear in Phi's scope.
	Fixed factor.Assignment
}

// Prob returns the normalized conditional probability of a full
// assignment over Phi's scope: φ*(a) / Σ φ*.
//
// Returns factor.ErrZeroPartition when the evidence is impossible under
// the model, plus Phi's lookup errors.
func (r *QueryResult) Prob(a factor.Assignment) (float64, error) {
	return r.Phi.PhiNormal(a)
}

// Distribution returns the full normalized conditional distribution,
// keyed by each assignment's canonical Key.
func (r *QueryResult) Distribution() (map[string]float64, error) {
	rows := r.Phi.Rows()
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		p, err := r.Phi.PhiNormal(row)
		if err != nil {
			return nil, err
		}
		out[row.Key()] = p
	}

	return out, nil
}

// MPEResult is the outcome of a most-probable-explanation query.
type MPEResult struct {
	// Assignment fixes every non-evidence variable to its value in the
	// most probable joint assignment.
	Assignment factor.Assignment

	// Evidence echoes the query's evidence set.
	Evidence factor.Assignment

	// Probability is the unnormalized joint potential of the most
	// probable assignment (the max value of the final surviving factor).
	Probability float64
}
