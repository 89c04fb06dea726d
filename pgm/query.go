// This file implements the two query drivers - conditional probability
// and most probable explanation - plus the max-product traceback.

package pgm

import (
	"context"
	"fmt"
	"sort"

	"github.com/pgmgo/pgmgo/core"
	"github.com/pgmgo/pgmgo/elimorder"
	"github.com/pgmgo/pgmgo/factor"
)

// ConditionalQuery computes the unnormalized conditional potential
// φ*(Q | E=e): the model's factors are conditioned on the evidence,
// every variable outside Q ∪ E is summed out, and the surviving pool
// is multiplied into one factor over the un-evidenced query variables.
//
// Steps:
//  1. Validate the query set and the evidence against the model.
//  2. Condition every model factor on the evidence.
//  3. Order the eliminated variables (greedy heuristic or override).
//  4. Run the sum-product sweep.
//
// Query variables that appear in the evidence are collapsed to their
// observed values and reported in QueryResult.Fixed instead of Phi's
// scope. The model is never mutated.
func (m *Model) ConditionalQuery(ctx context.Context, queryVars []string, evidence factor.Assignment, opts ...QueryOption) (*QueryResult, error) {
	if len(queryVars) == 0 {
		return nil, ErrEmptyQuery
	}
	qo := defaultQueryOptions()
	for _, opt := range opts {
		opt(&qo)
	}

	// 1. Validate.
	qScope := factor.NewScope(queryVars...)
	for _, id := range qScope.IDs() {
		if _, ok := m.vars[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrQueryNotInModel, id)
		}
	}
	if err := m.checkEvidence(evidence); err != nil {
		return nil, err
	}

	// 2. Condition the factor pool on the evidence.
	pool, err := m.conditionedFactors(evidence, qo)
	if err != nil {
		return nil, err
	}

	// 3. Order everything outside Q ∪ E for elimination.
	zs := m.eliminationTargets(qScope, evidence)
	ord, err := m.resolveOrdering(zs, qo)
	if err != nil {
		return nil, err
	}

	// 4. Sum-product sweep, then the final pool product.
	phi, _, err := SumProductElimination(ctx, pool, ord, factor.WithWorkers(qo.workers))
	if err != nil {
		return nil, err
	}

	return &QueryResult{Phi: phi, Fixed: evidence.Restrict(qScope)}, nil
}

// MostProbableExplanation computes argmax over all non-evidence
// variables of the joint potential conditioned on the evidence, via a
// max-product sweep followed by a backward traceback over the recorded
// pre-elimination products.
//
// The returned Probability is the unnormalized joint potential of the
// maximizing assignment.
func (m *Model) MostProbableExplanation(ctx context.Context, evidence factor.Assignment, opts ...QueryOption) (*MPEResult, error) {
	qo := defaultQueryOptions()
	for _, opt := range opts {
		opt(&qo)
	}
	if err := m.checkEvidence(evidence); err != nil {
		return nil, err
	}

	// 1. Condition the pool, order every non-evidence variable.
	pool, err := m.conditionedFactors(evidence, qo)
	if err != nil {
		return nil, err
	}
	zs := m.eliminationTargets(factor.Scope{}, evidence)
	ord, err := m.resolveOrdering(zs, qo)
	if err != nil {
		return nil, err
	}

	// 2. Max-product sweep.
	joint, potentials, err := MaxProductElimination(ctx, pool, ord, factor.WithWorkers(qo.workers))
	if err != nil {
		return nil, err
	}

	// 3. Backward traceback over the recorded products.
	fixed, err := Traceback(potentials, ord.Sequence())
	if err != nil {
		return nil, err
	}
	prob, err := joint.MaxValue()
	if err != nil {
		return nil, err
	}

	return &MPEResult{Assignment: fixed, Evidence: evidence, Probability: prob}, nil
}

// Traceback recovers a maximizing assignment from the pre-elimination
// products of a max-product sweep. potentials[i] must be the product
// recorded when orderVars[i] was eliminated.
//
// The walk runs in reverse elimination order: each product is
// conditioned on the variables already fixed, its argmax row fixes the
// rest of its scope, and the step must determine at least one new
// variable. Among tied maximizers the first row in enumeration order
// wins, keeping the result deterministic.
//
// Returns ErrInconsistentTraceback when the inputs disagree in length,
// a step determines nothing new, or a variable ends up undetermined.
func Traceback(potentials []*factor.Factor, orderVars []string) (factor.Assignment, error) {
	if len(potentials) != len(orderVars) {
		return factor.Assignment{}, fmt.Errorf("%w: %d potentials for %d variables",
			ErrInconsistentTraceback, len(potentials), len(orderVars))
	}

	var fixed factor.Assignment
	for i := len(potentials) - 1; i >= 0; i-- {
		// 1. Condition on what earlier (reverse) steps fixed.
		red, err := factor.Reduce(potentials[i], fixed)
		if err != nil {
			return factor.Assignment{}, err
		}

		// 2. The first maximizer row fixes the remaining scope.
		maxima, err := red.ArgMax()
		if err != nil {
			return factor.Assignment{}, err
		}
		if len(maxima) == 0 || maxima[0].Len() == 0 {
			return factor.Assignment{}, fmt.Errorf("%w: step %d (%s) fixed nothing",
				ErrInconsistentTraceback, i, orderVars[i])
		}
		next, err := fixed.Union(maxima[0])
		if err != nil {
			return factor.Assignment{}, err
		}
		fixed = next
	}

	// 3. Every eliminated variable must be determined.
	for _, id := range orderVars {
		if _, ok := fixed.Get(id); !ok {
			return factor.Assignment{}, fmt.Errorf("%w: %q undetermined", ErrInconsistentTraceback, id)
		}
	}

	return fixed, nil
}

// checkEvidence verifies every evidence variable belongs to the model.
func (m *Model) checkEvidence(evidence factor.Assignment) error {
	for _, id := range evidence.Vars() {
		if _, ok := m.vars[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEvidenceVar, id)
		}
	}

	return nil
}

// conditionedFactors returns the model's factor pool with the evidence
// conditioned out of every scope it touches.
func (m *Model) conditionedFactors(evidence factor.Assignment, qo queryOptions) ([]*factor.Factor, error) {
	pool := make([]*factor.Factor, 0, len(m.factors))
	for _, f := range m.factors {
		red, err := factor.Reduce(f, evidence, factor.WithWorkers(qo.workers))
		if err != nil {
			return nil, err
		}
		pool = append(pool, red)
	}

	return pool, nil
}

// eliminationTargets returns the sorted model variables outside both
// the kept scope and the evidence.
func (m *Model) eliminationTargets(keep factor.Scope, evidence factor.Assignment) []string {
	ev := evidence.Scope()
	var zs []string
	for _, id := range m.order {
		if keep.Contains(id) || ev.Contains(id) {
			continue
		}
		zs = append(zs, id)
	}
	sort.Strings(zs)

	return zs
}

// resolveOrdering returns the caller's explicit ordering when supplied
// (it must rank exactly zs) or runs the greedy heuristic on a graph
// clone.
func (m *Model) resolveOrdering(zs []string, qo queryOptions) (elimorder.Ordering, error) {
	if qo.ordering != nil {
		ord := *qo.ordering
		if ord.Len() != len(zs) {
			return elimorder.Ordering{}, fmt.Errorf("%w: ordering ranks %d of %d elimination variables",
				ErrUnknownVariable, ord.Len(), len(zs))
		}
		for _, id := range zs {
			if _, ok := ord.Rank(id); !ok {
				return elimorder.Ordering{}, fmt.Errorf("%w: ordering misses %q", ErrUnknownVariable, id)
			}
		}

		return ord, nil
	}

	ord, _, err := m.GreedyOrdering(zs, elimorder.WithMetric(qo.metric))

	return ord, err
}

// GreedyOrdering runs the greedy elimination heuristic over the model's
// structure graph for the given variables, returning the ordering and
// the triangulated working graph. The model's own graph is untouched.
func (m *Model) GreedyOrdering(nodes []string, opts ...elimorder.Option) (elimorder.Ordering, *core.Graph, error) {
	return elimorder.GreedyMetric(m.graph, nodes, opts...)
}
