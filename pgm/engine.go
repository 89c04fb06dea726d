// This file implements the variable-elimination engine: factor-set
// products, single-variable elimination steps, and the sum-product and
// max-product sweeps that the query layer drives.

package pgm

import (
	"context"
	"fmt"

	"github.com/pgmgo/pgmgo/elimorder"
	"github.com/pgmgo/pgmgo/factor"
)

// ProductOfFactors folds the factor product over fs left to right and
// returns the joint factor plus the product accumulator of the final
// fold step. A single-factor set is returned unchanged with a zero
// accumulator; an empty set is ErrEmptyFactorSet.
//
// Complexity: O(Σ table sizes) per fold step; the joint table grows
// with the union scope.
func ProductOfFactors(ctx context.Context, fs []*factor.Factor, opts ...factor.Option) (*factor.Factor, float64, error) {
	if len(fs) == 0 {
		return nil, 0, ErrEmptyFactorSet
	}
	if len(fs) == 1 {
		return fs[0], 0, nil
	}

	opts = append(opts, factor.WithContext(ctx))
	joint, acc := fs[0], 0.0
	for _, f := range fs[1:] {
		next, a, err := factor.Product(joint, f, opts...)
		if err != nil {
			return nil, 0, err
		}
		joint, acc = next, a
	}

	return joint, acc, nil
}

// EliminateVariable performs one elimination step on the factor pool:
// every factor mentioning zID is multiplied into a pre-elimination
// product, zID is summed or maxed out of it per strategy, and the
// untouched factors plus the stepped factor form the new pool.
//
// Returns the new pool, the post-elimination factor, and the
// pre-elimination product (the max-product traceback consumes it).
func EliminateVariable(ctx context.Context, fs []*factor.Factor, zID string, s Strategy, opts ...factor.Option) ([]*factor.Factor, *factor.Factor, *factor.Factor, error) {
	if s != SumStrategy && s != MaxStrategy {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}

	// 1. Partition the pool by scope membership of zID.
	var touched, rest []*factor.Factor
	for _, f := range fs {
		if f.Scope().Contains(zID) {
			touched = append(touched, f)
		} else {
			rest = append(rest, f)
		}
	}
	if len(touched) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no factor mentions %q", ErrEmptyFactorSet, zID)
	}

	// 2. Multiply the touched factors into one pre-elimination product.
	pre, _, err := ProductOfFactors(ctx, touched, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	// 3. Eliminate zID from the product.
	opts = append(opts, factor.WithContext(ctx))
	var step *factor.Factor
	switch s {
	case SumStrategy:
		step, err = factor.SumOutVar(pre, zID, opts...)
	case MaxStrategy:
		step, err = factor.MaxOutVar(pre, zID, opts...)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	return append(rest, step), step, pre, nil
}

// SumProductElimination eliminates ord's variables from fs in rank
// order with the sum strategy, then multiplies the surviving pool into
// one factor over the un-eliminated scope. The second return value is
// the final fold's product accumulator.
func SumProductElimination(ctx context.Context, fs []*factor.Factor, ord elimorder.Ordering, opts ...factor.Option) (*factor.Factor, float64, error) {
	pool := fs
	for _, zID := range ord.Sequence() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		next, _, _, err := EliminateVariable(ctx, pool, zID, SumStrategy, opts...)
		if err != nil {
			return nil, 0, err
		}
		pool = next
	}

	return ProductOfFactors(ctx, pool, opts...)
}

// MaxProductElimination eliminates ord's variables from fs in rank
// order with the max strategy. It returns the surviving joint factor
// plus the recorded pre-elimination products, one per eliminated
// variable in elimination order; Traceback consumes them to recover
// the maximizing assignment.
func MaxProductElimination(ctx context.Context, fs []*factor.Factor, ord elimorder.Ordering, opts ...factor.Option) (*factor.Factor, []*factor.Factor, error) {
	pool := fs
	potentials := make([]*factor.Factor, 0, ord.Len())
	for _, zID := range ord.Sequence() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		next, _, pre, err := EliminateVariable(ctx, pool, zID, MaxStrategy, opts...)
		if err != nil {
			return nil, nil, err
		}
		potentials = append(potentials, pre)
		pool = next
	}

	joint, _, err := ProductOfFactors(ctx, pool, opts...)
	if err != nil {
		return nil, nil, err
	}

	return joint, potentials, nil
}
