// Package pgmgo is an in-memory toolkit for exact probabilistic inference
// over discrete graphical models — factor algebra, elimination orderings,
// and sum-/max-product variable elimination.
//
// 🚀 What is pgmgo?
//
//	A pure-Go library for answering exact marginal and most-probable-assignment
//	queries on models built from categorical random variables:
//	  • Factor algebra: product, reduction, marginalization, maximization
//	  • Elimination orderings: max-cardinality search & greedy metric search
//	  • Sum-product elimination for conditional probability queries
//	  • Max-product elimination + traceback for most probable explanations
//
// ✨ Why choose pgmgo?
//
//   - Exact answers – variable elimination, no sampling, no approximation
//   - Pure operations – every algebra step allocates fresh immutable factors
//   - Deterministic – sorted scopes, stable orderings, reproducible results
//   - Cancellable – context.Context threaded through every elimination loop
//
// Everything is organized under five subpackages:
//
//	core/      — undirected graph primitives backing model structure
//	randvar/   — categorical random variables (domain, evidence, marginal)
//	factor/    — assignments, scopes, the Factor type & its algebra
//	elimorder/ — elimination-ordering heuristics over a working graph copy
//	pgm/       — the model type and the two elimination drivers
//
// Quick ASCII example (a three-variable chain):
//
//	    A───B───C
//
//	vars A,B,C ∈ {0,1}; one pairwise factor per edge favouring agreement.
//	ConditionalQuery({A}, {C:1}) → P(A | C=1)
//	MostProbableExplanation({})  → argmax over all joint assignments
//
// See each subpackage's doc.go for contracts, complexity and error sets.
package pgmgo
