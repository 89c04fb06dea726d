// Package pgm ties the pieces together: a probabilistic graphical model
// (variables + structure graph + factor set) and the two exact-inference
// drivers built on variable elimination.
//
// 🚀 What can it answer?
//
//   - ConditionalQuery: P(queryVars | evidence) — the exact conditional
//     distribution over the query variables, by sum-product elimination.
//   - MostProbableExplanation: the single joint assignment of all
//     non-evidence variables maximizing the unnormalized joint potential,
//     by max-product elimination plus a backward traceback.
//
// A Model owns its variables, an undirected structure graph, and a set
// of factors. When no factors are supplied, one pairwise factor is
// derived per edge (the product of the endpoints' marginals), reduced by
// any evidence attached to an endpoint. Queries never mutate the model:
// factor reduction works on fresh copies and ordering heuristics
// triangulate a private graph clone.
//
// Per query, every variable moves unmarked → eliminated exactly once and
// never back; every factor moves from the active working pool into a
// product/marginal that absorbs it. The elimination drivers are plain
// loops over an elimination ordering; cost is exponential in the largest
// intermediate scope the ordering produces, so a context deadline is
// threaded through every driver.
//
// ⚙️ Usage:
//
//	m, err := pgm.NewModel(vars, [][2]string{{"A", "B"}, {"B", "C"}})
//	res, err := m.ConditionalQuery(ctx, []string{"A"}, evidence)
//	p, err := res.Prob(a)                          // P(A = a | evidence)
//	mpe, err := m.MostProbableExplanation(ctx, evidence)
//
// Errors:
//
//   - ErrNilModel             nil model receiver or construction input.
//   - ErrNilVariable          nil variable in the model's variable set.
//   - ErrDuplicateVariable    two variables share an ID.
//   - ErrUnknownVariable      a factor or lookup references a foreign variable.
//   - ErrEmptyFactorSet       a product over zero factors.
//   - ErrEmptyQuery           a conditional query over zero variables.
//   - ErrQueryNotInModel      query variables outside the model.
//   - ErrUnknownEvidenceVar   evidence variables outside the model.
//   - ErrUnknownStrategy      an unrecognized elimination strategy.
//   - ErrInconsistentTraceback the backward pass could not fix a variable;
//     signals a broken ordering or potential recording and is always
//     surfaced, never swallowed.
//
// All errors are recoverable by the caller and never process-fatal. The
// drivers perform no retries: computations are deterministic and pure,
// so retrying a failed step cannot change its outcome. Query functions
// return either a result or a typed error — never a partial result.
package pgm
