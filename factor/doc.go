// Package factor implements the table-valued functions at the heart of
// discrete probabilistic inference: assignments, variable scopes, the
// Factor type with its cached partition value, and the pure algebra that
// variable elimination is built from (product, reduction, filtering,
// sum-out, max-out).
//
// 🚀 What is a factor?
//
//	A factor φ assigns a non-negative potential to every full assignment
//	of its scope — the set of random variables it depends on. Joint
//	distributions are products of factors; marginals fall out of summing
//	variables away; most-probable explanations fall out of maximizing
//	them away.
//
// ✨ Key properties:
//
//   - Purity: every algebra operation allocates a fresh Factor and never
//     mutates its inputs, so independent computations need no locking.
//   - Two representations: TableBacked (materialized row table, O(1)
//     potential lookup — the default) and RuleBacked (a total function
//     evaluated on demand, chosen via WithLazy). The algebra is generic
//     over "evaluate φ at an assignment" and never inspects the variant.
//   - Determinism: scopes are kept sorted by variable ID, domains sorted
//     ascending, and rows enumerated in odometer order (last variable
//     cycling fastest), so identical inputs yield identical tables.
//   - Parallelism: table construction fans row evaluation out across
//     workers (WithWorkers) with errgroup; the combining sum runs in row
//     order, so results are reproducible regardless of worker count.
//
// ⚠️ Cost model: constructing a factor, its partition value, and every
// algebra operation enumerate the cartesian product of the scope's
// domains — O(∏|domain_i|) evaluations. This exponential-in-scope-size
// cost is the dominant scaling factor of variable elimination; the
// elimination ordering exists to keep intermediate scopes small.
//
// ⚙️ Usage:
//
//	x, _ := randvar.New("X", []randvar.Value{0, 1})
//	y, _ := randvar.New("Y", []randvar.Value{0, 1})
//
//	f, err := factor.New("f", []*randvar.Variable{x, y},
//	  func(a factor.Assignment) (float64, error) {
//	    xv, _ := a.Get("X")
//	    yv, _ := a.Get("Y")
//	    if xv == yv {
//	      return 3, nil
//	    }
//	    return 1, nil
//	  })
//
//	marg, err := factor.SumOutVar(f, "Y") // φ(x) = Σ_y f(x,y)
//
// Errors:
//
//   - ErrNilFactor             nil factor passed to an operation.
//   - ErrNilPotential          New called with a nil potential function.
//   - ErrNilVariable           nil variable in a scope.
//   - ErrDuplicateScopeVar     two scope variables share an ID.
//   - ErrNegativeDomainValue   a scope variable's domain holds a negative value.
//   - ErrNegativePotential     φ produced a negative value.
//   - ErrNonFinitePotential    φ produced NaN or ±Inf.
//   - ErrScopeMismatch         an assignment's variables differ from the scope.
//   - ErrUnknownScopeVar       an operation referenced a variable outside the scope.
//   - ErrConflictingAssignment union of assignments disagrees on a value.
//   - ErrDuplicateAssignVar    an assignment repeats a variable.
//   - ErrEmptyEliminationSet   SumOutVars called with no variables.
//   - ErrZeroPartition         normalization attempted with Z == 0.
package factor
