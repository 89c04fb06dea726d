package pgm

import (
	"fmt"
	"sort"

	"github.com/pgmgo/pgmgo/core"
	"github.com/pgmgo/pgmgo/factor"
	"github.com/pgmgo/pgmgo/randvar"
)

// Model is an immutable undirected graphical model: a variable set, a
// structure graph over variable IDs, and a factor set whose scopes draw
// from the variable set. Build once with NewModel, then query freely
// from any goroutine.
type Model struct {
	graph   *core.Graph
	vars    map[string]*randvar.Variable
	order   []string // variable IDs, ascending
	factors []*factor.Factor
}

// NewModel builds a model from its variables and structure edges.
//
// When WithFactors is absent, one pairwise factor is derived per edge:
// its potential is the product of the endpoints' marginal masses, and
// endpoints carrying evidence are conditioned out of its scope.
//
// Steps:
//  1. Validate the variable set (non-nil, unique IDs).
//  2. Build the structure graph; edge endpoints must be model variables.
//  3. Install the supplied factor set, or derive the per-edge defaults.
//
// Errors: ErrNilModel, ErrNilVariable, ErrDuplicateVariable,
// ErrUnknownVariable, plus factor construction errors.
func NewModel(vars []*randvar.Variable, edges [][2]string, opts ...ModelOption) (*Model, error) {
	if len(vars) == 0 {
		return nil, ErrNilModel
	}

	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate the variable set.
	m := &Model{
		graph: core.NewGraph(),
		vars:  make(map[string]*randvar.Variable, len(vars)),
		order: make([]string, 0, len(vars)),
	}
	for _, v := range vars {
		if v == nil {
			return nil, ErrNilVariable
		}
		if _, dup := m.vars[v.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v.ID())
		}
		m.vars[v.ID()] = v
		m.order = append(m.order, v.ID())
		if err := m.graph.AddVertex(v.ID()); err != nil {
			return nil, err
		}
	}
	sort.Strings(m.order)

	// 2. Wire the structure edges.
	for _, e := range edges {
		for _, end := range e {
			if _, ok := m.vars[end]; !ok {
				return nil, fmt.Errorf("%w: edge endpoint %q", ErrUnknownVariable, end)
			}
		}
		if err := m.graph.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	// 3. Install or derive the factor set.
	if o.hasFactors {
		for _, f := range o.factors {
			if f == nil {
				return nil, factor.ErrNilFactor
			}
			for _, id := range f.Scope().IDs() {
				if _, ok := m.vars[id]; !ok {
					return nil, fmt.Errorf("%w: factor %s scope %q", ErrUnknownVariable, f.ID(), id)
				}
			}
		}
		m.factors = append(m.factors, o.factors...)

		return m, nil
	}
	for _, e := range edges {
		f, err := m.deriveEdgeFactor(e[0], e[1])
		if err != nil {
			return nil, err
		}
		m.factors = append(m.factors, f)
	}

	return m, nil
}

// deriveEdgeFactor builds the default pairwise factor for edge u-v:
// phi(u=a, v=b) = P(u=a) * P(v=b), conditioned on endpoint evidence.
func (m *Model) deriveEdgeFactor(u, v string) (*factor.Factor, error) {
	vu, vv := m.vars[u], m.vars[v]
	phi := func(a factor.Assignment) (float64, error) {
		ua, _ := a.Get(u)
		va, _ := a.Get(v)
		pu, err := vu.Marginal(ua)
		if err != nil {
			return 0, err
		}
		pv, err := vv.Marginal(va)
		if err != nil {
			return 0, err
		}

		return pu * pv, nil
	}
	f, err := factor.New(fmt.Sprintf("phi_%s_%s", u, v), []*randvar.Variable{vu, vv}, phi)
	if err != nil {
		return nil, err
	}

	// Condition out observed endpoints.
	var pairs []factor.Pair
	for _, end := range []*randvar.Variable{vu, vv} {
		if val, ok := end.Evidence(); ok {
			pairs = append(pairs, factor.Pair{Var: end.ID(), Val: val})
		}
	}
	if len(pairs) == 0 {
		return f, nil
	}
	ev, err := factor.NewAssignment(pairs...)
	if err != nil {
		return nil, err
	}

	return factor.Reduce(f, ev)
}

// Variable returns the model variable with the given ID.
func (m *Model) Variable(id string) (*randvar.Variable, error) {
	v, ok := m.vars[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, id)
	}

	return v, nil
}

// Variables returns the model's variables sorted by ID.
func (m *Model) Variables() []*randvar.Variable {
	out := make([]*randvar.Variable, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.vars[id])
	}

	return out
}

// VariableIDs returns the sorted variable IDs.
func (m *Model) VariableIDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)

	return out
}

// Graph returns a deep copy of the structure graph; mutating it never
// touches the model.
func (m *Model) Graph() *core.Graph { return m.graph.Clone() }

// Factors returns a copy of the model's factor slice. Factors
// themselves are immutable and shared.
func (m *Model) Factors() []*factor.Factor {
	out := make([]*factor.Factor, len(m.factors))
	copy(out, m.factors)

	return out
}

// MarkovBlanket returns the sorted neighbor IDs of id in the structure
// graph. In a Markov network the blanket is exactly the neighborhood.
func (m *Model) MarkovBlanket(id string) ([]string, error) {
	if _, ok := m.vars[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, id)
	}

	return m.graph.Neighbors(id)
}

// ClosureOf returns id plus its Markov blanket, sorted.
func (m *Model) ClosureOf(id string) ([]string, error) {
	nbrs, err := m.MarkovBlanket(id)
	if err != nil {
		return nil, err
	}
	out := append(nbrs, id)
	sort.Strings(out)

	return out, nil
}

// ScopeSubsetFactors returns the model factors whose scope is a subset
// of s, preserving the model's factor order.
func (m *Model) ScopeSubsetFactors(s factor.Scope) []*factor.Factor {
	var out []*factor.Factor
	for _, f := range m.factors {
		if f.Scope().SubsetOf(s) {
			out = append(out, f)
		}
	}

	return out
}
