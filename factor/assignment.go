// This file implements Assignment: an immutable set of (variable, value)
// pairs with unique variables — one point in the cartesian product of a
// scope's domains.

package factor

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pgmgo/pgmgo/randvar"
)

// Pair binds one variable ID to one of its domain values.
type Pair struct {
	// Var is the variable identifier.
	Var string

	// Val is the assigned domain value.
	Val randvar.Value
}

// Assignment is an immutable set of Pairs with unique variable IDs,
// kept sorted by variable ID. The zero value is the empty assignment.
type Assignment struct {
	pairs []Pair
}

// NewAssignment builds an Assignment from the given pairs.
// Input order is irrelevant; pairs are copied and sorted by variable ID.
//
// Returns ErrDuplicateAssignVar if a variable repeats.
// Complexity: O(n log n)
func NewAssignment(pairs ...Pair) (Assignment, error) {
	ps := make([]Pair, len(pairs))
	copy(ps, pairs)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Var < ps[j].Var })

	for i := 1; i < len(ps); i++ {
		if ps[i].Var == ps[i-1].Var {
			return Assignment{}, ErrDuplicateAssignVar
		}
	}

	return Assignment{pairs: ps}, nil
}

// fromSortedPairs wraps pairs already sorted by Var with unique IDs.
// Internal fast path for row enumeration; the slice is NOT copied.
func fromSortedPairs(pairs []Pair) Assignment {
	return Assignment{pairs: pairs}
}

// Len returns the number of bound variables.
func (a Assignment) Len() int { return len(a.pairs) }

// Get returns the value bound to the variable and whether it is bound.
// Complexity: O(log n)
func (a Assignment) Get(varID string) (randvar.Value, bool) {
	i := sort.Search(len(a.pairs), func(i int) bool { return a.pairs[i].Var >= varID })
	if i < len(a.pairs) && a.pairs[i].Var == varID {
		return a.pairs[i].Val, true
	}

	return 0, false
}

// Pairs returns a fresh copy of the bound pairs, sorted by variable ID.
func (a Assignment) Pairs() []Pair {
	out := make([]Pair, len(a.pairs))
	copy(out, a.pairs)

	return out
}

// Vars returns the bound variable IDs, sorted ascending.
func (a Assignment) Vars() []string {
	out := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		out[i] = p.Var
	}

	return out
}

// Scope returns the bound variable IDs as a Scope set.
func (a Assignment) Scope() Scope {
	return NewScope(a.Vars()...)
}

// Restrict returns the sub-assignment over the variables in s.
// Variables of s that are unbound here are simply absent from the result.
// Complexity: O(n)
func (a Assignment) Restrict(s Scope) Assignment {
	out := make([]Pair, 0, len(a.pairs))
	for _, p := range a.pairs {
		if s.Contains(p.Var) {
			out = append(out, p)
		}
	}

	return Assignment{pairs: out}
}

// Union merges two assignments. Variables bound by both must agree.
//
// Returns ErrConflictingAssignment on disagreement.
// Complexity: O(n + m)
func (a Assignment) Union(b Assignment) (Assignment, error) {
	out := make([]Pair, 0, len(a.pairs)+len(b.pairs))
	i, j := 0, 0
	for i < len(a.pairs) && j < len(b.pairs) {
		switch {
		case a.pairs[i].Var < b.pairs[j].Var:
			out = append(out, a.pairs[i])
			i++
		case a.pairs[i].Var > b.pairs[j].Var:
			out = append(out, b.pairs[j])
			j++
		default:
			if a.pairs[i].Val != b.pairs[j].Val {
				return Assignment{}, ErrConflictingAssignment
			}
			out = append(out, a.pairs[i])
			i++
			j++
		}
	}
	out = append(out, a.pairs[i:]...)
	out = append(out, b.pairs[j:]...)

	return Assignment{pairs: out}, nil
}

// Equal reports whether both assignments bind the same variables to the
// same values.
func (a Assignment) Equal(b Assignment) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		if a.pairs[i] != b.pairs[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string encoding ("X=0|Y=1"), suitable as a map
// key. Equal assignments yield equal keys.
func (a Assignment) Key() string {
	var sb strings.Builder
	for i, p := range a.pairs {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(p.Var)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(p.Val, 'g', -1, 64))
	}

	return sb.String()
}

// String implements fmt.Stringer via the canonical key.
func (a Assignment) String() string { return a.Key() }
