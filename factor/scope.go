// This file implements Scope — the set of variable IDs a factor depends
// on — and its pure set operations.

package factor

import (
	"sort"

	"github.com/pgmgo/pgmgo/randvar"
)

// Scope is a set of variable identifiers. The nil map is a valid empty
// scope; all operations are pure and never mutate their receivers.
type Scope map[string]struct{}

// NewScope builds a Scope from the given IDs (duplicates coalesce).
func NewScope(ids ...string) Scope {
	s := make(Scope, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// ScopeOf builds a Scope from the IDs of the given variables.
func ScopeOf(vars []*randvar.Variable) Scope {
	s := make(Scope, len(vars))
	for _, v := range vars {
		if v != nil {
			s[v.ID()] = struct{}{}
		}
	}

	return s
}

// Contains reports whether id is in the scope.
func (s Scope) Contains(id string) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of variables in the scope.
func (s Scope) Len() int { return len(s) }

// Union returns a fresh scope holding every ID of s and t.
func (s Scope) Union(t Scope) Scope {
	out := make(Scope, len(s)+len(t))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range t {
		out[id] = struct{}{}
	}

	return out
}

// Diff returns a fresh scope holding the IDs of s absent from t.
func (s Scope) Diff(t Scope) Scope {
	out := make(Scope, len(s))
	for id := range s {
		if !t.Contains(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Intersect returns a fresh scope holding the IDs present in both.
func (s Scope) Intersect(t Scope) Scope {
	out := make(Scope)
	for id := range s {
		if t.Contains(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether every ID of s is in t.
func (s Scope) SubsetOf(t Scope) bool {
	for id := range s {
		if !t.Contains(id) {
			return false
		}
	}

	return true
}

// Equal reports whether both scopes hold exactly the same IDs.
func (s Scope) Equal(t Scope) bool {
	return len(s) == len(t) && s.SubsetOf(t)
}

// IDs returns the member IDs, sorted ascending.
func (s Scope) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
