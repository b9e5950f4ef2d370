// Released under an MIT license. See LICENSE.

// Package substitute provides capture-avoiding substitution for icfp terms.
package substitute

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/lambda"
	"github.com/michaelmacinnis/icfp/internal/common/type/variable"
)

// Set is a set of variable identifiers.
type Set map[variable.ID]struct{}

// Free returns the set of variables that occur free in t.
func Free(t term.I) Set {
	free := Set{}
	bound := map[variable.ID]int{}

	var walk func(t term.I)

	walk = func(t term.I) {
		switch t.Kind() {
		case term.Var:
			id := variable.To(t).ID()
			if bound[id] == 0 {
				free[id] = struct{}{}
			}

		case term.Lambda:
			l := lambda.To(t)

			bound[l.Var()]++
			walk(l.Body())
			bound[l.Var()]--

		case term.Bool, term.Int, term.Str, term.Unary, term.Binary, term.If:
			for _, c := range t.Children() {
				walk(c)
			}
		}
	}

	walk(t)

	return free
}

// IsFree returns true if the variable id occurs free in t.
func IsFree(t term.I, id variable.ID) bool {
	_, ok := Free(t)[id]

	return ok
}

// Substitute replaces every free occurrence of the variable id in body
// with replacement. A lambda in body whose variable occurs free in
// replacement has its variable renamed to a fresh identifier from names
// first, so that no variable in replacement is captured.
// Subterms that do not change are shared with body.
func Substitute(body term.I, id variable.ID, replacement term.I, names *Names) term.I {
	s := &substitution{
		free:        Free(replacement),
		id:          id,
		names:       names,
		replacement: replacement,
	}

	return s.apply(body)
}

type substitution struct {
	free        Set
	id          variable.ID
	names       *Names
	replacement term.I
}

func (s *substitution) apply(t term.I) term.I {
	switch t.Kind() {
	case term.Bool, term.Int, term.Str:
		return t

	case term.Var:
		if variable.To(t).ID() == s.id {
			return s.replacement
		}

		return t

	case term.Lambda:
		l := lambda.To(t)

		if l.Var() == s.id {
			// Shadowed.
			return t
		}

		if _, captured := s.free[l.Var()]; captured {
			fresh := s.names.Fresh()
			renamed := rename(l.Body(), l.Var(), fresh)

			return lambda.New(fresh, s.apply(renamed))
		}

		return l.With(s.apply(l.Body()))

	case term.Unary, term.Binary, term.If:
	}

	cs := t.Children()
	ns := make([]term.I, len(cs))
	changed := false

	for i, c := range cs {
		ns[i] = s.apply(c)
		changed = changed || ns[i] != c
	}

	if !changed {
		return t
	}

	return t.With(ns...)
}

// rename replaces free occurrences of from in t with the unused variable to.
func rename(t term.I, from, to variable.ID) term.I {
	r := &substitution{
		free:        Set{to: {}},
		id:          from,
		replacement: variable.New(to),
	}

	return r.apply(t)
}
