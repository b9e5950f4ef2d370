// Released under an MIT license. See LICENSE.

// Package lambda provides icfp's lambda abstraction term type.
package lambda

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/variable"
)

const name = "lambda"

// T (lambda) binds a variable in its body.
type T struct {
	body term.I
	id   variable.ID
}

type lambda = T

// New creates a lambda binding id in body.
func New(id variable.ID, body term.I) term.I {
	return &lambda{body: body, id: id}
}

// Body returns the body of the lambda l.
func (l *lambda) Body() term.I {
	return l.body
}

// Children returns the body of the lambda l.
func (l *lambda) Children() []term.I {
	return []term.I{l.body}
}

// Equal returns true if t is a lambda binding the same variable in an
// equal body. Lambdas that differ only in the name of their variable are
// not equal.
func (l *lambda) Equal(t term.I) bool {
	return Is(t) && term.Equal(l, t)
}

// Kind returns term.Lambda.
func (l *lambda) Kind() term.Kind {
	return term.Lambda
}

// Name returns the type name for the lambda l.
func (l *lambda) Name() string {
	return name
}

// String returns the text of the lambda l.
func (l *lambda) String() string {
	return "(\\" + l.id.String() + " -> " + term.Quote(l.body) + ")"
}

// Token returns the lambda token for l.
func (l *lambda) Token() string {
	return "L" + l.id.Body()
}

// Var returns the identifier of the variable bound by the lambda l.
func (l *lambda) Var() variable.ID {
	return l.id
}

// With returns a lambda binding the same variable in a new body.
func (l *lambda) With(children ...term.I) term.I {
	if children[0] == l.body {
		return l
	}

	return New(l.id, children[0])
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if l, ok := t.(*T); ok {
		return l
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t lambda

	// The lambda type is a term.
	_ = term.I(&t)
}
