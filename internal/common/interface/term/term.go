// Released under an MIT license. See LICENSE.

// Package term defines the interface for all icfp terms.
package term

import (
	"strconv"
)

// Kind identifies which of the fixed set of term types a term is.
type Kind int

// Term kinds. There are no others.
const (
	Bool Kind = iota
	Int
	Str
	Var
	Lambda
	Unary
	Binary
	If
)

// I (term) is a node in an immutable term tree.
type I interface {
	// Children returns the direct subterms in token order.
	Children() []I
	Equal(t I) bool
	Kind() Kind
	Name() string
	String() string
	// Token returns the token (or tokens) that introduce this term.
	Token() string
	// With returns a term of the same kind and operator with new children.
	With(children ...I) I
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Str:
		return "string"
	case Var:
		return "variable"
	case Lambda:
		return "lambda"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case If:
		return "if"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsValue returns true if t is a boolean, integer, or string.
func IsValue(t I) bool {
	switch t.Kind() {
	case Bool, Int, Str:
		return true
	case Var, Lambda, Unary, Binary, If:
	}

	return false
}

// Quote returns the human-readable text for t when it appears inside
// another term. Strings are quoted. Everything else is unchanged.
func Quote(t I) string {
	if t.Kind() == Str {
		return strconv.Quote(t.String())
	}

	return t.String()
}

// Equal returns true if a and b have the same kind, token, and children.
func Equal(a, b I) bool {
	if a.Kind() != b.Kind() || a.Token() != b.Token() {
		return false
	}

	ac := a.Children()
	bc := b.Children()

	if len(ac) != len(bc) {
		return false
	}

	for i := range ac {
		if !ac[i].Equal(bc[i]) {
			return false
		}
	}

	return true
}

// Walk calls visit for t and every subterm of t, in token order.
// Subterms of a term are skipped if visit returns false.
func Walk(t I, visit func(I) bool) {
	stack := []I{t}

	for len(stack) > 0 {
		n := len(stack) - 1
		t := stack[n]
		stack = stack[:n]

		if !visit(t) {
			continue
		}

		cs := t.Children()
		for i := len(cs) - 1; i >= 0; i-- {
			stack = append(stack, cs[i])
		}
	}
}
