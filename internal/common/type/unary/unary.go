// Released under an MIT license. See LICENSE.

// Package unary provides icfp's unary operator term type.
package unary

import (
	"strconv"

	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

const name = "unary"

// Op is a unary operator. Its value is the operator's token body.
type Op byte

// Unary operators.
const (
	Neg      Op = '-'
	Not      Op = '!'
	StrToInt Op = '#'
	IntToStr Op = '$'
)

// T (unary) applies an operator to a single operand.
type T struct {
	operand term.I
	op      Op
}

type unary = T

// New creates a unary term applying op to operand.
func New(op Op, operand term.I) term.I {
	return &unary{operand: operand, op: op}
}

// Operator returns the Op for a token body, if the body names one.
func Operator(body string) (Op, bool) {
	if len(body) != 1 {
		return 0, false
	}

	switch op := Op(body[0]); op {
	case Neg, Not, StrToInt, IntToStr:
		return op, true
	}

	return 0, false
}

// String returns a readable name for the operator op.
func (op Op) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	case StrToInt:
		return "str-to-int"
	case IntToStr:
		return "int-to-str"
	}

	return strconv.QuoteRune(rune(op))
}

// Children returns the operand of the unary term u.
func (u *unary) Children() []term.I {
	return []term.I{u.operand}
}

// Equal returns true if t applies the same operator to an equal operand.
func (u *unary) Equal(t term.I) bool {
	return Is(t) && term.Equal(u, t)
}

// Kind returns term.Unary.
func (u *unary) Kind() term.Kind {
	return term.Unary
}

// Name returns the type name for the unary term u.
func (u *unary) Name() string {
	return name
}

// Op returns the operator of the unary term u.
func (u *unary) Op() Op {
	return u.op
}

// Operand returns the operand of the unary term u.
func (u *unary) Operand() term.I {
	return u.operand
}

// String returns the text of the unary term u.
func (u *unary) String() string {
	return "(" + u.op.String() + " " + term.Quote(u.operand) + ")"
}

// Token returns the unary token for u.
func (u *unary) Token() string {
	return "U" + string(u.op)
}

// With returns a unary term applying the same operator to a new operand.
func (u *unary) With(children ...term.I) term.I {
	if children[0] == u.operand {
		return u
	}

	return New(u.op, children[0])
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if u, ok := t.(*T); ok {
		return u
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t unary

	// The unary type is a term.
	_ = term.I(&t)
}
