// Released under an MIT license. See LICENSE.

// Package binary provides icfp's binary operator term type.
package binary

import (
	"strconv"

	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

const name = "binary"

// Op is a binary operator. Its value is the operator's token body.
type Op byte

// Binary operators.
const (
	Add    Op = '+'
	Sub    Op = '-'
	Mul    Op = '*'
	Div    Op = '/'
	Mod    Op = '%'
	Lt     Op = '<'
	Gt     Op = '>'
	Eq     Op = '='
	Or     Op = '|'
	And    Op = '&'
	Concat Op = '.'
	Take   Op = 'T'
	Drop   Op = 'D'
	Apply  Op = '$'
)

// T (binary) applies an operator to two operands.
type T struct {
	left  term.I
	op    Op
	right term.I
}

type binary = T

// New creates a binary term applying op to left and right.
func New(op Op, left, right term.I) term.I {
	return &binary{left: left, op: op, right: right}
}

// Application creates a binary term applying f to x.
func Application(f, x term.I) term.I {
	return New(Apply, f, x)
}

// Operator returns the Op for a token body, if the body names one.
func Operator(body string) (Op, bool) {
	if len(body) != 1 {
		return 0, false
	}

	switch op := Op(body[0]); op {
	case Add, Sub, Mul, Div, Mod, Lt, Gt, Eq, Or, And, Concat, Take, Drop, Apply:
		return op, true
	}

	return 0, false
}

// String returns a readable name for the operator op.
func (op Op) String() string {
	switch op {
	case Add, Sub, Mul, Div, Mod, Lt, Gt, Eq, Or, And, Concat:
		return string(op)
	case Take:
		return "take"
	case Drop:
		return "drop"
	case Apply:
		return "apply"
	}

	return strconv.QuoteRune(rune(op))
}

// Children returns the operands of the binary term b.
func (b *binary) Children() []term.I {
	return []term.I{b.left, b.right}
}

// Equal returns true if t applies the same operator to equal operands.
func (b *binary) Equal(t term.I) bool {
	return Is(t) && term.Equal(b, t)
}

// Kind returns term.Binary.
func (b *binary) Kind() term.Kind {
	return term.Binary
}

// Left returns the first operand of the binary term b.
func (b *binary) Left() term.I {
	return b.left
}

// Name returns the type name for the binary term b.
func (b *binary) Name() string {
	return name
}

// Op returns the operator of the binary term b.
func (b *binary) Op() Op {
	return b.op
}

// Right returns the second operand of the binary term b.
func (b *binary) Right() term.I {
	return b.right
}

// String returns the text of the binary term b.
func (b *binary) String() string {
	l := term.Quote(b.left)
	r := term.Quote(b.right)

	switch b.op {
	case Apply:
		return "(" + l + " " + r + ")"
	case Take, Drop:
		return "(" + b.op.String() + " " + l + " " + r + ")"
	}

	return "(" + l + " " + b.op.String() + " " + r + ")"
}

// Token returns the binary token for b.
func (b *binary) Token() string {
	return "B" + string(b.op)
}

// With returns a binary term applying the same operator to new operands.
func (b *binary) With(children ...term.I) term.I {
	if children[0] == b.left && children[1] == b.right {
		return b
	}

	return New(b.op, children[0], children[1])
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if b, ok := t.(*T); ok {
		return b
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t binary

	// The binary type is a term.
	_ = term.I(&t)
}
