// Released under an MIT license. See LICENSE.

// Package num provides icfp's arbitrary precision integer term type.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/interface/integer"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

const name = "integer"

// T (num) wraps Go's big.Int type. A num is never modified once created.
type T big.Int

type num = T

// New creates a num from a base-94 body.
func New(body string) (term.I, error) {
	n, err := codec.DecodeInt(body)
	if err != nil {
		return nil, err
	}

	return Big(n), nil
}

// Big wraps the *big.Int i as a num. The caller must not modify i afterwards.
func Big(i *big.Int) term.I {
	return (*num)(i)
}

// Int64 creates a num from the integer i.
func Int64(i int64) term.I {
	return Big(big.NewInt(i))
}

// Children returns nil. A num has no subterms.
func (n *num) Children() []term.I {
	return nil
}

// Equal returns true if t is the same number as the num n.
func (n *num) Equal(t term.I) bool {
	return Is(t) && n.Int().Cmp(To(t).Int()) == 0
}

// Int returns the value of the num n as a *big.Int.
func (n *num) Int() *big.Int {
	return (*big.Int)(n)
}

// Kind returns term.Int.
func (n *num) Kind() term.Kind {
	return term.Int
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the decimal text of the num n.
func (n *num) String() string {
	return n.Int().String()
}

// Token returns the integer token for n.
// Negative values are written as a negation of their absolute value.
func (n *num) Token() string {
	v := n.Int()
	if v.Sign() >= 0 {
		s, _ := codec.EncodeInt(v)

		return "I" + s
	}

	s, _ := codec.EncodeInt((&big.Int{}).Neg(v))

	return "U- I" + s
}

// With returns n.
func (n *num) With(...term.I) term.I {
	return n
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if n, ok := t.(*T); ok {
		return n
	}

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a term.
	_ = term.I(&t)

	// The num type is an integer.
	_ = integer.I(&t)
}
