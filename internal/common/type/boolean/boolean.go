// Released under an MIT license. See LICENSE.

// Package boolean provides icfp's boolean term type.
package boolean

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean term for the bool b.
func Bool(b bool) term.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Children returns nil. A boolean has no subterms.
func (b *boolean) Children() []term.I {
	return nil
}

// Equal returns true if t is a boolean with a matching value.
func (b *boolean) Equal(t term.I) bool {
	return Is(t) && b.Bool() == To(t).Bool()
}

// Kind returns term.Bool.
func (b *boolean) Kind() term.Kind {
	return term.Bool
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

// Token returns "T" or "F".
func (b *boolean) Token() string {
	if bool(*b) {
		return "T"
	}

	return "F"
}

// With returns b.
func (b *boolean) With(...term.I) term.I {
	return b
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

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a term.
	_ = term.I(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
