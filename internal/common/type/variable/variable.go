// Released under an MIT license. See LICENSE.

// Package variable provides icfp's variable term type.
package variable

import (
	"strconv"

	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

const name = "variable"

// ID identifies a variable.
type ID uint64

// T (variable) is a reference to the variable bound by an enclosing lambda.
type T ID

type variable = T

// New creates a variable term for id.
func New(id ID) term.I {
	v := variable(id)

	return &v
}

// Decode creates a variable term from a base-94 body.
func Decode(body string) (term.I, error) {
	id, err := codec.DecodeID(body)
	if err != nil {
		return nil, err
	}

	return New(ID(id)), nil
}

// Children returns nil. A variable has no subterms.
func (v *variable) Children() []term.I {
	return nil
}

// Equal returns true if t is a variable with the same ID.
func (v *variable) Equal(t term.I) bool {
	return Is(t) && v.ID() == To(t).ID()
}

// ID returns the identifier of the variable v.
func (v *variable) ID() ID {
	return ID(*v)
}

// Kind returns term.Var.
func (v *variable) Kind() term.Kind {
	return term.Var
}

// Name returns the type name for the variable v.
func (v *variable) Name() string {
	return name
}

// String returns "v" followed by the decimal ID.
func (v *variable) String() string {
	return v.ID().String()
}

// Token returns the variable token for v.
func (v *variable) Token() string {
	return "v" + v.ID().Body()
}

// With returns v.
func (v *variable) With(...term.I) term.I {
	return v
}

// Body returns the base-94 body for id.
func (id ID) Body() string {
	return codec.EncodeID(uint64(id))
}

// String returns "v" followed by the decimal value of id.
func (id ID) String() string {
	return "v" + strconv.FormatUint(uint64(id), 10)
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if v, ok := t.(*T); ok {
		return v
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t variable

	// The variable type is a term.
	_ = term.I(&t)
}
