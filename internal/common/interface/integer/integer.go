// Released under an MIT license. See LICENSE.

// Package integer converts an icfp term to a *big.Int value, if possible.
package integer

import (
	"math/big"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

// I (integer) is anything that can be treated as an integer.
type I interface {
	Int() *big.Int
}

// Value returns the *big.Int value for a term, if possible.
// The value returned must not be modified.
func Value(t term.I) *big.Int {
	i, ok := t.(I)
	if !ok {
		fault.Raise(fault.Type, "%s cannot be used in a numeric context", t.Name())
	}

	return i.Int()
}
