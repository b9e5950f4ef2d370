// Released under an MIT license. See LICENSE.

// Package truth defines the interface for icfp terms that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a term, if possible.
func Value(t term.I) bool {
	b, ok := t.(I)
	if !ok {
		fault.Raise(fault.Type, "%s cannot be used in a boolean context", t.Name())
	}

	return b.Bool()
}
