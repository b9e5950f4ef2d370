// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/integer"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/boolean"
)

// eq compares two values of the same type.
func eq(l, r term.I) term.I {
	if !term.IsValue(l) || l.Kind() != r.Kind() {
		fault.Raise(fault.Type, "cannot compare %s with %s", l.Name(), r.Name())
	}

	return boolean.Bool(l.Equal(r))
}

func gt(l, r term.I) term.I {
	return boolean.Bool(integer.Value(l).Cmp(integer.Value(r)) > 0)
}

func lt(l, r term.I) term.I {
	return boolean.Bool(integer.Value(l).Cmp(integer.Value(r)) < 0)
}
