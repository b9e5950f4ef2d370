// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/truth"
	"github.com/michaelmacinnis/icfp/internal/common/type/boolean"
)

// and does not short-circuit. Both operands are already values.
func and(l, r term.I) term.I {
	a := truth.Value(l)
	b := truth.Value(r)

	return boolean.Bool(a && b)
}

func not(x term.I) term.I {
	return boolean.Bool(!truth.Value(x))
}

func or(l, r term.I) term.I {
	a := truth.Value(l)
	b := truth.Value(r)

	return boolean.Bool(a || b)
}
