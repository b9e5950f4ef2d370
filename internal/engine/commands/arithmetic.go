// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/integer"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/num"
)

func add(l, r term.I) term.I {
	sum := &big.Int{}

	return num.Big(sum.Add(integer.Value(l), integer.Value(r)))
}

// div truncates toward zero.
func div(l, r term.I) term.I {
	dividend := integer.Value(l)
	divisor := nonzero(integer.Value(r))

	quotient := &big.Int{}

	return num.Big(quotient.Quo(dividend, divisor))
}

// mod returns a remainder with the sign of the dividend.
func mod(l, r term.I) term.I {
	dividend := integer.Value(l)
	divisor := nonzero(integer.Value(r))

	remainder := &big.Int{}

	return num.Big(remainder.Rem(dividend, divisor))
}

func mul(l, r term.I) term.I {
	product := &big.Int{}

	return num.Big(product.Mul(integer.Value(l), integer.Value(r)))
}

func neg(x term.I) term.I {
	negation := &big.Int{}

	return num.Big(negation.Neg(integer.Value(x)))
}

func sub(l, r term.I) term.I {
	difference := &big.Int{}

	return num.Big(difference.Sub(integer.Value(l), integer.Value(r)))
}

func nonzero(divisor *big.Int) *big.Int {
	if divisor.Sign() == 0 {
		fault.Raise(fault.Arithmetic, "division by zero")
	}

	return divisor
}
