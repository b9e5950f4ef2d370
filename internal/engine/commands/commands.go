// Released under an MIT license. See LICENSE.

// Package commands provides icfp's strict built-in operators.
//
// Operands are always fully reduced values. An operand of the wrong type
// raises a fault.
package commands

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/binary"
	"github.com/michaelmacinnis/icfp/internal/common/type/unary"
)

// Binary returns a mapping of operators to strict binary functions.
// Application is not strict and is not included.
func Binary() map[binary.Op]func(term.I, term.I) term.I {
	return map[binary.Op]func(term.I, term.I) term.I{
		binary.Add:    add,
		binary.And:    and,
		binary.Concat: concat,
		binary.Div:    div,
		binary.Drop:   drop,
		binary.Eq:     eq,
		binary.Gt:     gt,
		binary.Lt:     lt,
		binary.Mod:    mod,
		binary.Mul:    mul,
		binary.Or:     or,
		binary.Sub:    sub,
		binary.Take:   take,
	}
}

// Unary returns a mapping of operators to unary functions.
func Unary() map[unary.Op]func(term.I) term.I {
	return map[unary.Op]func(term.I) term.I{
		unary.IntToStr: intToStr,
		unary.Neg:      neg,
		unary.Not:      not,
		unary.StrToInt: strToInt,
	}
}
