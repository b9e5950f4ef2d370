// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/integer"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/text"
	"github.com/michaelmacinnis/icfp/internal/common/type/num"
	"github.com/michaelmacinnis/icfp/internal/common/type/str"
)

func concat(l, r term.I) term.I {
	a := text.Value(l)
	b := text.Value(r)

	return str.New(a + b)
}

// drop removes the first n characters. Counts past the end leave nothing.
func drop(l, r term.I) term.I {
	n := count(l)
	s := text.Value(r)

	if n >= len(s) {
		return str.New("")
	}

	return str.New(s[n:])
}

// intToStr reads the digits of a non-negative integer as a string body.
func intToStr(x term.I) term.I {
	n := integer.Value(x)
	if n.Sign() < 0 {
		fault.Raise(fault.Arithmetic, "negative integer %s has no string form", n)
	}

	body, err := codec.EncodeInt(n)
	if err != nil {
		panic(err)
	}

	s, err := str.Decode(body)
	if err != nil {
		panic(err)
	}

	return s
}

// strToInt reads a string's body as base-94 digits. The empty string is zero.
func strToInt(x term.I) term.I {
	body, err := codec.EncodeString(text.Value(x))
	if err != nil {
		panic(err)
	}

	if body == "" {
		return num.Int64(0)
	}

	n, err := codec.DecodeInt(body)
	if err != nil {
		panic(err)
	}

	return num.Big(n)
}

// take keeps the first n characters. Counts past the end keep everything.
func take(l, r term.I) term.I {
	n := count(l)
	s := text.Value(r)

	if n >= len(s) {
		return str.New(s)
	}

	return str.New(s[:n])
}

// count returns a non-negative character count, capped at the largest int.
func count(x term.I) int {
	n := integer.Value(x)
	if n.Sign() < 0 {
		fault.Raise(fault.Arithmetic, "negative count %s", n)
	}

	if !n.IsInt64() || n.Cmp(big.NewInt(int64(maxInt))) > 0 {
		return maxInt
	}

	return int(n.Int64())
}

const maxInt = int(^uint(0) >> 1)
