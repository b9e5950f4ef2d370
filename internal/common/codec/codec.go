// Released under an MIT license. See LICENSE.

// Package codec converts between token bodies and the values they represent.
//
// Token bodies are drawn from the 94 printable ASCII characters, '!' (33)
// through '~' (126). Integer and variable bodies are base-94 numerals with
// '!' as the digit zero. String bodies map each character, in order, onto
// the alphabet below.
package codec

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
)

// Alphabet is the human-readable text for the body characters '!' to '~'.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`|~ \n"

// Base of the integer encoding and size of the alphabet.
const Base = 94

// Lowest and highest valid body characters.
const (
	First = '!'
	Last  = '~'
)

// Zero is the body of the integer zero.
const Zero = "!"

//nolint:gochecknoglobals
var (
	base = big.NewInt(Base)

	// Inverse of Alphabet. Zero means the character is not encodable.
	encoding = func() (e [256]byte) {
		for i := 0; i < len(Alphabet); i++ {
			e[Alphabet[i]] = byte(First + i)
		}

		return
	}()
)

// Valid returns true if b is a printable, non-space ASCII character.
func Valid(b byte) bool {
	return b >= First && b <= Last
}

// DecodeString translates a string body into its human-readable text.
func DecodeString(body string) (string, error) {
	var b strings.Builder

	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if !Valid(c) {
			return "", fault.New(fault.Decode, "byte %#02x at offset %d", c, i)
		}

		b.WriteByte(Alphabet[c-First])
	}

	return b.String(), nil
}

// EncodeString translates human-readable text into a string body.
func EncodeString(text string) (string, error) {
	var b strings.Builder

	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := encoding[text[i]]
		if c == 0 {
			return "", fault.New(fault.Encode, "%q is not in the alphabet", text[i])
		}

		b.WriteByte(c)
	}

	return b.String(), nil
}

// DecodeInt reads body as a base-94 numeral, most significant digit first.
func DecodeInt(body string) (*big.Int, error) {
	if body == "" {
		return nil, fault.New(fault.Decode, "empty integer body")
	}

	n := &big.Int{}
	d := &big.Int{}

	for i := 0; i < len(body); i++ {
		c := body[i]
		if !Valid(c) {
			return nil, fault.New(fault.Decode, "byte %#02x at offset %d", c, i)
		}

		n.Mul(n, base)
		n.Add(n, d.SetInt64(int64(c-First)))
	}

	return n, nil
}

// EncodeInt writes the non-negative integer n as a minimal base-94 numeral.
func EncodeInt(n *big.Int) (string, error) {
	switch n.Sign() {
	case -1:
		return "", fault.New(fault.Encode, "negative integer %s", n.String())
	case 0:
		return Zero, nil
	}

	q := (&big.Int{}).Set(n)
	r := &big.Int{}

	digits := []byte{}
	for q.Sign() > 0 {
		q.QuoRem(q, base, r)
		digits = append(digits, byte(First+r.Int64()))
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits), nil
}

// DecodeID reads a variable body. Identifiers must fit in 64 bits.
func DecodeID(body string) (uint64, error) {
	n, err := DecodeInt(body)
	if err != nil {
		return 0, err
	}

	if !n.IsUint64() {
		return 0, fault.New(fault.Decode, "variable %q out of range", body)
	}

	return n.Uint64(), nil
}

// EncodeID writes the variable identifier id as a base-94 numeral.
func EncodeID(id uint64) string {
	if id == 0 {
		return Zero
	}

	var buf [16]byte

	i := len(buf)
	for ; id > 0; id /= Base {
		i--
		buf[i] = byte(First + id%Base)
	}

	return string(buf[i:])
}
