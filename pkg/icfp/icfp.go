// Released under an MIT license. See LICENSE.

// Package icfp decodes, evaluates, and encodes ICFP token strings.
//
// A token string is a sequence of whitespace-separated tokens over the
// printable ASCII characters '!' to '~'. Evaluation is lazy and aborts
// with ErrStepLimitExceeded after too many beta reductions.
package icfp

import (
	"strconv"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/integer"
	"github.com/michaelmacinnis/icfp/internal/common/interface/literal"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/text"
	"github.com/michaelmacinnis/icfp/internal/common/interface/truth"
	"github.com/michaelmacinnis/icfp/internal/engine"
	"github.com/michaelmacinnis/icfp/internal/engine/machine"
	"github.com/michaelmacinnis/icfp/internal/reader/parser"
)

const label = "icfp"

// DefaultLimit is the number of beta reductions allowed per evaluation.
const DefaultLimit = machine.DefaultLimit

// Term is a node in an immutable term tree.
type Term = term.I

// Errors returned by this package. Use errors.Is to match them.
//
//nolint:gochecknoglobals
var (
	ErrArithmetic        = fault.ErrArithmetic
	ErrDecode            = fault.ErrDecode
	ErrEmptyInput        = fault.ErrEmptyInput
	ErrEncode            = fault.ErrEncode
	ErrMalformedToken    = fault.ErrMalformedToken
	ErrStepLimitExceeded = fault.ErrStepLimitExceeded
	ErrTruncatedInput    = fault.ErrTruncatedInput
	ErrType              = fault.ErrType
	ErrUnboundVariable   = fault.ErrUnboundVariable
	ErrUnknownIndicator  = fault.ErrUnknownIndicator
)

// Decode parses a token string holding exactly one term.
func Decode(source string) (Term, error) {
	return parser.String(label, source)
}

// Encode returns the token string for t.
func Encode(t Term) string {
	return literal.String(t)
}

// Evaluate decodes source and reduces it to normal form.
func Evaluate(source string) (Term, error) {
	return EvaluateWithLimit(source, DefaultLimit)
}

// EvaluateWithLimit is Evaluate with a different beta reduction limit.
func EvaluateWithLimit(source string, limit int64) (Term, error) {
	v, _, err := engine.Run(label, source, engine.Limit(limit))

	return v, err
}

// Message returns the string token for the human-readable text s.
func Message(s string) (string, error) {
	body, err := codec.EncodeString(s)
	if err != nil {
		return "", err
	}

	return "S" + body, nil
}

// Quote is Render with strings written as escaped, single-quoted text.
func Quote(t Term) string {
	if t.Kind() == term.Str {
		return adapted.CanonicalString(text.Value(t))
	}

	return Render(t)
}

// Render returns the human-readable text for t. Strings are returned as
// is, integers in decimal, and booleans as true or false. Anything else
// is returned as a token string.
func Render(t Term) string {
	switch t.Kind() {
	case term.Bool:
		return strconv.FormatBool(truth.Value(t))
	case term.Int:
		return integer.Value(t).String()
	case term.Str:
		return text.Value(t)
	case term.Var, term.Lambda, term.Unary, term.Binary, term.If:
	}

	return Encode(t)
}
