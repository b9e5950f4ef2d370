// Released under an MIT license. See LICENSE.

// Package fault provides the error type shared by every stage of icfp.
package fault

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/icfp/internal/common/struct/loc"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Unknown Kind = iota

	Arithmetic
	Decode
	EmptyInput
	Encode
	MalformedToken
	StepLimitExceeded
	TruncatedInput
	Type
	UnboundVariable
	UnknownIndicator
)

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrArithmetic        = &T{kind: Arithmetic}
	ErrDecode            = &T{kind: Decode}
	ErrEmptyInput        = &T{kind: EmptyInput}
	ErrEncode            = &T{kind: Encode}
	ErrMalformedToken    = &T{kind: MalformedToken}
	ErrStepLimitExceeded = &T{kind: StepLimitExceeded}
	ErrTruncatedInput    = &T{kind: TruncatedInput}
	ErrType              = &T{kind: Type}
	ErrUnboundVariable   = &T{kind: UnboundVariable}
	ErrUnknownIndicator  = &T{kind: UnknownIndicator}
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "error"
	case Arithmetic:
		return "arithmetic error"
	case Decode:
		return "decode error"
	case EmptyInput:
		return "empty input"
	case Encode:
		return "encode error"
	case MalformedToken:
		return "malformed token"
	case StepLimitExceeded:
		return "step limit exceeded"
	case TruncatedInput:
		return "truncated input"
	case Type:
		return "type error"
	case UnboundVariable:
		return "unbound variable"
	case UnknownIndicator:
		return "unknown indicator"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// T (fault) is an error with a kind and, where known, a source location.
type T struct {
	kind   Kind
	msg    string
	source *loc.T
	steps  int64
}

type fault = T

// New creates a fault of kind k.
func New(k Kind, format string, args ...interface{}) *fault {
	return &fault{kind: k, msg: fmt.Sprintf(format, args...)}
}

// At creates a fault of kind k at the source location l.
func At(l *loc.T, k Kind, format string, args ...interface{}) *fault {
	f := New(k, format, args...)
	f.source = l

	return f
}

// Raise panics with a new fault of kind k.
func Raise(k Kind, format string, args ...interface{}) {
	panic(New(k, format, args...))
}

// Error returns the text of the fault f.
func (f *fault) Error() string {
	s := f.kind.String()
	if f.msg != "" {
		s += ": " + f.msg
	}

	if f.source != nil {
		s = f.source.String() + ": " + s
	}

	return s
}

// Is reports whether target is a fault of the same kind.
func (f *fault) Is(target error) bool {
	t, ok := target.(*fault) //nolint:errorlint
	if !ok {
		return false
	}

	return t.kind == f.kind
}

// Kind returns the kind of the fault f.
func (f *fault) Kind() Kind {
	return f.kind
}

// Source returns the location of the fault f, if any.
func (f *fault) Source() *loc.T {
	return f.source
}

// Steps returns the number of beta reductions performed when f was raised.
func (f *fault) Steps() int64 {
	return f.steps
}

// WithSteps records the beta reduction count n and returns f.
func (f *fault) WithSteps(n int64) *fault {
	f.steps = n

	return f
}

// KindOf returns the kind of err if it is a fault, and Unknown otherwise.
func KindOf(err error) Kind {
	var f *fault
	if errors.As(err, &f) {
		return f.kind
	}

	return Unknown
}

// Recover converts a recovered panic value r into an error.
// It re-panics for values that are not errors or strings.
func Recover(r interface{}) error {
	switch r := r.(type) {
	case nil:
		return nil
	case *fault:
		return r
	case error:
		return r
	case string:
		return New(Unknown, "%s", r)
	case fmt.Stringer:
		return New(Unknown, "%s", r.String())
	}

	panic(r)
}
