// Released under an MIT license. See LICENSE.

// Package str provides icfp's string term type.
package str

import (
	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/text"
)

const name = "string"

// T (str) wraps Go's string type. The string is human-readable text.
type T string

type str = T

// New creates a new str term from human-readable text.
func New(v string) term.I {
	s := str(v)

	return &s
}

// Decode creates a new str term from a string body.
func Decode(body string) (term.I, error) {
	v, err := codec.DecodeString(body)
	if err != nil {
		return nil, err
	}

	return New(v), nil
}

// Body returns the encoded body of the str s.
func (s *str) Body() (string, error) {
	return codec.EncodeString(string(*s))
}

// Children returns nil. A str has no subterms.
func (s *str) Children() []term.I {
	return nil
}

// Equal returns true if the term t wraps the same string and false otherwise.
func (s *str) Equal(t term.I) bool {
	return Is(t) && s.Text() == To(t).Text()
}

// Kind returns term.Str.
func (s *str) Kind() term.Kind {
	return term.Str
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Text returns the text of the str s.
func (s *str) Text() string {
	return string(*s)
}

// Token returns the string token for s.
// It panics if s holds text outside the alphabet.
func (s *str) Token() string {
	b, err := s.Body()
	if err != nil {
		panic(err)
	}

	return "S" + b
}

// With returns s.
func (s *str) With(...term.I) term.I {
	return s
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if s, ok := t.(*T); ok {
		return s
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a term.
	_ = term.I(&t)

	// The str type is text.
	_ = text.I(&t)
}
