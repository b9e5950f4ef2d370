// Released under an MIT license. See LICENSE.

// Package reader encapsulates the icfp lexer and parser for line-at-a-time input.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/struct/token"
	"github.com/michaelmacinnis/icfp/internal/reader/lexer"
	"github.com/michaelmacinnis/icfp/internal/reader/parser"
)

// T (reader) accumulates tokens until they form complete terms.
type T struct {
	name   string
	s      *lexer.T
	tokens []*token.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{
		name: name,
		s:    lexer.New(name),
	}
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Pending returns true if the reader holds the start of an incomplete term.
func (r *reader) Pending() bool {
	return len(r.tokens) > 0
}

// Reset discards any incomplete term.
func (r *reader) Reset() {
	r.s = lexer.New(r.name)
	r.tokens = nil
}

// Scan reads the line and returns every term it completes.
// Tokens for an incomplete term are kept until a later line completes it.
// On any error other than truncation the pending input is discarded.
func (r *reader) Scan(line string) (terms []term.I, err error) {
	defer func() {
		if v := recover(); v != nil {
			r.Reset()

			err = fault.Recover(v)
		}
	}()

	r.s.Scan(line)

	for t := r.s.Token(); t != nil; t = r.s.Token() {
		r.tokens = append(r.tokens, t)
	}

	for len(r.tokens) > 0 {
		t, rest, err := parser.Parse(r.tokens)
		if errors.Is(err, fault.ErrTruncatedInput) {
			break
		}

		if err != nil {
			r.Reset()

			return terms, err
		}

		terms = append(terms, t)
		r.tokens = rest
	}

	return terms, nil
}
