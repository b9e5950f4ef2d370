// Released under an MIT license. See LICENSE.

// Package token is shared by the icfp lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/icfp/internal/common/struct/loc"
)

// Class is a token's type. It is the token's indicator character.
type Class byte

// Token classes.
const (
	Binary   Class = 'B'
	False    Class = 'F'
	If       Class = '?'
	Integer  Class = 'I'
	Lambda   Class = 'L'
	String   Class = 'S'
	True     Class = 'T'
	Unary    Class = 'U'
	Variable Class = 'v'
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	source *loc.T
	value  string
}

type token = T

// New creates a new token. The value must not be empty.
func New(value string, source *loc.T) *token {
	return &token{
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Binary:
		return "Binary"
	case False:
		return "False"
	case If:
		return "If"
	case Integer:
		return "Integer"
	case Lambda:
		return "Lambda"
	case String:
		return "String"
	case True:
		return "True"
	case Unary:
		return "Unary"
	case Variable:
		return "Variable"
	}

	return strconv.QuoteRune(rune(c))
}

// Body returns the remainder of the token after its indicator.
func (t *token) Body() string {
	return t.value[1:]
}

// Class returns the token's class (its indicator).
func (t *token) Class() Class {
	return Class(t.value[0])
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.Class() == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.Class().String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
