// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for icfp token strings.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"github.com/michaelmacinnis/icfp/internal/common/codec"
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/struct/loc"
	"github.com/michaelmacinnis/icfp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string // Buffer being scanned.
	closed bool   // No more text will be scanned.
	first  int    // Index of the current token's first byte.
	index  int    // Index of the current byte.
	state  action // Current action.

	column int // Column of the current byte.
	source loc.T

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		column: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Tokenize splits source into tokens.
func Tokenize(label, source string) (tokens []*token.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, fault.Recover(r)
		}
	}()

	l := New(label)

	l.Scan(source)
	l.Close()

	for t := l.Token(); t != nil; t = l.Token() {
		tokens = append(tokens, t)
	}

	if len(tokens) == 0 {
		return nil, fault.New(fault.EmptyInput, "no tokens in %s", nameOf(label))
	}

	return tokens, nil
}

// Close marks the end of the text. A token at the end of the text is
// only returned after Close is called.
func (l *T) Close() {
	l.closed = true
}

// Scan passes a text buffer to the lexer for scanning.
// Any partially scanned token is continued by the new text.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + text
	l.index -= l.first
	l.first = 0
}

// Token returns the next scanned token, or nil if no token is available.
// It panics with a fault if the text contains a byte that is neither
// whitespace nor a valid token character.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil || l.starved() {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

func (l *T) emit() {
	source := l.source
	l.tokens = append(l.tokens, token.New(l.bytes[l.first:l.index], &source))
	l.first = l.index
}

func (l *T) skip() {
	if l.bytes[l.index] == '\n' {
		l.source.Line++
		l.column = 1
	} else {
		l.column++
	}

	l.index++
	l.first = l.index
}

// starved returns true if the lexer must wait for more text.
func (l *T) starved() bool {
	return !l.closed && l.index >= len(l.bytes)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func nameOf(label string) string {
	if label == "" {
		return "input"
	}

	return label
}

// T states.

func scanToken(l *T) action {
	for l.index < len(l.bytes) {
		b := l.bytes[l.index]
		if isSpace(b) {
			l.emit()

			return skipWhitespace
		}

		if !codec.Valid(b) {
			source := l.source
			source.Char = l.column

			panic(fault.At(&source, fault.MalformedToken, "unexpected byte %#02x", b))
		}

		l.index++
		l.column++
	}

	if l.closed {
		l.emit()

		return nil
	}

	return scanToken
}

func skipWhitespace(l *T) action {
	for l.index < len(l.bytes) {
		if !isSpace(l.bytes[l.index]) {
			l.source.Char = l.column
			l.source.Index++

			return scanToken
		}

		l.skip()
	}

	if l.closed {
		return nil
	}

	return skipWhitespace
}
