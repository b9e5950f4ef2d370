// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for icfp token strings.
//
// Every token's indicator determines how many terms follow it so the
// parser never needs to look ahead or backtrack.
package parser

import (
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/struct/token"
	"github.com/michaelmacinnis/icfp/internal/common/type/binary"
	"github.com/michaelmacinnis/icfp/internal/common/type/boolean"
	"github.com/michaelmacinnis/icfp/internal/common/type/cond"
	"github.com/michaelmacinnis/icfp/internal/common/type/lambda"
	"github.com/michaelmacinnis/icfp/internal/common/type/num"
	"github.com/michaelmacinnis/icfp/internal/common/type/str"
	"github.com/michaelmacinnis/icfp/internal/common/type/unary"
	"github.com/michaelmacinnis/icfp/internal/common/type/variable"
	"github.com/michaelmacinnis/icfp/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	item func() *token.T // Function to call to get another token.
	last *token.T        // Most recently consumed token.
	name string          // Label used when there are no tokens at all.
}

// New creates a new parser that consumes tokens from item.
// The item function returns nil when there are no more tokens.
func New(name string, item func() *token.T) *T {
	return &T{item: item, name: name}
}

// Parse parses one term from the front of tokens and returns the term
// and the tokens that follow it.
func Parse(tokens []*token.T) (t term.I, rest []*token.T, err error) {
	i := 0

	defer func() {
		if r := recover(); r != nil {
			t, rest, err = nil, tokens, fault.Recover(r)
		}
	}()

	name := ""
	if len(tokens) > 0 {
		name = tokens[0].Source().Name
	}

	p := New(name, func() *token.T {
		if i == len(tokens) {
			return nil
		}

		i++

		return tokens[i-1]
	})

	t = p.Term()

	return t, tokens[i:], nil
}

// Term parses tokens as a single term. Trailing tokens are an error.
func Term(tokens []*token.T) (term.I, error) {
	t, rest, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, fault.At(rest[0].Source(), fault.MalformedToken,
			"unexpected %q after complete term", rest[0].Value())
	}

	return t, nil
}

// String tokenizes and parses source as a single term.
func String(label, source string) (term.I, error) {
	tokens, err := lexer.Tokenize(label, source)
	if err != nil {
		return nil, err
	}

	return Term(tokens)
}

// Term consumes the tokens for one term and returns it.
// It panics with a fault if the tokens do not form a term.
func (p *T) Term() term.I {
	t := p.consume()
	body := t.Body()

	switch t.Class() {
	case token.True, token.False:
		p.expectBody(t, body == "", "takes no body")

		return boolean.Bool(t.Is(token.True))

	case token.Integer:
		p.expectBody(t, body != "", "requires a body")

		n, err := num.New(body)
		p.check(t, err)

		return n

	case token.String:
		s, err := str.Decode(body)
		p.check(t, err)

		return s

	case token.Variable:
		p.expectBody(t, body != "", "requires a body")

		v, err := variable.Decode(body)
		p.check(t, err)

		return v

	case token.Unary:
		op, ok := unary.Operator(body)
		p.expectBody(t, ok, "is not a unary operator")

		return unary.New(op, p.Term())

	case token.Binary:
		op, ok := binary.Operator(body)
		p.expectBody(t, ok, "is not a binary operator")

		left := p.Term()
		right := p.Term()

		return binary.New(op, left, right)

	case token.If:
		p.expectBody(t, body == "", "takes no body")

		c := p.Term()
		consequent := p.Term()
		alternative := p.Term()

		return cond.New(c, consequent, alternative)

	case token.Lambda:
		p.expectBody(t, body != "", "requires a body")

		v, err := variable.Decode(body)
		p.check(t, err)

		return lambda.New(variable.To(v).ID(), p.Term())
	}

	panic(fault.At(t.Source(), fault.UnknownIndicator,
		"%q in %q", t.Value()[0], t.Value()))
}

func (p *T) check(t *token.T, err error) {
	if err != nil {
		panic(fault.At(t.Source(), fault.MalformedToken, "%q: %v", t.Value(), err))
	}
}

func (p *T) consume() *token.T {
	t := p.item()
	if t != nil {
		p.last = t

		return t
	}

	if p.last == nil {
		panic(fault.New(fault.EmptyInput, "no tokens in %s", p.label()))
	}

	source := *p.last.Source()
	source.Char += len(p.last.Value())

	panic(fault.At(&source, fault.TruncatedInput,
		"expected a term after %q", p.last.Value()))
}

func (p *T) expectBody(t *token.T, ok bool, problem string) {
	if ok {
		return
	}

	body := t.Body()
	if body == "" {
		panic(fault.At(t.Source(), fault.MalformedToken,
			"%q %s", t.Value(), problem))
	}

	panic(fault.At(t.Source(), fault.MalformedToken,
		"%q in %q %s", body, t.Value(), problem))
}

func (p *T) label() string {
	if p.name == "" {
		return "input"
	}

	return p.name
}
