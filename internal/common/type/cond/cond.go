// Released under an MIT license. See LICENSE.

// Package cond provides icfp's conditional term type.
package cond

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

const name = "if"

// T (cond) selects one of two branches based on a condition.
type T struct {
	alternative term.I
	condition   term.I
	consequent  term.I
}

type cond = T

// New creates a conditional term.
func New(condition, consequent, alternative term.I) term.I {
	return &cond{
		condition:   condition,
		consequent:  consequent,
		alternative: alternative,
	}
}

// Alternative returns the branch taken when the condition is false.
func (c *cond) Alternative() term.I {
	return c.alternative
}

// Children returns the condition and both branches.
func (c *cond) Children() []term.I {
	return []term.I{c.condition, c.consequent, c.alternative}
}

// Condition returns the condition of the conditional term c.
func (c *cond) Condition() term.I {
	return c.condition
}

// Consequent returns the branch taken when the condition is true.
func (c *cond) Consequent() term.I {
	return c.consequent
}

// Equal returns true if t is a conditional with equal children.
func (c *cond) Equal(t term.I) bool {
	return Is(t) && term.Equal(c, t)
}

// Kind returns term.If.
func (c *cond) Kind() term.Kind {
	return term.If
}

// Name returns the type name for the conditional term c.
func (c *cond) Name() string {
	return name
}

// String returns the text of the conditional term c.
func (c *cond) String() string {
	return "(if " + term.Quote(c.condition) +
		" then " + term.Quote(c.consequent) +
		" else " + term.Quote(c.alternative) + ")"
}

// Token returns "?".
func (c *cond) Token() string {
	return "?"
}

// With returns a conditional term with new children.
func (c *cond) With(children ...term.I) term.I {
	if children[0] == c.condition &&
		children[1] == c.consequent &&
		children[2] == c.alternative {
		return c
	}

	return New(children[0], children[1], children[2])
}

// Is returns true if t is a *T.
func Is(t term.I) bool {
	_, ok := t.(*T)

	return ok
}

// To returns a *T if t is a *T; Otherwise it panics.
func To(t term.I) *T {
	if c, ok := t.(*T); ok {
		return c
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cond

	// The cond type is a term.
	_ = term.I(&t)
}
