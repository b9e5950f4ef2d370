// Released under an MIT license. See LICENSE.

// Package machine reduces icfp terms to normal form.
//
// Reduction is call-by-name. An application substitutes its argument
// unevaluated and nothing is memoized. Every other operator is strict.
package machine

import (
	"errors"

	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/interface/truth"
	"github.com/michaelmacinnis/icfp/internal/common/type/binary"
	"github.com/michaelmacinnis/icfp/internal/common/type/cond"
	"github.com/michaelmacinnis/icfp/internal/common/type/lambda"
	"github.com/michaelmacinnis/icfp/internal/common/type/unary"
	"github.com/michaelmacinnis/icfp/internal/engine/commands"
	"github.com/michaelmacinnis/icfp/internal/engine/substitute"
)

// DefaultLimit is the number of beta reductions allowed per evaluation.
const DefaultLimit = 10_000_000

//nolint:gochecknoglobals
var (
	binaries = commands.Binary()
	unaries  = commands.Unary()
)

// T (machine) holds the state of a single evaluation.
// A machine must not be used by more than one goroutine at a time.
type T struct {
	beta  int64
	limit int64
	names *substitute.Names
	steps int64
	trace func(steps int64, t term.I)
}

// New creates a machine that allows at most limit beta reductions.
func New(limit int64) *T {
	return &T{limit: limit, names: substitute.NewNames()}
}

// Beta returns the number of beta reductions performed so far.
func (m *T) Beta() int64 {
	return m.beta
}

// Evaluate steps t until it is in normal form.
func (m *T) Evaluate(t term.I) (v term.I, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, m.fail(r)
		}
	}()

	m.names.Reserve(t)

	for {
		next, reduced := m.step(t)
		if !reduced {
			return t, nil
		}

		t = m.record(next)
	}
}

// Limit returns the number of beta reductions allowed.
func (m *T) Limit() int64 {
	return m.limit
}

// Step performs one reduction on t. It returns false if t is in normal form.
func (m *T) Step(t term.I) (next term.I, reduced bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, reduced, err = nil, false, m.fail(r)
		}
	}()

	m.names.Reserve(t)

	next, reduced = m.step(t)
	if reduced {
		next = m.record(next)
	}

	return next, reduced, nil
}

// Steps returns the number of reductions of any kind performed so far.
func (m *T) Steps() int64 {
	return m.steps
}

// Trace sets a function to be called with each intermediate term.
func (m *T) Trace(fn func(steps int64, t term.I)) {
	m.trace = fn
}

func (m *T) apply(b *binary.T) term.I {
	f := b.Left()
	if !lambda.Is(f) {
		next, reduced := m.step(f)
		if !reduced {
			fault.Raise(fault.Type, "%s cannot be applied", f.Name())
		}

		return b.With(next, b.Right())
	}

	if m.beta >= m.limit {
		fault.Raise(fault.StepLimitExceeded, "more than %d beta reductions", m.limit)
	}

	m.beta++

	l := lambda.To(f)

	return substitute.Substitute(l.Body(), l.Var(), b.Right(), m.names)
}

func (m *T) fail(r interface{}) error {
	err := fault.Recover(r)

	var f *fault.T
	if errors.As(err, &f) {
		return f.WithSteps(m.beta)
	}

	return err
}

// operand reduces a strict operand that is not yet a value.
func (m *T) operand(t term.I) term.I {
	next, reduced := m.step(t)
	if !reduced {
		fault.Raise(fault.Type, "expected a value; got %s", t.Name())
	}

	return next
}

func (m *T) record(t term.I) term.I {
	m.steps++

	if m.trace != nil {
		m.trace(m.steps, t)
	}

	return t
}

// step finds the leftmost required redex in t and reduces it.
func (m *T) step(t term.I) (term.I, bool) {
	switch t.Kind() {
	case term.Bool, term.Int, term.Str, term.Lambda:
		return t, false

	case term.Var:
		fault.Raise(fault.UnboundVariable, "%s is not bound", t)

	case term.Unary:
		u := unary.To(t)

		x := u.Operand()
		if !term.IsValue(x) {
			return t.With(m.operand(x)), true
		}

		return unaries[u.Op()](x), true

	case term.Binary:
		b := binary.To(t)
		if b.Op() == binary.Apply {
			return m.apply(b), true
		}

		l, r := b.Left(), b.Right()
		if !term.IsValue(l) {
			return t.With(m.operand(l), r), true
		}

		if !term.IsValue(r) {
			return t.With(l, m.operand(r)), true
		}

		return binaries[b.Op()](l, r), true

	case term.If:
		c := cond.To(t)

		x := c.Condition()
		if !term.IsValue(x) {
			return t.With(m.operand(x), c.Consequent(), c.Alternative()), true
		}

		if truth.Value(x) {
			return c.Consequent(), true
		}

		return c.Alternative(), true
	}

	panic("unknown term kind " + t.Kind().String())
}
