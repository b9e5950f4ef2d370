// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed icfp terms.
package engine

import (
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/engine/machine"
	"github.com/michaelmacinnis/icfp/internal/reader/parser"
)

// Option configures an engine.
type Option func(*T)

// Stats describes the work done by the most recent evaluation.
type Stats struct {
	Beta  int64
	Steps int64
}

// T (engine) is a facade in front of the machinery for evaluating icfp terms.
type T struct {
	limit int64
	stats Stats
	trace func(steps int64, t term.I)
}

// Limit sets the number of beta reductions allowed per evaluation.
func Limit(n int64) Option {
	return func(e *T) {
		e.limit = n
	}
}

// Trace sets a function to be called with each intermediate term.
func Trace(fn func(steps int64, t term.I)) Option {
	return func(e *T) {
		e.trace = fn
	}
}

// New creates a new T.
func New(opts ...Option) *T {
	e := &T{limit: machine.DefaultLimit}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate reduces t to normal form on a fresh machine.
func (e *T) Evaluate(t term.I) (term.I, error) {
	m := machine.New(e.limit)
	m.Trace(e.trace)

	v, err := m.Evaluate(t)

	e.stats = Stats{Beta: m.Beta(), Steps: m.Steps()}

	return v, err
}

// Stats returns the counters from the most recent evaluation.
func (e *T) Stats() Stats {
	return e.stats
}

// Run parses and evaluates the program source. The name labels errors.
func Run(name, source string, opts ...Option) (term.I, Stats, error) {
	t, err := parser.String(name, source)
	if err != nil {
		return nil, Stats{}, err
	}

	e := New(opts...)

	v, err := e.Evaluate(t)

	return v, e.Stats(), err
}
