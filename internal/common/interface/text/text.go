// Released under an MIT license. See LICENSE.

// Package text converts an icfp term to its human-readable string, if possible.
package text

import (
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

// I (text) is anything that can be treated as a string.
type I interface {
	Text() string
}

// Value returns the text for a term, if possible.
func Value(t term.I) string {
	s, ok := t.(I)
	if !ok {
		fault.Raise(fault.Type, "%s cannot be used in a string context", t.Name())
	}

	return s.Text()
}
