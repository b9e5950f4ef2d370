// Released under an MIT license. See LICENSE.

package substitute

import (
	"github.com/michaelmacinnis/icfp/internal/common/fault"
	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
	"github.com/michaelmacinnis/icfp/internal/common/type/lambda"
	"github.com/michaelmacinnis/icfp/internal/common/type/variable"
)

// Names generates variable identifiers that are not used anywhere else.
// Identifiers are handed out in increasing order and never reused.
type Names struct {
	next      variable.ID
	exhausted bool
}

// NewNames creates a generator whose identifiers do not appear in ts.
func NewNames(ts ...term.I) *Names {
	n := &Names{}

	for _, t := range ts {
		n.Reserve(t)
	}

	return n
}

// Fresh returns an identifier that has not been used before.
func (n *Names) Fresh() variable.ID {
	if n.exhausted {
		panic(fault.New(fault.Unknown, "variable identifiers exhausted"))
	}

	id := n.next

	n.next++
	if n.next == 0 {
		n.exhausted = true
	}

	return id
}

// Next returns the identifier that Fresh will return next.
func (n *Names) Next() variable.ID {
	return n.next
}

// Reserve ensures no identifier in t is returned by Fresh.
func (n *Names) Reserve(t term.I) {
	if m, ok := Max(t); ok && !n.exhausted && m >= n.next {
		n.next = m + 1
		if n.next == 0 {
			n.exhausted = true
		}
	}
}

// Max returns the largest variable identifier in t, if t contains any.
func Max(t term.I) (largest variable.ID, found bool) {
	term.Walk(t, func(t term.I) bool {
		var id variable.ID

		switch t.Kind() {
		case term.Var:
			id = variable.To(t).ID()
		case term.Lambda:
			id = lambda.To(t).Var()
		case term.Bool, term.Int, term.Str, term.Unary, term.Binary, term.If:
			return true
		}

		if !found || id > largest {
			largest, found = id, true
		}

		return true
	})

	return largest, found
}
