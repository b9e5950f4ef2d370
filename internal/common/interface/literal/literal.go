// Released under an MIT license. See LICENSE.

// Package literal renders terms as icfp token strings.
package literal

import (
	"strings"

	"github.com/michaelmacinnis/icfp/internal/common/interface/term"
)

// String returns the token string for the term t.
func String(t term.I) string {
	var b strings.Builder

	term.Walk(t, func(t term.I) bool {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(t.Token())

		return true
	})

	return b.String()
}
