// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source of tokens.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char  int    // Character position (column).
	Index int    // Token ordinal, starting at 1.
	Line  int    // Line number (row).
	Name  string // Label for the source of this token.
}

type loc = T

func (l *loc) String() string {
	name := l.Name
	if name == "" {
		name = "-"
	}

	return name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
